// Package projections derives the viewed-day and viewed-month slices, goal progress and share links
// from the history indexes of models.Stats. Nothing here reads the disk.
package projections

import (
	"time"

	"reading-stats/internal/calendar"
	"reading-stats/internal/models"
)

// RefreshViewedDay copies the buckets of dayStart into the viewed-day fields. A day without
// reading yields zero buckets.
func RefreshViewedDay(stats *models.Stats, dayStart int64) {
	stats.ViewedDay = dayStart
	if buckets, ok := stats.DailyBuckets[dayStart]; ok {
		stats.ViewedDayBuckets = *buckets
	} else {
		stats.ViewedDayBuckets = models.DayBuckets{}
	}
	stats.ViewedDaySeconds = stats.ViewedDayBuckets.Sum()
}

// ProjectViewedMonth replaces ViewedMonthDays with one entry per day of the month, taken from
// History. Panics when month is outside 1..12.
func ProjectViewedMonth(stats *models.Stats, year, month int, loc *time.Location) {
	starts := calendar.MonthDayStarts(year, month, loc)
	days := make([]int64, len(starts))
	for i, start := range starts {
		days[i] = stats.History[start]
	}
	stats.ViewedYear = year
	stats.ViewedMonth = month
	stats.ViewedMonthDays = days
}

// MonthTotal sums the viewed month.
func MonthTotal(stats *models.Stats) int64 {
	var total int64
	for _, s := range stats.ViewedMonthDays {
		total += s
	}
	return total
}
