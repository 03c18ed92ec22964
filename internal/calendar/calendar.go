// Package calendar computes local day, week and month boundaries as unix seconds.
package calendar

import (
	"fmt"
	"time"

	"reading-stats/internal/models"
)

// weekdayIndex maps a weekday to its position in a Monday-first week.
var weekdayIndex = map[time.Weekday]int{
	time.Monday:    0,
	time.Tuesday:   1,
	time.Wednesday: 2,
	time.Thursday:  3,
	time.Friday:    4,
	time.Saturday:  5,
	time.Sunday:    6,
}

// WeekdayIndex returns 0 for Monday through 6 for Sunday.
func WeekdayIndex(d time.Weekday) int {
	idx, ok := weekdayIndex[d]
	if !ok {
		panic(fmt.Sprintf("invalid weekday: %d", d))
	}
	return idx
}

// DayStart returns local midnight of t's day in t's location.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayStartUnix returns the local midnight of the day containing ts.
func DayStartUnix(ts int64, loc *time.Location) int64 {
	return DayStart(time.Unix(ts, 0).In(loc)).Unix()
}

// NextDayStart returns midnight of the following calendar day. Across DST changes the day is 23 or
// 25 hours long.
func NextDayStart(t time.Time) time.Time {
	return DayStart(t).AddDate(0, 0, 1)
}

// NextDayStartUnix is NextDayStart for unix seconds.
func NextDayStartUnix(ts int64, loc *time.Location) int64 {
	return NextDayStart(time.Unix(ts, 0).In(loc)).Unix()
}

// TodayBounds returns [today 00:00, tomorrow 00:00).
func TodayBounds(now time.Time) models.Window {
	return models.Window{Start: DayStart(now).Unix(), End: NextDayStart(now).Unix()}
}

// WeekStart returns Monday 00:00 of now's week.
func WeekStart(now time.Time) time.Time {
	return DayStart(now).AddDate(0, 0, -WeekdayIndex(now.Weekday()))
}

// WeekBounds returns [Monday 00:00, next Monday 00:00).
func WeekBounds(now time.Time) models.Window {
	start := WeekStart(now)
	return models.Window{Start: start.Unix(), End: start.AddDate(0, 0, models.DaysPerWeek).Unix()}
}

// MonthBounds returns now's month window with its year and month number.
func MonthBounds(now time.Time) (models.Window, int, int) {
	y, m, _ := now.Date()
	return MonthBoundsOf(y, int(m), now.Location()), y, int(m)
}

// MonthBoundsOf returns [1st 00:00, 1st of next month 00:00). Panics when month is outside 1..12.
func MonthBoundsOf(year, month int, loc *time.Location) models.Window {
	mustMonth(month)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return models.Window{Start: start.Unix(), End: start.AddDate(0, 1, 0).Unix()}
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth panics when month is outside 1..12.
func DaysInMonth(year, month int) int {
	mustMonth(month)
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

// MonthDayStarts returns the local midnight of every day of the month, in order.
func MonthDayStarts(year, month int, loc *time.Location) []int64 {
	n := DaysInMonth(year, month)
	starts := make([]int64, n)
	for d := 1; d <= n; d++ {
		starts[d-1] = time.Date(year, time.Month(month), d, 0, 0, 0, 0, loc).Unix()
	}
	return starts
}

// CurrentWindows computes the today, week and month windows for now.
func CurrentWindows(now time.Time) models.Windows {
	month, _, _ := MonthBounds(now)
	w := models.Windows{
		Today: TodayBounds(now),
		Week:  WeekBounds(now),
		Month: month,
	}
	weekStart := WeekStart(now)
	for i := range w.WeekDays {
		w.WeekDays[i] = weekStart.AddDate(0, 0, i).Unix()
	}
	return w
}

// ValidMonth reports whether year and month can be projected.
func ValidMonth(year, month int) bool {
	return month >= 1 && month <= 12 && year >= 1970 && year <= 9999
}

func mustMonth(month int) {
	if month < 1 || month > 12 {
		panic(fmt.Sprintf("invalid month: %d", month))
	}
}
