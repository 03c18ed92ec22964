package projections

import (
	"fmt"
	"strconv"
	"strings"

	"reading-stats/internal/models"
)

// BuildShareURL encodes the viewed month and viewed day in minutes, rounded up, as a share link.
// Keys are 1..N for the days of the month and d1..d12 for the 2-hour slots.
func BuildShareURL(domain string, goalMinutes int, stats *models.Stats) string {
	var b strings.Builder
	b.WriteString("https://")
	b.WriteString(domain)
	b.WriteString("/share.php?")
	fmt.Fprintf(&b, "year=%d&month=%d&goal=%d", stats.ViewedYear, stats.ViewedMonth, goalMinutes)

	for i, seconds := range stats.ViewedMonthDays {
		b.WriteString("&")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString("=")
		b.WriteString(strconv.FormatInt(ceilMinutes(seconds), 10))
	}
	for i, seconds := range stats.ViewedDayBuckets {
		fmt.Fprintf(&b, "&d%d=%d", i+1, ceilMinutes(seconds))
	}
	return b.String()
}

func ceilMinutes(seconds int64) int64 {
	return (seconds + 59) / 60
}

// FormatHMS renders seconds as "   1H 02m 03s".
func FormatHMS(seconds int64) string {
	return fmt.Sprintf("%4dH %02dm %02ds", seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatKiB renders a byte count in whole KiB.
func FormatKiB(bytes int64) string {
	return strconv.FormatInt(bytes/1024, 10) + " KB"
}
