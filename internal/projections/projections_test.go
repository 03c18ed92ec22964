package projections

import (
	"strings"
	"testing"
	"time"

	"reading-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) int64 {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix()
}

func TestRefreshViewedDay(t *testing.T) {
	t.Parallel()

	stats := models.NewStats()
	b := stats.Buckets(day(2024, 3, 6))
	b[0] = 60
	b[11] = 120

	RefreshViewedDay(stats, day(2024, 3, 6))
	assert.Equal(t, day(2024, 3, 6), stats.ViewedDay)
	assert.Equal(t, int64(60), stats.ViewedDayBuckets[0])
	assert.Equal(t, int64(180), stats.ViewedDaySeconds)

	RefreshViewedDay(stats, day(2024, 3, 7))
	assert.Equal(t, models.DayBuckets{}, stats.ViewedDayBuckets)
	assert.Zero(t, stats.ViewedDaySeconds)
}

func TestRefreshViewedDay_CopiesBuckets(t *testing.T) {
	t.Parallel()

	stats := models.NewStats()
	stats.Buckets(day(2024, 3, 6))[0] = 60
	RefreshViewedDay(stats, day(2024, 3, 6))

	stats.ViewedDayBuckets[0] = 999
	assert.Equal(t, int64(60), stats.DailyBuckets[day(2024, 3, 6)][0])
}

func TestProjectViewedMonth(t *testing.T) {
	t.Parallel()

	stats := models.NewStats()
	stats.History[day(2024, 2, 1)] = 100
	stats.History[day(2024, 2, 29)] = 200
	stats.History[day(2024, 3, 1)] = 300

	ProjectViewedMonth(stats, 2024, 2, time.UTC)
	require.Len(t, stats.ViewedMonthDays, 29)
	assert.Equal(t, int64(100), stats.ViewedMonthDays[0])
	assert.Equal(t, int64(200), stats.ViewedMonthDays[28])
	assert.Equal(t, int64(300), MonthTotal(stats))
	assert.Equal(t, 2024, stats.ViewedYear)
	assert.Equal(t, 2, stats.ViewedMonth)

	ProjectViewedMonth(stats, 2023, 4, time.UTC)
	require.Len(t, stats.ViewedMonthDays, 30)
	assert.Zero(t, MonthTotal(stats))

	assert.Panics(t, func() { ProjectViewedMonth(stats, 2024, 13, time.UTC) })
}

func TestEvaluateGoal(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 6, 15, 0, 0, 0, time.UTC)
	target := 30

	tests := []struct {
		name         string
		history      map[int64]int64
		today        int64
		met          bool
		remaining    int64
		streak       int
		monthMetDays int
	}{
		{
			name:      "nothing read",
			history:   map[int64]int64{},
			remaining: 30,
		},
		{
			name:         "today met extends streak",
			history:      map[int64]int64{day(2024, 3, 6): 1800, day(2024, 3, 5): 2000, day(2024, 3, 4): 1800, day(2024, 3, 2): 5000},
			today:        1800,
			met:          true,
			streak:       3,
			monthMetDays: 4,
		},
		{
			name:         "today pending counts from yesterday",
			history:      map[int64]int64{day(2024, 3, 6): 61, day(2024, 3, 5): 1800, day(2024, 3, 4): 1800, day(2024, 3, 3): 10},
			today:        61,
			remaining:    29,
			streak:       2,
			monthMetDays: 2,
		},
		{
			name:         "streak crosses month boundary",
			history:      map[int64]int64{day(2024, 3, 5): 1800, day(2024, 3, 4): 1800, day(2024, 3, 3): 1800, day(2024, 3, 2): 1800, day(2024, 3, 1): 1800, day(2024, 2, 29): 1800},
			remaining:    30,
			streak:       6,
			monthMetDays: 5,
		},
		{
			name:         "future days of the month are ignored",
			history:      map[int64]int64{day(2024, 3, 20): 9000},
			remaining:    30,
			monthMetDays: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stats := models.NewStats()
			stats.History = tt.history
			stats.TodaySeconds = tt.today

			progress := EvaluateGoal(stats, target, now)
			assert.Equal(t, target, progress.TargetMinutes)
			assert.Equal(t, tt.met, progress.MetToday)
			assert.Equal(t, tt.remaining, progress.RemainingMinutes)
			assert.Equal(t, tt.streak, progress.Streak)
			assert.Equal(t, tt.monthMetDays, progress.MonthMetDays)
		})
	}
}

func TestBuildShareURL(t *testing.T) {
	t.Parallel()

	stats := models.NewStats()
	stats.History[day(2024, 2, 1)] = 61
	stats.History[day(2024, 2, 2)] = 60
	ProjectViewedMonth(stats, 2024, 2, time.UTC)
	stats.ViewedDayBuckets[0] = 1
	stats.ViewedDayBuckets[11] = 7200

	url := BuildShareURL("reading.tqhyg.net", 30, stats)

	assert.True(t, strings.HasPrefix(url, "https://reading.tqhyg.net/share.php?year=2024&month=2&goal=30&1=2&2=1&3=0&"))
	assert.Contains(t, url, "&29=0&d1=1&d2=0")
	assert.True(t, strings.HasSuffix(url, "&d12=120"))
	assert.NotContains(t, url, "&30=")
}

func TestFormatHMS(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "   0H 00m 00s", FormatHMS(0))
	assert.Equal(t, "   1H 02m 03s", FormatHMS(3723))
	assert.Equal(t, "  25H 00m 59s", FormatHMS(90059))
	assert.Equal(t, "12345H 00m 00s", FormatHMS(12345*3600))
}

func TestFormatKiB(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 KB", FormatKiB(1023))
	assert.Equal(t, "2 KB", FormatKiB(2048))
}
