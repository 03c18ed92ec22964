package aggregators

import (
	"time"

	"reading-stats/internal/calendar"
	"reading-stats/internal/models"
)

// MaxDayWalkSeconds bounds how far back History is filled for one session. Real sessions are far
// shorter; a corrupt duration counts fully in the totals, but only its last MaxDayWalkSeconds are
// spread over days.
const MaxDayWalkSeconds = 400 * 24 * 60 * 60

//go:generate mockgen -source=event_rolluper.go -destination=./mocks/event_rolluper_mock.go -package=mocks
type EventRolluper interface {
	// Rollup mutates stats by accumulating one accepted event. The same event applied twice is
	// counted twice.
	Rollup(stats *models.Stats, event models.Event, windows models.Windows)
}

type eventRolluper struct {
	loc *time.Location
}

// NewEventRolluper returns a rolluper that splits sessions on local midnights of loc.
func NewEventRolluper(loc *time.Location) EventRolluper {
	return &eventRolluper{loc: loc}
}

func (r *eventRolluper) Rollup(stats *models.Stats, event models.Event, windows models.Windows) {
	start, end := event.StartTime(), event.EndTime

	stats.TotalSeconds += event.DurationSeconds
	stats.TodaySeconds += windows.Today.Clip(start, end)
	stats.WeekSeconds += windows.Week.Clip(start, end)
	stats.MonthSeconds += windows.Month.Clip(start, end)

	walkStart := start
	if event.DurationSeconds > MaxDayWalkSeconds {
		walkStart = end - MaxDayWalkSeconds
	}
	r.rollupDays(stats, walkStart, end)
	r.rollupWeekDays(stats, start, end, windows)
}

// rollupDays walks [start, end) one local day at a time.
func (r *eventRolluper) rollupDays(stats *models.Stats, start, end int64) {
	for cursor := start; cursor < end; {
		t := time.Unix(cursor, 0).In(r.loc)
		dayStart := calendar.DayStart(t).Unix()
		segEnd := min(end, calendar.NextDayStart(t).Unix())

		stats.History[dayStart] += segEnd - cursor
		rollupBuckets(stats.Buckets(dayStart), dayStart, cursor, segEnd)

		cursor = segEnd
	}
}

// rollupBuckets splits [from, to), which lies inside one day, into 2-hour slots. The last slot
// absorbs whatever a 25-hour day has left over.
func rollupBuckets(buckets *models.DayBuckets, dayStart, from, to int64) {
	for t := from; t < to; {
		bi := min(max((t-dayStart)/models.BucketSeconds, 0), models.BucketsPerDay-1)
		bEnd := to
		if bi < models.BucketsPerDay-1 {
			bEnd = min(to, dayStart+(bi+1)*models.BucketSeconds)
		}
		buckets[bi] += bEnd - t
		t = bEnd
	}
}

func (r *eventRolluper) rollupWeekDays(stats *models.Stats, start, end int64, windows models.Windows) {
	if windows.Week.Clip(start, end) == 0 {
		return
	}
	for i := 0; i < models.DaysPerWeek; i++ {
		day := models.Window{Start: windows.WeekDays[i], End: windows.WeekDays[i+1]}
		stats.WeekDays[i] += day.Clip(start, end)
	}
}
