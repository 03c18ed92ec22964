package models

import "maps"

const (
	BucketsPerDay = 12
	BucketSeconds = 2 * 60 * 60
	DaysPerWeek   = 7
)

// DayBuckets splits a day into 2-hour slots; slot i covers [2i:00, 2i+2:00) local time.
type DayBuckets [BucketsPerDay]int64

// Sum returns the total seconds across all slots.
func (b *DayBuckets) Sum() int64 {
	var total int64
	for _, v := range b {
		total += v
	}
	return total
}

// Stats is the aggregate built from the reading logs. TodaySeconds, WeekSeconds, MonthSeconds and
// WeekDays are computed against the windows of the last full reload and go stale until the next one.
type Stats struct {
	TotalSeconds int64
	TodaySeconds int64
	WeekSeconds  int64
	MonthSeconds int64

	// History maps a local day start to the seconds read that day.
	History map[int64]int64
	// DailyBuckets maps a local day start to its 2-hour distribution.
	DailyBuckets map[int64]*DayBuckets
	// WeekDays runs Monday=0 to Sunday=6.
	WeekDays [DaysPerWeek]int64

	ViewedYear      int
	ViewedMonth     int
	ViewedMonthDays []int64

	ViewedDay        int64
	ViewedDayBuckets DayBuckets
	ViewedDaySeconds int64

	// Loaded reports whether a full parse has completed in this process.
	Loaded bool
}

func NewStats() *Stats {
	return &Stats{
		History:      make(map[int64]int64),
		DailyBuckets: make(map[int64]*DayBuckets),
	}
}

// Reset clears everything except Loaded.
func (s *Stats) Reset() {
	loaded := s.Loaded
	*s = Stats{
		History:      make(map[int64]int64),
		DailyBuckets: make(map[int64]*DayBuckets),
		Loaded:       loaded,
	}
}

// Clone returns a deep copy that shares no maps or slices with s.
func (s *Stats) Clone() *Stats {
	c := *s
	c.History = maps.Clone(s.History)
	if c.History == nil {
		c.History = make(map[int64]int64)
	}
	c.DailyBuckets = make(map[int64]*DayBuckets, len(s.DailyBuckets))
	for day, buckets := range s.DailyBuckets {
		copied := *buckets
		c.DailyBuckets[day] = &copied
	}
	if s.ViewedMonthDays != nil {
		c.ViewedMonthDays = append([]int64(nil), s.ViewedMonthDays...)
	}
	return &c
}

// Buckets returns the distribution for day, creating it when missing.
func (s *Stats) Buckets(day int64) *DayBuckets {
	b, ok := s.DailyBuckets[day]
	if !ok {
		b = &DayBuckets{}
		s.DailyBuckets[day] = b
	}
	return b
}
