package models

// Window is a half-open interval [Start, End) of unix seconds.
type Window struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Clip returns how many seconds of [start, end) fall inside the window, never negative.
func (w Window) Clip(start, end int64) int64 {
	s := max(start, w.Start)
	e := min(end, w.End)
	if e <= s {
		return 0
	}
	return e - s
}

func (w Window) Contains(ts int64) bool {
	return ts >= w.Start && ts < w.End
}

// Windows is the set of reference windows computed once per full reload.
type Windows struct {
	Today Window
	Week  Window
	Month Window
	// WeekDays holds the 8 local-midnight boundaries of the week, Monday first.
	WeekDays [DaysPerWeek + 1]int64
}
