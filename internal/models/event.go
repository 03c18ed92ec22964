package models

// Event is one accepted reader-activity record. Times are unix seconds.
type Event struct {
	EndTime         int64
	DurationSeconds int64
	Type            string
}

// StartTime is the moment the reading session began.
func (e Event) StartTime() int64 {
	return e.EndTime - e.DurationSeconds
}
