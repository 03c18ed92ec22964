package ingestors

import (
	"errors"
	"math"
	"strings"

	"reading-stats/internal/models"
)

// ReaderActivityMarker is the event type of a reader-active-duration record.
const ReaderActivityMarker = "com.lab126.booklet.reader.activeDuration"

const (
	fieldEndTime  = 2
	fieldType     = 6
	fieldDuration = 7
)

var (
	ErrNotReaderActivity   = errors.New("not a reader activity record")
	ErrNonPositiveDuration = errors.New("non-positive duration")
)

// Rejection reasons, used as metric labels and in IngestResult.
const (
	ReasonNotReaderActivity   = "not_reader_activity"
	ReasonNonPositiveDuration = "non_positive_duration"
	// ReasonLineTooLong is assigned by the reader, not ParseLine: the line never reaches the parser.
	ReasonLineTooLong = "line_too_long"
)

// ParseLine extracts a reader activity event from one comma-separated log line.
// Field 2 is the end time in unix seconds, field 6 the event type and field 7 the duration in
// milliseconds. Numeric fields that fail to parse count as zero.
func ParseLine(line string) (models.Event, error) {
	line = strings.TrimRight(line, "\r\n")

	var endTime, durationMs int64
	var eventType string
	typeSeen := false

	for i, field := range strings.SplitN(line, ",", fieldDuration+1) {
		switch i + 1 {
		case fieldEndTime:
			endTime = parseLeadingInt(field)
		case fieldType:
			eventType = field
			typeSeen = true
		case fieldDuration:
			durationMs = parseLeadingInt(field)
		}
	}

	if !typeSeen || !strings.HasPrefix(eventType, ReaderActivityMarker) {
		return models.Event{}, ErrNotReaderActivity
	}

	duration := durationMs / 1000
	if duration <= 0 {
		return models.Event{}, ErrNonPositiveDuration
	}

	return models.Event{EndTime: endTime, DurationSeconds: duration, Type: eventType}, nil
}

// RejectionReason maps a ParseLine error to its metric label.
func RejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrNonPositiveDuration):
		return ReasonNonPositiveDuration
	default:
		return ReasonNotReaderActivity
	}
}

// parseLeadingInt reads an optionally signed decimal prefix after leading whitespace, like strtol.
// No digits gives 0; overflow saturates.
func parseLeadingInt(s string) int64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			if negative {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}

	if negative {
		return -n
	}
	return n
}
