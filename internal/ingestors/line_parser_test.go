package ingestors

import (
	"math"
	"testing"

	"reading-stats/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Accepted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected models.Event
	}{
		{
			name:     "empty fields kept",
			line:     ",1700000000,,,,com.lab126.booklet.reader.activeDuration,60000,",
			expected: models.Event{EndTime: 1700000000, DurationSeconds: 60, Type: ReaderActivityMarker},
		},
		{
			name:     "populated fields and trailing CRLF",
			line:     "123,1700000000,a,b,c,com.lab126.booklet.reader.activeDuration,90500\r\n",
			expected: models.Event{EndTime: 1700000000, DurationSeconds: 90, Type: ReaderActivityMarker},
		},
		{
			name:     "extra fields ignored",
			line:     "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDuration,2000,more,fields",
			expected: models.Event{EndTime: 1700000000, DurationSeconds: 2, Type: ReaderActivityMarker},
		},
		{
			name:     "marker matched by prefix",
			line:     "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDurationX,5000",
			expected: models.Event{EndTime: 1700000000, DurationSeconds: 5, Type: "com.lab126.booklet.reader.activeDurationX"},
		},
		{
			name:     "malformed timestamp parses as zero",
			line:     "x,abc,x,x,x,com.lab126.booklet.reader.activeDuration,5000",
			expected: models.Event{EndTime: 0, DurationSeconds: 5, Type: ReaderActivityMarker},
		},
		{
			name:     "eight days kept whole",
			line:     ",1700000000,,,,com.lab126.booklet.reader.activeDuration,691200000,",
			expected: models.Event{EndTime: 1700000000, DurationSeconds: 691200, Type: ReaderActivityMarker},
		},
		{
			name:     "leading digits only",
			line:     "x, 1700000000ms,x,x,x,com.lab126.booklet.reader.activeDuration,5999.9",
			expected: models.Event{EndTime: 1700000000, DurationSeconds: 5, Type: ReaderActivityMarker},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			event, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, event)
		})
	}
}

func TestParseLine_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected error
	}{
		{name: "other type", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.pageTurn,60000", expected: ErrNotReaderActivity},
		{name: "truncated marker", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.active,60000", expected: ErrNotReaderActivity},
		{name: "too few fields", line: "x,1700000000,x,x", expected: ErrNotReaderActivity},
		{name: "empty line", line: "", expected: ErrNotReaderActivity},
		{name: "duration below one second", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDuration,999", expected: ErrNonPositiveDuration},
		{name: "zero duration", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDuration,0", expected: ErrNonPositiveDuration},
		{name: "negative duration", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDuration,-5000", expected: ErrNonPositiveDuration},
		{name: "missing duration", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDuration", expected: ErrNonPositiveDuration},
		{name: "garbage duration", line: "x,1700000000,x,x,x,com.lab126.booklet.reader.activeDuration,abc", expected: ErrNonPositiveDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseLine(tt.line)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestRejectionReason(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ReasonNotReaderActivity, RejectionReason(ErrNotReaderActivity))
	assert.Equal(t, ReasonNonPositiveDuration, RejectionReason(ErrNonPositiveDuration))
}

func TestParseLeadingInt(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(42), parseLeadingInt("42"))
	assert.Equal(t, int64(-7), parseLeadingInt("  -7x"))
	assert.Equal(t, int64(3), parseLeadingInt("+3"))
	assert.Equal(t, int64(0), parseLeadingInt("-"))
	assert.Equal(t, int64(0), parseLeadingInt(""))
	assert.Equal(t, int64(math.MaxInt64), parseLeadingInt("99999999999999999999999"))
	assert.Equal(t, int64(math.MinInt64), parseLeadingInt("-99999999999999999999999"))
}
