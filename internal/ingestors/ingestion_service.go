package ingestors

import (
	"bufio"
	"context"
	"errors"
	"io"

	"reading-stats/internal/models"
	"reading-stats/internal/shared/loggers"
)

// maxLineBytes bounds a single log line. A longer line is skipped up to its newline and counted as
// ReasonLineTooLong; reading goes on with the next line.
const maxLineBytes = 64 * 1024

// IngestResult summarizes one source fed through the parser.
type IngestResult struct {
	Source   string
	Lines    int
	Accepted int
	// Rejected counts dropped lines per rejection reason.
	Rejected map[string]int
}

// RejectedTotal returns the number of dropped lines across all reasons.
func (r *IngestResult) RejectedTotal() int {
	total := 0
	for _, n := range r.Rejected {
		total += n
	}
	return total
}

// EventSink receives every accepted event in file order.
type EventSink func(models.Event)

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// Ingest parses r line by line and hands accepted events to sink. Malformed or over-long lines
	// are dropped one at a time. A read error stops this source and is returned together with the
	// partial result.
	Ingest(ctx context.Context, source string, r io.Reader, sink EventSink) (*IngestResult, error)
}

type ingestionService struct{}

func NewIngestionService() IngestionService {
	return &ingestionService{}
}

func (s *ingestionService) Ingest(ctx context.Context, source string, r io.Reader, sink EventSink) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	result := &IngestResult{Source: source, Rejected: make(map[string]int)}

	reader := bufio.NewReaderSize(r, maxLineBytes)
	for {
		line, err := reader.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			result.Lines++
			result.Rejected[ReasonLineTooLong]++
			err = skipRestOfLine(reader)
			line = nil
		}
		if len(line) > 0 {
			result.Lines++
			s.ingestLine(result, string(line), sink)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.record(result)
			logger.Warn().Err(err).Str(loggers.FieldSource, source).Int(loggers.FieldLines, result.Lines).Msg("log source read stopped early")
			return result, errInternalSourceReadFailed(source, err)
		}
	}

	s.record(result)

	logger.Debug().
		Str(loggers.FieldSource, source).
		Int(loggers.FieldLines, result.Lines).
		Int(loggers.FieldAccepted, result.Accepted).
		Int(loggers.FieldRejected, result.RejectedTotal()).
		Msg("ingested log source")
	return result, nil
}

func (s *ingestionService) ingestLine(result *IngestResult, line string, sink EventSink) {
	event, err := ParseLine(line)
	if err != nil {
		result.Rejected[RejectionReason(err)]++
		return
	}
	result.Accepted++
	sink(event)
}

// skipRestOfLine discards input up to and including the next newline. It returns io.EOF when the
// over-long line was the last one.
func skipRestOfLine(reader *bufio.Reader) error {
	for {
		_, err := reader.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

func (s *ingestionService) record(result *IngestResult) {
	metricLinesTotal.WithLabelValues(result.Source).Add(float64(result.Lines))
	metricEventsAcceptedTotal.WithLabelValues(result.Source).Add(float64(result.Accepted))
	for reason, n := range result.Rejected {
		metricLinesRejectedTotal.WithLabelValues(reason).Add(float64(n))
	}
}
