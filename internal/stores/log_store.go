package stores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"reading-stats/internal/shared/filestorages"
	"reading-stats/internal/shared/loggers"
	"reading-stats/internal/shared/metrics"

	"github.com/klauspost/compress/gzip"
)

var (
	ErrLogNotFound = errors.New("log file not found")
)

// Source names used as labels for read passes.
const (
	SourceHistory = "history"
	SourceCurrent = "current"
)

// periodLayout formats the YYMM suffix of a period file.
const periodLayout = "0601"

type LogStoreConfig struct {
	Dir         string
	Prefix      string
	ArchiveFile string
	ScratchFile string
}

// LogSource is one file of a full read pass.
type LogSource struct {
	Name string
	Path string
}

// RotationResult describes what a compaction pass changed on disk.
type RotationResult struct {
	Merged           []string
	ArchiveRewritten bool
	ScratchBytes     int64
}

// UploadFile is a file sent to the sync server.
type UploadFile struct {
	Name string
	Path string
	Size int64
}

// LogStore owns the log directory: per-period files named <prefix><YYMM>, the gzip archive of closed
// periods, and the decompressed scratch copy of that archive used by read passes.
//
// Rotation mutates the directory and rewrites the scratch file, so it must never run while a read
// pass is consuming the scratch file.
//
//go:generate mockgen -source=log_store.go -destination=./mocks/log_store_mock.go -package=mocks
type LogStore interface {
	CurrentPeriodFilename(now time.Time) string
	// RotateAndCompact folds every closed period file into the archive and refreshes the scratch file.
	RotateAndCompact(ctx context.Context, currentPeriodFilename string) (*RotationResult, error)
	// ReadSources lists the files of a full read pass: scratch first, then the current period.
	ReadSources(now time.Time) []LogSource
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// DirSize sums the sizes of the non-dot files of the log directory.
	DirSize(ctx context.Context) (int64, error)
	UploadFiles(ctx context.Context) ([]UploadFile, error)
	RemoveScratch(ctx context.Context) error
}

type logStore struct {
	fileStorage filestorages.FileStorage
	cfg         LogStoreConfig
}

func NewLogStore(fileStorage filestorages.FileStorage, cfg LogStoreConfig) LogStore {
	return &logStore{fileStorage: fileStorage, cfg: cfg}
}

func (s *logStore) CurrentPeriodFilename(now time.Time) string {
	return s.cfg.Prefix + now.Format(periodLayout)
}

func (s *logStore) RotateAndCompact(ctx context.Context, currentPeriodFilename string) (*RotationResult, error) {
	logger := loggers.Ctx(ctx)
	startedAt := time.Now()
	result := &RotationResult{}

	if err := s.restoreScratch(ctx); err != nil {
		metricRotationsTotal.WithLabelValues(codeArchiveUnreadable).Inc()
		return result, err
	}

	candidates, err := s.closedPeriodFiles(ctx, currentPeriodFilename)
	if err != nil {
		metricRotationsTotal.WithLabelValues(codeInternalLogDirFailed).Inc()
		return result, errInternalLogDirFailed(err)
	}

	for _, file := range candidates {
		if err := s.appendToScratch(ctx, file.Path); err != nil {
			// Nothing has been deleted yet; the next rotation starts again from the archive.
			metricRotationsTotal.WithLabelValues(codeInternalMergeFailed).Inc()
			return result, errInternalMergeFailed(file.Name, err)
		}
		result.Merged = append(result.Merged, file.Name)
	}

	if len(result.Merged) > 0 {
		if err := s.compressScratch(ctx); err != nil {
			metricRotationsTotal.WithLabelValues(codeInternalArchiveWriteFailed).Inc()
			return result, errInternalArchiveWriteFailed(err)
		}
		result.ArchiveRewritten = true

		for _, file := range candidates {
			if err := s.fileStorage.Remove(ctx, file.Path); err != nil {
				logger.Error().Err(err).Str(loggers.FieldFile, file.Path).Msg("failed to remove merged period file")
			}
		}
		metricFilesMergedTotal.Add(float64(len(result.Merged)))
	}

	if info, err := s.fileStorage.Stat(ctx, s.cfg.ScratchFile); err == nil {
		result.ScratchBytes = info.Size
	}

	metricRotationsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	metricRotationDuration.Observe(time.Since(startedAt).Seconds())
	logger.Info().
		Int(loggers.FieldMerged, len(result.Merged)).
		Bool("archive_rewritten", result.ArchiveRewritten).
		Int64("scratch_bytes", result.ScratchBytes).
		Msg("log rotation completed")
	return result, nil
}

// restoreScratch replaces the scratch file with the decompressed archive, or with an empty file when
// there is no archive or it cannot be decompressed.
func (s *logStore) restoreScratch(ctx context.Context) error {
	archive, err := s.fileStorage.Get(ctx, s.cfg.ArchiveFile)
	if errors.Is(err, filestorages.ErrFileNotFound) {
		return s.resetScratch(ctx)
	}
	if err != nil {
		return s.failRestore(ctx, err)
	}
	defer archive.Close()

	gz, err := gzip.NewReader(archive)
	if err != nil {
		return s.failRestore(ctx, err)
	}
	defer gz.Close()

	if _, err := s.fileStorage.Put(ctx, s.cfg.ScratchFile, gz, filestorages.PutOptions{AllowOverwrite: true}); err != nil {
		return s.failRestore(ctx, err)
	}
	return nil
}

func (s *logStore) failRestore(ctx context.Context, cause error) error {
	if err := s.resetScratch(ctx); err != nil {
		loggers.Ctx(ctx).Error().Err(err).Str(loggers.FieldFile, s.cfg.ScratchFile).Msg("failed to reset scratch file")
	}
	return errArchiveUnreadable(cause)
}

func (s *logStore) resetScratch(ctx context.Context) error {
	_, err := s.fileStorage.Put(ctx, s.cfg.ScratchFile, bytes.NewReader(nil), filestorages.PutOptions{AllowOverwrite: true})
	return err
}

// closedPeriodFiles lists period files other than the current one, sorted by name.
func (s *logStore) closedPeriodFiles(ctx context.Context, currentPeriodFilename string) ([]filestorages.FileInfo, error) {
	files, err := s.periodFiles(ctx)
	if err != nil {
		return nil, err
	}
	closed := files[:0]
	for _, f := range files {
		if f.Name != currentPeriodFilename {
			closed = append(closed, f)
		}
	}
	return closed, nil
}

func (s *logStore) periodFiles(ctx context.Context) ([]filestorages.FileInfo, error) {
	entries, err := s.fileStorage.List(ctx, s.cfg.Dir)
	if errors.Is(err, filestorages.ErrFileNotFound) {
		loggers.Ctx(ctx).Info().Str(loggers.FieldFile, s.cfg.Dir).Msg("log directory does not exist")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	files := make([]filestorages.FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir || !strings.HasPrefix(e.Name, s.cfg.Prefix) {
			continue
		}
		files = append(files, e)
	}
	return files, nil
}

// appendToScratch copies path to the end of the scratch file and terminates it with a newline so the
// next file never continues its last line.
func (s *logStore) appendToScratch(ctx context.Context, path string) error {
	rc, err := s.fileStorage.Get(ctx, path)
	if err != nil {
		return err
	}
	defer rc.Close()

	tail := &lastByteReader{r: rc}
	n, err := s.fileStorage.Append(ctx, s.cfg.ScratchFile, tail)
	if err != nil {
		return err
	}
	if n > 0 && tail.last != '\n' {
		if _, err := s.fileStorage.Append(ctx, s.cfg.ScratchFile, strings.NewReader("\n")); err != nil {
			return err
		}
	}
	return nil
}

// compressScratch gzips the scratch file over the archive. The archive is replaced only once the new
// one is fully written.
func (s *logStore) compressScratch(ctx context.Context) error {
	scratch, err := s.fileStorage.Get(ctx, s.cfg.ScratchFile)
	if err != nil {
		return err
	}
	defer scratch.Close()

	pr, pw := io.Pipe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		gz := gzip.NewWriter(pw)
		if _, err := io.Copy(gz, scratch); err != nil {
			_ = gz.Close()
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(gz.Close())
	}()

	_, err = s.fileStorage.Put(ctx, s.cfg.ArchiveFile, pr, filestorages.PutOptions{AllowOverwrite: true})
	// Unblock the writer goroutine if Put stopped reading early.
	_ = pr.CloseWithError(io.ErrClosedPipe)
	<-done
	return err
}

func (s *logStore) ReadSources(now time.Time) []LogSource {
	return []LogSource{
		{Name: SourceHistory, Path: s.cfg.ScratchFile},
		{Name: SourceCurrent, Path: filepath.Join(s.cfg.Dir, s.CurrentPeriodFilename(now))},
	}
}

func (s *logStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := s.fileStorage.Get(ctx, path)
	if errors.Is(err, filestorages.ErrFileNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrLogNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open log %s: %w", path, err)
	}
	return rc, nil
}

func (s *logStore) DirSize(ctx context.Context) (int64, error) {
	entries, err := s.fileStorage.List(ctx, s.cfg.Dir)
	if errors.Is(err, filestorages.ErrFileNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to list log directory: %w", err)
	}

	var total int64
	for _, e := range entries {
		if e.IsDir || strings.HasPrefix(e.Name, ".") {
			continue
		}
		total += e.Size
	}
	return total, nil
}

func (s *logStore) UploadFiles(ctx context.Context) ([]UploadFile, error) {
	files, err := s.periodFiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list log directory: %w", err)
	}

	uploads := make([]UploadFile, 0, len(files)+1)
	for _, f := range files {
		uploads = append(uploads, UploadFile{Name: f.Name, Path: f.Path, Size: f.Size})
	}

	archive, err := s.fileStorage.Stat(ctx, s.cfg.ArchiveFile)
	switch {
	case err == nil && archive.Size > 0 && !archive.IsDir:
		uploads = append(uploads, UploadFile{Name: archive.Name, Path: archive.Path, Size: archive.Size})
	case err != nil && !errors.Is(err, filestorages.ErrFileNotFound):
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}
	return uploads, nil
}

func (s *logStore) RemoveScratch(ctx context.Context) error {
	err := s.fileStorage.Remove(ctx, s.cfg.ScratchFile)
	if err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return err
	}
	return nil
}

// lastByteReader remembers the final byte that passed through it.
type lastByteReader struct {
	r    io.Reader
	last byte
}

func (l *lastByteReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	if n > 0 {
		l.last = p[n-1]
	}
	return n, err
}
