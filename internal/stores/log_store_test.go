package stores

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"reading-stats/internal/shared/filestorages"
	"reading-stats/internal/shared/filestorages/mocks"
	"reading-stats/internal/shared/svcerrors"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testDir     = "/log"
	testArchive = "/log/history.gz"
	testScratch = "/tmp/history.log"
	testCurrent = "metrics_reader_2403"
)

func newTestLogStore(t *testing.T) (LogStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	store := NewLogStore(filestorages.NewFileStorage(fs), LogStoreConfig{
		Dir:         testDir,
		Prefix:      "metrics_reader_",
		ArchiveFile: testArchive,
		ScratchFile: testScratch,
	})
	return store, fs
}

func gzipString(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func gunzipFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	f, err := fs.Open(path)
	require.NoError(t, err)
	defer f.Close()
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(gz)
	require.NoError(t, err)
	return string(data)
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestLogStore_CurrentPeriodFilename(t *testing.T) {
	t.Parallel()

	store, _ := newTestLogStore(t)

	assert.Equal(t, "metrics_reader_2403", store.CurrentPeriodFilename(time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "metrics_reader_0001", store.CurrentPeriodFilename(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestLogStore_RotateAndCompact_MergesClosedPeriods(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()

	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2402", []byte("feb-1\nfeb-2"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2401", []byte("jan-1\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/"+testCurrent, []byte("mar-1\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/other.txt", []byte("ignored"), 0644))

	result, err := store.RotateAndCompact(ctx, testCurrent)
	require.NoError(t, err)

	assert.Equal(t, []string{"metrics_reader_2401", "metrics_reader_2402"}, result.Merged)
	assert.True(t, result.ArchiveRewritten)

	expected := "jan-1\nfeb-1\nfeb-2\n"
	assert.Equal(t, expected, gunzipFile(t, fs, testArchive))
	assert.Equal(t, expected, readFile(t, fs, testScratch))
	assert.Equal(t, int64(len(expected)), result.ScratchBytes)

	for _, name := range result.Merged {
		exists, err := afero.Exists(fs, "/log/"+name)
		require.NoError(t, err)
		assert.False(t, exists, "%s should be deleted", name)
	}
	assert.Equal(t, "mar-1\n", readFile(t, fs, "/log/"+testCurrent))
	assert.Equal(t, "ignored", readFile(t, fs, "/log/other.txt"))
}

func TestLogStore_RotateAndCompact_AppendsToExistingArchive(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()

	require.NoError(t, afero.WriteFile(fs, testArchive, gzipString(t, "old-1\nold-2\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2402", []byte("feb-1\n"), 0644))

	result, err := store.RotateAndCompact(ctx, testCurrent)
	require.NoError(t, err)

	assert.Equal(t, []string{"metrics_reader_2402"}, result.Merged)
	assert.Equal(t, "old-1\nold-2\nfeb-1\n", gunzipFile(t, fs, testArchive))
}

func TestLogStore_RotateAndCompact_IdempotentWithoutNewFiles(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()

	archive := gzipString(t, "old-1\n")
	require.NoError(t, afero.WriteFile(fs, testArchive, archive, 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/"+testCurrent, []byte("mar-1\n"), 0644))

	for i := 0; i < 2; i++ {
		result, err := store.RotateAndCompact(ctx, testCurrent)
		require.NoError(t, err)
		assert.Empty(t, result.Merged)
		assert.False(t, result.ArchiveRewritten)

		data, err := afero.ReadFile(fs, testArchive)
		require.NoError(t, err)
		assert.Equal(t, archive, data, "archive bytes must not change")
		assert.Equal(t, "old-1\n", readFile(t, fs, testScratch))
	}
}

func TestLogStore_RotateAndCompact_CorruptArchive(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()

	corrupt := []byte("this is not gzip")
	require.NoError(t, afero.WriteFile(fs, testArchive, corrupt, 0644))
	require.NoError(t, afero.WriteFile(fs, testScratch, []byte("stale"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2402", []byte("feb-1\n"), 0644))

	result, err := store.RotateAndCompact(ctx, testCurrent)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ROT_9000", svcErr.Code)
	assert.Empty(t, result.Merged)

	assert.Equal(t, "", readFile(t, fs, testScratch))
	data, err := afero.ReadFile(fs, testArchive)
	require.NoError(t, err)
	assert.Equal(t, corrupt, data)
	assert.Equal(t, "feb-1\n", readFile(t, fs, "/log/metrics_reader_2402"))
}

func TestLogStore_RotateAndCompact_TruncatedArchive(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)

	full := gzipString(t, strings.Repeat("line\n", 1000))
	require.NoError(t, afero.WriteFile(fs, testArchive, full[:len(full)/2], 0644))

	_, err := store.RotateAndCompact(context.Background(), testCurrent)
	require.Error(t, err)
	assert.Equal(t, "", readFile(t, fs, testScratch))
}

func TestLogStore_RotateAndCompact_MissingDirectory(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)

	result, err := store.RotateAndCompact(context.Background(), testCurrent)
	require.NoError(t, err)
	assert.Empty(t, result.Merged)
	assert.Equal(t, "", readFile(t, fs, testScratch))

	exists, err := afero.Exists(fs, testArchive)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLogStore_RotateAndCompact_ArchiveWriteFailureKeepsOriginals(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewLogStore(mockFileStorage, LogStoreConfig{
		Dir:         testDir,
		Prefix:      "metrics_reader_",
		ArchiveFile: testArchive,
		ScratchFile: testScratch,
	})
	ctx := context.Background()
	closedFile := filestorages.FileInfo{Name: "metrics_reader_2402", Path: "/log/metrics_reader_2402", Size: 6}

	mockFileStorage.EXPECT().Get(ctx, testArchive).Return(nil, filestorages.ErrFileNotFound)
	mockFileStorage.EXPECT().Put(ctx, testScratch, gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).Return(&filestorages.PutResult{}, nil)
	mockFileStorage.EXPECT().List(ctx, testDir).Return([]filestorages.FileInfo{closedFile}, nil)
	mockFileStorage.EXPECT().Get(ctx, closedFile.Path).Return(io.NopCloser(strings.NewReader("feb-1\n")), nil)
	mockFileStorage.EXPECT().Append(ctx, testScratch, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, r io.Reader) (int64, error) {
		return io.Copy(io.Discard, r)
	})
	mockFileStorage.EXPECT().Get(ctx, testScratch).Return(io.NopCloser(strings.NewReader("feb-1\n")), nil)
	mockFileStorage.EXPECT().Put(ctx, testArchive, gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).Return(nil, errors.New("disk full"))
	mockFileStorage.EXPECT().Remove(gomock.Any(), gomock.Any()).Times(0)

	result, err := store.RotateAndCompact(ctx, testCurrent)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ROT_9003", svcErr.Code)
	assert.False(t, result.ArchiveRewritten)
}

func TestLogStore_ReadSourcesAndOpen(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	sources := store.ReadSources(now)
	require.Len(t, sources, 2)
	assert.Equal(t, LogSource{Name: SourceHistory, Path: testScratch}, sources[0])
	assert.Equal(t, LogSource{Name: SourceCurrent, Path: "/log/" + testCurrent}, sources[1])

	_, err := store.Open(ctx, sources[1].Path)
	assert.ErrorIs(t, err, ErrLogNotFound)

	require.NoError(t, afero.WriteFile(fs, sources[1].Path, []byte("mar-1\n"), 0644))
	rc, err := store.Open(ctx, sources[1].Path)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "mar-1\n", string(data))
}

func TestLogStore_DirSize(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()

	size, err := store.DirSize(ctx)
	require.NoError(t, err)
	assert.Zero(t, size)

	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2403", make([]byte, 1000), 0644))
	require.NoError(t, afero.WriteFile(fs, testArchive, make([]byte, 24), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/.tmp-123", make([]byte, 500), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/sub/nested", make([]byte, 500), 0644))

	size, err = store.DirSize(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1024), size)
}

func TestLogStore_UploadFiles(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()

	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2403", []byte("mar"), 0644))
	require.NoError(t, afero.WriteFile(fs, testArchive, nil, 0644))

	files, err := store.UploadFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1, "empty archive is not uploaded")
	assert.Equal(t, "metrics_reader_2403", files[0].Name)

	require.NoError(t, afero.WriteFile(fs, testArchive, gzipString(t, "old\n"), 0644))
	files, err = store.UploadFiles(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "history.gz", files[1].Name)
	assert.Equal(t, testArchive, files[1].Path)
}

func TestLogStore_RemoveScratch(t *testing.T) {
	t.Parallel()

	store, fs := newTestLogStore(t)
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, testScratch, []byte("x"), 0644))

	require.NoError(t, store.RemoveScratch(ctx))
	require.NoError(t, store.RemoveScratch(ctx))

	exists, err := afero.Exists(fs, testScratch)
	require.NoError(t, err)
	assert.False(t, exists)
}
