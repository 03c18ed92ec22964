package filestorages

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut_CreatesParentDirs(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx := context.Background()

	paths := []string{
		"/log/history.gz",
		"/log/nested/deep/file.txt",
		"/tmp/kykky_history.log",
		"relative/state.json",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			result, err := storage.Put(ctx, path, strings.NewReader("test data"), PutOptions{})
			require.NoError(t, err)
			assert.Equal(t, int64(9), result.Written)

			content, err := afero.ReadFile(fs, result.Path)
			require.NoError(t, err)
			assert.Equal(t, "test data", string(content))
		})
	}
}

func TestPut_AllowOverwriteFalse_FileExists(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "/log/a", strings.NewReader("initial data"), PutOptions{})
	require.NoError(t, err)

	_, err = storage.Put(ctx, "/log/a", strings.NewReader("new data"), PutOptions{AllowOverwrite: false})
	assert.ErrorIs(t, err, ErrFileAlreadyExists)

	content, err := afero.ReadFile(fs, "/log/a")
	require.NoError(t, err)
	assert.Equal(t, "initial data", string(content))
}

func TestPut_AllowOverwriteTrue_ReplacesAndLeavesNoTemp(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx := context.Background()

	_, err := storage.Put(ctx, "/log/a", strings.NewReader("initial data"), PutOptions{})
	require.NoError(t, err)
	_, err = storage.Put(ctx, "/log/a", strings.NewReader("new data"), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/log/a")
	require.NoError(t, err)
	assert.Equal(t, "new data", string(content))

	entries, err := storage.List(ctx, "/log")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Name)
}

func TestPut_InvalidPath(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	for _, path := range []string{"", ".", ".."} {
		_, err := storage.Put(context.Background(), path, strings.NewReader("x"), PutOptions{})
		assert.ErrorIs(t, err, ErrInvalidPath, "path %q", path)
	}
}

func TestPut_CanceledContext(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.Put(ctx, "/log/a", strings.NewReader("x"), PutOptions{})
	assert.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fs, "/log/a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGet_FileNotFound(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	_, err := storage.Get(context.Background(), "/log/missing")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestGet_Directory(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	require.NoError(t, fs.MkdirAll("/log", 0755))

	_, err := storage.Get(context.Background(), "/log")
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestPutGet_RoundTrip(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)
	ctx := context.Background()
	data := strings.Repeat("A", 5*1024*1024)

	_, err := storage.Put(ctx, "/log/large", strings.NewReader(data), PutOptions{})
	require.NoError(t, err)

	readCloser, err := storage.Get(ctx, "/log/large")
	require.NoError(t, err)
	defer readCloser.Close()

	content, err := io.ReadAll(readCloser)
	require.NoError(t, err)
	assert.Equal(t, len(data), len(content))
}

func TestAppend_CreatesThenAppends(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx := context.Background()

	n, err := storage.Append(ctx, "/tmp/scratch.log", strings.NewReader("line1\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)

	_, err = storage.Append(ctx, "/tmp/scratch.log", strings.NewReader("line2\n"))
	require.NoError(t, err)

	content, err := afero.ReadFile(fs, "/tmp/scratch.log")
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", string(content))
}

func TestList_SortedByName(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2402", []byte("bb"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/metrics_reader_2401", []byte("a"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/log/.hidden", []byte("ccc"), 0644))
	require.NoError(t, fs.MkdirAll("/log/sub", 0755))

	entries, err := storage.List(ctx, "/log")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{".hidden", "metrics_reader_2401", "metrics_reader_2402", "sub"}, names)
	assert.Equal(t, int64(1), entries[1].Size)
	assert.Equal(t, "/log/metrics_reader_2401", entries[1].Path)
	assert.True(t, entries[3].IsDir)
}

func TestList_MissingDir(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	_, err := storage.List(context.Background(), "/nowhere")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestStatRemove(t *testing.T) {
	t.Parallel()

	storage, fs := newTestStorage(t)
	ctx := context.Background()
	require.NoError(t, afero.WriteFile(fs, "/log/a", []byte("abc"), 0644))

	info, err := storage.Stat(ctx, "/log/a")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size)
	assert.False(t, info.IsDir)

	require.NoError(t, storage.Remove(ctx, "/log/a"))

	_, err = storage.Stat(ctx, "/log/a")
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, storage.Remove(ctx, "/log/a"), ErrFileNotFound)
}

func TestOsFileStorage_RoundTrip(t *testing.T) {
	t.Parallel()

	storage := NewOsFileStorage()
	ctx := context.Background()
	path := t.TempDir() + "/nested/file.txt"

	_, err := storage.Put(ctx, path, strings.NewReader("on disk"), PutOptions{})
	require.NoError(t, err)
	_, err = storage.Append(ctx, path, strings.NewReader("!"))
	require.NoError(t, err)

	rc, err := storage.Get(ctx, path)
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "on disk!", string(content))
}

func newTestStorage(t *testing.T) (FileStorage, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewFileStorage(fs), fs
}
