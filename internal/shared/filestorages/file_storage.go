package filestorages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrFileAlreadyExists = errors.New("file already exists")
	ErrInvalidPath       = errors.New("invalid file path")
)

type PutResult struct {
	Path    string
	Written int64
}

type PutOptions struct {
	AllowOverwrite bool
}

// FileInfo describes one entry returned by List or Stat.
type FileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// FileStorage is the single gateway to the filesystem for log files, the archive and sync state.
//
//go:generate mockgen -source=file_storage.go -destination=./mocks/file_storage_mock.go -package=mocks
type FileStorage interface {
	// Put writes r to a temp file next to path and renames it into place.
	Put(ctx context.Context, path string, r io.Reader, opts PutOptions) (*PutResult, error)
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Append creates path when missing and appends r to its end.
	Append(ctx context.Context, path string, r io.Reader) (int64, error)
	// List returns the entries of dir sorted by name.
	List(ctx context.Context, dir string) ([]FileInfo, error)
	Stat(ctx context.Context, path string) (*FileInfo, error)
	Remove(ctx context.Context, path string) error
}

type fileStorage struct {
	fs afero.Fs
}

func NewFileStorage(fs afero.Fs) FileStorage {
	return &fileStorage{fs: fs}
}

// NewOsFileStorage is backed by the host filesystem.
func NewOsFileStorage() FileStorage {
	return NewFileStorage(afero.NewOsFs())
}

func (s *fileStorage) Put(ctx context.Context, path string, r io.Reader, opts PutOptions) (*PutResult, error) {
	finalPath, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !opts.AllowOverwrite {
		exists, err := afero.Exists(s.fs, finalPath)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrFileAlreadyExists
		}
	}

	dir := filepath.Dir(finalPath)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Write to temp to avoid partial files
	tmp, err := afero.TempFile(s.fs, dir, ".tmp-*")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer func() { _ = tmp.Close(); _ = s.fs.Remove(tmpPath) }()

	written, err := io.Copy(tmp, r)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if err := tmp.Sync(); err != nil {
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}

	if err := s.fs.Rename(tmpPath, finalPath); err != nil {
		return nil, err
	}

	return &PutResult{Path: finalPath, Written: written}, nil
}

func (s *fileStorage) Get(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	file, err := s.fs.Open(fullPath)
	if err != nil {
		return nil, mapNotExist(err)
	}

	info, err := file.Stat()
	if err == nil && info.IsDir() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidPath, fullPath)
	}

	return file, nil
}

func (s *fileStorage) Append(ctx context.Context, path string, r io.Reader) (int64, error) {
	fullPath, err := cleanPath(path)
	if err != nil {
		return 0, err
	}
	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return 0, err
	}

	file, err := s.fs.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return 0, err
	}

	written, err := io.Copy(file, r)
	if err != nil {
		_ = file.Close()
		if ctx.Err() != nil {
			return written, ctx.Err()
		}
		return written, err
	}
	return written, file.Close()
}

func (s *fileStorage) List(ctx context.Context, dir string) ([]FileInfo, error) {
	fullDir, err := cleanPath(dir)
	if err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(s.fs, fullDir)
	if err != nil {
		return nil, mapNotExist(err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, entry := range entries {
		infos = append(infos, toFileInfo(filepath.Join(fullDir, entry.Name()), entry))
	}
	return infos, nil
}

func (s *fileStorage) Stat(ctx context.Context, path string) (*FileInfo, error) {
	fullPath, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	entry, err := s.fs.Stat(fullPath)
	if err != nil {
		return nil, mapNotExist(err)
	}

	info := toFileInfo(fullPath, entry)
	return &info, nil
}

func (s *fileStorage) Remove(ctx context.Context, path string) error {
	fullPath, err := cleanPath(path)
	if err != nil {
		return err
	}
	return mapNotExist(s.fs.Remove(fullPath))
}

func cleanPath(path string) (string, error) {
	if path == "" {
		return "", ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == ".." {
		return "", ErrInvalidPath
	}
	return cleaned, nil
}

func mapNotExist(err error) error {
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	return err
}

func toFileInfo(path string, entry os.FileInfo) FileInfo {
	return FileInfo{
		Name:    entry.Name(),
		Path:    path,
		Size:    entry.Size(),
		ModTime: entry.ModTime(),
		IsDir:   entry.IsDir(),
	}
}
