package kvstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileStore writes one file per key into a directory. Writes go through a
// temporary file and a rename so a crash never leaves a half-written value.
type FileStore struct {
	mu     sync.RWMutex
	dir    string
	ext    string
	closed bool
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithFileExtension appends ext (".json", ".yaml") to every file name.
func WithFileExtension(ext string) FileOption {
	return func(s *FileStore) {
		s.ext = ext
	}
}

// NewFileStore creates dir if needed and returns a store rooted there.
func NewFileStore(dir string, opts ...FileOption) (*FileStore, error) {
	if dir == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("data directory is required"))
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpen, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Join(ErrFailedToOpen, err)
	}

	s := &FileStore{dir: abs}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the absolute directory the store writes to.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+s.ext)
}

func (s *FileStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return data, nil
}

func (s *FileStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*.tmp")
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrFailedToSave, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrFailedToSave, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
