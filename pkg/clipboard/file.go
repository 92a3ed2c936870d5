package clipboard

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FileSink overwrites a file with the text on every write.
type FileSink struct {
	path string
}

// NewFileSink writes to path; parent directories are created as needed.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string {
	return "file"
}

// Path returns the target file.
func (s *FileSink) Path() string {
	return s.path
}

func (s *FileSink) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if s.path == "" {
		return errors.Join(ErrWriteFailed, errors.New("file path is empty"))
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.path, []byte(text), 0o644); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
