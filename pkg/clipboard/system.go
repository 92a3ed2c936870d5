package clipboard

import (
	"context"
	"errors"

	sysclip "github.com/atotto/clipboard"
)

// SystemSink writes to the operating system clipboard. On Unix it needs one
// of xclip, xsel, wl-copy or termux-clipboard-set on PATH.
type SystemSink struct {
	write     func(string) error
	supported bool
}

// NewSystemSink returns a sink for the platform clipboard.
func NewSystemSink() *SystemSink {
	return &SystemSink{write: sysclip.WriteAll, supported: !sysclip.Unsupported}
}

// Auto returns the system clipboard sink. It fails with ErrNoSystemClipboard
// when the platform has none, so it can head a Fallback chain
// unconditionally.
func Auto() Sink {
	return NewSystemSink()
}

// Supported reports whether a clipboard was found at startup.
func (s *SystemSink) Supported() bool {
	return s.supported
}

func (s *SystemSink) Name() string {
	return "system"
}

func (s *SystemSink) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	if !s.supported {
		return ErrNoSystemClipboard
	}
	if err := s.write(text); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
