package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// WriterSink prints the text between two rulers so it can be selected and
// copied by hand.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Name() string {
	return "terminal"
}

func (s *WriterSink) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ruler := strings.Repeat("-", 40)
	if _, err := fmt.Fprintf(s.w, "%s\n%s\n%s\n", ruler, text, ruler); err != nil {
		return errors.Join(ErrWriteFailed, err)
	}
	return nil
}
