package composer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrymomot/mailblocks/pkg/clipboard"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
)

// Separator joins item texts in exported text.
const Separator = "\n\n"

// ComposeText joins the item texts with a blank line between them.
func (s *Service) ComposeText() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.email) == 0 {
		return "", ErrEmptyComposition
	}
	return strings.Join(texts(s.email), Separator), nil
}

// Copy composes the email and writes it to sink. The composed text is
// returned even when the sink fails.
func (s *Service) Copy(ctx context.Context, sink clipboard.Sink) (string, error) {
	if sink == nil {
		return "", ErrNoSinkConfigured
	}

	text, err := s.ComposeText()
	if err != nil {
		return "", err
	}

	start := time.Now()
	if err := sink.Write(ctx, text); err != nil {
		s.log.ErrorContext(ctx, "export failed", logger.Sink(clipboard.NameOf(sink)), logger.Error(err))
		return text, errors.Join(ErrExportFailed, err)
	}

	s.log.DebugContext(ctx, "email exported",
		logger.Sink(clipboard.NameOf(sink)),
		logger.Count(len(text)),
		logger.Duration(time.Since(start)),
	)
	return text, nil
}
