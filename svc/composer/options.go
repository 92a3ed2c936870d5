package composer

import (
	"log/slog"
	"time"
)

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithConfirm sets the confirmation capability. The default confirms
// everything.
func WithConfirm(fn ConfirmFunc) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.confirm = fn
		}
	}
}

// WithObserver adds an observer. Observers are notified in registration
// order.
func WithObserver(o Observer) ServiceOption {
	return func(s *Service) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithCodec sets the record codec; the default is JSON.
func WithCodec(c Codec) ServiceOption {
	return func(s *Service) {
		if c != nil {
			s.repo.codec = c
		}
	}
}

// WithIDGenerator replaces the clock-based catalog id generator.
func WithIDGenerator(g IDGenerator) ServiceOption {
	return func(s *Service) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithItemIDGenerator replaces the UUID generator for email items.
func WithItemIDGenerator(fn ItemIDFunc) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.itemID = fn
		}
	}
}

// WithKeys overrides the store keys. Empty fields keep their defaults.
func WithKeys(k Keys) ServiceOption {
	return func(s *Service) {
		if k.Blocks != "" {
			s.repo.keys.Blocks = k.Blocks
		}
		if k.Templates != "" {
			s.repo.keys.Templates = k.Templates
		}
	}
}

// WithClock sets the clock of the default id generator.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.ids = NewClockIDGenerator(now)
		}
	}
}
