package clipboard

import (
	"context"
	"errors"
	"fmt"
)

// FallbackSink tries its sinks in order.
type FallbackSink struct {
	sinks []Sink
	used  func(Sink)
}

// Fallback returns a sink that writes to primary and, if that fails, to each
// fallback in turn. Nil sinks are skipped.
func Fallback(primary Sink, fallbacks ...Sink) *FallbackSink {
	sinks := make([]Sink, 0, len(fallbacks)+1)
	for _, s := range append([]Sink{primary}, fallbacks...) {
		if s != nil {
			sinks = append(sinks, s)
		}
	}
	return &FallbackSink{sinks: sinks}
}

// OnUsed registers a callback receiving the sink that accepted the text.
func (f *FallbackSink) OnUsed(fn func(Sink)) *FallbackSink {
	f.used = fn
	return f
}

func (f *FallbackSink) Name() string {
	return "fallback"
}

func (f *FallbackSink) Write(ctx context.Context, text string) error {
	if len(f.sinks) == 0 {
		return errors.Join(ErrAllSinksFailed, ErrNilSink)
	}

	errs := []error{ErrAllSinksFailed}
	for _, s := range f.sinks {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}
		err := s.Write(ctx, text)
		if err == nil {
			if f.used != nil {
				f.used(s)
			}
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", NameOf(s), err))
	}
	return errors.Join(errs...)
}
