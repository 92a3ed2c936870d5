package clipboard

import "context"

// Sink receives exported text.
type Sink interface {
	Write(ctx context.Context, text string) error
}

// Named is implemented by sinks that report a short name for logs.
type Named interface {
	Name() string
}

// NameOf returns the sink's name, or "custom" for sinks without one.
func NameOf(s Sink) string {
	if n, ok := s.(Named); ok {
		return n.Name()
	}
	return "custom"
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, text string) error

func (f SinkFunc) Write(ctx context.Context, text string) error {
	return f(ctx, text)
}
