package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// BlockID records a block definition id under the key "block_id".
func BlockID(id int64) slog.Attr {
	return slog.Int64("block_id", id)
}

// TemplateID records a template id under the key "template_id".
func TemplateID(id int64) slog.Attr {
	return slog.Int64("template_id", id)
}

// ItemID records an email item instance id under the key "item_id".
// If id is empty, it returns an empty Attr.
func ItemID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("item_id", id)
}

// Index records a position in the current email under the key "index".
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// StoreKey records a persistent store key under the key "store_key".
func StoreKey(key string) slog.Attr {
	return slog.String("store_key", key)
}

// Backend records the storage backend name under the key "backend".
func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

// Sink records the export sink name under the key "sink".
func Sink(name string) slog.Attr {
	return slog.String("sink", name)
}

// Count records a collection size under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
