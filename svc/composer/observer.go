package composer

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mailblocks/pkg/broadcast"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
)

// Kind tells which collection a Change is about.
type Kind int

const (
	KindBlocks Kind = iota + 1
	KindTemplates
	KindEmail
)

func (k Kind) String() string {
	switch k {
	case KindBlocks:
		return "blocks"
	case KindTemplates:
		return "templates"
	case KindEmail:
		return "email"
	default:
		return "unknown"
	}
}

// Change is sent to observers after every mutation. State is a full deep
// copy taken right after the mutation; views re-render from it instead of
// applying deltas.
type Change struct {
	Kind  Kind
	State State
}

// Observer receives changes synchronously, after the service lock is
// released. Observers may call back into the service.
type Observer interface {
	Notify(ctx context.Context, change Change)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(ctx context.Context, change Change)

func (f ObserverFunc) Notify(ctx context.Context, change Change) {
	f(ctx, change)
}

type broadcastObserver struct {
	b   broadcast.Broadcaster[Change]
	log *slog.Logger
}

// NewBroadcastObserver publishes every change into b, so subscribers can
// follow the state from their own goroutines. The service never waits on a
// subscriber: with a MemoryBroadcaster, one whose buffer is full is
// unsubscribed and sees its channel closed, and must subscribe again to
// keep following.
func NewBroadcastObserver(b broadcast.Broadcaster[Change], log *slog.Logger) Observer {
	if b == nil {
		panic("composer: broadcaster is required")
	}
	if log == nil {
		log = logger.Discard()
	}
	return &broadcastObserver{b: b, log: log}
}

func (o *broadcastObserver) Notify(ctx context.Context, change Change) {
	if err := o.b.Broadcast(ctx, broadcast.Message[Change]{Data: change}); err != nil {
		o.log.WarnContext(ctx, "failed to broadcast change",
			logger.Event(change.Kind.String()),
			logger.Error(err),
		)
	}
}
