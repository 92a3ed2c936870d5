package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mailblocks/pkg/broadcast"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

// changeFeed is the part of *broadcast.MemoryBroadcaster the journal uses.
type changeFeed interface {
	Subscribe(ctx context.Context) broadcast.Subscriber[composer.Change]
	Done() <-chan struct{}
	Dropped() int64
}

// journal logs every change delivered to sub until ctx is done or the feed
// is closed. When the feed drops the subscription because the journal fell
// behind, it subscribes again.
func journal(ctx context.Context, feed changeFeed, sub broadcast.Subscriber[composer.Change], log *slog.Logger) {
	defer func() { _ = sub.Close() }()

	log = log.With(logger.Component("journal"))
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Receive(ctx):
			if !ok {
				select {
				case <-ctx.Done():
					return
				case <-feed.Done():
					return
				default:
				}
				sub = feed.Subscribe(ctx)
				log.WarnContext(ctx, "journal resubscribed after falling behind", slog.Int64("dropped", feed.Dropped()))
				continue
			}
			s := msg.Data.State
			log.DebugContext(ctx, "state changed",
				logger.Event(msg.Data.Kind.String()),
				slog.Int("blocks", len(s.Blocks)),
				slog.Int("templates", len(s.Templates)),
				slog.Int("items", len(s.Email)),
			)
		}
	}
}
