// Package broadcast fans typed messages out to in-process subscribers.
//
// mailblocks uses it to publish composer state changes to asynchronous
// followers such as the change journal, while the terminal renderer keeps
// its synchronous observer. Slow subscribers never block the publisher:
// when a subscriber's buffer is full the message is dropped for that
// subscriber and it is unsubscribed.
//
//	b := broadcast.NewMemoryBroadcaster[composer.Change](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//	    for msg := range sub.Receive(ctx) {
//	        log.Debug("state changed", "kind", msg.Data.Kind)
//	    }
//	}()
package broadcast
