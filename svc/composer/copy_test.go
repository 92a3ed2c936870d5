package composer_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/broadcast"
	"github.com/dmitrymomot/mailblocks/pkg/clipboard"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

func TestCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes composed text", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		require.NoError(t, svc.LoadTemplate(ctx, 1))

		var got string
		sink := clipboard.SinkFunc(func(_ context.Context, text string) error {
			got = text
			return nil
		})

		text, err := svc.Copy(ctx, sink)
		require.NoError(t, err)
		assert.Equal(t, "Beste [Naam],\n\nHartelijk dank voor uw bericht.\n\nWe nemen zo spoedig mogelijk contact met u op.\n\nMet vriendelijke groet,", text)
		assert.Equal(t, text, got)
	})

	t.Run("empty email never reaches the sink", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)

		called := false
		_, err := svc.Copy(ctx, clipboard.SinkFunc(func(context.Context, string) error {
			called = true
			return nil
		}))
		assert.ErrorIs(t, err, composer.ErrEmptyComposition)
		assert.False(t, called)
	})

	t.Run("failing sink still returns the text", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.AppendToEmail(ctx, 2)
		require.NoError(t, err)

		boom := errors.New("no display")
		text, err := svc.Copy(ctx, clipboard.SinkFunc(func(context.Context, string) error { return boom }))
		assert.ErrorIs(t, err, composer.ErrExportFailed)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, "Met vriendelijke groet,", text)
	})

	t.Run("fallback sink", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.AppendToEmail(ctx, 3)
		require.NoError(t, err)

		var buf bytes.Buffer
		terminal := clipboard.NewWriterSink(&buf)
		var used clipboard.Sink
		sink := clipboard.Fallback(
			clipboard.SinkFunc(func(context.Context, string) error { return clipboard.ErrNoSystemClipboard }),
			terminal,
		).OnUsed(func(s clipboard.Sink) { used = s })

		_, err = svc.Copy(ctx, sink)
		require.NoError(t, err)
		assert.Same(t, terminal, used)
		assert.Contains(t, buf.String(), "Hartelijk dank voor uw bericht.")
	})

	t.Run("no sink", func(t *testing.T) {
		t.Parallel()
		svc, _ := newService(t)
		_, err := svc.Copy(ctx, nil)
		assert.ErrorIs(t, err, composer.ErrNoSinkConfigured)
	})
}

func TestObservers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("one change per successful mutation", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		svc, _ := newService(t, composer.WithObserver(rec))

		b, err := svc.AddBlock(ctx, "Nieuw")
		require.NoError(t, err)
		_, err = svc.AppendToEmail(ctx, b.ID)
		require.NoError(t, err)
		require.NoError(t, svc.EditItem(ctx, 0, "Anders"))
		_, err = svc.SaveTemplate(ctx, "Eén")
		require.NoError(t, err)
		require.NoError(t, svc.ClearEmail(ctx))

		assert.Equal(t, []composer.Kind{
			composer.KindBlocks,
			composer.KindEmail,
			composer.KindEmail,
			composer.KindTemplates,
			composer.KindEmail,
		}, rec.kinds())
	})

	t.Run("rejected operations stay silent", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		svc, _ := newService(t, composer.WithObserver(rec), composer.WithConfirm(composer.NeverConfirm))

		_, _ = svc.AddBlock(ctx, " ")
		_ = svc.DeleteBlock(ctx, 1)
		_, _ = svc.AppendToEmail(ctx, 77)
		_ = svc.RemoveFromEmail(ctx, 0)
		_ = svc.EditItem(ctx, 0, "x")
		_ = svc.MoveItem(ctx, 0, 0)
		_ = svc.LoadTemplate(ctx, 0)
		_, _ = svc.SaveTemplate(ctx, "x")
		_ = svc.DeleteTemplate(ctx, 1)
		_ = svc.ClearEmail(ctx)

		assert.Empty(t, rec.kinds())
	})

	t.Run("state is a deep copy", func(t *testing.T) {
		t.Parallel()
		rec := &recorder{}
		svc, _ := newService(t, composer.WithObserver(rec))

		require.NoError(t, svc.LoadTemplate(ctx, 2))
		change := rec.last()
		require.Len(t, change.State.Email, 4)
		assert.Len(t, change.State.Blocks, 5)
		assert.Len(t, change.State.Templates, 2)

		change.State.Email[0].Text = "changed"
		change.State.Templates[1].Content[0] = "changed"
		assert.Equal(t, "Beste [Naam],", svc.Email()[0].Text)
		assert.Equal(t, composer.DefaultTemplates(), svc.Templates())
	})

	t.Run("observers may call back", func(t *testing.T) {
		t.Parallel()
		var seen []int
		var svc *composer.Service
		observer := composer.ObserverFunc(func(ctx context.Context, c composer.Change) {
			seen = append(seen, len(svc.Email()))
			if c.Kind == composer.KindEmail && len(c.State.Email) == 1 {
				_, _ = svc.AppendToEmail(ctx, 2)
			}
		})
		svc, _ = newService(t, composer.WithObserver(observer))

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = svc.AppendToEmail(ctx, 1)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("observer callback deadlocked")
		}
		assert.Equal(t, []int{1, 2}, seen)
		assert.Equal(t, []string{"Beste [Naam],", "Met vriendelijke groet,"}, itemTexts(svc.Email()))
	})

	t.Run("registration order", func(t *testing.T) {
		t.Parallel()
		var order []string
		first := composer.ObserverFunc(func(context.Context, composer.Change) { order = append(order, "first") })
		second := composer.ObserverFunc(func(context.Context, composer.Change) { order = append(order, "second") })
		svc, _ := newService(t, composer.WithObserver(first), composer.WithObserver(second))

		_, err := svc.AppendToEmail(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
	})
}

func TestBroadcastObserver(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := broadcast.NewMemoryBroadcaster[composer.Change](8)
	defer b.Close()
	sub := b.Subscribe(ctx)

	svc, _ := newService(t, composer.WithObserver(composer.NewBroadcastObserver(b, nil)))
	_, err := svc.AddBlock(ctx, "Via broadcast")
	require.NoError(t, err)

	select {
	case msg := <-sub.Receive(ctx):
		assert.Equal(t, composer.KindBlocks, msg.Data.Kind)
		assert.Len(t, msg.Data.State.Blocks, 6)
	case <-time.After(time.Second):
		t.Fatal("change was not broadcast")
	}

	assert.Panics(t, func() { composer.NewBroadcastObserver(nil, nil) })
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blocks", composer.KindBlocks.String())
	assert.Equal(t, "templates", composer.KindTemplates.String())
	assert.Equal(t, "email", composer.KindEmail.String())
	assert.Equal(t, "unknown", composer.Kind(0).String())
}

func TestCodecByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "json", false},
		{"json", "json", false},
		{" YAML ", "yaml", false},
		{"yml", "yaml", false},
		{"toml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := composer.CodecByName(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, composer.ErrUnknownCodec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Name())
			assert.Equal(t, "."+tt.want, composer.FileExtension(c))
		})
	}
}

func TestIDGenerators(t *testing.T) {
	t.Parallel()

	t.Run("clock", func(t *testing.T) {
		t.Parallel()
		now := time.UnixMilli(1000)
		g := composer.NewClockIDGenerator(func() time.Time { return now })

		assert.Equal(t, int64(1000), g.Next(0))
		assert.Equal(t, int64(1001), g.Next(0))
		assert.Equal(t, int64(5000), g.Next(5000))
		now = time.UnixMilli(9000)
		assert.Equal(t, int64(9000), g.Next(0))
	})

	t.Run("sequence", func(t *testing.T) {
		t.Parallel()
		g := &composer.SequenceIDGenerator{}

		assert.Equal(t, int64(6), g.Next(6))
		assert.Equal(t, int64(7), g.Next(3))
		assert.Equal(t, int64(20), g.Next(20))
	})
}
