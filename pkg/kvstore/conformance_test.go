package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
)

// runStoreSuite exercises the behaviour every backend shares. newStore must
// return an empty store.
func runStoreSuite(t *testing.T, newStore func(t *testing.T) kvstore.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Load(ctx, "emailBlocks")
		assert.ErrorIs(t, err, kvstore.ErrNotFound)
	})

	t.Run("save then load round-trips", func(t *testing.T) {
		s := newStore(t)
		payload := []byte(`[{"id":1,"text":"Beste [Naam],","category":"aanhef"}]`)
		require.NoError(t, s.Save(ctx, "emailBlocks", payload))

		got, err := s.Load(ctx, "emailBlocks")
		require.NoError(t, err)
		assert.Equal(t, payload, got)
	})

	t.Run("save overwrites whole value", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(ctx, "emailTemplates", []byte(`[{"id":1},{"id":2}]`)))
		require.NoError(t, s.Save(ctx, "emailTemplates", []byte(`[]`)))

		got, err := s.Load(ctx, "emailTemplates")
		require.NoError(t, err)
		assert.Equal(t, []byte(`[]`), got)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(ctx, "emailBlocks", []byte("a")))
		require.NoError(t, s.Save(ctx, "emailTemplates", []byte("b")))

		a, err := s.Load(ctx, "emailBlocks")
		require.NoError(t, err)
		b, err := s.Load(ctx, "emailTemplates")
		require.NoError(t, err)
		assert.Equal(t, "a", string(a))
		assert.Equal(t, "b", string(b))
	})

	t.Run("empty value is stored", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(ctx, "emailBlocks", nil))

		got, err := s.Load(ctx, "emailBlocks")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid keys are rejected", func(t *testing.T) {
		s := newStore(t)
		assert.ErrorIs(t, s.Save(ctx, "", []byte("x")), kvstore.ErrEmptyKey)
		assert.ErrorIs(t, s.Save(ctx, "  ", []byte("x")), kvstore.ErrEmptyKey)
		assert.ErrorIs(t, s.Save(ctx, "../escape", []byte("x")), kvstore.ErrInvalidKey)
		_, err := s.Load(ctx, "")
		assert.ErrorIs(t, err, kvstore.ErrEmptyKey)
	})

	t.Run("closed store refuses work", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Close())
		require.NoError(t, s.Close(), "close is idempotent")

		_, err := s.Load(ctx, "emailBlocks")
		assert.ErrorIs(t, err, kvstore.ErrClosed)
		assert.ErrorIs(t, s.Save(ctx, "emailBlocks", []byte("x")), kvstore.ErrClosed)
	})
}
