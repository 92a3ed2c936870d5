package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	runStoreSuite(t, func(t *testing.T) kvstore.Store {
		return kvstore.NewMemoryStore(nil)
	})
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	seed := []byte("seed")
	s := kvstore.NewMemoryStore(map[string][]byte{"emailBlocks": seed})
	seed[0] = 'X'

	got, err := s.Load(ctx, "emailBlocks")
	require.NoError(t, err)
	assert.Equal(t, "seed", string(got))

	got[0] = 'Y'
	again, err := s.Load(ctx, "emailBlocks")
	require.NoError(t, err)
	assert.Equal(t, "seed", string(again))

	assert.ElementsMatch(t, []string{"emailBlocks"}, s.Keys())
}
