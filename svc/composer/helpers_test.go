package composer_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

var errDiskFull = errors.New("disk full")

// flakyStore wraps a MemoryStore and fails on demand.
type flakyStore struct {
	*kvstore.MemoryStore
	failSave atomic.Bool
	failLoad atomic.Bool
	saves    atomic.Int64
}

func newFlakyStore(seed map[string][]byte) *flakyStore {
	return &flakyStore{MemoryStore: kvstore.NewMemoryStore(seed)}
}

func (s *flakyStore) Load(ctx context.Context, key string) ([]byte, error) {
	if s.failLoad.Load() {
		return nil, errors.Join(kvstore.ErrFailedToLoad, errDiskFull)
	}
	return s.MemoryStore.Load(ctx, key)
}

func (s *flakyStore) Save(ctx context.Context, key string, data []byte) error {
	if s.failSave.Load() {
		return errors.Join(kvstore.ErrFailedToSave, errDiskFull)
	}
	s.saves.Add(1)
	return s.MemoryStore.Save(ctx, key, data)
}

// recorder collects changes delivered to an observer.
type recorder struct {
	mu      sync.Mutex
	changes []composer.Change
}

func (r *recorder) Notify(_ context.Context, c composer.Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

func (r *recorder) kinds() []composer.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]composer.Kind, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.Kind
	}
	return out
}

func (r *recorder) last() composer.Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.changes[len(r.changes)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = nil
}

// counter returns a deterministic item id generator: item-1, item-2, ...
func counter() composer.ItemIDFunc {
	var n atomic.Int64
	return func() string {
		return "item-" + strconv.FormatInt(n.Add(1), 10)
	}
}

// newService returns a seeded service over a fresh memory store with
// deterministic ids.
func newService(t *testing.T, opts ...composer.ServiceOption) (*composer.Service, *flakyStore) {
	t.Helper()
	store := newFlakyStore(nil)
	opts = append([]composer.ServiceOption{
		composer.WithIDGenerator(&composer.SequenceIDGenerator{}),
		composer.WithItemIDGenerator(counter()),
	}, opts...)
	svc, err := composer.NewService(context.Background(), store, opts...)
	require.NoError(t, err)
	return svc, store
}

func itemTexts(items []composer.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Text
	}
	return out
}
