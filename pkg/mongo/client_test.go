package mongo_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailblocks/pkg/mongo"
)

func TestNew_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

func TestCollection_Integration(t *testing.T) {
	url := os.Getenv("MAILBLOCKS_TEST_MONGO_URL")
	if url == "" {
		t.Skip("MAILBLOCKS_TEST_MONGO_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	coll, err := mongo.Collection(ctx, mongo.Config{
		ConnectionURL:  url,
		ConnectTimeout: 5 * time.Second,
		RetryAttempts:  2,
		RetryInterval:  100 * time.Millisecond,
	})
	require.NoError(t, err)
	defer coll.Database().Client().Disconnect(context.Background())

	assert.Equal(t, "mailblocks", coll.Database().Name())
	assert.Equal(t, "kv", coll.Name())
	assert.NoError(t, mongo.Healthcheck(coll.Database().Client())(ctx))
}
