package kvstore

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongoconn "github.com/dmitrymomot/mailblocks/pkg/mongo"
)

type mongoRecord struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoStore keeps one document per key in a collection.
type MongoStore struct {
	coll   *mongo.Collection
	owned  bool
	closed atomic.Bool
}

// NewMongoStore wraps an existing collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	if coll == nil {
		panic("kvstore: mongo collection is nil")
	}
	return &MongoStore{coll: coll}
}

// Ping checks the connection to the deployment.
func (s *MongoStore) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return ErrClosed
	}
	return mongoconn.Healthcheck(s.coll.Database().Client())(ctx)
}

func (s *MongoStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}
	if s.closed.Load() {
		return nil, ErrClosed
	}

	var rec mongoRecord
	if err := s.coll.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	return clone(rec.Value), nil
}

func (s *MongoStore) Save(ctx context.Context, key string, data []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if s.closed.Load() {
		return ErrClosed
	}

	rec := mongoRecord{Key: key, Value: clone(data), UpdatedAt: time.Now().UTC()}
	_, err := s.coll.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: key}},
		rec,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

func (s *MongoStore) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if s.owned {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.coll.Database().Client().Disconnect(ctx)
	}
	return nil
}
