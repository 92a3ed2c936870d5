package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrymomot/mailblocks/pkg/logger"
	mongoconn "github.com/dmitrymomot/mailblocks/pkg/mongo"
	"github.com/dmitrymomot/mailblocks/pkg/pg"
	redisconn "github.com/dmitrymomot/mailblocks/pkg/redis"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendS3       = "s3"
)

// SQLiteFileName is the database file created inside Config.DataDir.
const SQLiteFileName = "mailblocks.db"

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{
		BackendMemory,
		BackendFile,
		BackendSQLite,
		BackendRedis,
		BackendPostgres,
		BackendMongo,
		BackendS3,
	}
}

// Config selects a backend and carries the settings of every backend. Only
// the section matching Backend is read.
type Config struct {
	Backend       string
	DataDir       string // file and sqlite
	FileExtension string // file only
	Redis         redisconn.Config
	Postgres      pg.Config
	Mongo         mongoconn.Config
	S3            S3Config
	S3Options     []S3Option
}

// Open connects to the configured backend. The returned store owns every
// connection Open created and releases it on Close.
func Open(ctx context.Context, cfg Config, log *slog.Logger) (Store, error) {
	if log == nil {
		log = logger.Discard()
	}
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	log = log.With(logger.Component("kvstore"), logger.Backend(backend))

	start := time.Now()
	store, err := open(ctx, backend, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open store", logger.Error(err))
		return nil, err
	}

	log.DebugContext(ctx, "store opened", logger.Duration(time.Since(start)))
	return store, nil
}

func open(ctx context.Context, backend string, cfg Config, log *slog.Logger) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(nil), nil

	case BackendFile:
		var opts []FileOption
		if cfg.FileExtension != "" {
			opts = append(opts, WithFileExtension(cfg.FileExtension))
		}
		return NewFileStore(cfg.DataDir, opts...)

	case BackendSQLite:
		if cfg.DataDir == "" {
			return nil, errors.Join(ErrInvalidConfig, errors.New("data directory is required"))
		}
		return OpenSQLite(ctx, filepath.Join(cfg.DataDir, SQLiteFileName))

	case BackendRedis:
		client, err := redisconn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, errors.Join(ErrFailedToOpen, err)
		}
		s := NewRedisStore(client, cfg.Redis.KeyPrefix)
		s.owned = true
		return s, nil

	case BackendPostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, errors.Join(ErrFailedToOpen, err)
		}
		if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
			pool.Close()
			return nil, errors.Join(ErrFailedToOpen, err)
		}
		s := NewPostgresStore(pool)
		s.owned = true
		return s, nil

	case BackendMongo:
		coll, err := mongoconn.Collection(ctx, cfg.Mongo)
		if err != nil {
			return nil, errors.Join(ErrFailedToOpen, err)
		}
		s := NewMongoStore(coll)
		s.owned = true
		return s, nil

	case BackendS3:
		return NewS3Store(ctx, cfg.S3, cfg.S3Options...)

	default:
		return nil, errors.Join(ErrUnknownBackend, fmt.Errorf("%q (want one of %s)", backend, strings.Join(Backends(), ", ")))
	}
}
