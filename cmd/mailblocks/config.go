package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/config"
	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
	mongoconn "github.com/dmitrymomot/mailblocks/pkg/mongo"
	"github.com/dmitrymomot/mailblocks/pkg/pg"
	redisconn "github.com/dmitrymomot/mailblocks/pkg/redis"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

// Clipboard modes selected by MAILBLOCKS_CLIPBOARD.
const (
	ClipboardAuto     = "auto"
	ClipboardCommand  = "command"
	ClipboardTerminal = "terminal"
	ClipboardFile     = "file"
	ClipboardEmail    = "email"
)

type appConfig struct {
	Env           string `env:"MAILBLOCKS_ENV" envDefault:"development"`
	LogLevel      string `env:"MAILBLOCKS_LOG_LEVEL" envDefault:"warn"`
	LogFormat     string `env:"MAILBLOCKS_LOG_FORMAT" envDefault:"text"`
	Store         string `env:"MAILBLOCKS_STORE" envDefault:"file"`
	DataDir       string `env:"MAILBLOCKS_DATA_DIR" envDefault:".mailblocks"`
	Codec         string `env:"MAILBLOCKS_CODEC" envDefault:"json"`
	BlocksKey     string `env:"MAILBLOCKS_BLOCKS_KEY" envDefault:"emailBlocks"`
	TemplatesKey  string `env:"MAILBLOCKS_TEMPLATES_KEY" envDefault:"emailTemplates"`
	Clipboard     string `env:"MAILBLOCKS_CLIPBOARD" envDefault:"auto"`
	ClipboardCmd  string `env:"MAILBLOCKS_CLIPBOARD_COMMAND"`
	ClipboardFile string `env:"MAILBLOCKS_CLIPBOARD_FILE"`
	EmailTo       string `env:"MAILBLOCKS_EMAIL_TO"`
	EmailSubject  string `env:"MAILBLOCKS_EMAIL_SUBJECT"`
}

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrUnknownClipMode = errors.New("unknown clipboard mode")
)

// storeConfig builds the kvstore config for the selected backend. Only that
// backend's environment section is parsed, so the others' required
// variables may stay unset.
func storeConfig(cfg appConfig, codec composer.Codec) (kvstore.Config, error) {
	sc := kvstore.Config{
		Backend:       strings.ToLower(strings.TrimSpace(cfg.Store)),
		DataDir:       cfg.DataDir,
		FileExtension: composer.FileExtension(codec),
	}

	var err error
	switch sc.Backend {
	case kvstore.BackendRedis:
		err = loadSection(&sc.Redis, "redis")
	case kvstore.BackendPostgres:
		err = loadSection(&sc.Postgres, "postgres")
	case kvstore.BackendMongo:
		err = loadSection(&sc.Mongo, "mongo")
	case kvstore.BackendS3:
		err = loadSection(&sc.S3, "s3")
	}
	return sc, err
}

func loadSection[T redisconn.Config | pg.Config | mongoconn.Config | kvstore.S3Config](v *T, name string) error {
	if err := config.Load(v); err != nil {
		return errors.Join(ErrInvalidConfig, fmt.Errorf("%s backend: %w", name, err))
	}
	return nil
}

func keys(cfg appConfig) composer.Keys {
	return composer.Keys{Blocks: cfg.BlocksKey, Templates: cfg.TemplatesKey}
}
