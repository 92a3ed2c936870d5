// mailblocks composes emails from reusable text blocks in the terminal.
//
// Usage:
//
//	mailblocks [-env .env,.env.local]
//
// Storage, export and logging are configured through MAILBLOCKS_*
// environment variables; see appConfig.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrymomot/mailblocks/internal/repl"
	"github.com/dmitrymomot/mailblocks/pkg/broadcast"
	"github.com/dmitrymomot/mailblocks/pkg/config"
	"github.com/dmitrymomot/mailblocks/pkg/kvstore"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
	"github.com/dmitrymomot/mailblocks/svc/composer"
)

func main() {
	envFiles := flag.String("env", "", "comma-separated .env files to load before reading the environment")
	flag.Parse()

	if err := run(*envFiles); err != nil {
		fmt.Fprintf(os.Stderr, "mailblocks: %v\n", err)
		os.Exit(1)
	}
}

func run(envFiles string) error {
	if envFiles != "" {
		if err := config.LoadEnv(strings.Split(envFiles, ",")...); err != nil {
			return err
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "mailblocks"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	codec, err := composer.CodecByName(cfg.Codec)
	if err != nil {
		return err
	}
	storeCfg, err := storeConfig(cfg, codec)
	if err != nil {
		return err
	}
	store, err := kvstore.Open(ctx, storeCfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close store", logger.Error(err))
		}
	}()

	changes := broadcast.NewMemoryBroadcaster[composer.Change](32)
	defer changes.Close()
	go journal(ctx, changes, changes.Subscribe(ctx), log)

	term := repl.New(os.Stdin, os.Stdout, repl.WithLogger(log))
	svc, err := composer.NewService(ctx, store,
		composer.WithLogger(log),
		composer.WithCodec(codec),
		composer.WithKeys(keys(cfg)),
		composer.WithConfirm(term.Confirm),
		composer.WithObserver(term),
		composer.WithObserver(composer.NewBroadcastObserver(changes, log)),
	)
	if svc == nil {
		return err
	}
	if err != nil {
		log.WarnContext(ctx, "default catalogs were not saved", logger.Error(err))
		fmt.Fprintln(os.Stdout, composer.Message(err))
	}

	sink, err := buildSink(cfg, os.Stdout, log)
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "mailblocks started",
		logger.Backend(storeCfg.Backend),
		slog.String("codec", codec.Name()),
		logger.Sink(clipboardName(cfg)),
	)

	done := make(chan error, 1)
	go func() { done <- term.Run(ctx, composer.NewController(svc, sink)) }()

	select {
	case err := <-done:
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		// the terminal goroutine stays blocked on stdin until the process exits
		return nil
	}
}

func clipboardName(cfg appConfig) string {
	if cfg.Clipboard == "" {
		return ClipboardAuto
	}
	return cfg.Clipboard
}
