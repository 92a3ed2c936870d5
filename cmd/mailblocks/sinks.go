package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/mailblocks/pkg/clipboard"
	"github.com/dmitrymomot/mailblocks/pkg/config"
	"github.com/dmitrymomot/mailblocks/pkg/email"
	"github.com/dmitrymomot/mailblocks/pkg/logger"
)

// buildSink returns the export chain for the configured clipboard mode. The
// terminal always comes last so a copy never gets lost.
func buildSink(cfg appConfig, term io.Writer, log *slog.Logger) (clipboard.Sink, error) {
	var sinks []clipboard.Sink

	switch mode := strings.ToLower(strings.TrimSpace(cfg.Clipboard)); mode {
	case ClipboardAuto, "":
		sinks = append(sinks, clipboard.Auto())
		if cfg.ClipboardFile != "" {
			sinks = append(sinks, clipboard.NewFileSink(cfg.ClipboardFile))
		}

	case ClipboardCommand:
		cmd, err := clipboard.ParseCommand(cfg.ClipboardCmd)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("MAILBLOCKS_CLIPBOARD_COMMAND: %w", err))
		}
		log.Debug("clipboard command configured", slog.String("command", cmd.String()))
		sinks = append(sinks, clipboard.NewCommandSink(cmd))

	case ClipboardFile:
		if cfg.ClipboardFile == "" {
			return nil, errors.Join(ErrInvalidConfig, errors.New("MAILBLOCKS_CLIPBOARD_FILE is required in file mode"))
		}
		sinks = append(sinks, clipboard.NewFileSink(cfg.ClipboardFile))

	case ClipboardEmail:
		sink, err := emailSink(cfg)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, sink)

	case ClipboardTerminal:

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownClipMode, mode)
	}

	sinks = append(sinks, clipboard.NewWriterSink(term))
	return clipboard.Fallback(sinks[0], sinks[1:]...).OnUsed(func(s clipboard.Sink) {
		log.Debug("email exported", logger.Sink(clipboard.NameOf(s)))
	}), nil
}

// emailSink mails exports through Postmark in production and writes them
// to the dev outbox otherwise.
func emailSink(cfg appConfig) (clipboard.Sink, error) {
	if cfg.EmailTo == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("MAILBLOCKS_EMAIL_TO is required in email mode"))
	}

	var emailCfg email.Config
	if err := config.Load(&emailCfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	var sender email.EmailSender = email.NewDevSender(emailCfg.DevDir)
	if isProduction(cfg.Env) {
		var err error
		if sender, err = email.NewPostmarkClient(emailCfg); err != nil {
			return nil, err
		}
	}
	return clipboard.NewEmailSink(sender, cfg.EmailTo, cfg.EmailSubject), nil
}

func isProduction(env string) bool {
	switch strings.ToLower(env) {
	case logger.EnvProduction, "prod":
		return true
	default:
		return false
	}
}
