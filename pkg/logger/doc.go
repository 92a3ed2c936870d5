// Package logger builds the structured *slog.Logger used across mailblocks.
//
// New assembles a text or JSON slog handler from functional options and wraps
// it with LogHandlerDecorator, which runs registered ContextExtractor callbacks
// on every record. Attribute helpers in attr.go keep key names consistent
// between the composer service, the storage backends and the terminal
// renderer.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "mailblocks"),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.DebugContext(ctx, "block added",
//	    logger.Component("composer"),
//	    logger.BlockID(block.ID),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithProduction / WithEnvironment set level, format and
//     the "service" and "env" attributes in one go.
//   - WithFormat, WithTextFormatter, WithJSONFormatter override the format.
//   - WithLevel and WithLevelName set the minimum level.
//   - WithAttr attaches static attributes.
//   - WithContextExtractors and WithContextValue inject values from context.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
