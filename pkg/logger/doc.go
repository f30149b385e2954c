// Package logger builds the slog loggers used by the strx command and library.
//
// New picks a text or JSON handler from Config, applies the minimum level and
// optionally fans records out to Sentry when a DSN is set:
//
//	log := logger.New(logger.Config{Level: "debug", Format: "json"}, os.Stderr,
//		logger.CommandExtractor(),
//	)
//	ctx := logger.WithCommand(context.Background(), "slug")
//	log.DebugContext(ctx, "slug generated", slog.String("slug", "hello-world"))
//	// {"time":"...","level":"DEBUG","msg":"slug generated","slug":"hello-world","command":"slug"}
//
// Config carries env tags so it can be embedded in a larger configuration
// struct and filled by github.com/caarlos0/env.
//
// Context extractors run for every record and add request-scoped attributes.
// Discard returns a logger that writes nothing, for tests and library defaults.
package logger
