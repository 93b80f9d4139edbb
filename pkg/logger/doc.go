// Package logger builds configured log/slog loggers.
//
// The zero-option logger writes JSON at info level to stdout. Options
// select the format, level, output and static attributes; the
// Development and Production presets bundle sensible combinations.
//
//	log := logger.New(
//		logger.WithDevelopment("goutil"),
//	)
//	log.Debug("starting", slog.String("version", version))
package logger
