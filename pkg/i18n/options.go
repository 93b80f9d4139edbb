package i18n

import "log/slog"

// Option configures a Bundle.
type Option func(*Bundle)

// WithDefaultLanguage sets the language tried when the requested one has
// no translation for a key. The default is "en".
func WithDefaultLanguage(lang string) Option {
	return func(b *Bundle) {
		if lang != "" {
			b.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing translation yields the
// key itself or an empty string. The default is to return the key.
func WithFallbackToKey(fallback bool) Option {
	return func(b *Bundle) {
		b.fallbackToKey = fallback
	}
}

// WithMissingLogging enables a warning log for every missing
// translation. Off by default.
func WithMissingLogging(log bool) Option {
	return func(b *Bundle) {
		b.logMissing = log
	}
}

// WithLogger sets the logger used for missing translation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bundle) {
		if logger != nil {
			b.logger = logger
		}
	}
}
