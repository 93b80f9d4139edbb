package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// placeholderRegex matches named %{param} placeholders in messages.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Bundle holds loaded translations and resolves messages by language and
// dot separated key. Safe for concurrent use after New returns.
type Bundle struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// New loads translations from src and applies the options. The loaded
// map is validated: every language code must be non-empty and hold a
// message tree.
func New(ctx context.Context, src Source, opts ...Option) (*Bundle, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	translations, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if strings.TrimSpace(lang) == "" {
			return nil, ErrEmptyLanguage
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: language %q", ErrNoTranslations, lang)
		}
	}

	b := &Bundle{
		translations:  translations,
		defaultLang:   "en",
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// T returns the translation for key in lang. Params are alternating
// name, value pairs substituted into %{name} placeholders. When the
// language or key is unknown the default language is tried; failing
// that the key itself is returned, or an empty string when fallback to
// key is disabled.
func (b *Bundle) T(lang, key string, params ...string) string {
	if message, ok := b.lookup(lang, key); ok {
		return substitute(message, buildParams(params))
	}

	b.reportMissing(lang, key)
	if b.fallbackToKey {
		return key
	}
	return ""
}

// Td behaves like T but returns def instead of the key when no
// translation exists. Placeholders in def are substituted as well.
func (b *Bundle) Td(lang, key, def string, params ...string) string {
	if message, ok := b.lookup(lang, key); ok {
		return substitute(message, buildParams(params))
	}

	b.reportMissing(lang, key)
	return substitute(def, buildParams(params))
}

// N returns the plural form of key for quantity n. The message tree
// holds the forms under the key's "zero", "one" and "other" children;
// zero and one fall back to other when absent. The quantity is exposed
// to placeholders as %{count} unless a count param is given explicitly.
func (b *Bundle) N(lang, key string, n int, params ...string) string {
	var candidates []string
	switch n {
	case 0:
		candidates = []string{key + ".zero", key + ".other"}
	case 1:
		candidates = []string{key + ".one", key + ".other"}
	default:
		candidates = []string{key + ".other"}
	}

	values := buildParams(params)
	if _, ok := values["count"]; !ok {
		values["count"] = strconv.Itoa(n)
	}

	for _, candidate := range candidates {
		if message, ok := b.lookup(lang, candidate); ok {
			return substitute(message, values)
		}
	}

	// A plain string under the bare key serves all quantities.
	if message, ok := b.lookup(lang, key); ok {
		return substitute(message, values)
	}

	b.reportMissing(lang, key)
	if b.fallbackToKey {
		return key
	}
	return ""
}

// Has reports whether lang holds a translation for key, without
// falling back to the default language.
func (b *Bundle) Has(lang, key string) bool {
	_, ok := resolve(b.translations[lang], key)
	return ok
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (b *Bundle) SupportedLanguages() []string {
	langs := make([]string, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// lookup resolves key in lang, falling back to the default language.
func (b *Bundle) lookup(lang, key string) (string, bool) {
	if message, ok := resolve(b.translations[lang], key); ok {
		return message, true
	}
	if lang != b.defaultLang {
		return resolve(b.translations[b.defaultLang], key)
	}
	return "", false
}

func (b *Bundle) reportMissing(lang, key string) {
	if b.logMissing {
		b.logger.Warn("missing translation", slog.String("lang", lang), slog.String("key", key))
	}
}

// resolve walks the message tree along the dot separated key. Only a
// string leaf counts as a translation.
func resolve(messages map[string]any, key string) (string, bool) {
	if messages == nil || key == "" {
		return "", false
	}

	parts := strings.Split(key, ".")
	current := any(messages)
	for _, part := range parts {
		tree, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = tree[part]
		if !ok {
			return "", false
		}
	}

	message, ok := current.(string)
	return message, ok
}

// buildParams turns alternating name, value arguments into a map. A
// trailing name without a value is ignored.
func buildParams(params []string) map[string]string {
	values := make(map[string]string, len(params)/2)
	for i := 0; i+1 < len(params); i += 2 {
		values[params[i]] = params[i+1]
	}
	return values
}

// substitute replaces %{name} placeholders with their values. Unknown
// placeholders stay in place so a missing param is visible in output.
func substitute(message string, values map[string]string) string {
	if len(values) == 0 || !strings.Contains(message, "%{") {
		return message
	}
	return placeholderRegex.ReplaceAllStringFunc(message, func(match string) string {
		name := match[2 : len(match)-1]
		if value, ok := values[name]; ok {
			return value
		}
		return match
	})
}
