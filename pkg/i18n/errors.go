package i18n

import "errors"

var (
	ErrNilSource         = errors.New("i18n: nil source")
	ErrLoadCancelled     = errors.New("i18n: loading translations cancelled")
	ErrReadFile          = errors.New("i18n: failed to read translation file")
	ErrParse             = errors.New("i18n: failed to parse translations")
	ErrUnsupportedFormat = errors.New("i18n: unsupported translation file format")
	ErrNoTranslations    = errors.New("i18n: no translations found")
	ErrEmptyLanguage     = errors.New("i18n: empty language code")
)
