// Package locale parses underscore separated locale identifiers such as
// "nl_NL" or "en_US_POSIX" into BCP 47 language tags. The underscore
// form survives in configuration files and legacy data exchanges that
// predate BCP 47.
package locale
