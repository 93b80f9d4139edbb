// Package config loads typed configuration structs from environment
// variables.
//
// Values come from the process environment, optionally topped up from
// .env files via LoadEnv. Each struct type is parsed once and cached, so
// repeated Load calls for the same type are cheap and consistent.
//
//	type AppConfig struct {
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// ResetCache discards all cached structs, which tests use after
// changing the environment.
package config
