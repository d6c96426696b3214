// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct parsing. Each configuration type is
// parsed once and cached for the life of the process; ResetCache and
// ForceReloadConfig exist for tests.
//
//	type Config struct {
//	    Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string                  `env:"LOG_LEVEL"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// WithPrefix maps `env:"LANG"` to PREFIX_LANG, so one struct can serve
// several components. WithEnvironment parses from an explicit map instead of
// the process environment.
//
// Errors wrap the sentinels ErrParsingConfig, ErrNilPointer and
// ErrLoadingEnvFile; compare them with errors.Is.
package config
