// Package config loads application configuration from environment variables
// into typed structs.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv reads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type for the lifetime of the process.
//   - MustLoad and MustLoadEnv panic on failure, for startup code.
//   - ResetCache and ForceReloadConfig drop cached values, mostly for tests.
//
// mailblocks uses it for the application config in cmd/mailblocks and for the
// backend configs (pkg/redis, pkg/pg, pkg/mongo, pkg/kvstore), which are only
// loaded when their backend is selected so that their required variables do
// not have to be set otherwise.
//
// # Usage
//
//	type AppConfig struct {
//	    Store string `env:"MAILBLOCKS_STORE" envDefault:"file"`
//	}
//
//	if err := config.LoadEnv("./.env.local"); err != nil {
//	    log.Fatal(err)
//	}
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// # Errors
//
//   - ErrParsingConfig  - env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile - an explicit .env file could not be read.
//   - ErrNilPointer     - nil pointer passed to Load.
package config
