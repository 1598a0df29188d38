// Package config loads typed configuration from environment variables.
//
// Struct fields are bound with github.com/caarlos0/env tags; an optional .env
// file is read once through github.com/joho/godotenv. Parsed values are cached
// per type, so repeated Load calls are cheap and return identical values.
//
//	var cfg blocks.Config
//	config.MustLoad(&cfg)
package config
