// Package config loads typed configuration from environment variables.
//
// Every package that needs settings declares a Config struct tagged for
// github.com/caarlos0/env/v11 and the entry point loads it with Load or
// MustLoad. A .env file, when present, is read once through
// github.com/joho/godotenv. Parsed structs are cached per type.
package config
