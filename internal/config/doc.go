// Package config handles configuration loading, parsing, and validation
// from various sources (defaults, an optional config file, an optional .env
// file and environment variables). It provides type-safe access to the
// settings needed by the server while keeping configuration details separate
// from business logic.
package config
