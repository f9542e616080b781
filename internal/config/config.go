package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Tasks  TasksConfig  `mapstructure:"tasks"  validate:"required"`
	API    APIConfig    `mapstructure:"api"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text ci"`
	// Debug forces debug-level logging regardless of LogLevel.
	Debug bool `mapstructure:"debug"`

	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gt=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gt=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// Addr returns the host:port pair the HTTP server listens on.
func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ReadTimeout returns the configured read timeout as a duration.
func (c ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout as a duration.
func (c ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns how long a graceful shutdown may take.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// TasksConfig contains settings for the task resource.
type TasksConfig struct {
	// DefaultStatus is assigned to tasks created without an explicit status.
	DefaultStatus string `mapstructure:"default_status" validate:"required"`
	// SeedDemo preloads the demo tasks at startup.
	SeedDemo bool `mapstructure:"seed_demo"`
}

// APIConfig contains the static metadata served on the index endpoint.
type APIConfig struct {
	Name        string `mapstructure:"name"        validate:"required"`
	Version     string `mapstructure:"version"     validate:"required"`
	Description string `mapstructure:"description"`
}
