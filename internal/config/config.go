package config

import "fmt"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Timeouts are expressed in seconds.
	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"     validate:"gte=0"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"    validate:"gte=0"`
	IdleTimeoutSeconds     int `mapstructure:"idle_timeout_seconds"     validate:"gte=0"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`

	// RequestTimeoutSeconds bounds handler work. It must stay below the
	// write timeout so the timeout response can still be written; 0
	// disables it.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}

func (c ServerConfig) checkTimeouts() error {
	if c.WriteTimeoutSeconds > 0 && c.RequestTimeoutSeconds >= c.WriteTimeoutSeconds {
		return fmt.Errorf("request_timeout_seconds (%d) must be less than write_timeout_seconds (%d)",
			c.RequestTimeoutSeconds, c.WriteTimeoutSeconds)
	}
	return nil
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	MaxOpenConns           int  `mapstructure:"max_open_conns"            validate:"gt=0"`
	MaxIdleConns           int  `mapstructure:"max_idle_conns"            validate:"gte=0"`
	ConnMaxLifetimeMinutes int  `mapstructure:"conn_max_lifetime_minutes" validate:"gte=0"`
	AutoMigrate            bool `mapstructure:"auto_migrate"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=1440"`
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}

// CORSConfig lists the origins allowed to call the API from a browser.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}
