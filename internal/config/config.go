// Package config loads and validates the application configuration.
// The configuration is built exactly once at process start and passed by
// injection to every component that needs it; there is no ambient global state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// minJWTSecretLength enforces a 256-bit signing secret.
const minJWTSecretLength = 32

// Config holds every runtime setting of the API server.
// Values come from built-in defaults, then an optional YAML file pointed to by
// CONFIG_FILE, then environment variables, each layer overriding the previous one.
type Config struct {
	Addr        string `yaml:"addr"`
	DatabaseURL string `yaml:"database_url"`
	LogLevel    string `yaml:"log_level"`
	Version     string `yaml:"version"`

	JWTSecret     string        `yaml:"jwt_secret"`
	TokenLifetime time.Duration `yaml:"token_lifetime"`
	BcryptCost    int           `yaml:"bcrypt_cost"`

	// OpenEditing enables the open collaborative editing policy: any
	// authenticated user may edit any article, taking over ownership in the
	// process. Deletion stays owner-scoped regardless of this setting.
	OpenEditing bool `yaml:"open_editing"`

	// LoginRatePerMinute caps login/signup attempts per client IP.
	LoginRatePerMinute int `yaml:"login_rate_per_minute"`

	DB PoolConfig `yaml:"db"`
}

// PoolConfig holds database connection pool settings.
type PoolConfig struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// Default returns the built-in configuration defaults.
func Default() Config {
	return Config{
		Addr:               ":8080",
		LogLevel:           "info",
		Version:            "dev",
		TokenLifetime:      60 * time.Minute,
		BcryptCost:         12,
		OpenEditing:        true,
		LoginRatePerMinute: 5,
		DB: PoolConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: 1 * time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
	}
}

// Load builds the configuration from defaults, the optional CONFIG_FILE YAML
// file, and environment variables, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}
	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadEnv() {
	setString(&c.Addr, "ADDR")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.Version, "VERSION")
	setString(&c.JWTSecret, "JWT_SECRET")
	setDuration(&c.TokenLifetime, "TOKEN_LIFETIME")
	setInt(&c.BcryptCost, "BCRYPT_COST")
	setBool(&c.OpenEditing, "OPEN_EDITING")
	setInt(&c.LoginRatePerMinute, "LOGIN_RATE_PER_MINUTE")
	setInt(&c.DB.MaxOpenConns, "DB_MAX_OPEN_CONNS")
	setInt(&c.DB.MaxIdleConns, "DB_MAX_IDLE_CONNS")
	setDuration(&c.DB.ConnMaxLifetime, "DB_CONN_MAX_LIFETIME")
	setDuration(&c.DB.ConnMaxIdleTime, "DB_CONN_MAX_IDLE_TIME")
}

// Validate checks the configuration for values the server cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d characters (256 bits)", minJWTSecretLength)
	}
	for _, weak := range []string{"secret", "password", "test", "admin", "default"} {
		if c.JWTSecret == weak || c.JWTSecret == weak+"123" {
			return fmt.Errorf("JWT_SECRET must not be a common weak value")
		}
	}
	if c.TokenLifetime <= 0 {
		return fmt.Errorf("token lifetime must be positive")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("bcrypt cost must be between 4 and 31")
	}
	if c.LoginRatePerMinute <= 0 {
		return fmt.Errorf("login rate per minute must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			*dst = d
		}
	}
}
