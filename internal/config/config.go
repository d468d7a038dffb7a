package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Server modes
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
	ModeTest        = "test"
)

// Storage drivers for both the application data and sessions
const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the placement API configuration
type Config struct {
	Server struct {
		Port           string        `yaml:"port" env:"SERVER_PORT"`
		Mode           string        `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout    time.Duration `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout   time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		IdleTimeout    time.Duration `yaml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT"`
		AllowedOrigins []string      `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Session struct {
		Store       string        `yaml:"store" env:"SESSION_STORE"`
		Secret      string        `yaml:"secret" env:"SESSION_SECRET"`
		CookieName  string        `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		MaxAge      time.Duration `yaml:"max_age" env:"SESSION_MAX_AGE"`
		CheckPeriod time.Duration `yaml:"check_period" env:"SESSION_CHECK_PERIOD"`
	} `yaml:"session"`

	Auth struct {
		RestrictPrivilegedRegistration bool `yaml:"restrict_privileged_registration" env:"AUTH_RESTRICT_PRIVILEGED_REGISTRATION"`
	} `yaml:"auth"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// devSessionSecret signs session cookies outside production when no secret is configured.
const devSessionSecret = "placement-dev-secret-change-me"

// LoadConfig loads configuration from a .env file, a YAML file and environment variables,
// in that order of increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Default returns a configuration populated with defaults only.
// The development session secret is filled in.
func Default() *Config {
	config := &Config{}
	setDefaults(config)
	config.Session.Secret = devSessionSecret
	return config
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = ModeDevelopment
	config.Server.ReadTimeout = 10 * time.Second
	config.Server.WriteTimeout = 10 * time.Second
	config.Server.IdleTimeout = 120 * time.Second
	config.Server.AllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

	config.Database.Driver = DriverPostgres
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "placement"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Session.Store = DriverMemory
	config.Session.CookieName = "placement.sid"
	config.Session.MaxAge = 24 * time.Hour
	config.Session.CheckPeriod = 24 * time.Hour

	config.Seed.Enabled = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Server.Mode {
	case ModeDevelopment, ModeProduction, ModeTest:
	default:
		return fmt.Errorf("unknown server mode %q", config.Server.Mode)
	}
	if len(config.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}

	switch config.Database.Driver {
	case DriverPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database connection max lifetime: %w", err)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported database driver %q", config.Database.Driver)
	}

	switch config.Session.Store {
	case DriverMemory:
	case DriverPostgres:
		if config.Database.Driver != DriverPostgres {
			return fmt.Errorf("postgres session store requires the postgres database driver")
		}
	default:
		return fmt.Errorf("unsupported session store %q", config.Session.Store)
	}

	if config.Session.Secret == "" {
		if config.IsProduction() {
			return fmt.Errorf("session secret is required in production")
		}
		config.Session.Secret = devSessionSecret
	}

	if config.Session.MaxAge <= 0 {
		return fmt.Errorf("session max age must be positive")
	}
	if config.Session.CheckPeriod <= 0 {
		return fmt.Errorf("session check period must be positive")
	}
	if config.Session.CookieName == "" {
		return fmt.Errorf("session cookie name is required")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == ModeProduction
}

// UsesDevSessionSecret reports whether cookies are signed with the built-in development secret
func (c *Config) UsesDevSessionSecret() bool {
	return c.Session.Secret == devSessionSecret
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	switch strings.ToLower(valueStr) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}

	if v, err := strconv.ParseBool(valueStr); err == nil {
		return v
	}
	return defaultValue
}
