package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string   `yaml:"port" env:"SERVER_PORT"`
		Mode           string   `yaml:"mode" env:"SERVER_MODE"`
		StoragePath    string   `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicBaseURL  string   `yaml:"public_base_url" env:"SERVER_PUBLIC_BASE_URL"`
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
		MaxUploadBytes int64    `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		RunMigrations   bool   `yaml:"run_migrations" env:"DB_RUN_MIGRATIONS"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled       bool   `yaml:"enabled" env:"SEED_ENABLED"`
		AdminUsername string `yaml:"admin_username" env:"SEED_ADMIN_USERNAME"`
		AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
	} `yaml:"seed"`
}

// LoadConfig reads the YAML file at configPath (optional), then a .env file
// in the working directory (optional), then process environment variables.
// Later sources win.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if err := loadFile(configPath, config); err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func loadFile(configPath string, config *Config) error {
	if configPath == "" {
		return nil
	}
	file, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(file, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}
	config.Server.MaxUploadBytes = 5 << 20

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "schoolhub"
	config.Database.SSLMode = "disable"
	config.Database.MinConns = 2
	config.Database.MaxConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.RunMigrations = true

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "schoolhub"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.Enabled = true
	config.Seed.AdminUsername = "admin"
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.MaxConns < config.Database.MinConns {
		return fmt.Errorf("database max_conns (%d) is lower than min_conns (%d)", config.Database.MaxConns, config.Database.MinConns)
	}
	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection lifetime: %w", err)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if config.Seed.Enabled && config.Seed.AdminUsername != "" && len(config.Seed.AdminPassword) < 6 {
		return fmt.Errorf("seed admin password must be at least 6 characters")
	}

	return nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
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
