// Package config loads server settings from an optional YAML file and the
// environment. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DevJWTSecret signs tokens in DEV_MODE when no secret is configured.
const DevJWTSecret = "change-me-in-production"

const defaultConfigFile = "config.yaml"

type Config struct {
	Port        string        `yaml:"port"`
	DatabaseURL string        `yaml:"database_url"`
	DB          DB            `yaml:"db"`
	JWTSecret   string        `yaml:"jwt_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
	DevMode     bool          `yaml:"dev_mode"`
	GinMode     string        `yaml:"gin_mode"`
	SeedAdmin   SeedAdmin     `yaml:"seed_admin"`
}

type DB struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// SeedAdmin provisions an admin account at start-up when Email is set.
type SeedAdmin struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func Default() Config {
	return Config{
		Port:     "8080",
		TokenTTL: 7 * 24 * time.Hour,
		DB: DB{
			Host:    "localhost",
			Port:    "5432",
			SSLMode: "disable",
		},
		SeedAdmin: SeedAdmin{Name: "Admin"},
	}
}

// Load reads CONFIG_FILE (or ./config.yaml if present) and then applies
// environment overrides.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			path = defaultConfigFile
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Port, "PORT")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.DB.Host, "DB_HOST")
	setString(&c.DB.Port, "DB_PORT")
	setString(&c.DB.User, "DB_USER")
	setString(&c.DB.Password, "DB_PASSWORD")
	setString(&c.DB.Name, "DB_NAME")
	setString(&c.DB.SSLMode, "DB_SSLMODE")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.GinMode, "GIN_MODE")
	setString(&c.SeedAdmin.Email, "SEED_ADMIN_EMAIL")
	setString(&c.SeedAdmin.Password, "SEED_ADMIN_PASSWORD")
	setString(&c.SeedAdmin.Name, "SEED_ADMIN_NAME")

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		c.TokenTTL = d
	}
	if v := os.Getenv("DEV_MODE"); v != "" {
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return fmt.Errorf("invalid DEV_MODE %q: %w", v, err)
		}
		c.DevMode = b
	}
	return nil
}

func (c *Config) validate() error {
	if c.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}
	if c.JWTSecret == "" {
		if !c.DevMode {
			return errors.New("JWT_SECRET must be set (or set DEV_MODE=true)")
		}
		log.Println("⚠️ JWT_SECRET not set, using the development secret")
		c.JWTSecret = DevJWTSecret
	}
	if c.SeedAdmin.Email != "" && c.SeedAdmin.Password == "" {
		return errors.New("SEED_ADMIN_PASSWORD must be set together with SEED_ADMIN_EMAIL")
	}
	return nil
}

// DSN is the Postgres connection string; DATABASE_URL wins when set.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
