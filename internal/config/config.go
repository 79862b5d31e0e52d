package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingSecret      = errors.New("JWT_SECRET is required")
	ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")
)

// Config holds all runtime settings for the EventCentral backend.
// It is built once in main and passed to the components that need it;
// nothing reads these values from the environment after startup.
//
// Fields:
//   - Port: HTTP listen port.
//   - DatabaseURL: Postgres DSN.
//   - JWTSecret: HMAC secret for signing session tokens (HS256).
//   - TokenTTL: session token lifetime (default 7 days).
//   - BcryptCost: work factor for password hashing.
//   - AllowedOrigins: CORS allow-list.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	BcryptCost     int
	AllowedOrigins []string
}

// fileConfig is the YAML shape of an optional config file. Every field is
// optional; anything left out keeps its default or env value.
type fileConfig struct {
	Port           string   `yaml:"port"`
	DatabaseURL    string   `yaml:"database_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	TokenTTL       string   `yaml:"token_ttl"`
	BcryptCost     int      `yaml:"bcrypt_cost"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LoadDefaults populates Config with development defaults. The secret and
// DSN have no default; Validate rejects a config that never set them.
func (c *Config) LoadDefaults() {
	c.Port = "5050"
	c.TokenTTL = 7 * 24 * time.Hour
	c.BcryptCost = bcrypt.DefaultCost
	c.AllowedOrigins = []string{"http://localhost:5173"}
}

// Load builds a Config by applying defaults, then overlaying an optional
// YAML file at path, then the environment. Environment variables:
//
//   - PORT
//   - DATABASE_URL
//   - JWT_SECRET
//   - TOKEN_TTL (Go duration, e.g. "168h")
//   - BCRYPT_COST
//   - ALLOWED_ORIGINS (comma-separated)
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := cfg.applyFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Port != "" {
		c.Port = fc.Port
	}
	if fc.DatabaseURL != "" {
		c.DatabaseURL = fc.DatabaseURL
	}
	if fc.JWTSecret != "" {
		c.JWTSecret = fc.JWTSecret
	}
	if fc.TokenTTL != "" {
		ttl, err := time.ParseDuration(fc.TokenTTL)
		if err != nil {
			return err
		}
		c.TokenTTL = ttl
	}
	if fc.BcryptCost != 0 {
		c.BcryptCost = fc.BcryptCost
	}
	if len(fc.AllowedOrigins) > 0 {
		c.AllowedOrigins = fc.AllowedOrigins
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		c.TokenTTL = ttl
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.BcryptCost = cost
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.AllowedOrigins = origins
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}
