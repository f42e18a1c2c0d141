// Package config provides unified configuration loading for the assistant.
// Supports YAML files, environment variables, and programmatic overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the assistant.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Knowledge     KnowledgeConfig     `yaml:"knowledge"`
	Cache         CacheConfig         `yaml:"cache"`
	Retrieval     RetrievalConfig     `yaml:"retrieval"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// KnowledgeConfig holds knowledge-base source settings.
type KnowledgeConfig struct {
	// Source selects where the knowledge base is loaded from:
	// builtin, json, yaml, or sql. Any load failure falls back to builtin.
	Source   string         `yaml:"source"`
	Path     string         `yaml:"path"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds SQL knowledge-source settings.
type DatabaseConfig struct {
	Driver   string         `yaml:"driver"` // sqlite or postgres
	SQLite   SQLiteConfig   `yaml:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// SQLiteConfig holds SQLite-specific settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// PostgresConfig holds Postgres-specific settings.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// CacheConfig holds answer-cache settings.
type CacheConfig struct {
	Driver     string        `yaml:"driver"` // memory, redis, or none
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
}

// RetrievalConfig holds retrieval and indexing settings.
type RetrievalConfig struct {
	TopK         int     `yaml:"top_k"`
	CropBoost    float64 `yaml:"crop_boost"`
	SoilBoost    float64 `yaml:"soil_boost"`
	NGramMin     int     `yaml:"ngram_min"`
	NGramMax     int     `yaml:"ngram_max"`
	MaxFeatures  int     `yaml:"max_features"`
	CacheAnswers bool    `yaml:"cache_answers"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	ServiceName string `yaml:"service_name"`
}

// Load reads configuration from a YAML file and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8002,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     30 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Knowledge: KnowledgeConfig{
			Source: "builtin",
			Database: DatabaseConfig{
				Driver: "sqlite",
				SQLite: SQLiteConfig{
					Path: "/tmp/agri-kb.db",
				},
				Postgres: PostgresConfig{
					MaxOpenConns:    25,
					MaxIdleConns:    5,
					ConnMaxLifetime: 5 * time.Minute,
				},
			},
		},
		Cache: CacheConfig{
			Driver:     "memory",
			TTL:        5 * time.Minute,
			MaxEntries: 10000,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				DB:       0,
				PoolSize: 10,
			},
		},
		Retrieval: RetrievalConfig{
			TopK:         3,
			CropBoost:    0.25,
			SoilBoost:    0.15,
			NGramMin:     3,
			NGramMax:     5,
			MaxFeatures:  5000,
			CacheAnswers: true,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			LogFormat:   "json",
			ServiceName: "agri-assist",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Knowledge.Source {
	case "builtin", "json", "yaml", "sql":
	default:
		return fmt.Errorf("invalid knowledge source: %s", c.Knowledge.Source)
	}

	if c.Knowledge.Source == "sql" {
		if c.Knowledge.Database.Driver != "sqlite" && c.Knowledge.Database.Driver != "postgres" {
			return fmt.Errorf("invalid database driver: %s", c.Knowledge.Database.Driver)
		}
	}

	switch c.Cache.Driver {
	case "memory", "redis", "none":
	default:
		return fmt.Errorf("invalid cache driver: %s", c.Cache.Driver)
	}

	if c.Retrieval.TopK < 1 || c.Retrieval.TopK > 20 {
		return fmt.Errorf("top_k must be between 1 and 20")
	}
	if c.Retrieval.NGramMin < 1 || c.Retrieval.NGramMax < c.Retrieval.NGramMin {
		return fmt.Errorf("invalid ngram range: %d-%d", c.Retrieval.NGramMin, c.Retrieval.NGramMax)
	}
	if c.Retrieval.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be positive")
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	// PORT is honored for platform deployments (Railway, Heroku style).
	for _, name := range []string{"SERVER_PORT", "PORT"} {
		if v := os.Getenv(name); v != "" {
			var port int
			if _, err := fmt.Sscanf(v, "%d", &port); err == nil {
				cfg.Server.Port = port
				break
			}
		}
	}

	if v := os.Getenv("KNOWLEDGE_SOURCE"); v != "" {
		cfg.Knowledge.Source = v
	}

	if v := os.Getenv("KNOWLEDGE_PATH"); v != "" {
		cfg.Knowledge.Path = v
		if cfg.Knowledge.Source == "builtin" {
			if strings.HasSuffix(v, ".yaml") || strings.HasSuffix(v, ".yml") {
				cfg.Knowledge.Source = "yaml"
			} else {
				cfg.Knowledge.Source = "json"
			}
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Knowledge.Source = "sql"
		if strings.HasPrefix(v, "sqlite:") {
			cfg.Knowledge.Database.Driver = "sqlite"
			cfg.Knowledge.Database.SQLite.Path = strings.TrimPrefix(v, "sqlite:")
		} else if strings.HasPrefix(v, "postgres") {
			cfg.Knowledge.Database.Driver = "postgres"
			cfg.Knowledge.Database.Postgres.DSN = v
		}
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.Driver = "redis"
		cfg.Cache.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
