package config

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
	"strings"
	"time"
)

type Config struct {
	Mystic    MysticConfig    `yaml:"mystic"`
	Server    ServerConfig    `yaml:"server"`
	Ephemeris EphemerisConfig `yaml:"ephemeris"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type MysticConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

type ServerConfig struct {
	Address         string          `yaml:"address"`
	ReadTimeout     time.Duration   `yaml:"read_timeout"`
	WriteTimeout    time.Duration   `yaml:"write_timeout"`
	ShutdownTimeout time.Duration   `yaml:"shutdown_timeout"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	RequestsPerSecond int `yaml:"requests_per_second"`
	BurstSize         int `yaml:"burst_size"`
}

type EphemerisConfig struct {
	TablePath string `yaml:"table_path"`
}

type LoggingConfig struct {
	Level  string                 `yaml:"level"`
	Format string                 `yaml:"format"`
	Output string                 `yaml:"output"`
	MaxAge int                    `yaml:"max_age"`
	Fields map[string]interface{} `yaml:"fields"`
}

func LoadConfig(path string) (*Config, error) {
	// Read configuration file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		Server: ServerConfig{
			Address:         ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit: RateLimitConfig{
				RequestsPerSecond: 20,
				BurstSize:         40,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override settings from environment variables if available
	if v := os.Getenv("MYSTIC_SERVER_ADDRESS"); v != "" {
		config.Server.Address = strings.TrimSpace(v)
	}
	if v := os.Getenv("MYSTIC_EPHEMERIS_TABLE"); v != "" {
		config.Ephemeris.TablePath = strings.TrimSpace(v)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.Logging.Level = strings.TrimSpace(v)
	}

	config.Ephemeris.TablePath = strings.TrimSpace(config.Ephemeris.TablePath)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Mystic.Name == "" {
		return fmt.Errorf("mystic.name is required")
	}

	if cfg.Mystic.Version == "" {
		return fmt.Errorf("mystic.version is required")
	}

	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	if cfg.Server.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("server.rate_limit.requests_per_second must be greater than 0")
	}
	if cfg.Server.RateLimit.BurstSize <= 0 {
		return fmt.Errorf("server.rate_limit.burst_size must be greater than 0")
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be greater than 0")
	}

	if cfg.Ephemeris.TablePath == "" {
		return fmt.Errorf("ephemeris.table_path is required")
	}

	switch cfg.Logging.Format {
	case "", "json", "text":
	default:
		return fmt.Errorf("logging.format '%s' is invalid", cfg.Logging.Format)
	}

	return nil
}
