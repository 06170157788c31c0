package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	// Transport selects "stdio" or "http".
	Transport string `yaml:"transport"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// Path receives log output instead of stderr when set. Required for
	// readable logs under the stdio transport.
	Path string `yaml:"path"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Transport: "stdio",
			Host:      "0.0.0.0",
			Port:      8080,
		},
		DB: DBConfig{
			Path: "seminargrid.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("SEMINARGRID_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if transport := os.Getenv("SEMINARGRID_TRANSPORT"); transport != "" {
		cfg.Server.Transport = transport
	}
	if host := os.Getenv("SEMINARGRID_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SEMINARGRID_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEMINARGRID_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("SEMINARGRID_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("SEMINARGRID_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("SEMINARGRID_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}

	switch cfg.Server.Transport {
	case "stdio", "http":
	default:
		return Config{}, fmt.Errorf("invalid transport %q: must be stdio or http", cfg.Server.Transport)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
