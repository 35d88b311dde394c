package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	App     AppConfig     `toml:"app"`
	Log     LogConfig     `toml:"log"`
	Storage StorageConfig `toml:"storage"`
}

type AppConfig struct {
	Name         string   `toml:"name" env:"APP_NAME"`
	Env          string   `toml:"env" env:"APP_ENV"`
	Host         string   `toml:"host" env:"APP_HOST"`
	Port         int      `toml:"port" env:"APP_PORT"`
	GinMode      string   `toml:"gin_mode" env:"GIN_MODE"`
	AllowOrigins []string `toml:"allow_origins" env:"APP_ALLOW_ORIGINS" envSeparator:","`
}

type LogConfig struct {
	Level      string `toml:"level" env:"LOG_LEVEL"`
	File       string `toml:"file" env:"LOG_FILE"`
	MaxSizeMB  int    `toml:"max_size_mb" env:"LOG_MAX_SIZE_MB"`
	MaxBackups int    `toml:"max_backups" env:"LOG_MAX_BACKUPS"`
}

type StorageConfig struct {
	BasePath string `toml:"base_path" env:"STORAGE_BASE_PATH"`
	BaseURL  string `toml:"base_url" env:"STORAGE_BASE_URL"`
}

// Load resolves configuration in three layers: built-in defaults, an optional
// TOML file, then environment variables on top.
func Load() (*Config, error) {
	cfg := defaultConfig()

	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "configs/config.toml"
	}
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "solutiontech-chat",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
		},
		Storage: StorageConfig{
			BasePath: "uploads",
			BaseURL:  "http://127.0.0.1:8080/uploads",
		},
	}
}
