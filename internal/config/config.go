// Package config provides Viper-based hierarchical configuration: built-in
// defaults, an optional config.yaml, then DOMPET_-prefixed environment
// variables, with .env loading for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Pockets struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"pockets" yaml:"pockets"`

	Undo struct {
		Window time.Duration `mapstructure:"window" yaml:"window"`
	} `mapstructure:"undo" yaml:"undo"`
}

var loadEnvOnce sync.Once

// LoadEnv loads a .env file from the working directory or its parent, if
// one exists. Safe to call more than once.
func LoadEnv() {
	loadEnvOnce.Do(func() {
		for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
			if _, err := os.Stat(envFile); err == nil {
				_ = godotenv.Load(envFile)
				return
			}
		}
	})
}

// Initialize builds the configuration from defaults, an optional config
// file and the environment.
func Initialize() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/dompet")
	v.AddConfigPath(".dompet")
	v.AddConfigPath(".")

	v.SetEnvPrefix("DOMPET")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("pockets.file", "")
	v.SetDefault("undo.window", "2m")
}

func validate(cfg *Config) error {
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	if cfg.Undo.Window <= 0 {
		return fmt.Errorf("undo.window must be positive, got %s", cfg.Undo.Window)
	}
	return nil
}
