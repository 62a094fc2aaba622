package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the effective application configuration.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Chat  ChatConfig  `mapstructure:"chat"`
	Store StoreConfig `mapstructure:"store"`
	Data  DataConfig  `mapstructure:"data"`
	API   APIConfig   `mapstructure:"api"`
	Log   LogConfig   `mapstructure:"log"`
}

type UIConfig struct {
	DarkMode bool `mapstructure:"dark_mode"`
}

type ChatConfig struct {
	// ReplyDelay is how long the planner "thinks" before replying.
	ReplyDelay time.Duration `mapstructure:"reply_delay"`
	// Coalesce drops replies superseded by a newer message.
	Coalesce bool `mapstructure:"coalesce"`
}

type StoreConfig struct {
	Path      string `mapstructure:"path"`
	RedisAddr string `mapstructure:"redis_addr"`
	RedisDB   int    `mapstructure:"redis_db"`
}

type DataConfig struct {
	File string `mapstructure:"file"`
}

type APIConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

// DefaultReplyDelay matches the planner's simulated thinking time.
const DefaultReplyDelay = time.Second

// Load reads configuration from path, or from the default config directory
// when path is empty. A missing default config file is not an error.
// Environment variables prefixed OASYS_ override file values
// (e.g. OASYS_STORE_PATH for store.path).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("ui.dark_mode", false)
	v.SetDefault("chat.reply_delay", DefaultReplyDelay)
	v.SetDefault("chat.coalesce", false)
	v.SetDefault("store.path", "")
	v.SetDefault("store.redis_addr", "")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("data.file", "")
	v.SetDefault("api.addr", ":8080")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix("OASYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Chat.ReplyDelay < 0 {
		return fmt.Errorf("chat.reply_delay must not be negative, got %s", c.Chat.ReplyDelay)
	}
	if c.Store.RedisDB < 0 {
		return fmt.Errorf("store.redis_db must not be negative, got %d", c.Store.RedisDB)
	}
	return nil
}

// DefaultDir resolves the config directory:
// 1. $XDG_CONFIG_HOME/oasys
// 2. ~/.config/oasys
func DefaultDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "oasys"), nil
}
