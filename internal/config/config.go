package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config keeps runtime settings for the server.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	DatabaseURL string `yaml:"database_url"`
	LogLevel    string `yaml:"log_level"`

	Digest struct {
		IntervalHours int `yaml:"interval_hours"`
	} `yaml:"digest"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
}

// Load reads the YAML config file, substitutes ${ENV} placeholders,
// applies environment overrides and fills defaults. A missing file is
// fine: everything then comes from the environment and defaults.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		content := expandPlaceholders(string(data))
		if err := yaml.Unmarshal([]byte(content), &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// fall through to env and defaults
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if v := strings.TrimSpace(os.Getenv("LISTEN_ADDR")); v != "" {
		cfg.ListenAddr = v
	}
	if v := strings.TrimSpace(os.Getenv("DATABASE_URL")); v != "" {
		cfg.DatabaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")); v != "" {
		cfg.Telegram.Token = v
	}
	if v := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = chatID
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "tasktrack.db"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Digest.IntervalHours <= 0 {
		cfg.Digest.IntervalHours = 24
	}

	return cfg, nil
}

// DigestInterval is the period between urgent-task digests.
func (c Config) DigestInterval() time.Duration {
	return time.Duration(c.Digest.IntervalHours) * time.Hour
}

// DigestEnabled reports whether a Telegram delivery target is set.
func (c Config) DigestEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != 0
}

// expandPlaceholders replaces ${NAME} with the environment value.
func expandPlaceholders(content string) string {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}
		content = strings.ReplaceAll(content, "${"+pair[0]+"}", pair[1])
	}
	return content
}
