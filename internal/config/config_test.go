package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "tasktrack.db" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.DigestInterval() != 24*time.Hour {
		t.Fatalf("unexpected digest interval %v", cfg.DigestInterval())
	}
	if cfg.DigestEnabled() {
		t.Fatalf("digest should be disabled without telegram settings")
	}
}

func TestLoadExpandsPlaceholders(t *testing.T) {
	t.Setenv("TT_TEST_DB", "from-env.db")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "listen_addr: \":9090\"\ndatabase_url: ${TT_TEST_DB}\ndigest:\n  interval_hours: 6\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.DatabaseURL != "from-env.db" {
		t.Fatalf("placeholder not expanded: %q", cfg.DatabaseURL)
	}
	if cfg.Digest.IntervalHours != 6 {
		t.Fatalf("unexpected digest interval %d", cfg.Digest.IntervalHours)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "override.db")
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("database_url: file.db\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.DatabaseURL != "override.db" {
		t.Fatalf("env override ignored: %q", cfg.DatabaseURL)
	}
	if !cfg.DigestEnabled() {
		t.Fatalf("digest should be enabled with token and chat id")
	}
	if cfg.Telegram.ChatID != 42 {
		t.Fatalf("unexpected chat id %d", cfg.Telegram.ChatID)
	}
}

func TestLoadRejectsBadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatalf("expected error for invalid chat id")
	}
}
