package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BrandonKowalski/navicore/pkg/navicore/config"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "navicore.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_AppliesDefaultsForAbsentFields(t *testing.T) {
	path := writeTOML(t, `max_intent_retries = 5`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := config.Default()
	if cfg.MaxIntentRetries != 5 {
		t.Fatalf("MaxIntentRetries = %d, want 5", cfg.MaxIntentRetries)
	}
	if cfg.DebounceWindow != want.DebounceWindow {
		t.Fatalf("DebounceWindow = %v, want default %v", cfg.DebounceWindow, want.DebounceWindow)
	}
	if cfg.DefaultScreenTimeout != want.DefaultScreenTimeout {
		t.Fatalf("DefaultScreenTimeout = %v, want default %v", cfg.DefaultScreenTimeout, want.DefaultScreenTimeout)
	}
}

func TestLoad_ReadsEveryField(t *testing.T) {
	path := writeTOML(t, `
debounce_window = "150ms"
max_intent_retries = 7
default_screen_timeout = "30s"
command_buffer_capacity = 128
local_source_capacity = 32
validation_watchdog = "1s"
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DebounceWindow != 150*time.Millisecond {
		t.Fatalf("DebounceWindow = %v", cfg.DebounceWindow)
	}
	if cfg.MaxIntentRetries != 7 {
		t.Fatalf("MaxIntentRetries = %v", cfg.MaxIntentRetries)
	}
	if cfg.DefaultScreenTimeout != 30*time.Second {
		t.Fatalf("DefaultScreenTimeout = %v", cfg.DefaultScreenTimeout)
	}
	if cfg.CommandBufferCapacity != 128 {
		t.Fatalf("CommandBufferCapacity = %v", cfg.CommandBufferCapacity)
	}
	if cfg.LocalSourceCapacity != 32 {
		t.Fatalf("LocalSourceCapacity = %v", cfg.LocalSourceCapacity)
	}
	if cfg.ValidationWatchdog != time.Second {
		t.Fatalf("ValidationWatchdog = %v", cfg.ValidationWatchdog)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
