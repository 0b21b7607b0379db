package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/navicore/pkg/navicore/internal"
)

// Config mirrors the library's configuration table: the pipeline tunables
// plus the validation watchdog and a default screen timeout, handed to
// choreographer.Options/validate.Chain/graph construction by the embedding
// application.
type Config struct {
	// DebounceWindow is how close two admitted intents sharing a debounce
	// key must arrive before the second is suppressed.
	DebounceWindow time.Duration

	// MaxIntentRetries bounds retries of InvalidState-kind dispatch
	// failures before the intent is logged and dropped.
	MaxIntentRetries int

	// DefaultScreenTimeout is substituted for any graph node that leaves
	// ScreenTimeout unset.
	DefaultScreenTimeout time.Duration

	// CommandBufferCapacity is the per-subscriber buffer size of the
	// choreographer's command broadcast.
	CommandBufferCapacity int

	// LocalSourceCapacity is the buffer size of the choreographer's own
	// local intent source.
	LocalSourceCapacity int

	// ValidationWatchdog bounds how long a single validator may run
	// before being treated as Invalid("validator_timeout"). Zero disables
	// the watchdog.
	ValidationWatchdog time.Duration
}

// Default returns the library's documented defaults, the same values
// choreographer.Options.withDefaults falls back to when a Config is never
// loaded. The timer actor has no fallback of its own: it uses the default
// timeout passed to timer.New (or Choreographer.EnableInactivityTimer).
func Default() Config {
	return Config{
		DebounceWindow:        internal.DefaultDebounceWindow,
		MaxIntentRetries:      internal.DefaultMaxIntentRetries,
		DefaultScreenTimeout:  internal.DefaultScreenTimeout,
		CommandBufferCapacity: internal.DefaultCommandBufferCapacity,
		LocalSourceCapacity:   internal.DefaultLocalSourceCapacity,
	}
}

// rawConfig mirrors Config field-for-field with durations as
// time.ParseDuration strings ("150ms", "2m") rather than raw integers,
// since time.Duration has no TextUnmarshaler for BurntSushi/toml to use.
type rawConfig struct {
	DebounceWindow        string `toml:"debounce_window"`
	MaxIntentRetries      int    `toml:"max_intent_retries"`
	DefaultScreenTimeout  string `toml:"default_screen_timeout"`
	CommandBufferCapacity int    `toml:"command_buffer_capacity"`
	LocalSourceCapacity   int    `toml:"local_source_capacity"`
	ValidationWatchdog    string `toml:"validation_watchdog"`
}

// Load reads a Config from the TOML file at path, filling any field the
// file leaves unset with the library's default.
func Load(path string) (Config, error) {
	var raw rawConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	cfg := Default()
	var err error
	if cfg.DebounceWindow, err = parseDuration(raw.DebounceWindow, cfg.DebounceWindow); err != nil {
		return Config{}, fmt.Errorf("config: debounce_window: %w", err)
	}
	if cfg.DefaultScreenTimeout, err = parseDuration(raw.DefaultScreenTimeout, cfg.DefaultScreenTimeout); err != nil {
		return Config{}, fmt.Errorf("config: default_screen_timeout: %w", err)
	}
	if cfg.ValidationWatchdog, err = parseDuration(raw.ValidationWatchdog, cfg.ValidationWatchdog); err != nil {
		return Config{}, fmt.Errorf("config: validation_watchdog: %w", err)
	}
	if raw.MaxIntentRetries != 0 {
		cfg.MaxIntentRetries = raw.MaxIntentRetries
	}
	if raw.CommandBufferCapacity != 0 {
		cfg.CommandBufferCapacity = raw.CommandBufferCapacity
	}
	if raw.LocalSourceCapacity != 0 {
		cfg.LocalSourceCapacity = raw.LocalSourceCapacity
	}
	return cfg, nil
}

func parseDuration(raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	return time.ParseDuration(raw)
}
