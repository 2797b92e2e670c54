package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the per-project configuration file looked up by Discover.
const FileName = ".headerc.toml"

// EnvVar overrides the configuration path.
const EnvVar = "HEADERC_CONFIG"

// Color modes for diagnostics output
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete toolchain configuration
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Log         LogConfig         `toml:"log"`
}

// DiagnosticsConfig controls how parse errors are rendered
type DiagnosticsConfig struct {
	Color     string `toml:"color"`
	Context   bool   `toml:"context"`
	MaxErrors int    `toml:"max_errors"`
}

// LogConfig is passed to commonlog.Configure
type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{
			Color:     ColorAuto,
			Context:   true,
			MaxErrors: 0,
		},
		Log: LogConfig{
			Verbosity: 0,
		},
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Log.File = os.ExpandEnv(cfg.Log.File)
	return &cfg, nil
}

// Discover loads the configuration named by HEADERC_CONFIG, or the first
// .headerc.toml found walking up from dir, or the user config file.
func Discover(dir string) (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for current := dir; ; {
		candidate := filepath.Join(current, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return Load(candidate)
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if home, err := os.UserConfigDir(); err == nil {
		return Load(filepath.Join(home, "headerc", "config.toml"))
	}
	cfg := Default()
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Diagnostics.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("diagnostics.color must be %q, %q or %q, got %q",
			ColorAuto, ColorAlways, ColorNever, c.Diagnostics.Color)
	}
	if c.Diagnostics.MaxErrors < 0 {
		return fmt.Errorf("diagnostics.max_errors must not be negative")
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative")
	}
	return nil
}
