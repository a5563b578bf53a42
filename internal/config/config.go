// Package config provides configuration management for the inputhook CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. INPUTHOOK_KEYBOARD_ONLY.
const EnvPrefix = "INPUTHOOK"

// Config represents the application configuration
type Config struct {
	// KeyboardOnly skips the mouse hook entirely
	KeyboardOnly bool `mapstructure:"keyboard_only"`

	// Format is the event output format: text, json or yaml
	Format string `mapstructure:"format"`

	// StopChord is a key combination that ends the session (e.g. "Ctrl+Alt+Shift+Q").
	// Empty disables it.
	StopChord string `mapstructure:"stop_chord"`

	// MaxEvents ends the session after this many events; 0 means unlimited
	MaxEvents int `mapstructure:"max_events"`

	// Log contains logger settings
	Log LogConfig `mapstructure:"log"`
}

// LogConfig contains logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// DefaultConfig returns a new Config with the defaults
func DefaultConfig() *Config {
	return &Config{
		KeyboardOnly: false,
		Format:       "text",
		StopChord:    "Ctrl+Alt+Shift+Q",
		MaxEvents:    0,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
	}
}

// flagKeys maps CLI flag names to configuration keys.
var flagKeys = map[string]string{
	"keyboard-only": "keyboard_only",
	"format":        "format",
	"stop-chord":    "stop_chord",
	"max-events":    "max_events",
	"log-level":     "log.level",
	"log-format":    "log.format",
	"log-output":    "log.output",
}

// Load reads configuration in order of precedence:
//  1. flags that were set on the command line
//  2. INPUTHOOK_* environment variables (.env is loaded first)
//  3. the config file at path, or DefaultPath if path is empty and it exists
//  4. defaults
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	explicit := path != ""
	if !explicit {
		if p, err := DefaultPath(); err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be checked by type.
func (c *Config) Validate() error {
	switch c.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("format must be text, json or yaml, got %q", c.Format)
	}
	if c.MaxEvents < 0 {
		return fmt.Errorf("max_events must not be negative, got %d", c.MaxEvents)
	}
	return nil
}

// WriteDefault writes the default configuration to path as YAML, refusing
// to overwrite an existing file.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("keyboard_only", d.KeyboardOnly)
	v.SetDefault("format", d.Format)
	v.SetDefault("stop_chord", d.StopChord)
	v.SetDefault("max_events", d.MaxEvents)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
}

// DefaultPath returns the per-user configuration file path. The file may
// not exist.
func DefaultPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, "Library", "Application Support", "inputhook")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		configDir = filepath.Join(appData, "inputhook")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config", "inputhook")
	}

	return filepath.Join(configDir, "config.yaml"), nil
}
