package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jeanpaul/rolodex/internal/schema"
)

const (
	ModeTUI  = "tui"
	ModeLine = "line"
)

type Config struct {
	UI  UIConfig  `yaml:"ui" mapstructure:"ui" json:"ui"`
	Log LogConfig `yaml:"log" mapstructure:"log" json:"log"`
}

type UIConfig struct {
	Mode          string `yaml:"mode" mapstructure:"mode" json:"mode"`
	Theme         string `yaml:"theme" mapstructure:"theme" json:"theme"`
	ConfirmRemove bool   `yaml:"confirm_remove" mapstructure:"confirm_remove" json:"confirm_remove"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level" json:"level"`
	Format string `yaml:"format" mapstructure:"format" json:"format"`
	File   string `yaml:"file" mapstructure:"file" json:"file"`
}

func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Mode:          ModeTUI,
			Theme:         "green",
			ConfirmRemove: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads config.yaml from path when given, otherwise from the working
// directory and the user config directories. A missing file is not an error.
// ROLODEX_* environment variables override file values (ROLODEX_UI_MODE etc).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "rolodex"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "rolodex"))
		}
	}

	// Defaults must be registered for AutomaticEnv to see nested keys.
	v.SetDefault("ui.mode", cfg.UI.Mode)
	v.SetDefault("ui.theme", cfg.UI.Theme)
	v.SetDefault("ui.confirm_remove", cfg.UI.ConfirmRemove)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)

	v.SetEnvPrefix("ROLODEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"ui": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"mode":           map[string]any{"enum": []string{ModeTUI, ModeLine}},
				"theme":          map[string]any{"enum": []string{"green", "amber", "mono"}},
				"confirm_remove": map[string]any{"type": "boolean"},
			},
			"required": []string{"mode", "theme"},
		},
		"log": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"level":  map[string]any{"enum": []string{"debug", "info", "warn", "warning", "error"}},
				"format": map[string]any{"enum": []string{"text", "json"}},
				"file":   map[string]any{"type": "string"},
			},
		},
	},
	"required": []string{"ui", "log"},
}

var validator = schema.NewValidator()

// Validate normalizes case and checks the configuration against its schema.
func (c *Config) Validate() error {
	c.UI.Mode = strings.ToLower(strings.TrimSpace(c.UI.Mode))
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if err := validator.Validate(configSchema, c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[2:])
}
