package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/artashes-sanoyan/elide/internal/truncate"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Truncate TruncateConfig `mapstructure:"truncate"`
	UI       UIConfig       `mapstructure:"ui"`
	Keys     KeyConfig      `mapstructure:"keys"`
}

type DatabaseConfig struct {
	Path    string        `mapstructure:"path"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// TruncateConfig is the user-facing mirror of the engine options.
type TruncateConfig struct {
	Lines          int    `mapstructure:"lines"`
	Middle         bool   `mapstructure:"middle"`
	End            int    `mapstructure:"end"`
	Separator      string `mapstructure:"separator"`
	TrimWhitespace bool   `mapstructure:"trim_whitespace"`
	Ellipsis       string `mapstructure:"ellipsis"`
	Width          int    `mapstructure:"width"`
}

// Options converts the configured values into engine options. An empty
// ellipsis falls back to the default glyph; an empty separator is meaningful
// (per-character cut points) and passes through as-is.
func (t TruncateConfig) Options() truncate.Options {
	opts := truncate.Options{
		Lines:          t.Lines,
		Middle:         t.Middle,
		End:            t.End,
		Separator:      t.Separator,
		TrimWhitespace: t.TrimWhitespace,
		Ellipsis:       t.Ellipsis,
		Width:          t.Width,
	}
	if opts.Ellipsis == "" {
		opts.Ellipsis = truncate.DefaultEllipsis
	}
	return opts
}

type UIConfig struct {
	Colors  UIColors      `mapstructure:"colors"`
	Preview PreviewConfig `mapstructure:"preview"`
}

type UIColors struct {
	Primary    string `mapstructure:"primary"`
	Secondary  string `mapstructure:"secondary"`
	Accent     string `mapstructure:"accent"`
	Background string `mapstructure:"background"`
	Surface    string `mapstructure:"surface"`
	Text       string `mapstructure:"text"`
	Muted      string `mapstructure:"muted"`
	Error      string `mapstructure:"error"`
	Success    string `mapstructure:"success"`
}

type PreviewConfig struct {
	ShowMoreLabel string `mapstructure:"show_more_label"`
	ShowLessLabel string `mapstructure:"show_less_label"`
}

type KeyConfig struct {
	Modifier string      `mapstructure:"modifier"`
	Bindings KeyBindings `mapstructure:"bindings"`
}

type KeyBindings struct {
	Quit        string `mapstructure:"quit"`
	AddDocument string `mapstructure:"add_document"`
	DeleteDoc   string `mapstructure:"delete_document"`
	Reload      string `mapstructure:"reload"`
	Toggle      string `mapstructure:"toggle"`
	Back        string `mapstructure:"back"`
	Help        string `mapstructure:"help"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".elide.db")

	return &Config{
		Database: DatabaseConfig{
			Path:    dbPath,
			Timeout: 1 * time.Second,
		},
		Truncate: TruncateConfig{
			Lines:     3,
			Middle:    false,
			End:       5,
			Separator: " ",
			Ellipsis:  truncate.DefaultEllipsis,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:    "#FF6B6B",
				Secondary:  "#4ECDC4",
				Accent:     "#95E1D3",
				Background: "#1A1A2E",
				Surface:    "#16213E",
				Text:       "#EAEAEA",
				Muted:      "#94A3B8",
				Error:      "#F87171",
				Success:    "#4ADE80",
			},
			Preview: PreviewConfig{
				ShowMoreLabel: "show more",
				ShowLessLabel: "show less",
			},
		},
		Keys: KeyConfig{
			Modifier: "ctrl",
			Bindings: KeyBindings{
				Quit:        "q",
				AddDocument: "n",
				DeleteDoc:   "x",
				Reload:      "r",
				Toggle:      "enter",
				Back:        "esc",
				Help:        "?",
			},
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("database", cfg.Database)
	v.SetDefault("truncate", cfg.Truncate)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("keys", cfg.Keys)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "elide")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("ELIDE")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Expand paths after loading
	config.Database.Path = expandPath(config.Database.Path)

	return &config, nil
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand tilde
	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	// Convert to absolute path if not already absolute
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Convert durations to strings for TOML readability
	dbCfg := map[string]interface{}{
		"path":    config.Database.Path,
		"timeout": config.Database.Timeout.String(),
	}

	v.Set("database", dbCfg)
	v.Set("truncate", config.Truncate)
	v.Set("ui", config.UI)
	v.Set("keys", config.Keys)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
