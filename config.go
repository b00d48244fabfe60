package lox

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds interactive-session settings read from a YAML file.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"` // "" disables history
	Debug       bool   `yaml:"debug"`
	Color       bool   `yaml:"color"`
}

// ConfigError aggregates validation failures.
type ConfigError struct {
	Path   string
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config ")
	b.WriteString(e.Path)
	b.WriteString(" is invalid:")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

func DefaultConfig() Config {
	return Config{
		Prompt:      "> ",
		HistoryFile: "~/.glox_history",
	}
}

// DefaultConfigPath resolves $GLOX_CONFIG, then ~/.glox.yaml. It returns ""
// when neither can be determined.
func DefaultConfigPath() string {
	if p := os.Getenv("GLOX_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".glox.yaml")
}

// LoadConfig reads path over the defaults. A missing file or empty path
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		cfg.HistoryFile = expandHome(cfg.HistoryFile)
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.HistoryFile = expandHome(cfg.HistoryFile)
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(path); err != nil {
		return cfg, err
	}

	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

func (c *Config) validate(path string) error {
	var issues []string
	if c.Prompt == "" {
		issues = append(issues, "prompt must not be empty")
	}
	if strings.ContainsAny(c.Prompt, "\n\r") {
		issues = append(issues, fmt.Sprintf("prompt must be a single line, got %q", c.Prompt))
	}
	if len(issues) > 0 {
		return &ConfigError{Path: path, Issues: issues}
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
