package entities

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"golang.org/x/text/language"
)

// Config represents the complete application configuration
type Config struct {
	Deck    DeckConfig    `toml:"deck" yaml:"deck"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	if err := c.Deck.Validate(); err != nil {
		return fmt.Errorf("deck config: %w", err)
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// DeckConfig contains document-level settings that do not affect the theme
type DeckConfig struct {
	Lang string `toml:"lang" yaml:"lang"` // BCP 47 tag for <html lang>
}

// Validate validates deck configuration
func (d DeckConfig) Validate() error {
	if d.Lang == "" {
		return nil
	}

	if _, err := language.Parse(d.Lang); err != nil {
		return fmt.Errorf("invalid lang %q: %w", d.Lang, err)
	}

	return nil
}

// GetLang returns the canonical language tag, defaulting to "en"
func (d DeckConfig) GetLang() string {
	if d.Lang == "" {
		return "en"
	}

	tag, err := language.Parse(d.Lang)
	if err != nil {
		return "en"
	}
	return tag.String()
}

// OutputConfig contains permissions for the written document
type OutputConfig struct {
	DirMode  string `toml:"dir_mode" yaml:"dir_mode"`   // octal, e.g. "0755"
	FileMode string `toml:"file_mode" yaml:"file_mode"` // octal, e.g. "0644"
}

// Validate validates output configuration
func (o OutputConfig) Validate() error {
	if _, err := parseMode(o.DirMode); err != nil {
		return fmt.Errorf("dir_mode: %w", err)
	}

	if _, err := parseMode(o.FileMode); err != nil {
		return fmt.Errorf("file_mode: %w", err)
	}

	return nil
}

// GetDirMode returns the directory permission; empty means 0755
func (o OutputConfig) GetDirMode() fs.FileMode {
	if mode, err := parseMode(o.DirMode); err == nil && mode != 0 {
		return mode
	}
	return 0o755
}

// GetFileMode returns the file permission; empty means 0644
func (o OutputConfig) GetFileMode() fs.FileMode {
	if mode, err := parseMode(o.FileMode); err == nil && mode != 0 {
		return mode
	}
	return 0o644
}

func parseMode(s string) (fs.FileMode, error) {
	if s == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%q is not an octal permission", s)
	}

	if v > 0o777 {
		return 0, errors.New("permission bits must be within 0777")
	}

	if v == 0 {
		return 0, errors.New("permission bits must not be zero")
	}

	return fs.FileMode(v), nil
}

// LogLevel represents logging level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
}

// Validate validates logging configuration
func (l LoggingConfig) Validate() error {
	switch LogLevel(l.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		// Valid levels
	case "":
		// Empty is okay, will use default
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", l.Level)
	}

	return nil
}

// GetLevel returns the log level with default
func (l LoggingConfig) GetLevel() LogLevel {
	if l.Level == "" {
		return LogLevelInfo
	}
	return LogLevel(l.Level)
}
