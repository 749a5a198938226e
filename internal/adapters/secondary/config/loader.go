package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// TOMLLoader implements the ConfigLoader interface using TOML files
type TOMLLoader struct{}

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Supports reports whether path has a .toml extension
func (l *TOMLLoader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// Load loads and validates a TOML configuration file
func (l *TOMLLoader) Load(ctx context.Context, path string) (*entities.Config, error) {
	data, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	var config entities.Config
	meta, err := toml.Decode(string(data), &config)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w in %s: unknown key %q", entities.ErrInvalidConfig, path, undecoded[0].String())
	}

	return validated(&config, path)
}

// YAMLLoader implements the ConfigLoader interface using YAML files
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML configuration loader
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Supports reports whether path has a .yaml or .yml extension
func (l *YAMLLoader) Supports(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// Load loads and validates a YAML configuration file
func (l *YAMLLoader) Load(ctx context.Context, path string) (*entities.Config, error) {
	data, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	var config entities.Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML from %s: %w", path, err)
	}

	return validated(&config, path)
}

// FileLoader picks a loader by file extension
type FileLoader struct {
	loaders []ports.ConfigLoader
}

// NewFileLoader creates a loader for TOML and YAML config files
func NewFileLoader() *FileLoader {
	return &FileLoader{
		loaders: []ports.ConfigLoader{NewTOMLLoader(), NewYAMLLoader()},
	}
}

// Supports reports whether any registered loader handles path
func (l *FileLoader) Supports(path string) bool {
	for _, loader := range l.loaders {
		if loader.Supports(path) {
			return true
		}
	}
	return false
}

// Load dispatches to the loader for path's extension
func (l *FileLoader) Load(ctx context.Context, path string) (*entities.Config, error) {
	for _, loader := range l.loaders {
		if loader.Supports(path) {
			return loader.Load(ctx, path)
		}
	}

	return nil, fmt.Errorf("%w: unsupported config format %q (use .toml, .yaml or .yml)", entities.ErrInvalidConfig, filepath.Ext(path))
}

// readConfig reads a config file the user named explicitly
func readConfig(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the --config flag
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return data, nil
}

func validated(config *entities.Config, path string) (*entities.Config, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w in %s: %w", entities.ErrInvalidConfig, path, err)
	}
	return config, nil
}
