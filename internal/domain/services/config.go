package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fredcamaral/deckgen/internal/domain/entities"
	"github.com/fredcamaral/deckgen/internal/domain/ports"
)

// ConfigService resolves the effective configuration
type ConfigService struct {
	loader ports.ConfigLoader
	merger ports.ConfigMerger
}

// NewConfigService creates a new configuration service
func NewConfigService(loader ports.ConfigLoader, merger ports.ConfigMerger) *ConfigService {
	return &ConfigService{
		loader: loader,
		merger: merger,
	}
}

// LoadConfig merges defaults, the optional config file at path and CLI
// flags, in that order of precedence. An empty path skips the file.
func (s *ConfigService) LoadConfig(ctx context.Context, path string, flags map[string]interface{}) (*entities.Config, error) {
	configs := []*entities.Config{s.GetDefaultConfig()}

	if path != "" {
		fileConfig, err := s.loader.Load(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		configs = append(configs, fileConfig)
	}

	finalConfig := s.merger.ApplyFlags(s.merger.Merge(configs...), flags)

	if err := s.ValidateConfig(finalConfig); err != nil {
		return nil, fmt.Errorf("final config validation: %w", err)
	}

	return finalConfig, nil
}

// GetDefaultConfig returns the default configuration
func (s *ConfigService) GetDefaultConfig() *entities.Config {
	return s.merger.Merge()
}

// ValidateConfig validates a configuration
func (s *ConfigService) ValidateConfig(config *entities.Config) error {
	if config == nil {
		return errors.New("config cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", entities.ErrInvalidConfig, err)
	}

	return nil
}
