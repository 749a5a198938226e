package config

import (
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// ConfigMerger merges configuration layers
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence.
// Empty fields never override.
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])
	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Level = string(entities.LogLevelDebug)
	}

	return result
}

func (m *ConfigMerger) mergeInto(dst, src *entities.Config) {
	if src.Deck.Lang != "" {
		dst.Deck.Lang = src.Deck.Lang
	}

	if src.Output.DirMode != "" {
		dst.Output.DirMode = src.Output.DirMode
	}
	if src.Output.FileMode != "" {
		dst.Output.FileMode = src.Output.FileMode
	}

	if src.Logging.Level != "" {
		dst.Logging.Level = src.Logging.Level
	}
}

func deepCopy(config *entities.Config) *entities.Config {
	if config == nil {
		return GetDefaultConfig()
	}
	c := *config
	return &c
}
