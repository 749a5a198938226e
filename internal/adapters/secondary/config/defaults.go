package config

import (
	"github.com/fredcamaral/deckgen/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration. No environment
// variables are consulted.
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Deck: entities.DeckConfig{
			Lang: "en",
		},
		Output: entities.OutputConfig{
			DirMode:  "0755",
			FileMode: "0644",
		},
		Logging: entities.LoggingConfig{
			Level: string(entities.LogLevelInfo),
		},
	}
}
