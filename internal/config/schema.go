package config

import "github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"

// DocumentsConfig is the on-disk form of the document store.
type DocumentsConfig struct {
	Documents   []models.Record `yaml:"documents"`
	Suggestions []string        `yaml:"suggestions"`
}
