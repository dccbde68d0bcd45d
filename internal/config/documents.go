package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textfinder-agent/internal/store"
)

const DefaultDocumentsPath = "configs/documents.yaml"

func LoadDocumentsConfig(path string) (*DocumentsConfig, error) {
	if path == "" {
		path = DefaultDocumentsPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg DocumentsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *DocumentsConfig) {
	if len(cfg.Suggestions) == 0 {
		cfg.Suggestions = append([]string(nil), store.DefaultSuggestions...)
	}

	for i := range cfg.Documents {
		doc := &cfg.Documents[i]
		doc.Title = strings.TrimSpace(doc.Title)
		doc.Snippet = strings.TrimSpace(doc.Snippet)
		doc.Link = strings.TrimSpace(doc.Link)
	}
}

func (c *DocumentsConfig) Validate() error {
	if len(c.Documents) == 0 {
		return fmt.Errorf("no documents configured")
	}

	for i, doc := range c.Documents {
		if !doc.Source.Valid() {
			return fmt.Errorf("document %d: invalid source %q (want %s or %s)", i, doc.Source, models.SourceTeams, models.SourceOutlook)
		}
		if doc.Title == "" {
			return fmt.Errorf("document %d: missing title", i)
		}
		if doc.Link == "" {
			return fmt.Errorf("document %d: missing link", i)
		}
		u, err := url.Parse(doc.Link)
		if err != nil || !u.IsAbs() {
			return fmt.Errorf("document %d: invalid link %q", i, doc.Link)
		}
	}

	return nil
}
