// Package config holds the migration configuration: the category map, the
// acronym table, file conventions and the literal header stamps. All of it is
// fixed configuration data, not derived from content.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/wikimigrate/internal/wikititle"
)

// CategoryMapping maps a source subdirectory to a human-readable category
// label. List order is walk order and therefore the index's first-seen group
// order.
type CategoryMapping struct {
	Dir   string `yaml:"dir"`
	Label string `yaml:"label"`
}

// Acronym is one ordered acronym restoration entry. Order is contract: later
// entries can rewrite text produced by earlier ones.
type Acronym struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// HeaderConfig carries the literal stamp values written into page headers.
type HeaderConfig struct {
	LastUpdated string `yaml:"last_updated"`
	Attribution string `yaml:"attribution"`
}

// Config represents the application configuration.
type Config struct {
	Categories      []CategoryMapping `yaml:"categories"`
	DefaultCategory string            `yaml:"default_category"`
	Acronyms        []Acronym         `yaml:"acronyms"`
	Extension       string            `yaml:"extension"`
	Reserved        []string          `yaml:"reserved"`
	IndexFile       string            `yaml:"index_file"`
	Header          HeaderConfig      `yaml:"header"`
}

// Default returns the built-in configuration, matching the documentation
// layout the tool was written for.
func Default() *Config {
	cfg := &Config{
		Categories: []CategoryMapping{
			{Dir: "business-plan", Label: "Business Documentation"},
			{Dir: "technical", Label: "Technical Documentation"},
			{Dir: "appendices", Label: "Supporting Documentation"},
			{Dir: "runbooks", Label: "Operations & Runbooks"},
			{Dir: "sessions", Label: "Project Management"},
			{Dir: "summaries", Label: "Project Management"},
			{Dir: "guides", Label: "Development Guides"},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. Environment variables
// referenced in the YAML are expanded; a .env/.env.local file is loaded first
// without overriding existing process environment.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, p := range []string{".env", ".env.local"} {
		if err := godotenv.Load(p); err == nil {
			return
		}
	}
}

func (c *Config) applyDefaults() {
	if len(c.Acronyms) == 0 {
		for _, r := range wikititle.DefaultTable() {
			c.Acronyms = append(c.Acronyms, Acronym{From: r.From, To: r.To})
		}
	}
	if c.DefaultCategory == "" {
		c.DefaultCategory = "Project Documentation"
	}
	if c.Extension == "" {
		c.Extension = ".md"
	}
	if len(c.Reserved) == 0 {
		c.Reserved = []string{"README.md", "CLAUDE.md", "CLAUDE.local.md"}
	}
	if c.IndexFile == "" {
		c.IndexFile = "_Content-Index.md"
	}
	if c.Header.LastUpdated == "" {
		// Migration freeze stamp; the wiki takes over as source of truth.
		c.Header.LastUpdated = "August 12, 2025"
	}
	if c.Header.Attribution == "" {
		c.Header.Attribution = "This page is part of the project documentation. Please keep it current as the project evolves."
	}
}

// Validate rejects category entries that would silently misfile pages.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Categories))
	for _, m := range c.Categories {
		if m.Dir == "" || m.Label == "" {
			return fmt.Errorf("category mapping needs both dir and label (got dir=%q label=%q)", m.Dir, m.Label)
		}
		if seen[m.Dir] {
			return fmt.Errorf("duplicate category dir %q", m.Dir)
		}
		seen[m.Dir] = true
	}
	for _, a := range c.Acronyms {
		if a.From == "" {
			return fmt.Errorf("acronym entry with empty 'from'")
		}
	}
	return nil
}

// AcronymTable converts the configured acronym entries into the normalizer's
// replacement table, preserving order.
func (c *Config) AcronymTable() []wikititle.Replacement {
	table := make([]wikititle.Replacement, 0, len(c.Acronyms))
	for _, a := range c.Acronyms {
		table = append(table, wikititle.Replacement{From: a.From, To: a.To})
	}
	return table
}
