// Package config loads the optional site.yaml configuration file.
//
// The generator is driven by filesystem conventions, so every setting has a
// default and the config file may be absent entirely.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sitetree/internal/errors"
)

// Default reserved template filenames. Files with these names are never
// enumerated as documents of their category.
const (
	DefaultDocumentTemplate = "_markdown.html"
	DefaultIndexTemplate    = "_index.html"
)

// Config represents the application configuration
type Config struct {
	Root      string          `yaml:"root,omitempty"`
	Output    string          `yaml:"output,omitempty"`
	Templates TemplatesConfig `yaml:"templates,omitempty"`
}

// TemplatesConfig names the two reserved template files per directory.
type TemplatesConfig struct {
	Document string `yaml:"document,omitempty"` // per-document page template
	Index    string `yaml:"index,omitempty"`    // per-category listing template
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. A missing file is not an
// error; the defaults are returned instead.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists. Values already present in the process
	// environment are not overwritten.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.ConfigLoadFailed(configPath, err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, errors.ConfigLoadFailed(configPath, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Output == "" {
		c.Output = "dist"
	}
	if c.Templates.Document == "" {
		c.Templates.Document = DefaultDocumentTemplate
	}
	if c.Templates.Index == "" {
		c.Templates.Index = DefaultIndexTemplate
	}
}
