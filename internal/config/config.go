// SPDX-License-Identifier: Apache-2.0

// Package config loads quote block settings from YAML and checks them
// against an embedded CUE schema.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
)

//go:embed schema.cue
var schemaSource string

// Config holds the settings shared by the CLI and the MCP server.
type Config struct {
	// BlockClass marks quote blocks inside a page.
	BlockClass string `yaml:"block_class" json:"block_class"`
	// StylePrefix selects the style token among the block's classes.
	StylePrefix string `yaml:"style_prefix" json:"style_prefix"`
	// MetadataPrefixes are the editor-owned attribute families to relay.
	MetadataPrefixes []string `yaml:"metadata_prefixes" json:"metadata_prefixes"`
	AuthorContent    string   `yaml:"author_content" json:"author_content"`
	EmptyItems       string   `yaml:"empty_items" json:"empty_items"`
	LogLevel         string   `yaml:"log_level" json:"log_level"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		BlockClass:       "quotes",
		StylePrefix:      "bg-",
		MetadataPrefixes: []string{"data-aue-", "data-richtext-"},
		AuthorContent:    "text",
		EmptyItems:       "retain",
		LogLevel:         "info",
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate unifies the config with the #Config schema.
func (c Config) Validate() error {
	cctx := cuecontext.New()
	schema := cctx.CompileString(schemaSource).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}
	if c.MetadataPrefixes == nil {
		c.MetadataPrefixes = []string{}
	}
	value := schema.Unify(cctx.Encode(c))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
