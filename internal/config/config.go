// Package config loads kngen settings from an optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kngen/builder"
)

// Config holds all kngen configuration.
type Config struct {
	// Vertices is the vertex count. Nil means "ask the user".
	Vertices *VertexCount `yaml:"vertices,omitempty"`

	// OutputDir is where grafo_<n>.txt is written.
	OutputDir string `yaml:"output_dir"`

	// Delimiter separates tokens within a row.
	Delimiter string `yaml:"delimiter"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// VertexCount is a vertex count read from YAML. It is parsed with
// builder.ParseVertexCount so bad values fail with builder.ErrInvalidInput.
type VertexCount int

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *VertexCount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: vertices must be a scalar: %w", node.Line, builder.ErrInvalidInput)
	}
	n, err := builder.ParseVertexCount(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: vertices: %w", node.Line, err)
	}
	*v = VertexCount(n)
	return nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Delimiter: " ",
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Vertices != nil && (*c.Vertices < 0 || *c.Vertices > builder.MaxVertices) {
		return fmt.Errorf("invalid vertices: %d (must be in [0, %d]): %w", *c.Vertices, builder.MaxVertices, builder.ErrInvalidInput)
	}
	if c.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if strings.ContainsAny(c.Delimiter, "\r\n") {
		return fmt.Errorf("delimiter must not contain line breaks: %q", c.Delimiter)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	return nil
}
