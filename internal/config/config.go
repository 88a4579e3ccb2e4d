// Package config resolves generator settings from layered sources.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"header-generator/internal/common"
)

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatDump = "dump"
)

var formats = []string{FormatText, FormatYAML, FormatDump}

// Settings is one configuration layer. Nil fields are unset and fall through
// to the next layer.
type Settings struct {
	// Documentation includes doc comments in the output.
	Documentation *bool `yaml:"documentation"`
	// Format is one of text, yaml, dump.
	Format *string `yaml:"format"`
	// IncludeOpaque emits non repr(C) structs as opaque items.
	IncludeOpaque *bool `yaml:"include_opaque"`
}

// Config is the fully resolved configuration.
type Config struct {
	Documentation bool
	Format        string
	IncludeOpaque bool
}

// Defaults returns the bottom layer; every field is set.
func Defaults() Settings {
	doc, opaque, format := true, true, FormatText

	return Settings{
		Documentation: &doc,
		Format:        &format,
		IncludeOpaque: &opaque,
	}
}

// Resolve combines layers, highest precedence first. Each setting takes the
// first layer that defines it.
func Resolve(layers ...Settings) (*Config, error) {
	doc := pick(layers, func(s Settings) *bool { return s.Documentation })
	format := pick(layers, func(s Settings) *string { return s.Format })
	opaque := pick(layers, func(s Settings) *bool { return s.IncludeOpaque })

	if doc == nil || format == nil || opaque == nil {
		return nil, errors.New("incomplete configuration: include Defaults() as the last layer")
	}

	cfg := &Config{
		Documentation: *doc,
		Format:        *format,
		IncludeOpaque: *opaque,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func pick[T any](layers []Settings, get func(Settings) *T) *T {
	candidates := make([]*T, 0, len(layers))
	for _, l := range layers {
		candidates = append(candidates, get(l))
	}

	return common.FindFirstSome(candidates...)
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("invalid format %q (expected one of %v)", c.Format, formats)
	}

	return nil
}

// LoadFromFile reads one settings layer from a YAML file.
func LoadFromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return s, nil
}
