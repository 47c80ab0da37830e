/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for design tokens tooling.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/tsomet/schema"
)

// Config represents the design tokens configuration.
type Config struct {
	// Prefix is the global CSS/SCSS variable prefix.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Separator joins group path segments in flattened variable names.
	Separator string `yaml:"separator" json:"separator"`

	// Selector is the CSS block selector (":root" or ":host").
	Selector string `yaml:"selector" json:"selector"`

	// Schema forces a specific schema version (optional).
	// Valid values: "2022", "2025"
	Schema string `yaml:"schema" json:"schema"`

	// Files specifies token files to load.
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec represents a token file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// Prefix overrides the global variable prefix for this file.
	Prefix string `yaml:"prefix" json:"prefix"`

	// Format overrides format detection: "dtcg" or "css".
	Format string `yaml:"format" json:"format"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{}
}

// SchemaVersion returns the parsed schema version from the Schema field.
// Returns schema.Unknown if the field is empty or invalid.
func (c *Config) SchemaVersion() schema.Version {
	if c.Schema == "" {
		return schema.Unknown
	}
	v, err := schema.FromString(c.Schema)
	if err != nil {
		return schema.Unknown
	}
	return v
}

// PrefixForFile returns the variable prefix for a path, applying any
// file-level override.
func (c *Config) PrefixForFile(path string) string {
	for _, spec := range c.Files {
		if spec.Path == path && spec.Prefix != "" {
			return spec.Prefix
		}
	}
	return c.Prefix
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
