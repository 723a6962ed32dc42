// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protrust Authors

// Package config handles protrust project configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the protrust.yaml project configuration file. It
// drives the standalone generate command; plugin invocations carry the
// same settings in the protoc parameter instead.
type Config struct {
	Version int `yaml:"version"`

	// DescriptorSet is the path of the serialized FileDescriptorSet to
	// generate from.
	DescriptorSet string `yaml:"descriptor_set,omitempty"`

	// Out is the directory generated units are written under.
	Out string `yaml:"out,omitempty"`

	// Extension overrides the generated units' file extension.
	Extension string `yaml:"extension,omitempty"`

	// Imports lists extra module names spliced into every generated
	// file's module in the manifest.
	Imports []string `yaml:"imports,omitempty"`
}

// Load reads a Config from a file path. Unknown keys are rejected so a
// typoed option fails the run instead of being silently ignored.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Extension != "" && !strings.HasPrefix(c.Extension, ".") {
		return fmt.Errorf("extension must start with '.', got %q", c.Extension)
	}
	return nil
}
