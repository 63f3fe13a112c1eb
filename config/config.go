// Copyright © 2024 Galvanized Logic Inc.

// Package config loads a physics.Config from a YAML file on disk.
package config

import (
	"fmt"
	"os"

	"github.com/ironclad-games/impulse2d/physics"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path and returns the physics.Config it
// describes. Fields left out of the file keep Go's zero value and are
// given their documented defaults later by physics.NewWorld; Load itself
// does not apply defaults or validate CellSize.
func Load(path string) (physics.Config, error) {
	var cfg physics.Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config.Load: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config.Load: yaml %w", err)
	}
	return cfg, nil
}

// Parse is Load without the file read, for configuration already held in
// memory (embedded defaults, a fetched remote document, ...).
func Parse(data []byte) (physics.Config, error) {
	var cfg physics.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config.Parse: yaml %w", err)
	}
	return cfg, nil
}
