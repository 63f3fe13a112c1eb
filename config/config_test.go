// Copyright © 2024 Galvanized Logic Inc.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
cell_size: 4
substeps: 8
joint_iterations: 3
gravity:
  x: 0
  y: 9.8
mass_scale: 0.0002
air_density: 0.00001
frustum_sleeping: true
body_capacity: 512
joint_capacity: 64
pair_buckets: 256
`

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned %v", err)
	}
	if cfg.CellSize != 4 {
		t.Errorf("got CellSize %f, wanted 4", cfg.CellSize)
	}
	if cfg.Substeps != 8 {
		t.Errorf("got Substeps %d, wanted 8", cfg.Substeps)
	}
	if cfg.Gravity.Y != 9.8 {
		t.Errorf("got Gravity.Y %f, wanted 9.8", cfg.Gravity.Y)
	}
	if !cfg.FrustumSleeping {
		t.Error("expected FrustumSleeping true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("cell_size: [this is not a number")); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestParseLeavesUnsetFieldsZero(t *testing.T) {
	cfg, err := Parse([]byte("cell_size: 2\n"))
	if err != nil {
		t.Fatalf("Parse returned %v", err)
	}
	if cfg.Substeps != 0 {
		t.Errorf("got Substeps %d, wanted 0 (defaults applied later by NewWorld)", cfg.Substeps)
	}
}
