// Copyright © 2024 Galvanized Logic Inc.

// Package physics is a real-time 2D impulse-based rigid-body simulation.
// Physics applies simulated forces — gravity, air drag, collision and
// joint impulses — to a population of oriented rectangles and circles.
// A World advances bodies' positions and velocities one Step at a time,
// detecting and resolving inter-body contact and bilateral joint
// constraints along the way.
//
// Package physics is provided as part of the impulse2d engine.
package physics

import (
	"log/slog"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// Config holds the options recognized at World creation. Every field
// has a documented default applied by NewWorld when left zero-valued,
// except CellSize which is mandatory.
type Config struct {
	// CellSize is the side length of a broad-phase spatial hash tile.
	// Mandatory; NewWorld returns ErrInvalidCellSize if it is not
	// strictly positive.
	CellSize float64 `yaml:"cell_size"`

	// Substeps is the number of integrate/detect/resolve iterations
	// run per Step. Defaults to 10.
	Substeps int `yaml:"substeps"`

	// JointIterations is the number of joint-solver passes run per
	// Step, after all Substeps. Defaults to 5.
	JointIterations int `yaml:"joint_iterations"`

	// Gravity is applied to every non-static, non-sleeping body each
	// sub-step.
	Gravity lin.V2 `yaml:"gravity"`

	// MassScale multiplies density*area when deriving a body's mass at
	// creation. Defaults to 1.5e-4.
	MassScale float64 `yaml:"mass_scale"`

	// AirDensity scales the per-body air-drag force. Defaults to 1e-5.
	AirDensity float64 `yaml:"air_density"`

	// FrustumSleeping, when true, skips integration for bodies whose
	// AABB does not overlap Frustum.
	FrustumSleeping bool `yaml:"frustum_sleeping"`
	Frustum         Abox `yaml:"-"`

	// BodyCapacity and JointCapacity size the fixed-capacity body and
	// joint registries. Default to 1024 and 256.
	BodyCapacity  int `yaml:"body_capacity"`
	JointCapacity int `yaml:"joint_capacity"`

	// PairBuckets sizes the broad-phase spatial hash's bucket count.
	// Defaults to 1024.
	PairBuckets int `yaml:"pair_buckets"`

	// OnCollision and OnTrigger are invoked synchronously from within
	// Step for every resolved collision and detected trigger overlap,
	// respectively. Either may be nil. Callbacks must not create or
	// remove bodies/joints while Step is running.
	OnCollision func(a, b Handle) `yaml:"-"`
	OnTrigger   func(a, b Handle) `yaml:"-"`

	// Log receives structured diagnostics (warnings on out-of-range
	// density, dangling joints, and similar non-fatal conditions). If
	// nil, slog.Default() is used.
	Log *slog.Logger `yaml:"-"`
}

const (
	// MinDensity and MaxDensity bound the density range CreateBody
	// treats as unremarkable; values outside are logged as a warning
	// but the body is still registered, per the "warning not error"
	// rule for density.
	MinDensity = 0.1
	MaxDensity = 100.0

	defaultSubsteps        = 10
	defaultJointIterations = 5
	defaultMassScale       = 1.5e-4
	defaultAirDensity      = 1e-5
	defaultBodyCapacity    = 1024
	defaultJointCapacity   = 256
	defaultPairBuckets     = 1024
)
