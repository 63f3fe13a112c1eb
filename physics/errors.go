// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "errors"

// Sentinel errors returned by the public World/Body/Joint operations.
// Check with errors.Is; the engine never panics or traps on bad input
// from the host — every failure is reported through a return value,
// matching the logged-return convention of the source p2d library.
var (
	// ErrInvalidCellSize is returned by NewWorld when the configured
	// broad-phase cell size is not strictly positive.
	ErrInvalidCellSize = errors.New("physics: cell size must be positive")

	// ErrInvalidTimeStep is returned by World.Step when dt is not
	// strictly positive. The step is skipped entirely.
	ErrInvalidTimeStep = errors.New("physics: dt must be positive")

	// ErrRegistryFull is returned by CreateBody/AddJoint when the
	// fixed-capacity registry has no free slot.
	ErrRegistryFull = errors.New("physics: registry is full")

	// ErrNotFound is returned when a Handle does not refer to a live
	// body or joint, either because it was never valid or because it
	// was removed (and possibly reused by a later create).
	ErrNotFound = errors.New("physics: handle not found")

	// ErrDanglingJoint is logged (not returned — the joint solver loop
	// has no caller to report to) when a joint's BodyA or BodyB handle
	// no longer resolves to a live body. Resolving such a joint is a
	// no-op for that pass rather than the source's documented undefined
	// behavior.
	ErrDanglingJoint = errors.New("physics: joint references a removed body")
)
