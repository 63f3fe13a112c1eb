// Copyright © 2024 Galvanized Logic Inc.

package physics

import (
	"log/slog"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// World is the explicit simulation context: every field the source kept
// in a single process-wide p2d_state singleton lives here instead,
// threaded through every public call, per the "global state → explicit
// context" redesign note. A World is not safe for concurrent use —
// Step and the Create/Remove operations must all be called from the
// same goroutine, matching the single-threaded, cooperative concurrency
// model documented for the source.
type World struct {
	cfg Config
	log *slog.Logger

	bodies  *registry[Body]
	joints  *registry[Joint]
	hash    *spatialHash
	pairs   *pairTable
	collide *collider

	debug DebugCounters
}

// DebugCounters mirrors the host-visible diagnostic counters the source
// keeps on its world singleton: contact checks, contacts found,
// collision pairs, live object count, sleeping count, and the number of
// spatial hash buckets currently occupied ("world-node count").
type DebugCounters struct {
	ContactChecks  int
	ContactsFound  int
	CollisionPairs int
	ObjectCount    int
	SleepingCount  int
	WorldNodeCount int
}

// NewWorld creates a World from cfg, applying documented defaults to
// any zero-valued optional field. Returns ErrInvalidCellSize if
// cfg.CellSize is not strictly positive.
func NewWorld(cfg Config) (*World, error) {
	if cfg.CellSize <= 0 {
		return nil, ErrInvalidCellSize
	}
	if cfg.Substeps <= 0 {
		cfg.Substeps = defaultSubsteps
	}
	if cfg.JointIterations <= 0 {
		cfg.JointIterations = defaultJointIterations
	}
	if cfg.MassScale <= 0 {
		cfg.MassScale = defaultMassScale
	}
	if cfg.AirDensity <= 0 {
		cfg.AirDensity = defaultAirDensity
	}
	if cfg.BodyCapacity <= 0 {
		cfg.BodyCapacity = defaultBodyCapacity
	}
	if cfg.JointCapacity <= 0 {
		cfg.JointCapacity = defaultJointCapacity
	}
	if cfg.PairBuckets <= 0 {
		cfg.PairBuckets = defaultPairBuckets
	}

	w := &World{
		cfg:     cfg,
		bodies:  newRegistry[Body](cfg.BodyCapacity),
		joints:  newRegistry[Joint](cfg.JointCapacity),
		hash:    newSpatialHash(cfg.CellSize, cfg.PairBuckets),
		pairs:   newPairTable(),
		collide: newCollider(),
	}
	w.log = cfg.Log
	if w.log == nil {
		w.log = slog.Default()
	}
	return w, nil
}

// Shutdown releases the world's registries, spatial hash, and pair
// table. The World must not be used after Shutdown; this mirrors the
// source's shutdown() lifecycle call releasing its hash/pair-table
// nodes and clearing registries.
func (w *World) Shutdown() {
	w.bodies.removeAll()
	w.joints.removeAll()
	w.hash = newSpatialHash(w.cfg.CellSize, w.cfg.PairBuckets)
	w.pairs = newPairTable()
}

// CreateBody derives mass/inertia from def and registers the resulting
// Body, returning its Handle. Returns ErrRegistryFull if the body
// registry has no free slot. A density outside [MinDensity, MaxDensity]
// is logged as a warning but the body is still created.
func (w *World) CreateBody(def BodyDef) (Handle, error) {
	if !def.IsStatic && (def.Density < MinDensity || def.Density > MaxDensity) {
		w.log.Warn("body density out of range", "density", def.Density,
			"min", MinDensity, "max", MaxDensity)
	}
	b := newBody(def, w.cfg.MassScale)
	h, err := w.bodies.create(*b)
	if err != nil {
		return zeroHandle, err
	}
	w.debug.ObjectCount = w.bodies.len()
	return h, nil
}

// RemoveBody removes the body referenced by h from the registry. Per
// the source's documented behavior, this does not touch the spatial
// hash directly — the hash is rebuilt from the surviving bodies at the
// start of the next sub-step. Joints referencing h are left untouched;
// removing a body does not remove joints that reference it, per the
// Joint lifetime independence rule.
func (w *World) RemoveBody(h Handle) error {
	if !w.bodies.remove(h) {
		return ErrNotFound
	}
	w.debug.ObjectCount = w.bodies.len()
	return nil
}

// RemoveAllBodies clears the body registry.
func (w *World) RemoveAllBodies() {
	w.bodies.removeAll()
	w.debug.ObjectCount = 0
}

// AddJoint registers j and returns its Handle. Returns ErrRegistryFull
// if the joint registry has no free slot.
func (w *World) AddJoint(def JointDef) (Handle, error) {
	return w.joints.create(def)
}

// RemoveJoint removes the joint referenced by h.
func (w *World) RemoveJoint(h Handle) error {
	if !w.joints.remove(h) {
		return ErrNotFound
	}
	return nil
}

// RemoveAllJoints clears the joint registry.
func (w *World) RemoveAllJoints() { w.joints.removeAll() }

// AABB returns the world-space axis aligned bounding box of the body
// referenced by h, and whether h resolved to a live body.
func (w *World) AABB(h Handle) (Abox, bool) {
	b, ok := w.bodies.get(h)
	if !ok {
		return Abox{}, false
	}
	return b.aabb(), true
}

// OBB returns the oriented bounding box of the body referenced by h.
// Returns false for a Circle-shaped body or an unresolved handle.
func (w *World) OBB(h Handle) (Obb, bool) {
	b, ok := w.bodies.get(h)
	if !ok {
		return Obb{}, false
	}
	if _, isRect := b.shape.(Rectangle); !isRect {
		return Obb{}, false
	}
	return b.obb(), true
}

// Center returns the world-space centroid of the body referenced by h.
func (w *World) Center(h Handle) (lin.V2, bool) {
	b, ok := w.bodies.get(h)
	if !ok {
		return lin.V2{}, false
	}
	return b.center(), true
}

// ForEachIntersectingTile calls fn with the tile coordinates of every
// spatial-hash cell the body referenced by h currently overlaps,
// recomputed on demand — a debug helper for renderers that want to
// draw broad-phase tiles. fn returning false stops the iteration early.
func (w *World) ForEachIntersectingTile(h Handle, fn func(tileX, tileY int) bool) {
	b, ok := w.bodies.get(h)
	if !ok {
		return
	}
	box := b.aabb()
	minTX, minTY := w.hash.tileOf(box.SX, box.SY)
	maxTX, maxTY := w.hash.tileOf(box.LX, box.LY)
	for tx := minTX; tx <= maxTX; tx++ {
		for ty := minTY; ty <= maxTY; ty++ {
			cell := w.hash.tileBounds(tx, ty)
			if !cell.Overlaps(&box) {
				continue
			}
			if !fn(tx, ty) {
				return
			}
		}
	}
}

// Debug returns a snapshot of the world's debug counters as of the most
// recent Step (or Create/Remove) call.
func (w *World) Debug() DebugCounters { return w.debug }
