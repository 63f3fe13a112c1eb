// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

// step.go implements the per-Step sub-step loop described in the
// design's step orchestrator pseudocode: integrate, rebuild the spatial
// hash, reset the pair table, sweep occupied buckets for candidate
// pairs, narrow-phase test, generate contacts, separate, resolve, fire
// callbacks — repeated Substeps times, followed by JointIterations
// passes of the joint solver.

// Step advances the simulation by dt, split into w.cfg.Substeps
// sub-steps of size dt/Substeps. Returns ErrInvalidTimeStep and skips
// all work if dt is not strictly positive.
func (w *World) Step(dt float64) error {
	if dt <= 0 {
		return ErrInvalidTimeStep
	}
	h := dt / float64(w.cfg.Substeps)

	for i := 0; i < w.cfg.Substeps; i++ {
		w.integrateAll(h)
		w.rebuildHash()
		w.pairs.reset()
		w.debug.ContactChecks, w.debug.ContactsFound, w.debug.CollisionPairs = 0, 0, 0

		w.hash.forEachOccupiedBucket(func(bucket []Handle) {
			for bi := 0; bi < len(bucket); bi++ {
				for bj := bi + 1; bj < len(bucket); bj++ {
					w.processCandidate(bucket[bi], bucket[bj])
				}
			}
		})
		w.debug.WorldNodeCount = w.occupiedBucketCount()
	}

	for i := 0; i < w.cfg.JointIterations; i++ {
		w.joints.each(func(_ Handle, j *Joint) {
			w.resolveJoint(j, dt)
		})
	}
	return nil
}

func (w *World) integrateAll(h float64) {
	w.debug.SleepingCount = 0
	w.bodies.each(func(handle Handle, b *Body) {
		if w.cfg.FrustumSleeping && !w.inFrustum(b) {
			w.debug.SleepingCount++
			return
		}
		if !b.active() {
			return
		}
		b.integrate(h, w.cfg.Gravity, w.cfg.AirDensity, w.cfg.MassScale)
	})
}

func (w *World) inFrustum(b *Body) bool {
	box := b.aabb()
	return box.Overlaps(&w.cfg.Frustum)
}

func (w *World) rebuildHash() {
	w.hash.reset()
	w.bodies.each(func(handle Handle, b *Body) {
		w.hash.insert(handle, b.aabb())
	})
}

func (w *World) occupiedBucketCount() int {
	n := 0
	for _, bucket := range w.hash.buckets {
		if len(bucket) > 0 {
			n++
		}
	}
	return n
}

// processCandidate runs one unordered candidate pair through
// should_collide, pair dedup, narrow phase, and (for a real hit)
// contact generation plus resolution, per the step pseudocode.
func (w *World) processCandidate(ha, hb Handle) {
	w.debug.ContactChecks++
	a, aok := w.bodies.get(ha)
	b, bok := w.bodies.get(hb)
	if !aok || !bok {
		return
	}
	if !w.shouldCollide(ha, a, hb, b) {
		return
	}
	if w.pairs.seen(ha, hb) {
		return
	}

	hit, normal, depth := w.collide.detect(a, b)
	if !hit {
		return
	}
	w.pairs.mark(ha, hb)
	w.debug.CollisionPairs++

	if a.isTrigger || b.isTrigger {
		if w.cfg.OnTrigger != nil {
			w.cfg.OnTrigger(ha, hb)
		}
		return
	}

	contacts := generateContacts(a, b, normal)
	separate(a, b, normal, depth)
	if len(contacts) == 0 {
		return
	}
	w.debug.ContactsFound += len(contacts)
	resolve(a, b, normal, contacts)
	if w.cfg.OnCollision != nil {
		w.cfg.OnCollision(ha, hb)
	}
}

// shouldCollide implements the should_collide predicate: false if both
// bodies are static, both are triggers, their collision-mask layers
// don't overlap, or a hinge joint (or an explicit disable_collisions
// joint) connects them. The predicate is symmetric in (A, B) by
// construction.
func (w *World) shouldCollide(ha Handle, a *Body, hb Handle, b *Body) bool {
	if a.isStatic && b.isStatic {
		return false
	}
	if a.isTrigger && b.isTrigger {
		return false
	}
	if a.layer != 0 && b.layer != 0 && a.layer&b.layer == 0 {
		return false
	}
	collide := true
	w.joints.each(func(_ Handle, j *Joint) {
		if !jointConnects(j, ha, hb) {
			return
		}
		if j.Kind == JointHinge || j.DisableCollisions {
			collide = false
		}
	})
	return collide
}

func jointConnects(j *Joint, ha, hb Handle) bool {
	return (j.BodyA == ha && j.BodyB == hb) || (j.BodyA == hb && j.BodyB == ha)
}
