// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// solver.go implements positional separation and impulse-based collision
// resolution (normal + Coulomb friction), section 4.5 of the design.
// The formulas are grounded directly in original_source/src/resolution.c
// (_p2d_basic_resolution / _p2d_rotational_resolution) rather than in
// this package's former Bullet-derived btSequentialImpulseConstraintSolver
// port: there is no warm-started solver state between frames here, so
// the PGS/PersistentManifold framing the source used no longer applies.

// separate splits the minimum translation vector (normal * depth)
// between a and b: a static body gives the whole correction to its
// mobile partner; two mobile bodies split it 50/50.
func separate(a, b *Body, normal lin.V2, depth float64) {
	switch {
	case a.isStatic && b.isStatic:
		return
	case a.isStatic:
		moveBody(b, normal, depth)
	case b.isStatic:
		moveBody(a, normal, -depth)
	default:
		moveBody(a, normal, -depth/2)
		moveBody(b, normal, depth/2)
	}
}

func moveBody(b *Body, normal lin.V2, signedDepth float64) {
	b.x += normal.X * signedDepth
	b.y += normal.Y * signedDepth
	if b.outX != nil {
		*b.outX += normal.X * signedDepth
	}
	if b.outY != nil {
		*b.outY += normal.Y * signedDepth
	}
}

// resolve applies one pass of normal-impulse and friction-impulse
// resolution across every contact point in the manifold, per section
// 4.5. Trigger and pairs with no contacts are the caller's
// responsibility to filter out before calling resolve.
func resolve(a, b *Body, normal lin.V2, contacts []lin.V2) {
	if len(contacts) == 0 {
		return
	}
	ca, cb := a.center(), b.center()
	e := combinedRestitution(a, b)
	mu_s := combinedStaticFriction(a, b)
	mu_d := combinedDynamicFriction(a, b)
	n := float64(len(contacts))

	for _, c := range contacts {
		rA, rB := lin.V2{}, lin.V2{}
		rA.Sub(&c, &ca)
		rB.Sub(&c, &cb)
		rAPerp, rBPerp := rA.Perp(), rB.Perp()

		// relative velocity at the contact point, including each
		// body's angular contribution.
		vA := lin.V2{X: a.vx + a.avel*rAPerp.X, Y: a.vy + a.avel*rAPerp.Y}
		vB := lin.V2{X: b.vx + b.avel*rBPerp.X, Y: b.vy + b.avel*rBPerp.Y}
		vRel := lin.V2{}
		vRel.Sub(&vB, &vA)

		velAlongNormal := vRel.Dot(&normal)
		if velAlongNormal > 0 {
			continue // separating.
		}

		rAPerpDotN := rAPerp.Dot(&normal)
		rBPerpDotN := rBPerp.Dot(&normal)
		k := a.invMass + b.invMass +
			rAPerpDotN*rAPerpDotN*a.invInertia +
			rBPerpDotN*rBPerpDotN*b.invInertia
		if k == 0 {
			continue
		}

		jn := -(1 + e) * velAlongNormal / k / n
		applyImpulse(a, b, normal, jn, rA, rB)

		// recompute relative velocity after the normal impulse before
		// resolving friction along the tangent.
		vA = lin.V2{X: a.vx + a.avel*rAPerp.X, Y: a.vy + a.avel*rAPerp.Y}
		vB = lin.V2{X: b.vx + b.avel*rBPerp.X, Y: b.vy + b.avel*rBPerp.Y}
		vRel.Sub(&vB, &vA)

		tangent := lin.V2{}
		tangentialComponent := vRel.Dot(&normal)
		tangent.X = vRel.X - normal.X*tangentialComponent
		tangent.Y = vRel.Y - normal.Y*tangentialComponent
		if tangent.LenSqr() < lin.Epsilon {
			continue
		}
		tangent = *tangent.Unit()

		rAPerpDotT := rAPerp.Dot(&tangent)
		rBPerpDotT := rBPerp.Dot(&tangent)
		kt := a.invMass + b.invMass +
			rAPerpDotT*rAPerpDotT*a.invInertia +
			rBPerpDotT*rBPerpDotT*b.invInertia
		if kt == 0 {
			continue
		}

		jt := -vRel.Dot(&tangent) / kt / n
		// Coulomb friction pyramid: static friction holds the
		// tangential impulse if it is within the static-friction cone
		// of the normal impulse, otherwise clamp to sliding friction.
		if math.Abs(jt) > mu_s*jn {
			jt = -mu_d * jn
		}
		applyImpulse(a, b, tangent, jt, rA, rB)
	}
}

// applyImpulse applies +/- j*dir to a and b's linear velocities (scaled
// by inverse mass) and the corresponding rotational impulse to their
// angular velocities (scaled by inverse inertia).
func applyImpulse(a, b *Body, dir lin.V2, j float64, rA, rB lin.V2) {
	impulse := lin.V2{}
	impulse.Scale(&dir, j)

	a.vx -= impulse.X * a.invMass
	a.vy -= impulse.Y * a.invMass
	b.vx += impulse.X * b.invMass
	b.vy += impulse.Y * b.invMass

	a.avel -= rA.Cross(&impulse) * a.invInertia
	b.avel += rB.Cross(&impulse) * b.invInertia
}
