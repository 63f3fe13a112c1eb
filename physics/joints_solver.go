// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// joints_solver.go resolves Spring and Hinge joints, one constraint
// impulse per joint per pass, called after all of a Step's sub-steps.

// resolveJoint dispatches a single joint to its constraint solver. h is
// the time step used to scale the bias term; Step passes its full dt,
// not the sub-step size. A joint whose body
// handles no longer resolve is logged and skipped rather than treated
// as undefined behavior.
func (w *World) resolveJoint(j *Joint, h float64) {
	a, ok := w.bodies.get(j.BodyA)
	if !ok {
		w.log.Warn("joint dangling", "error", ErrDanglingJoint, "body", "A")
		return
	}
	hasBodyB := j.BodyB != zeroHandle
	var b *Body
	if hasBodyB {
		b, ok = w.bodies.get(j.BodyB)
		if !ok {
			w.log.Warn("joint dangling", "error", ErrDanglingJoint, "body", "B")
			return
		}
	}

	switch j.Kind {
	case JointSpring:
		resolveSpring(j, a, b, hasBodyB, h)
	case JointHinge:
		resolveHinge(j, a, b, hasBodyB, h)
	default:
		w.log.Warn("unknown joint kind", "kind", j.Kind)
	}
}

// resolveSpring implements the Millington/Newcastle spring formulation
// of section 4.6: a scalar impulse along the unit direction between the
// two anchors, biased by (rest length - current length).
func resolveSpring(j *Joint, a, b *Body, hasBodyB bool, h float64) {
	anchorA := worldAnchorA(j, a)
	anchorB := worldAnchorB(j, b, hasBodyB)

	delta := lin.V2{}
	delta.Sub(&anchorA, &anchorB)
	d := delta.Len()
	offset := d - j.RestLength
	if lin.AeqZ(offset) {
		return
	}

	u := lin.V2{}
	u.Scale(&delta, -1/d)

	mc := a.invMass
	if hasBodyB {
		mc += b.invMass
	}
	if mc == 0 {
		return
	}

	vA := lin.V2{X: a.vx, Y: a.vy}
	vRel := vA
	if hasBodyB {
		vB := lin.V2{X: b.vx, Y: b.vy}
		vRel.Sub(&vA, &vB)
	}

	bias := -(j.BiasFactor / h) * offset * j.SpringConst
	lambda := -(vRel.Dot(&u) + bias) / mc

	impulse := lin.V2{}
	impulse.Scale(&u, lambda)
	a.vx += impulse.X * a.invMass
	a.vy += impulse.Y * a.invMass
	if hasBodyB {
		b.vx -= impulse.X * b.invMass
		b.vy -= impulse.Y * b.invMass
	}
}

// resolveHinge pins anchorA to anchorB with a proper 2x2 effective-mass
// matrix, Box2D-Lite revolute-joint style, replacing the source's crude
// positional-pinning-plus-velocity-zeroing hinge (see the design notes'
// "Hinge joint is incomplete" entry): the constraint is solved as a
// velocity-level point-to-point impulse with a Baumgarte position bias,
// without clobbering the bodies' linear velocities outright. The impulse
// acts at the anchors, so it changes both linear and angular velocity;
// the relative rotation of the two bodies is left unconstrained.
func resolveHinge(j *Joint, a, b *Body, hasBodyB bool, h float64) {
	anchorA := worldAnchorA(j, a)
	anchorB := worldAnchorB(j, b, hasBodyB)

	ca := a.center()
	rA := lin.V2{}
	rA.Sub(&anchorA, &ca)

	var rB lin.V2
	var invMassB, invInertiaB, bvx, bvy, bavel float64
	if hasBodyB {
		cb := b.center()
		rB.Sub(&anchorB, &cb)
		invMassB, invInertiaB = b.invMass, b.invInertia
		bvx, bvy, bavel = b.vx, b.vy, b.avel
	}

	// K = [invMassA+invMassB+iA*rA.y^2+iB*rB.y^2   -iA*rA.x*rA.y-iB*rB.x*rB.y]
	//     [-iA*rA.x*rA.y-iB*rB.x*rB.y   invMassA+invMassB+iA*rA.x^2+iB*rB.x^2]
	k11 := a.invMass + invMassB + a.invInertia*rA.Y*rA.Y + invInertiaB*rB.Y*rB.Y
	k12 := -a.invInertia*rA.X*rA.Y - invInertiaB*rB.X*rB.Y
	k22 := a.invMass + invMassB + a.invInertia*rA.X*rA.X + invInertiaB*rB.X*rB.X

	det := k11*k22 - k12*k12
	if math.Abs(det) < lin.Epsilon {
		return
	}
	invDet := 1 / det

	// velocity at each anchor point, including angular contribution.
	rAPerp := rA.Perp()
	vAx := a.vx + a.avel*rAPerp.X
	vAy := a.vy + a.avel*rAPerp.Y
	var vBx, vBy float64
	if hasBodyB {
		rBPerp := rB.Perp()
		vBx = bvx + bavel*rBPerp.X
		vBy = bvy + bavel*rBPerp.Y
	}
	cdotX, cdotY := vBx-vAx, vBy-vAy

	positionError := lin.V2{}
	positionError.Sub(&anchorB, &anchorA)
	bias := j.BiasFactor / h
	rhsX := -cdotX - bias*positionError.X
	rhsY := -cdotY - bias*positionError.Y

	impulseX := invDet * (k22*rhsX - k12*rhsY)
	impulseY := invDet * (k11*rhsY - k12*rhsX)

	a.vx -= impulseX * a.invMass
	a.vy -= impulseY * a.invMass
	a.avel -= rA.Cross(&lin.V2{X: impulseX, Y: impulseY}) * a.invInertia
	if hasBodyB {
		b.vx += impulseX * b.invMass
		b.vy += impulseY * b.invMass
		b.avel += rB.Cross(&lin.V2{X: impulseX, Y: impulseY}) * b.invInertia
	}
}
