// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import "github.com/ironclad-games/impulse2d/math/lin"

// JointKind distinguishes the two joint variants a Joint can be.
type JointKind int

const (
	// JointSpring pulls its two anchors toward a rest length.
	JointSpring JointKind = iota
	// JointHinge pins its two anchors coincident.
	JointHinge
)

// Joint connects two bodies (or one body to a fixed world anchor) with
// a bilateral constraint solved once per joint-solver pass, after all
// sub-steps. A Joint's lifetime is independent of the bodies it
// references: removing a body does not remove joints that refer to it,
// and resolving a joint whose body Handle no longer resolves is a no-op
// rather than undefined behavior (the solver loop skips it and logs).
type Joint struct {
	Kind JointKind

	BodyA Handle
	// BodyB is the zero Handle for a world-anchored joint: anchorB is
	// then interpreted directly in world space instead of local space.
	BodyB Handle

	AnchorA lin.V2 // local to BodyA.
	AnchorB lin.V2 // local to BodyB, or world space if BodyB is zero.

	// Spring fields, used when Kind == JointSpring.
	RestLength    float64
	SpringConst   float64

	BiasFactor float64

	// DisableCollisions suppresses narrow-phase detection between the
	// joint's two bodies, in addition to the implicit suppression that
	// applies to JointHinge.
	DisableCollisions bool
}

// JointDef is the input to World.AddJoint. It is a type alias of Joint,
// so the two names denote the same type and share every field.
type JointDef = Joint

// worldAnchorA returns the joint's first anchor in world space.
func worldAnchorA(j *Joint, a *Body) lin.V2 {
	rel := lin.Rotate(j.AnchorA, a.rot)
	c := a.center()
	return lin.V2{X: c.X + rel.X, Y: c.Y + rel.Y}
}

// worldAnchorB returns the joint's second anchor in world space. When
// the joint has no second body, AnchorB is already a world-space point.
func worldAnchorB(j *Joint, b *Body, hasBodyB bool) lin.V2 {
	if !hasBodyB {
		return j.AnchorB
	}
	rel := lin.Rotate(j.AnchorB, b.rot)
	c := b.center()
	return lin.V2{X: c.X + rel.X, Y: c.Y + rel.Y}
}
