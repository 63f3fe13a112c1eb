// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// Body is a single rigid body participating in a World's simulation.
// Bodies are created through World.CreateBody and referenced everywhere
// else by Handle; there is no exported pointer to a Body, matching the
// handle-based redesign of the source's raw p2d_object* arrays.
//
// Position is the shape's center for a Circle and the top-left corner
// for a Rectangle; rotation always pivots about the rectangle's
// geometric center. Rotation is stored internally in radians — the
// degrees/radians conversion happens only at the BodyDef/host boundary,
// unlike the source which converts back and forth at every angular-
// impulse use site.
type Body struct {
	shape Shape
	x, y  float64 // position.
	rot   float64 // rotation, radians.

	vx, vy float64 // linear velocity.
	avel   float64 // angular velocity, radians/sec.

	// Mass properties, derived once at creation from density and shape.
	// The solver never mutates these.
	area        float64
	mass        float64
	invMass     float64
	inertia     float64
	invInertia  float64
	restitution float64
	staticMu    float64
	dynamicMu   float64

	isStatic  bool
	isTrigger bool
	sleeping  bool
	layer     uint16

	// Host zero-copy output: the engine adds its per-step position and
	// rotation deltas into these pointers when non-nil, instead of
	// requiring the host to poll Body state every frame.
	outX, outY, outRotation *float64
	outActive               *bool

	userData interface{}
}

// BodyDef describes a Body to be created with World.CreateBody. Rotation
// is given in degrees, converted to radians once at creation.
type BodyDef struct {
	Shape Shape

	X, Y        float64
	RotationDeg float64

	Density float64

	Restitution     float64
	StaticFriction  float64
	DynamicFriction float64

	IsStatic  bool
	IsTrigger bool
	Layer     uint16

	// OutX, OutY, OutRotation, OutActive are optional host-owned
	// pointers. When non-nil, the engine writes its per-step position
	// and rotation deltas into *OutX/*OutY/*OutRotation, and consults
	// *OutActive (if non-nil) to decide whether the body is currently
	// active on the host side.
	OutX, OutY, OutRotation *float64
	OutActive               *bool

	UserData interface{}
}

// newBody derives mass properties from density and shape, applying the
// world's mass_scale multiplier, and returns the constructed Body. A
// density outside [MinDensity, MaxDensity] is still accepted — the
// caller is expected to log a warning, per the create-time "warning not
// error" rule.
func newBody(def BodyDef, massScale float64) *Body {
	b := &Body{
		shape:           def.Shape,
		x:               def.X,
		y:               def.Y,
		rot:             lin.Rad(def.RotationDeg),
		restitution:     lin.Clamp(def.Restitution, 0, 1),
		staticMu:        math.Max(0, def.StaticFriction),
		dynamicMu:       math.Max(0, def.DynamicFriction),
		isStatic:        def.IsStatic,
		isTrigger:       def.IsTrigger,
		layer:           def.Layer,
		outX:            def.OutX,
		outY:            def.OutY,
		outRotation:     def.OutRotation,
		outActive:       def.OutActive,
		userData:        def.UserData,
	}
	b.area = b.shape.area()
	if b.isStatic {
		// Static bodies carry zero mass and inertia, the system's way
		// of expressing "infinite" to the solver's invM/invI terms.
		return b
	}
	b.mass = def.Density * b.area * massScale
	if b.mass > 0 {
		b.invMass = 1.0 / b.mass
		b.inertia = b.shape.inertia(b.mass)
		if b.inertia > 0 {
			b.invInertia = 1.0 / b.inertia
		}
	}
	return b
}

// center returns the body's world-space centroid: the position itself
// for a Circle, or the position plus half-size for a Rectangle.
func (b *Body) center() lin.V2 {
	switch s := b.shape.(type) {
	case Rectangle:
		// rotation pivots about this point, so it does not move with rot.
		return lin.V2{X: b.x + s.W/2, Y: b.y + s.H/2}
	default:
		return lin.V2{X: b.x, Y: b.y}
	}
}

// obb returns the oriented bounding box of a Rectangle-shaped body. It
// panics if called on a Circle; callers must check shapeType first.
func (b *Body) obb() Obb {
	r := b.shape.(Rectangle)
	return obbToVerts(b.x, b.y, r.W, r.H, b.rot)
}

// aabb returns the body's axis aligned bounding box in world space.
func (b *Body) aabb() Abox {
	switch s := b.shape.(type) {
	case Rectangle:
		return obbToAabb(b.obb())
	case Circle:
		return circleAabb(b.x, b.y, s.R)
	default:
		return Abox{}
	}
}

// dragCoefficient returns the drag coefficient C_d used in the air-drag
// term of integrate: 2.05 for rectangles, 1.17 for circles, the two
// constants named in the integration step's air-drag formula.
func (b *Body) dragCoefficient() float64 {
	if _, ok := b.shape.(Circle); ok {
		return 1.17
	}
	return 2.05
}

// integrate advances this body's velocities and position by h = dt /
// substeps: gravity, then air drag, then symplectic position/rotation
// update. Static bodies have their velocity defensively zeroed and are
// otherwise skipped, matching the "static bodies never move" invariant.
func (b *Body) integrate(h float64, gravity lin.V2, airDensity, massScale float64) {
	if b.isStatic {
		b.vx, b.vy, b.avel = 0, 0, 0
		return
	}

	b.vx += gravity.X * h
	b.vy += gravity.Y * h

	// Air drag: F_drag = 1/2 * rho * Cd * A * v^2, opposing velocity,
	// applied per component as in the source's simplified drag model.
	cd := b.dragCoefficient()
	area := b.area * massScale
	if b.invMass > 0 {
		b.vx -= math.Copysign(0.5*airDensity*cd*area*b.vx*b.vx, b.vx) * b.invMass * h
		b.vy -= math.Copysign(0.5*airDensity*cd*area*b.vy*b.vy, b.vy) * b.invMass * h
	}

	dx, dy, dr := b.vx*h, b.vy*h, b.avel*h
	b.x += dx
	b.y += dy
	b.rot += dr

	if b.outX != nil {
		*b.outX += dx
	}
	if b.outY != nil {
		*b.outY += dy
	}
	if b.outRotation != nil {
		*b.outRotation += lin.Deg(dr)
	}
}

// combinedRestitution returns min(e_A, e_B), the coefficient of
// restitution used by the impulse solver for a colliding pair.
func combinedRestitution(a, b *Body) float64 { return math.Min(a.restitution, b.restitution) }

// combinedStaticFriction returns the averaged static friction of a pair.
func combinedStaticFriction(a, b *Body) float64 { return (a.staticMu + b.staticMu) / 2 }

// combinedDynamicFriction returns the averaged dynamic friction of a pair.
func combinedDynamicFriction(a, b *Body) float64 { return (a.dynamicMu + b.dynamicMu) / 2 }

// active reports whether the host currently considers the body active,
// used alongside frustum sleeping to decide whether to integrate it.
func (b *Body) active() bool {
	if b.outActive == nil {
		return true
	}
	return *b.outActive
}
