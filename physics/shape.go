// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// Shape is a physics collision primitive: either a Rectangle or a Circle.
// A Shape is immutable after creation; its dimensions never change once
// a body has been built around it. Unlike the source's union-with-a-type-
// field (p2d_shape_type in original_source/include/p2d/types.h), Shape is
// a Go sum type — its methods are unexported, so Rectangle and Circle
// below are its only members. The narrow-phase collider indexes its
// algorithm table by shapeType(); contact generation uses type
// assertions on the two shapes.
type Shape interface {
	shapeType() shapeKind
	area() float64
	// inertia returns the moment of inertia for a body of the given mass
	// built from this shape, about its own centroid.
	inertia(mass float64) float64
}

type shapeKind int

const (
	kindRectangle shapeKind = iota
	kindCircle
)

// Rectangle is an oriented rectangle shape: top-left (x, y), size (w, h),
// rotation stored separately on the owning Body. Rotation pivots about
// the rectangle's geometric center, not its top-left corner.
type Rectangle struct {
	W, H float64
}

// NewRectangle creates a Rectangle shape. Negative dimensions are turned
// positive; zero dimensions are accepted but not recommended.
func NewRectangle(w, h float64) Rectangle { return Rectangle{math.Abs(w), math.Abs(h)} }

func (r Rectangle) shapeType() shapeKind { return kindRectangle }
func (r Rectangle) area() float64        { return r.W * r.H }

// inertia uses I = m*(w^2 + h^2)/12 for a rectangle about its centroid.
func (r Rectangle) inertia(mass float64) float64 {
	return mass * (r.W*r.W + r.H*r.H) / 12.0
}

// Circle is a circle shape of the given radius, centered at the body's
// position.
type Circle struct {
	R float64
}

// NewCircle creates a Circle shape. Negative radius values are turned
// positive.
func NewCircle(radius float64) Circle { return Circle{math.Abs(radius)} }

func (c Circle) shapeType() shapeKind { return kindCircle }
func (c Circle) area() float64        { return math.Pi * c.R * c.R }

// inertia uses I = m*r^2/2 for a circle about its centroid.
func (c Circle) inertia(mass float64) float64 {
	return mass * c.R * c.R / 2.0
}

// Shape
// ============================================================================
// Obb / Abox

// Obb is an oriented bounding box: the four world-space vertices of a
// rotated rectangle, in the fixed order top-left, top-right, bottom-right,
// bottom-left (post-rotation). For a Circle, callers derive an Obb-shaped
// Abox directly rather than going through vertices.
type Obb struct {
	Verts [4]lin.V2
}

// obbToVerts computes the four world-space vertices of a rectangle with
// top-left (x, y), size (w, h), rotated radians counter-clockwise about
// its own center. Mirrors the source's p2d_obb_to_verts (grounded on
// original_source/src/helpers.c) generalized from degrees to radians at
// the package boundary.
func obbToVerts(x, y, w, h, radians float64) Obb {
	cx, cy := x+w/2, y+h/2
	corners := [4]lin.V2{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
	var out Obb
	for i, c := range corners {
		rel := lin.V2{X: c.X - cx, Y: c.Y - cy}
		rot := lin.Rotate(rel, radians)
		out.Verts[i] = lin.V2{X: cx + rot.X, Y: cy + rot.Y}
	}
	return out
}

// obbToAabb returns the axis aligned bounding box enclosing the oriented
// box's four vertices.
func obbToAabb(o Obb) Abox {
	ab := Abox{
		SX: o.Verts[0].X, SY: o.Verts[0].Y,
		LX: o.Verts[0].X, LY: o.Verts[0].Y,
	}
	for _, v := range o.Verts[1:] {
		ab.SX = math.Min(ab.SX, v.X)
		ab.SY = math.Min(ab.SY, v.Y)
		ab.LX = math.Max(ab.LX, v.X)
		ab.LY = math.Max(ab.LY, v.Y)
	}
	return ab
}

// Abox is an axis aligned bounding box used for broad phase overlap
// tests and spatial hash tile iteration.
//
//	SX, SY -- smallest vertex (min point)
//	LX, LY -- largest vertex (max point)
type Abox struct {
	SX, SY float64 // smallest point.
	LX, LY float64 // largest point.
}

// Overlaps returns true if Abox a and b are intersecting. Returns false
// if a and b are disjoint or merely touching along an edge.
func (a *Abox) Overlaps(b *Abox) bool {
	return a.LX > b.SX && a.SX < b.LX && a.LY > b.SY && a.SY < b.LY
}

// circleAabb returns the Abox bounding a circle centered at (x, y).
func circleAabb(x, y, r float64) Abox {
	return Abox{SX: x - r, SY: y - r, LX: x + r, LY: y + r}
}

// closestPointOnSegment returns the point on segment [a, b] closest to p,
// grounded on original_source/src/helpers.c's
// p2d_closest_point_on_segment_to_point.
func closestPointOnSegment(p, a, b lin.V2) lin.V2 {
	ab := lin.V2{}
	ab.Sub(&b, &a)
	lenSqr := ab.LenSqr()
	if lenSqr == 0 {
		return a
	}
	ap := lin.V2{}
	ap.Sub(&p, &a)
	t := ap.Dot(&ab) / lenSqr
	t = lin.Clamp(t, 0, 1)
	result := lin.V2{}
	result.Scale(&ab, t)
	result.Add(&a, &result)
	return result
}
