// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"math"

	"github.com/ironclad-games/impulse2d/math/lin"
)

// collider dispatches narrow-phase detection to the algorithm matching
// a pair's shape kinds, mirroring the source's [][]collide algorithm
// table generalized from box/sphere to the 2D rectangle/circle pair.
type collider struct {
	algorithms [2][2]collideFunc
}

func newCollider() *collider {
	c := &collider{}
	c.algorithms[kindCircle][kindCircle] = collideCircleCircle
	c.algorithms[kindRectangle][kindRectangle] = collideRectRect
	c.algorithms[kindCircle][kindRectangle] = collideCircleRect
	c.algorithms[kindRectangle][kindCircle] = collideRectCircle
	return c
}

// collideFunc is the narrow-phase detection prototype: given two
// bodies, report whether they overlap and, if so, the separating
// normal (pointing from a toward b by convention) and penetration
// depth.
type collideFunc func(a, b *Body) (hit bool, normal lin.V2, depth float64)

// detect runs the algorithm matching a and b's shape kinds.
func (c *collider) detect(a, b *Body) (hit bool, normal lin.V2, depth float64) {
	fn := c.algorithms[a.shape.shapeType()][b.shape.shapeType()]
	if fn == nil {
		return false, lin.V2{}, 0
	}
	return fn(a, b)
}

// collider
// ============================================================================
// circle-circle

// collideCircleCircle: centers' midline magnitude < r_a + r_b.
func collideCircleCircle(a, b *Body) (bool, lin.V2, float64) {
	ca, cb := a.center(), b.center()
	sa, sb := a.shape.(Circle), b.shape.(Circle)

	delta := lin.V2{}
	delta.Sub(&cb, &ca)
	dist := delta.Len()
	radii := sa.R + sb.R
	if dist >= radii {
		return false, lin.V2{}, 0
	}
	normal := lin.V2{X: 1, Y: 0}
	if dist > lin.Epsilon {
		normal = *delta.Unit()
	}
	return true, normal, radii - dist
}

// circle-circle
// ============================================================================
// rectangle-rectangle (SAT)

// collideRectRect runs the Separating Axis Theorem across the 8 edge
// normals of the two oriented rectangles, keeping the smallest overlap
// as the minimum translation vector. Based on the standard OBB-OBB SAT
// pipeline (see e.g. the "Separating Axis Theorem for Oriented Bounding
// Boxes" tutorial note referenced by this package's sibling collision
// algorithms).
func collideRectRect(a, b *Body) (bool, lin.V2, float64) {
	oa, ob := a.obb(), b.obb()
	axes := satAxes(oa, ob)

	best := math.Inf(1)
	var bestAxis lin.V2
	for _, axis := range axes {
		aMin, aMax := projectVerts(oa.Verts[:], axis)
		bMin, bMax := projectVerts(ob.Verts[:], axis)
		overlap := math.Min(aMax, bMax) - math.Max(aMin, bMin)
		if overlap <= 0 {
			return false, lin.V2{}, 0
		}
		if overlap < best {
			best = overlap
			bestAxis = axis
		}
	}

	ca, cb := a.center(), b.center()
	dir := lin.V2{}
	dir.Sub(&cb, &ca)
	if dir.Dot(&bestAxis) < 0 {
		bestAxis.Scale(&bestAxis, -1)
	}
	return true, bestAxis, best
}

// satAxes returns the 8 candidate separating axes for two oriented
// rectangles: the outward edge normal (-edge.y, edge.x) of each of the
// 4 edges across both boxes, normalized.
func satAxes(a, b Obb) []lin.V2 {
	axes := make([]lin.V2, 0, 8)
	for _, o := range [2]Obb{a, b} {
		for i := 0; i < 4; i++ {
			p0, p1 := o.Verts[i], o.Verts[(i+1)%4]
			edge := lin.V2{}
			edge.Sub(&p1, &p0)
			axis := edge.Perp()
			axis = *axis.Unit()
			axes = append(axes, axis)
		}
	}
	return axes
}

// projectVerts projects the four vertices of an Obb onto axis and
// returns the resulting scalar min/max.
func projectVerts(verts []lin.V2, axis lin.V2) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		d := v.Dot(&axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// rectangle-rectangle
// ============================================================================
// circle-rectangle

// collideCircleRect augments the rectangle's 4 edge normals with one
// additional axis from the closest rectangle vertex to the circle
// center, then runs the same SAT pipeline projecting the circle as
// [center·axis - r, center·axis + r].
func collideCircleRect(a, b *Body) (bool, lin.V2, float64) {
	circle := a.shape.(Circle)
	rectObb := b.obb()
	cc := a.center()

	axes := rectEdgeAxes(rectObb)
	axes = append(axes, closestVertexAxis(rectObb, cc))

	best := math.Inf(1)
	var bestAxis lin.V2
	for _, axis := range axes {
		rMin, rMax := projectVerts(rectObb.Verts[:], axis)
		cProj := cc.Dot(&axis)
		cMin, cMax := cProj-circle.R, cProj+circle.R
		overlap := math.Min(rMax, cMax) - math.Max(rMin, cMin)
		if overlap <= 0 {
			return false, lin.V2{}, 0
		}
		if overlap < best {
			best = overlap
			bestAxis = axis
		}
	}

	rc := b.center()
	dir := lin.V2{}
	dir.Sub(&rc, &cc)
	// normal points from a (circle) toward b (rectangle) by convention.
	if dir.Dot(&bestAxis) < 0 {
		bestAxis.Scale(&bestAxis, -1)
	}
	return true, bestAxis, best
}

// collideRectCircle reverses the collideCircleRect call so the
// dispatch table need only implement one real axis-augmentation
// algorithm, then negates the resulting normal to preserve the
// a-to-b convention.
func collideRectCircle(a, b *Body) (bool, lin.V2, float64) {
	hit, normal, depth := collideCircleRect(b, a)
	if hit {
		normal.Scale(&normal, -1)
	}
	return hit, normal, depth
}

func rectEdgeAxes(o Obb) []lin.V2 {
	axes := make([]lin.V2, 0, 5)
	for i := 0; i < 4; i++ {
		p0, p1 := o.Verts[i], o.Verts[(i+1)%4]
		edge := lin.V2{}
		edge.Sub(&p1, &p0)
		axis := edge.Perp()
		axis = *axis.Unit()
		axes = append(axes, axis)
	}
	return axes
}

// closestVertexAxis returns the unit axis from the rectangle's vertex
// closest to p toward p.
func closestVertexAxis(o Obb, p lin.V2) lin.V2 {
	best := math.Inf(1)
	var closest lin.V2
	for _, v := range o.Verts {
		d := v.DistSqr(&p)
		if d < best {
			best = d
			closest = v
		}
	}
	axis := lin.V2{}
	axis.Sub(&p, &closest)
	if axis.LenSqr() < lin.Epsilon {
		return lin.V2{X: 1, Y: 0}
	}
	return *axis.Unit()
}

// circle-rectangle
// ============================================================================
// circle-AABB (broadphase only)

// circleIntersectsAabb clamps the circle center into the box and
// compares the distance to the radius; it reports overlap only and
// produces no narrow-phase manifold. The spatial hash does not call it:
// spatialHash.insert places a circle in every tile its AABB overlaps,
// including corner tiles the circle itself does not reach.
func circleIntersectsAabb(cx, cy, r float64, box Abox) bool {
	clampedX := lin.Clamp(cx, box.SX, box.LX)
	clampedY := lin.Clamp(cy, box.SY, box.LY)
	dx, dy := cx-clampedX, cy-clampedY
	return dx*dx+dy*dy <= r*r
}
