// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/ironclad-games/impulse2d/math/lin"
)

func TestRectangleArea(t *testing.T) {
	r := NewRectangle(10, 4)
	if got := r.area(); got != 40 {
		t.Errorf("got area %f, wanted 40", got)
	}
}

func TestRectangleInertia(t *testing.T) {
	r := NewRectangle(6, 8)
	want := 2.0 * (36.0 + 64.0) / 12.0
	if got := r.inertia(2); !lin.Aeq(got, want) {
		t.Errorf("got inertia %f, wanted %f", got, want)
	}
}

func TestCircleArea(t *testing.T) {
	c := NewCircle(2)
	want := 4 * 3.14159265358979
	if got := c.area(); !lin.AeqEps(got, want, 1e-6) {
		t.Errorf("got area %f, wanted %f", got, want)
	}
}

func TestCircleInertia(t *testing.T) {
	c := NewCircle(3)
	want := 2.0 * 9.0 / 2.0
	if got := c.inertia(2); !lin.Aeq(got, want) {
		t.Errorf("got inertia %f, wanted %f", got, want)
	}
}

func TestObbToVertsZeroRotation(t *testing.T) {
	o := obbToVerts(0, 0, 10, 20, 0)
	want := [4]lin.V2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 20}, {X: 0, Y: 20}}
	for i, v := range o.Verts {
		if !v.Aeq(&want[i]) {
			t.Errorf("vertex %d: got %+v, wanted %+v", i, v, want[i])
		}
	}
}

// TestObbToVertsAabbIdempotent covers invariant 5: OBB -> verts -> AABB
// is idempotent for zero-rotation rectangles.
func TestObbToVertsAabbIdempotent(t *testing.T) {
	o := obbToVerts(5, 5, 10, 10, 0)
	ab := obbToAabb(o)
	want := Abox{SX: 5, SY: 5, LX: 15, LY: 15}
	if ab != want {
		t.Errorf("got %+v, wanted %+v", ab, want)
	}
}

func TestObbToVertsRotation(t *testing.T) {
	// a square rotated 90 degrees about its own center lands back on
	// its own corners (up to relabeling).
	o := obbToVerts(0, 0, 10, 10, lin.HalfPi)
	ab := obbToAabb(o)
	want := Abox{SX: 0, SY: 0, LX: 10, LY: 10}
	if !lin.Aeq(ab.SX, want.SX) || !lin.Aeq(ab.SY, want.SY) ||
		!lin.Aeq(ab.LX, want.LX) || !lin.Aeq(ab.LY, want.LY) {
		t.Errorf("got %+v, wanted %+v", ab, want)
	}
}

func TestAboxOverlap(t *testing.T) {
	a := Abox{SX: 0, SY: 0, LX: 10, LY: 10}
	b := Abox{SX: 5, SY: 5, LX: 15, LY: 15}
	if !a.Overlaps(&b) {
		t.Error("expected overlapping boxes to overlap")
	}
	c := Abox{SX: 10, SY: 10, LX: 20, LY: 20}
	if a.Overlaps(&c) {
		t.Error("boxes touching only at a corner should not overlap")
	}
}

// TestClosestPointOnSegmentClamps covers the closest-point-on-segment
// round-trip law: t<=0 returns A, t>=1 returns B.
func TestClosestPointOnSegmentClamps(t *testing.T) {
	a, b := lin.V2{X: 0, Y: 0}, lin.V2{X: 10, Y: 0}
	if got := closestPointOnSegment(lin.V2{X: -5, Y: 0}, a, b); !got.Aeq(&a) {
		t.Errorf("got %+v, wanted A %+v", got, a)
	}
	if got := closestPointOnSegment(lin.V2{X: 20, Y: 0}, a, b); !got.Aeq(&b) {
		t.Errorf("got %+v, wanted B %+v", got, b)
	}
}

func TestClosestPointOnSegmentMidpoint(t *testing.T) {
	a, b := lin.V2{X: 0, Y: 0}, lin.V2{X: 10, Y: 0}
	p := lin.V2{X: 5, Y: 3}
	got := closestPointOnSegment(p, a, b)
	want := lin.V2{X: 5, Y: 0}
	if !got.Aeq(&want) {
		t.Errorf("got %+v, wanted %+v", got, want)
	}
	// the closest point, B-A and the result should have zero cross.
	ab := lin.V2{}
	ab.Sub(&b, &a)
	diff := lin.V2{}
	diff.Sub(&got, &a)
	if !lin.AeqZ(diff.Cross(&ab)) {
		t.Errorf("expected %+v collinear with segment", got)
	}
}

func TestCircleIntersectsAabb(t *testing.T) {
	box := Abox{SX: 0, SY: 0, LX: 10, LY: 10}
	if !circleIntersectsAabb(12, 5, 3, box) {
		t.Error("expected circle overlapping box edge to intersect")
	}
	if circleIntersectsAabb(20, 20, 3, box) {
		t.Error("expected far circle to not intersect")
	}
}
