// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"testing"

	"github.com/ironclad-games/impulse2d/math/lin"
)

func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	if cfg.CellSize == 0 {
		cfg.CellSize = 4
	}
	w, err := NewWorld(cfg)
	if err != nil {
		t.Fatalf("NewWorld returned %v", err)
	}
	return w
}

func TestStepRejectsNonPositiveTimestep(t *testing.T) {
	w := newTestWorld(t, Config{})
	if err := w.Step(0); err != ErrInvalidTimeStep {
		t.Errorf("got %v, wanted ErrInvalidTimeStep", err)
	}
	if err := w.Step(-1); err != ErrInvalidTimeStep {
		t.Errorf("got %v, wanted ErrInvalidTimeStep", err)
	}
}

// TestStepStaticBodyNeverMoves covers invariant 2: a static body is
// immutable across Step even under gravity.
func TestStepStaticBodyNeverMoves(t *testing.T) {
	w := newTestWorld(t, Config{Gravity: lin.V2{Y: 10}})
	floor, err := w.CreateBody(BodyDef{Shape: NewRectangle(20, 2), X: 0, Y: 0, IsStatic: true, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody returned %v", err)
	}
	before, _ := w.Center(floor)
	for i := 0; i < 30; i++ {
		if err := w.Step(1.0 / 60); err != nil {
			t.Fatalf("Step returned %v", err)
		}
	}
	after, _ := w.Center(floor)
	if !before.Aeq(&after) {
		t.Errorf("expected a static body to be unmoved by gravity, got %+v then %+v", before, after)
	}
}

// TestTwoCirclesElasticSwap is an end-to-end scenario: two equal circles
// collide head on with restitution 1 and swap velocities, with no
// gravity so momentum trades cleanly.
func TestTwoCirclesElasticSwap(t *testing.T) {
	w := newTestWorld(t, Config{CellSize: 4, Substeps: 1})
	a, err := w.CreateBody(BodyDef{Shape: NewCircle(1), X: -5, Y: 0, Density: 1, Restitution: 1})
	if err != nil {
		t.Fatalf("CreateBody a returned %v", err)
	}
	b, err := w.CreateBody(BodyDef{Shape: NewCircle(1), X: 0, Y: 0, Density: 1, Restitution: 1})
	if err != nil {
		t.Fatalf("CreateBody b returned %v", err)
	}
	ab, _ := w.bodies.get(a)
	bb, _ := w.bodies.get(b)
	ab.vx = 10
	// at 10 units/s the 3-unit gap between the circles closes after
	// 36 steps of 1/120 s; 60 steps carry them through the impact.
	for i := 0; i < 60; i++ {
		if err := w.Step(1.0 / 120); err != nil {
			t.Fatalf("Step returned %v", err)
		}
	}
	if ab.vx > 1 {
		t.Errorf("expected the striking circle to have shed most of its velocity, got vx=%f", ab.vx)
	}
	if bb.vx <= 0 {
		t.Errorf("expected the struck circle to pick up positive velocity, got vx=%f", bb.vx)
	}
}

// TestBallRestsOnStaticFloor is an end-to-end scenario: a ball dropped
// onto a static floor settles rather than tunneling through it.
func TestBallRestsOnStaticFloor(t *testing.T) {
	w := newTestWorld(t, Config{CellSize: 4, Gravity: lin.V2{Y: 9.8}})
	// X,Y is the rectangle's pre-rotation corner, so a 50x2 floor
	// centered under x=0 needs its corner at x=-25.
	_, err := w.CreateBody(BodyDef{Shape: NewRectangle(50, 2), X: -25, Y: 0, IsStatic: true, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody floor returned %v", err)
	}
	ball, err := w.CreateBody(BodyDef{Shape: NewCircle(1), X: 0, Y: -10, Density: 1, Restitution: 0.1})
	if err != nil {
		t.Fatalf("CreateBody ball returned %v", err)
	}
	for i := 0; i < 600; i++ {
		if err := w.Step(1.0 / 60); err != nil {
			t.Fatalf("Step returned %v", err)
		}
	}
	center, _ := w.Center(ball)
	if center.Y < -1 {
		t.Errorf("expected the ball to have landed near the floor top, got y=%f", center.Y)
	}
	if center.Y > 3 {
		t.Errorf("expected the ball not to tunnel through the floor, got y=%f", center.Y)
	}
}

// TestTriggerEmitsNoResolve is an end-to-end scenario: an overlapping
// trigger body fires OnTrigger and never OnCollision, and never has its
// velocity altered by resolve.
func TestTriggerEmitsNoResolve(t *testing.T) {
	var triggered, collided int
	w := newTestWorld(t, Config{
		CellSize: 4,
		OnTrigger: func(a, b Handle) {
			triggered++
		},
		OnCollision: func(a, b Handle) {
			collided++
		},
	})
	// corner (-5,-5) centers the 10x10 sensor rectangle on the origin.
	sensor, err := w.CreateBody(BodyDef{Shape: NewRectangle(10, 10), X: -5, Y: -5, IsTrigger: true, IsStatic: true, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody sensor returned %v", err)
	}
	_ = sensor
	ball, err := w.CreateBody(BodyDef{Shape: NewCircle(2), X: 0, Y: 0, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody ball returned %v", err)
	}
	ballBody, _ := w.bodies.get(ball)
	ballBody.vx = 1
	if err := w.Step(1.0 / 60); err != nil {
		t.Fatalf("Step returned %v", err)
	}
	if triggered == 0 {
		t.Error("expected OnTrigger to fire for an overlapping trigger pair")
	}
	if collided != 0 {
		t.Error("expected OnCollision to never fire for a trigger pair")
	}
	// only the tiny air-drag term may have touched the ball's velocity.
	if !lin.AeqEps(ballBody.vx, 1, 1e-3) {
		t.Errorf("expected the trigger overlap to leave the ball's velocity alone, got vx=%f", ballBody.vx)
	}
}

// TestPairDedupAcrossTiles is an end-to-end scenario: two bodies whose
// AABBs straddle several shared spatial-hash tiles are still resolved
// exactly once per sub-step.
func TestPairDedupAcrossTiles(t *testing.T) {
	var collided int
	w := newTestWorld(t, Config{
		CellSize: 2, // small tiles relative to body size force multi-tile overlap.
		Substeps: 1,
		OnCollision: func(a, b Handle) {
			collided++
		},
	})
	_, err := w.CreateBody(BodyDef{Shape: NewRectangle(8, 8), X: 0, Y: 0, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody a returned %v", err)
	}
	_, err = w.CreateBody(BodyDef{Shape: NewRectangle(8, 8), X: 4, Y: 0, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody b returned %v", err)
	}
	if err := w.Step(1.0 / 60); err != nil {
		t.Fatalf("Step returned %v", err)
	}
	if collided != 1 {
		t.Errorf("got %d OnCollision calls, wanted exactly 1 despite overlapping several shared tiles", collided)
	}
}

// TestSpringJointSettles is an end-to-end scenario: a mass released
// above a world-anchored spring (+Y is down) stays bounded near its
// anchor under gravity instead of free-falling away from it.
func TestSpringJointSettles(t *testing.T) {
	w := newTestWorld(t, Config{CellSize: 4, Gravity: lin.V2{Y: 9.8}})
	mass, err := w.CreateBody(BodyDef{Shape: NewCircle(1), X: 0, Y: -5, Density: 1})
	if err != nil {
		t.Fatalf("CreateBody returned %v", err)
	}
	_, err = w.AddJoint(JointDef{
		Kind:        JointSpring,
		BodyA:       mass,
		AnchorA:     lin.V2{},
		AnchorB:     lin.V2{X: 0, Y: 0},
		RestLength:  5,
		SpringConst: 5,
		BiasFactor:  0.2,
	})
	if err != nil {
		t.Fatalf("AddJoint returned %v", err)
	}
	var lastY float64
	for i := 0; i < 600; i++ {
		if err := w.Step(1.0 / 60); err != nil {
			t.Fatalf("Step returned %v", err)
		}
		center, _ := w.Center(mass)
		lastY = center.Y
	}
	// unconstrained free fall over 10s would land near y=+485; the spring
	// should keep the mass far closer to its anchor than that.
	if lastY < -100 || lastY > 10 {
		t.Errorf("expected the spring to keep the mass bounded near its anchor, got y=%f", lastY)
	}
}

func TestShouldCollideBothStaticIsFalse(t *testing.T) {
	w := newTestWorld(t, Config{})
	a, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), IsStatic: true, Density: 1})
	b, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), IsStatic: true, Density: 1})
	ab, _ := w.bodies.get(a)
	bb, _ := w.bodies.get(b)
	if w.shouldCollide(a, ab, b, bb) {
		t.Error("expected two static bodies to never collide")
	}
}

// TestShouldCollideIsSymmetric covers invariant 3.
func TestShouldCollideIsSymmetric(t *testing.T) {
	w := newTestWorld(t, Config{})
	a, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1, Layer: 1})
	b, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1, Layer: 2})
	ab, _ := w.bodies.get(a)
	bb, _ := w.bodies.get(b)
	if w.shouldCollide(a, ab, b, bb) != w.shouldCollide(b, bb, a, ab) {
		t.Error("expected shouldCollide to be symmetric in its arguments")
	}
}

func TestShouldCollideHingeJointDisablesCollision(t *testing.T) {
	w := newTestWorld(t, Config{})
	a, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1})
	b, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1, X: 2})
	ab, _ := w.bodies.get(a)
	bb, _ := w.bodies.get(b)
	if !w.shouldCollide(a, ab, b, bb) {
		t.Fatal("expected two unconnected bodies to be eligible to collide")
	}
	if _, err := w.AddJoint(JointDef{Kind: JointHinge, BodyA: a, BodyB: b}); err != nil {
		t.Fatalf("AddJoint returned %v", err)
	}
	if w.shouldCollide(a, ab, b, bb) {
		t.Error("expected a hinge joint to disable collision between its bodies")
	}
}

func TestRemoveBodyReturnsErrNotFoundForStaleHandle(t *testing.T) {
	w := newTestWorld(t, Config{})
	h, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1})
	if err := w.RemoveBody(h); err != nil {
		t.Fatalf("RemoveBody returned %v", err)
	}
	if err := w.RemoveBody(h); err != ErrNotFound {
		t.Errorf("got %v, wanted ErrNotFound for a stale handle", err)
	}
}

// TestResolveJointDanglingBodyIsLoggedNotFatal exercises ErrDanglingJoint
// by removing a joint's body out from under it and confirming Step still
// completes without error.
func TestResolveJointDanglingBodyIsLoggedNotFatal(t *testing.T) {
	w := newTestWorld(t, Config{})
	a, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1})
	b, _ := w.CreateBody(BodyDef{Shape: NewCircle(1), Density: 1, X: 5})
	if _, err := w.AddJoint(JointDef{Kind: JointSpring, BodyA: a, BodyB: b, SpringConst: 10}); err != nil {
		t.Fatalf("AddJoint returned %v", err)
	}
	if err := w.RemoveBody(a); err != nil {
		t.Fatalf("RemoveBody returned %v", err)
	}
	if err := w.Step(1.0 / 60); err != nil {
		t.Errorf("expected Step to tolerate a dangling joint, got %v", err)
	}
}
