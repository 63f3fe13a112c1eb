// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package main

import (
	"log"
	"log/slog"

	"github.com/ironclad-games/impulse2d/math/lin"
	"github.com/ironclad-games/impulse2d/physics"
)

// bounce demonstrates collision resolution by dropping circles onto a
// static floor and reporting their settled positions. There is no
// renderer here: the physics package has no dependency on one, so this
// example just steps a World and prints what it reports back.
func main() {
	world, err := physics.NewWorld(physics.Config{
		CellSize: 4,
		Gravity:  lin.V2{Y: 9.8},
		Log:      slog.Default(),
	})
	if err != nil {
		log.Fatalf("bounce: error initializing world %s", err)
	}
	defer world.Shutdown()

	floor, err := world.CreateBody(physics.BodyDef{
		// BodyDef.X/Y is the rectangle's pre-rotation corner, so a 50-wide
		// floor centered under x=0 needs its corner at x=-25.
		Shape:    physics.NewRectangle(50, 1),
		X:        -25,
		Y:        0,
		IsStatic: true,
		Density:  1,
	})
	if err != nil {
		log.Fatalf("bounce: error creating floor %s", err)
	}
	_ = floor

	var positions [3][2]float64
	balls := make([]physics.Handle, 0, 3)
	for i := range positions {
		x := float64(i-1) * 3
		h, err := world.CreateBody(physics.BodyDef{
			Shape:       physics.NewCircle(1),
			X:           x,
			Y:           -20,
			Density:     2,
			Restitution: 0.4,
			OutX:        &positions[i][0],
			OutY:        &positions[i][1],
		})
		if err != nil {
			log.Fatalf("bounce: error creating ball %d: %s", i, err)
		}
		balls = append(balls, h)
	}

	const dt = 1.0 / 60.0
	for step := 0; step < 300; step++ {
		if err := world.Step(dt); err != nil {
			log.Fatalf("bounce: step %d: %s", step, err)
		}
	}

	for i, h := range balls {
		center, ok := world.Center(h)
		if !ok {
			continue
		}
		log.Printf("ball %d settled at x=%.2f y=%.2f (out x=%.2f y=%.2f)",
			i, center.X, center.Y, positions[i][0], positions[i][1])
	}
}
