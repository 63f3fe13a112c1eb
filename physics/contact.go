// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package physics

import (
	"github.com/ironclad-games/impulse2d/math/lin"
)

// contact.go generates the contact manifold (1-2 world-space points) for
// a colliding pair, given the normal already computed by detection. The
// source's contactPair/pointOfContact machinery persisted a manifold
// across frames and warm-started impulses; this reimplementation keeps
// the naming but drops persistence entirely, per the "no warm-started
// solver state between frames" non-goal — contacts are plain values,
// recomputed every sub-step.

// contactEpsilon is the "nearly equal" tolerance (0.5mm in world units)
// used to decide whether a second rect-rect contact candidate is
// distinct from the first or merely a noisy duplicate of it.
const contactEpsilon = 5e-4

// generateContacts dispatches to the shape-pair-specific contact
// generator. normal points from a toward b, as returned by detection.
func generateContacts(a, b *Body, normal lin.V2) []lin.V2 {
	_, aCircle := a.shape.(Circle)
	_, bCircle := b.shape.(Circle)
	switch {
	case aCircle && bCircle:
		return circleCircleContact(a, normal)
	case aCircle && !bCircle:
		return circleRectContact(a, b)
	case !aCircle && bCircle:
		return circleRectContact(b, a)
	default:
		return rectRectContact(a, b)
	}
}

// circleCircleContact: one contact at a.center + normal*r_a.
func circleCircleContact(a *Body, normal lin.V2) []lin.V2 {
	ca := a.center()
	sa := a.shape.(Circle)
	p := lin.V2{}
	p.Scale(&normal, sa.R)
	p.Add(&ca, &p)
	return []lin.V2{p}
}

// circleRectContact: one contact, the closest point on any of the
// rectangle's four edges to the circle center. Returns no contact if
// the circle does not actually penetrate the rectangle (penetration
// r - dist is negative).
func circleRectContact(circleBody, rectBody *Body) []lin.V2 {
	cc := circleBody.center()
	sc := circleBody.shape.(Circle)
	o := rectBody.obb()

	best := lin.V2{}
	bestDist := -1.0
	for i := 0; i < 4; i++ {
		p0, p1 := o.Verts[i], o.Verts[(i+1)%4]
		cp := closestPointOnSegment(cc, p0, p1)
		d := cp.Dist(&cc)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = cp
		}
	}
	if sc.R-bestDist < 0 {
		return nil
	}
	return []lin.V2{best}
}

// rectRectContact: for every vertex of each rectangle, find the closest
// point on every edge of the other rectangle. The closest candidate
// becomes the first contact; a candidate whose distance is within
// contactEpsilon of it and whose point lies more than contactEpsilon
// away from it becomes the second contact, if there is none yet.
func rectRectContact(a, b *Body) []lin.V2 {
	oa, ob := a.obb(), b.obb()

	type candidate struct {
		point lin.V2
		dist  float64
	}
	var candidates []candidate
	gather := func(verts [4]lin.V2, other Obb) {
		for _, v := range verts {
			for i := 0; i < 4; i++ {
				p0, p1 := other.Verts[i], other.Verts[(i+1)%4]
				cp := closestPointOnSegment(v, p0, p1)
				candidates = append(candidates, candidate{point: cp, dist: cp.Dist(&v)})
			}
		}
	}
	gather(oa.Verts, ob)
	gather(ob.Verts, oa)

	// Track the minimum distance seen so far: a candidate closer than it
	// by more than contactEpsilon replaces the best and clears the second
	// contact; a candidate nearly equal to it and geometrically distinct
	// becomes the second contact if none is set yet.
	best, second := candidates[0], candidate{dist: -1}
	for _, cand := range candidates[1:] {
		switch {
		case cand.dist < best.dist-contactEpsilon:
			best, second = cand, candidate{dist: -1}
		case lin.AeqEps(cand.dist, best.dist, contactEpsilon):
			if second.dist < 0 && cand.point.Dist(&best.point) > contactEpsilon {
				second = cand
			}
		case second.dist < 0 && cand.dist < best.dist+contactEpsilon:
			second = cand
		}
	}

	if second.dist < 0 {
		return []lin.V2{best.point}
	}
	return []lin.V2{best.point, second.point}
}
