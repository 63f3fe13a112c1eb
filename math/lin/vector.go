// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package lin

// Vector performs 2 element vector related math needed for 2D applications.

import "math"

// V2 is a 2 element vector. This can also be used as a point.
type V2 struct {
	X float64 // increments as X moves to the right.
	Y float64 // increments as Y moves down (screen space: +Y is down).
}

// Eq (==) returns true if each element in the vector v has the same value
// as the corresponding element in vector a.
func (v *V2) Eq(a *V2) bool { return v.X == a.X && v.Y == a.Y }

// Aeq (~=) almost-equals returns true if all the elements in vector v have
// essentially the same value as the corresponding elements in vector a.
// Used where a direct comparison is unlikely to return true due to floats.
func (v *V2) Aeq(a *V2) bool { return Aeq(v.X, a.X) && Aeq(v.Y, a.Y) }

// AeqZ (~=) almost equals zero returns true if the square length of the vector
// is close enough to zero that it makes no difference.
func (v *V2) AeqZ() bool { return v.Dot(v) < Epsilon }

// GetS returns the float64 values of the vector.
func (v *V2) GetS() (x, y float64) { return v.X, v.Y }

// SetS (=) sets the vector elements to the given values.
// The updated vector v is returned.
func (v *V2) SetS(x, y float64) *V2 {
	v.X, v.Y = x, y
	return v
}

// Set (=, copy, clone) sets the elements of vector v to have the same values
// as the elements of vector a. The updated vector v is returned.
func (v *V2) Set(a *V2) *V2 {
	v.X, v.Y = a.X, a.Y
	return v
}

// Neg (-) sets vector v to be the negative values of vector a.
// Vector v may be used as the input parameter. The updated vector v
// is returned.
func (v *V2) Neg(a *V2) *V2 {
	v.X, v.Y = -a.X, -a.Y
	return v
}

// Add (+) adds vectors a and b storing the results of the addition in v.
// Vector v may be used as one or both of the parameters.
// For example (+=) is
//
//	v.Add(v, b)
//
// The updated vector v is returned.
func (v *V2) Add(a, b *V2) *V2 {
	v.X, v.Y = a.X+b.X, a.Y+b.Y
	return v
}

// Sub (-) subtracts vector b from a storing the results of the subtraction in v.
// Vector v may be used as one or both of the parameters.
// For example (-=) is
//
//	v.Sub(v, b)
//
// The updated vector v is returned.
func (v *V2) Sub(a, b *V2) *V2 {
	v.X, v.Y = a.X-b.X, a.Y-b.Y
	return v
}

// Scale (*=) updates the elements in vector v by multiplying the
// corresponding elements in vector a by the given scalar value.
// Vector v may be used as one or both of the vector parameters.
// The updated vector v is returned.
func (v *V2) Scale(a *V2, s float64) *V2 {
	v.X, v.Y = a.X*s, a.Y*s
	return v
}

// Div (/= inverse-scale) divides each element in v by the given scalar value.
// The updated vector v is returned. Vector v is not changed if scalar s is zero.
func (v *V2) Div(s float64) *V2 {
	if s != 0 {
		inv := 1 / s
		v.X, v.Y = v.X*inv, v.Y*inv
	}
	return v
}

// Dot vector v with input vector a. Both vectors v and a are unchanged.
// Wikipedia states:
//
//	"This operation can be defined either algebraically or geometrically.
//	 Algebraically, it is the sum of the products of the corresponding
//	 entries of the two sequences of numbers. Geometrically, it is the
//	 product of the magnitudes of the two vectors and the cosine of
//	 the angle between them."
func (v *V2) Dot(a *V2) float64 { return v.X*a.X + v.Y*a.Y }

// Cross returns the 2D (scalar) cross product of v and a: v.X*a.Y - v.Y*a.X.
// This is the Z component of the 3D cross product of the two vectors
// extended into the XY plane; its sign gives the turn direction from
// v to a.
func (v *V2) Cross(a *V2) float64 { return v.X*a.Y - v.Y*a.X }

// Perp returns a new vector perpendicular to v, rotated 90 degrees
// counter-clockwise: (-v.Y, v.X). Used throughout the solver to turn a
// contact offset r into the direction a unit angular velocity moves it.
func (v *V2) Perp() V2 { return V2{-v.Y, v.X} }

// Len returns the length of vector v. Vector length is the square root of
// the dot product. The calling vector v is unchanged.
func (v *V2) Len() float64 { return math.Sqrt(v.Dot(v)) }

// LenSqr returns the length of vector v squared.
// The calling vector v is unchanged.
func (v *V2) LenSqr() float64 { return v.Dot(v) }

// Dist returns the distance between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V2) Dist(a *V2) float64 { return math.Sqrt(v.DistSqr(a)) }

// DistSqr returns the distance squared between vector end-points v and a.
// Both vectors (points) v and a are unchanged.
func (v *V2) DistSqr(a *V2) float64 {
	dx, dy := a.X-v.X, a.Y-v.Y
	return dx*dx + dy*dy
}

// Unit updates vector v such that its length is 1.
// Calling vector v is unchanged if its length is zero.
// The updated vector v is returned.
func (v *V2) Unit() *V2 {
	length := v.Len()
	if length != 0 {
		return v.Div(length)
	}
	return v
}

// Rotate returns a by radians rotated counter-clockwise around the origin.
// Screen-space Y-down convention means a positive angle turns clockwise
// on screen; the math itself is the ordinary 2D rotation matrix.
func Rotate(a V2, radians float64) V2 {
	s, c := math.Sincos(radians)
	return V2{a.X*c - a.Y*s, a.X*s + a.Y*c}
}

// NewV2 creates and returns a new vector set at the origin, (0, 0).
func NewV2() *V2 { return &V2{} }

// NewV2S creates and returns a new vector initialized with x, y.
func NewV2S(x, y float64) *V2 { return &V2{x, y} }
