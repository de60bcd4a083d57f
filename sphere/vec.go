// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import "math"

// A Vec is a vector in 3-D Euclidean space. Directions are represented
// as Vecs of unit length.
type Vec struct {
	X, Y, Z float64
}

// Dot returns the dot product of v and u.
func (v Vec) Dot(u Vec) float64 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

// Cross returns the cross product of v and u.
func (v Vec) Cross(u Vec) Vec {
	return Vec{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// Add returns the sum of v and u.
func (v Vec) Add(u Vec) Vec {
	return Vec{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z}
}

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: s * v.X, Y: s * v.Y, Z: s * v.Z}
}

// Neg returns the antipode of v.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns the unit vector in the direction of v, or the
// zero vector if v has zero length.
func (v Vec) Normalized() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return v.Scale(1 / n)
}

// Angle returns the angle between v and u in radians, in [0, π].
//
// It is computed as atan2(‖v×u‖, v·u), which is numerically stable for
// both nearly parallel and nearly antiparallel vectors, unlike the
// arccosine of the dot product.
func (v Vec) Angle(u Vec) float64 {
	return math.Atan2(v.Cross(u).Norm(), v.Dot(u))
}

// FromDecInc returns the Cartesian unit vector for a declination and
// inclination given in degrees, using the paleomagnetic convention
// x = cos(inc)·cos(dec), y = cos(inc)·sin(dec), z = sin(inc).
func FromDecInc(dec, inc float64) Vec {
	d, i := dec*math.Pi/180, inc*math.Pi/180
	return Vec{
		X: math.Cos(i) * math.Cos(d),
		Y: math.Cos(i) * math.Sin(d),
		Z: math.Sin(i),
	}
}

// DecInc returns the declination and inclination of v in degrees.
// Declination is in [0, 360) and inclination in [-90, 90]. v need not
// be normalized; only its direction matters.
func (v Vec) DecInc() (dec, inc float64) {
	// Adding 360 before the Mod keeps negative angles in range.
	// The Mod also catches an infinitesimally negative atan2, where
	// the addition alone would round to exactly 360.
	dec = math.Mod(math.Atan2(v.Y, v.X)*180/math.Pi+360, 360)
	inc = math.Atan2(v.Z, math.Hypot(v.X, v.Y)) * 180 / math.Pi
	return dec, inc
}
