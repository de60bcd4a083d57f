// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// TangentFrame returns the 2×3 matrix M whose rows span the tangent
// plane of the unit sphere at the unit direction m, so that M·m = 0.
// Later stages use M to project directions into the 2-D tangent space
// at m, where the statistic is a standard quadratic form.
//
// The construction is closed-form. Writing m = (b₁, b₂, c), the first
// 2×2 block is sign(c)·I − [c/(|c|+c²)]·bbᵗ and the third column is
// −b. The c = 0 case (a mean on the equator) is a removable
// discontinuity of that expression and is handled by its own branch,
// I − bbᵗ, rather than through the numerically unstable limit.
//
// The result is undefined if m is not of unit length; callers must
// guarantee normalization.
func TangentFrame(m sphere.Vec) *mat.Dense {
	b1, b2, c := m.X, m.Y, m.Z
	var a11, a12, a22 float64
	if c == 0 {
		a11 = 1 - b1*b1
		a12 = -b1 * b2
		a22 = 1 - b2*b2
	} else {
		s := 1.0
		if c < 0 {
			s = -1
		}
		k := c / (math.Abs(c) + c*c)
		a11 = s - k*b1*b1
		a12 = -k * b1 * b2
		a22 = s - k*b2*b2
	}
	return mat.NewDense(2, 3, []float64{
		a11, a12, -b1,
		a12, a22, -b2,
	})
}

// project returns the tangent-space coordinates M·v.
func project(frame *mat.Dense, v sphere.Vec) (p0, p1 float64) {
	p0 = frame.At(0, 0)*v.X + frame.At(0, 1)*v.Y + frame.At(0, 2)*v.Z
	p1 = frame.At(1, 0)*v.X + frame.At(1, 1)*v.Y + frame.At(1, 2)*v.Z
	return p0, p1
}
