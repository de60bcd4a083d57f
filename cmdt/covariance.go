// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// TangentCovariance returns the 2×2 covariance matrix G of the
// sample's directions projected through the given tangent frame:
//
//	G[u,v] = (1/n) · s · Σᵢ (M·Xᵢ)ᵤ (M·Xᵢ)ᵥ,  s = 1/‖(1/n)ΣᵢXᵢ‖²
//
// the second moment of the tangent-projected data, rescaled by the
// inverse squared length of the sample's mean vector. G is symmetric
// by construction.
//
// It returns sphere.ErrZeroResultant if the sample's resultant vector
// has numerically zero length (squared mean length below
// sphere.ZeroResultantTol, the same threshold the mean direction
// uses), since the rescaling is then undefined. That error is surfaced
// rather than letting a division by zero propagate NaNs into the
// calibration.
func TangentCovariance(sample *sphere.Sample, frame *mat.Dense) (*mat.SymDense, error) {
	n := sample.Len()
	mean := sample.Resultant().Scale(1 / float64(n))
	r2 := mean.Dot(mean)
	if r2 < sphere.ZeroResultantTol {
		return nil, fmt.Errorf("tangent covariance: %w", sphere.ErrZeroResultant)
	}

	var g00, g01, g11 float64
	for i := 0; i < n; i++ {
		p0, p1 := project(frame, sample.At(i))
		g00 += p0 * p0
		g01 += p0 * p1
		g11 += p1 * p1
	}
	sc := 1 / (float64(n) * r2)
	return mat.NewSymDense(2, []float64{
		g00 * sc, g01 * sc,
		g01 * sc, g11 * sc,
	}), nil
}
