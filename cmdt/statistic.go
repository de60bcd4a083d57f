// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// ErrSingularCovariance is returned when a tangent covariance matrix
// cannot be inverted. This is expected only for degenerate or
// extremely small samples, such as directions lying on a single great
// circle through the mean.
var ErrSingularCovariance = errors.New("singular tangent covariance matrix")

// Statistic returns the test statistic
//
//	T = n · (M·m)ᵗ · G⁻¹ · (M·m)
//
// measuring the statistical distance, in the tangent space defined by
// the frame M and covariance G, between the candidate unit direction m
// and the reference mean the frame was built from. T is non-negative
// when G is positive definite, and zero exactly when m projects to the
// origin of the tangent plane, i.e. coincides with the frame's own
// reference mean.
//
// It returns ErrSingularCovariance if G cannot be inverted.
func Statistic(m sphere.Vec, n int, frame *mat.Dense, cov *mat.SymDense) (float64, error) {
	p0, p1 := project(frame, m)
	y := mat.NewVecDense(2, []float64{p0, p1})

	var x mat.VecDense
	if err := x.SolveVec(cov, y); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}
	return float64(n) * mat.Dot(y, &x), nil
}
