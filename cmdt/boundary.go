// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// ErrDegenerateBoundary is returned when the confidence-region
// boundary construction is undefined: a non-positive eigenvalue of the
// quadratic form, or a negative radicand while lifting the boundary
// back onto the sphere. Either indicates an inconsistent or degenerate
// covariance estimate.
var ErrDegenerateBoundary = errors.New("degenerate confidence-region boundary")

// Boundary traces the confidence-region boundary on the unit sphere:
// an ordered, closed sequence of unit directions x satisfying
// n·(M·x)ᵗ·G⁻¹·(M·x) = Tc, oriented on the same hemisphere as mhat.
//
// The frame M and covariance G must be the ones computed from the full
// original sample, and Tc the bootstrap-calibrated critical value. The
// ambient quadratic form C = n·Mᵗ·G⁻¹·M is eigendecomposed; the two
// leading principal axes carry the ellipse cos/sin sweep scaled by
// √(Tc/Dᵢ), and the third coordinate √(1−y₀²−y₁²) pins each point to
// the unit sphere before mapping back through the eigenvectors.
//
// The parameter sweeps one revolution in points equally spaced samples
// including both endpoints, so with the default 201 points the step is
// π/100 and the final point re-lands on the first up to rounding; the
// seam point is kept for compatibility with the reference procedure
// rather than deduplicated.
//
// Eigenvector sign is arbitrary, so the raw trace may come out on the
// antipodal hemisphere; when the normalized mean of the traced points
// lies more than π/2 from mhat, every point is negated.
//
// It returns ErrSingularCovariance if G cannot be inverted, and
// ErrDegenerateBoundary if a leading eigenvalue is not positive or a
// point's unit-sphere radicand is negative.
func Boundary(mhat sphere.Vec, frame *mat.Dense, cov *mat.SymDense, n int, tc float64, points int) ([]sphere.Vec, error) {
	if points == 0 {
		points = DefaultBoundaryPoints
	}
	if points < 2 {
		return nil, fmt.Errorf("boundary points = %d, must be at least 2", points)
	}

	// C = n·Mᵗ·G⁻¹·M, symmetrized against round-off before the
	// eigendecomposition.
	var ginvM mat.Dense
	if err := ginvM.Solve(cov, frame); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularCovariance, err)
	}
	var c mat.Dense
	c.Mul(frame.T(), &ginvM)
	c.Scale(float64(n), &c)
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			sym.SetSym(i, j, (c.At(i, j)+c.At(j, i))/2)
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, fmt.Errorf("%w: eigendecomposition failed", ErrDegenerateBoundary)
	}
	vals := eig.Values(nil)
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	// Order the eigenpairs by descending eigenvalue. The two
	// leading pairs span the tangent plane; the trailing eigenvalue
	// is the form's (near-zero) null direction along ±mhat.
	ord := []int{0, 1, 2}
	sort.Slice(ord, func(a, b int) bool { return vals[ord[a]] > vals[ord[b]] })
	d0, d1 := vals[ord[0]], vals[ord[1]]
	if d0 <= 0 || d1 <= 0 {
		return nil, fmt.Errorf("%w: non-positive eigenvalues %v, %v", ErrDegenerateBoundary, d0, d1)
	}
	r0, r1 := math.Sqrt(tc/d0), math.Sqrt(tc/d1)

	pts := make([]sphere.Vec, points)
	step := 2 * math.Pi / float64(points-1)
	for k := range pts {
		th := float64(k) * step
		y0, y1 := r0*math.Cos(th), r1*math.Sin(th)
		rad := 1 - y0*y0 - y1*y1
		if rad < 0 {
			return nil, fmt.Errorf("%w: point %d lies outside the unit sphere", ErrDegenerateBoundary, k)
		}
		y2 := math.Sqrt(rad)
		pts[k] = sphere.Vec{
			X: vecs.At(0, ord[0])*y0 + vecs.At(0, ord[1])*y1 + vecs.At(0, ord[2])*y2,
			Y: vecs.At(1, ord[0])*y0 + vecs.At(1, ord[1])*y1 + vecs.At(1, ord[2])*y2,
			Z: vecs.At(2, ord[0])*y0 + vecs.At(2, ord[1])*y1 + vecs.At(2, ord[2])*y2,
		}
	}

	var sum sphere.Vec
	for _, p := range pts {
		sum = sum.Add(p)
	}
	if sum.Normalized().Angle(mhat) > math.Pi/2 {
		for i := range pts {
			pts[i] = pts[i].Neg()
		}
	}
	return pts, nil
}
