// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// A Result is the complete output of the common mean direction test
// for one sample.
type Result struct {
	// Mean is the sample's estimated mean direction.
	Mean sphere.Vec

	// Frame and Covariance are the tangent frame and tangent
	// covariance of the full original sample at Mean.
	Frame      *mat.Dense
	Covariance *mat.SymDense

	// Calibration is the bootstrap calibration; Tc is its critical
	// value, duplicated here for convenience.
	Calibration *Calibration
	Tc          float64

	// Boundary is the traced confidence-region boundary: an
	// ordered, closed sequence of unit directions on the same
	// hemisphere as Mean. See Boundary for the seam-point
	// convention.
	Boundary []sphere.Vec
}

// Estimate runs the full procedure on a sample: mean direction,
// tangent frame, tangent covariance, bootstrap calibration of the
// critical value, and confidence-region boundary construction. It
// either completes and returns all outputs or fails fast with an error
// identifying the stage (and, for bootstrap failures, the iteration)
// that caused it.
func Estimate(ctx context.Context, sample *sphere.Sample, cfg Config) (*Result, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	mhat, err := sample.MeanDirection()
	if err != nil {
		return nil, fmt.Errorf("mean direction: %w", err)
	}
	frame := TangentFrame(mhat)
	cov, err := TangentCovariance(sample, frame)
	if err != nil {
		return nil, fmt.Errorf("sample covariance: %w", err)
	}
	cal, err := Calibrate(ctx, sample, mhat, cfg)
	if err != nil {
		return nil, fmt.Errorf("calibration: %w", err)
	}
	boundary, err := Boundary(mhat, frame, cov, sample.Len(), cal.Tc, cfg.BoundaryPoints)
	if err != nil {
		return nil, fmt.Errorf("boundary construction: %w", err)
	}

	return &Result{
		Mean:        mhat,
		Frame:       frame,
		Covariance:  cov,
		Calibration: cal,
		Tc:          cal.Tc,
		Boundary:    boundary,
	}, nil
}
