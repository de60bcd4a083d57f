// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

var (
	// ErrSampleSize is returned when a sample has fewer than two
	// directions.
	ErrSampleSize = errors.New("sample is too small")

	// ErrNotUnit is returned when an input direction is not of unit
	// length.
	ErrNotUnit = errors.New("direction is not a unit vector")

	// ErrZeroResultant is returned when a sample's resultant vector
	// has numerically zero length, so its mean direction is
	// undefined. This happens only for degenerate samples whose
	// directions cancel, such as an antipodal pair.
	ErrZeroResultant = errors.New("sample resultant has zero length")
)

// ZeroResultantTol is the threshold on the squared length of a
// sample's mean vector below which the resultant is treated as zero.
// Both the mean direction and the tangent covariance rescaling use
// it, so a near-cancelling sample fails at the first stage that sees
// it.
const ZeroResultantTol = 1e-12

// unitTol is the relative tolerance on input vector length. Directions
// read from angle pairs are unit by construction; this catches vectors
// supplied directly in Cartesian form.
const unitTol = 1e-6

// A Sample is an immutable, ordered collection of at least two unit
// directions. It is the sole input dataset of the common mean
// direction test.
type Sample struct {
	vecs []Vec
}

// NewSample returns a Sample holding the given directions. It returns
// ErrSampleSize if fewer than two directions are given, and ErrNotUnit
// if any direction's length differs from 1 by more than a small
// relative tolerance. The stored directions are re-normalized so
// downstream code may assume exact unit length.
func NewSample(vecs []Vec) (*Sample, error) {
	if len(vecs) < 2 {
		return nil, fmt.Errorf("%w: have %d directions, need at least 2", ErrSampleSize, len(vecs))
	}
	s := &Sample{vecs: make([]Vec, len(vecs))}
	for i, v := range vecs {
		n := v.Norm()
		if math.Abs(n-1) > unitTol {
			return nil, fmt.Errorf("%w: direction %d has length %v", ErrNotUnit, i, n)
		}
		s.vecs[i] = v.Scale(1 / n)
	}
	return s, nil
}

// Len returns the number of directions in the sample.
func (s *Sample) Len() int {
	return len(s.vecs)
}

// At returns the i'th direction.
func (s *Sample) At(i int) Vec {
	return s.vecs[i]
}

// Vecs returns a copy of the sample's directions.
func (s *Sample) Vecs() []Vec {
	return append([]Vec(nil), s.vecs...)
}

// Resultant returns the unnormalized vector sum of the sample's
// directions. Its length, between 0 and Len(), reflects the angular
// concentration of the sample.
func (s *Sample) Resultant() Vec {
	var r Vec
	for _, v := range s.vecs {
		r = r.Add(v)
	}
	return r
}

// MeanDirection returns the normalized arithmetic mean of the sample's
// directions. It returns ErrZeroResultant if the mean vector's squared
// length falls below ZeroResultantTol.
func (s *Sample) MeanDirection() (Vec, error) {
	r := s.Resultant()
	mean := r.Scale(1 / float64(len(s.vecs)))
	if mean.Dot(mean) < ZeroResultantTol {
		return Vec{}, ErrZeroResultant
	}
	return r.Normalized(), nil
}

// Resample returns a bootstrap resample of s: a new sample of the same
// size whose directions are drawn from s uniformly at random with
// replacement, using rng as the source of randomness.
func (s *Sample) Resample(rng *rand.Rand) *Sample {
	vecs := make([]Vec, len(s.vecs))
	for i := range vecs {
		vecs[i] = s.vecs[rng.Intn(len(s.vecs))]
	}
	return &Sample{vecs: vecs}
}
