// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"math"
	"testing"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

// testDirs is a normal-polarity style dataset: declinations scattered
// about north, moderately steep downward inclinations.
var testDirs = [][2]float64{
	{348.1, 54.2}, {355.6, 58.9}, {2.3, 51.7}, {341.9, 60.4},
	{351.2, 47.8}, {6.8, 56.1}, {358.4, 63.2}, {344.7, 52.5},
	{353.0, 55.0}, {12.6, 49.3}, {337.5, 57.6}, {359.1, 44.9},
	{347.3, 61.8}, {4.5, 59.5}, {356.8, 50.2}, {343.2, 48.6},
	{349.9, 65.1}, {8.2, 53.7}, {354.4, 46.4}, {340.6, 55.9},
	{1.7, 62.3}, {352.5, 58.1}, {346.0, 50.9}, {357.9, 54.6},
	{5.9, 47.2}, {350.3, 60.0},
}

func testSample(t *testing.T) *sphere.Sample {
	t.Helper()
	vecs := make([]sphere.Vec, len(testDirs))
	for i, d := range testDirs {
		vecs[i] = sphere.FromDecInc(d[0], d[1])
	}
	s, err := sphere.NewSample(vecs)
	if err != nil {
		t.Fatalf("test sample: %v", err)
	}
	return s
}

// antipodalSample returns a degenerate sample whose resultant vector
// cancels exactly.
func antipodalSample(t *testing.T) *sphere.Sample {
	t.Helper()
	s, err := sphere.NewSample([]sphere.Vec{{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0}})
	if err != nil {
		t.Fatalf("antipodal sample: %v", err)
	}
	return s
}
