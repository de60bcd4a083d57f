// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sphere provides primitives for directional data on the unit
// sphere: Cartesian unit vectors, declination/inclination conversion,
// and fixed samples of directions as used in paleomagnetism.
package sphere // import "github.com/dave-heslop74/Bootstrap-CMDT/sphere"
