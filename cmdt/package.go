// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmdt implements the bootstrap common mean direction test for
// spherical data.
//
// Given a sample of unit-vector observations, it estimates the mean
// direction and constructs a non-parametric confidence region around
// it by resampling: the sample is linearized in the tangent plane at
// the mean, a covariance of the tangent-projected data is estimated,
// and the critical value of the resulting Mahalanobis-type statistic
// is calibrated as an upper quantile of its bootstrap distribution
// rather than taken from an assumed parametric (Fisher) distribution.
//
// The procedure follows Fisher, Lewis and Embleton, "Statistical
// Analysis of Spherical Data" (1987), §5.3.1, and Tauxe, "Essentials
// of Paleomagnetism" (2010), ch. 12.
package cmdt // import "github.com/dave-heslop74/Bootstrap-CMDT/cmdt"
