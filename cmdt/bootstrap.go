// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdt

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"

	mstats "github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// Defaults for the zero values of Config fields.
const (
	DefaultB              = 10000
	DefaultAlpha          = 0.05
	DefaultBoundaryPoints = 201
)

// A Config holds the tunable parameters of the procedure. The zero
// value of each field selects its default.
type Config struct {
	// B is the number of bootstrap resamples. Default 10000.
	B int

	// Alpha is the significance level; the confidence region has
	// coverage 1−Alpha. Must be in (0, 1). Default 0.05.
	Alpha float64

	// Seed seeds the resampling. A fixed Seed makes the
	// calibration fully deterministic, independent of Workers.
	Seed int64

	// Workers is the number of goroutines the bootstrap iterations
	// are sharded across. Default GOMAXPROCS.
	Workers int

	// BoundaryPoints is the number of points traced along the
	// confidence-region boundary. Default 201.
	BoundaryPoints int
}

func (c Config) withDefaults() (Config, error) {
	if c.B == 0 {
		c.B = DefaultB
	}
	if c.Alpha == 0 {
		c.Alpha = DefaultAlpha
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.BoundaryPoints == 0 {
		c.BoundaryPoints = DefaultBoundaryPoints
	}
	switch {
	case c.B < 1:
		return c, fmt.Errorf("config: B = %d, must be positive", c.B)
	case c.Alpha <= 0 || c.Alpha >= 1:
		return c, fmt.Errorf("config: alpha = %v, must be in (0, 1)", c.Alpha)
	case c.Workers < 1:
		return c, fmt.Errorf("config: workers = %d, must be positive", c.Workers)
	case c.BoundaryPoints < 2:
		return c, fmt.Errorf("config: boundary points = %d, must be at least 2", c.BoundaryPoints)
	}
	return c, nil
}

// A Calibration is the result of bootstrap-calibrating the test
// statistic's critical value.
type Calibration struct {
	// B is the number of resamples and Alpha the significance
	// level the calibration was run with.
	B     int
	Alpha float64

	// Stats is the bootstrap distribution of the statistic: one
	// value per resample, sorted ascending.
	Stats []float64

	// Tc is the (1−Alpha) quantile of Stats, the critical value of
	// the test.
	Tc float64

	// Mean, Median and StdDev summarize the bootstrap
	// distribution.
	Mean, Median, StdDev float64
}

// CriticalValue returns the (1−alpha) linear-interpolation quantile of
// the stored bootstrap distribution. It allows critical values at
// other significance levels to be read off the same calibration;
// CriticalValue(c.Alpha) == c.Tc. The result is non-increasing in
// alpha.
func (c *Calibration) CriticalValue(alpha float64) (float64, error) {
	if alpha <= 0 || alpha >= 1 {
		return 0, fmt.Errorf("alpha = %v, must be in (0, 1)", alpha)
	}
	return stat.Quantile(1-alpha, stat.LinInterp, c.Stats, nil), nil
}

// iterSeed mixes the base seed and an iteration index into the seed
// for that iteration's random source, using the splitmix64 finalizer.
// A plain seed+index derivation would make adjacent base seeds share
// all but one of their iteration streams and hence produce
// near-duplicate bootstrap distributions; the mix keeps every
// (seed, index) stream distinct while staying a pure function of the
// pair, which is what makes the calibration independent of how the
// iterations are sharded across workers.
func iterSeed(seed int64, i int) int64 {
	z := uint64(seed) + uint64(i)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// Calibrate estimates the critical value of the test statistic by
// bootstrap resampling. For each of cfg.B iterations it draws a
// resample of the original sample with replacement, recomputes that
// resample's own mean direction, tangent frame and tangent covariance,
// and evaluates the statistic at the fixed original mean mhat against
// them, measuring how far the original mean sits relative to each
// resample's estimated geometry. The critical value Tc is the
// (1−alpha) quantile of the resulting distribution.
//
// Iterations are independent and are sharded across cfg.Workers
// goroutines. Each iteration draws from its own source seeded by a
// hash of cfg.Seed and the iteration index, so the statistic
// distribution, and hence Tc, is reproducible for a fixed seed
// regardless of the worker count, and distinct seeds share no
// iteration streams.
//
// A degenerate resample (zero resultant or singular covariance) aborts
// the whole calibration: skipping bad resamples would silently bias
// the quantile. The returned error carries the iteration index so the
// failure can be reproduced with the same seed. Cancellation of ctx is
// checked between iterations.
func Calibrate(ctx context.Context, sample *sphere.Sample, mhat sphere.Vec, cfg Config) (*Calibration, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	n := sample.Len()
	stats := make([]float64, cfg.B)

	g, ctx := errgroup.WithContext(ctx)
	shard := (cfg.B + cfg.Workers - 1) / cfg.Workers
	for lo := 0; lo < cfg.B; lo += shard {
		lo, hi := lo, lo+shard
		if hi > cfg.B {
			hi = cfg.B
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rng := rand.New(rand.NewSource(iterSeed(cfg.Seed, i)))
				rs := sample.Resample(rng)
				mb, err := rs.MeanDirection()
				if err != nil {
					return fmt.Errorf("bootstrap iteration %d: %w", i, err)
				}
				frame := TangentFrame(mb)
				cov, err := TangentCovariance(rs, frame)
				if err != nil {
					return fmt.Errorf("bootstrap iteration %d: %w", i, err)
				}
				t, err := Statistic(mhat, n, frame, cov)
				if err != nil {
					return fmt.Errorf("bootstrap iteration %d: %w", i, err)
				}
				stats[i] = t
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Float64s(stats)
	cal := &Calibration{
		B:     cfg.B,
		Alpha: cfg.Alpha,
		Stats: stats,
		Tc:    stat.Quantile(1-cfg.Alpha, stat.LinInterp, stats, nil),
	}
	// The summary statistics cannot fail here: Stats is non-empty.
	cal.Mean, _ = mstats.Mean(stats)
	cal.Median, _ = mstats.Median(stats)
	cal.StdDev, _ = mstats.StandardDeviationSample(stats)
	return cal, nil
}
