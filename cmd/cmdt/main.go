// cmdt reads declination/inclination pairs from a file or stdin, runs
// the bootstrap common mean direction test, and reports the mean
// direction, the critical value, and optionally the confidence-region
// boundary as dec/inc pairs.
//
// Usage:
//
//	cmdt [flags] [input-file]
//
// Input is one "dec inc" pair per line, degrees, whitespace- or
// comma-separated, no header. With no input file, stdin is read.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dave-heslop74/Bootstrap-CMDT/cmdt"
	"github.com/dave-heslop74/Bootstrap-CMDT/sphere"
)

// runConfig mirrors cmdt.Config for the optional YAML run file. Flags
// given on the command line override the file.
type runConfig struct {
	B       int     `yaml:"b"`
	Alpha   float64 `yaml:"alpha"`
	Seed    int64   `yaml:"seed"`
	Workers int     `yaml:"workers"`
	Points  int     `yaml:"points"`
}

func main() {
	var (
		flagB        = flag.Int("b", 0, "number of bootstrap resamples (default 10000)")
		flagAlpha    = flag.Float64("alpha", 0, "significance level (default 0.05)")
		flagSeed     = flag.Int64("seed", 0, "random seed for resampling")
		flagWorkers  = flag.Int("workers", 0, "bootstrap worker goroutines (default GOMAXPROCS)")
		flagPoints   = flag.Int("points", 0, "confidence boundary points (default 201)")
		flagConfig   = flag.String("config", "", "YAML run configuration `file`")
		flagBoundary = flag.Bool("boundary", false, "print the boundary as dec/inc pairs")
	)
	flag.Parse()
	if flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [input-file]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	var cfg cmdt.Config
	if *flagConfig != "" {
		rc, err := loadRunConfig(*flagConfig)
		if err != nil {
			fatal(err)
		}
		cfg = cmdt.Config{B: rc.B, Alpha: rc.Alpha, Seed: rc.Seed, Workers: rc.Workers, BoundaryPoints: rc.Points}
	}
	if *flagB != 0 {
		cfg.B = *flagB
	}
	if *flagAlpha != 0 {
		cfg.Alpha = *flagAlpha
	}
	if *flagSeed != 0 {
		cfg.Seed = *flagSeed
	}
	if *flagWorkers != 0 {
		cfg.Workers = *flagWorkers
	}
	if *flagPoints != 0 {
		cfg.BoundaryPoints = *flagPoints
	}

	var sample *sphere.Sample
	var err error
	if flag.NArg() == 1 {
		sample, err = sphere.LoadSample(flag.Arg(0))
	} else {
		sample, err = sphere.ReadSample(os.Stdin)
	}
	if err != nil {
		fatal(err)
	}

	res, err := cmdt.Estimate(context.Background(), sample, cfg)
	if err != nil {
		fatal(err)
	}

	dec, inc := res.Mean.DecInc()
	fmt.Printf("n %d  mean dec %.1f  inc %.1f\n", sample.Len(), dec, inc)
	fmt.Printf("Tc %.2f  (B %d, alpha %g)\n", res.Tc, res.Calibration.B, res.Calibration.Alpha)
	if *flagBoundary {
		for _, p := range res.Boundary {
			dec, inc := p.DecInc()
			fmt.Printf("%.4f %.4f\n", dec, inc)
		}
	}
}

func loadRunConfig(path string) (*runConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rc runConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &rc, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
