// Copyright 2026 The Bootstrap-CMDT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sphere

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadSample reads a Sample from r. Each non-blank line holds one
// observation as a declination/inclination pair in degrees, separated
// by whitespace or a comma, with no header row. Parse errors carry the
// 1-based line number.
func ReadSample(r io.Reader) (*Sample, error) {
	var vecs []Vec
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(c rune) bool {
			return c == ' ' || c == '\t' || c == ','
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want 2 fields (dec inc), got %d", lineno, len(fields))
		}
		dec, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad declination %q: %v", lineno, fields[0], err)
		}
		inc, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad inclination %q: %v", lineno, fields[1], err)
		}
		vecs = append(vecs, FromDecInc(dec, inc))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewSample(vecs)
}

// LoadSample reads a Sample from the named file. See ReadSample for
// the format.
func LoadSample(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := ReadSample(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
