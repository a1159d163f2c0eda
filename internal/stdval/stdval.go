// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stdval provides E-series standard component values and
// engineering-notation formatting for component values.
package stdval

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Normalized single-decade values (1.0 to <10.0).
var (
	E12 = []float64{1.0, 1.2, 1.5, 1.8, 2.2, 2.7, 3.3, 3.9, 4.7, 5.6, 6.8, 8.2}

	E24 = []float64{
		1.0, 1.1, 1.2, 1.3, 1.5, 1.6, 1.8, 2.0, 2.2, 2.4, 2.7, 3.0,
		3.3, 3.6, 3.9, 4.3, 4.7, 5.1, 5.6, 6.2, 6.8, 7.5, 8.2, 9.1,
	}

	E96 = []float64{
		1.00, 1.02, 1.05, 1.07, 1.10, 1.13, 1.15, 1.18, 1.21, 1.24, 1.27, 1.30,
		1.33, 1.37, 1.40, 1.43, 1.47, 1.50, 1.54, 1.58, 1.62, 1.65, 1.69, 1.74,
		1.78, 1.82, 1.87, 1.91, 1.96, 2.00, 2.05, 2.10, 2.15, 2.21, 2.26, 2.32,
		2.37, 2.43, 2.49, 2.55, 2.61, 2.67, 2.74, 2.80, 2.87, 2.94, 3.01, 3.09,
		3.16, 3.24, 3.32, 3.40, 3.48, 3.57, 3.65, 3.74, 3.83, 3.92, 4.02, 4.12,
		4.22, 4.32, 4.42, 4.53, 4.64, 4.75, 4.87, 4.99, 5.11, 5.23, 5.36, 5.49,
		5.62, 5.76, 5.90, 6.04, 6.19, 6.34, 6.49, 6.65, 6.81, 6.98, 7.15, 7.32,
		7.50, 7.68, 7.87, 8.06, 8.25, 8.45, 8.66, 8.87, 9.09, 9.31, 9.53, 9.76,
	}
)

var series = map[string][]float64{"E12": E12, "E24": E24, "E96": E96}

// Snap returns the nearest standard value to v in the given E-series
// (E12, E24, or E96). Distance is measured logarithmically since E-series
// values are geometrically spaced.
func Snap(v float64, seriesName string) (float64, error) {
	if v <= 0 {
		return 0, fmt.Errorf("value must be positive, got %g", v)
	}
	s, ok := series[seriesName]
	if !ok {
		names := make([]string, 0, len(series))
		for n := range series {
			names = append(names, n)
		}
		sort.Strings(names)
		return 0, fmt.Errorf("unknown series %q, expected one of %v", seriesName, names)
	}

	decade := math.Floor(math.Log10(v))
	normalized := v / math.Pow(10, decade) // [1.0, 10.0)
	logNorm := math.Log10(normalized)

	best := s[0]
	bestDist := math.Abs(logNorm - math.Log10(s[0]))
	for _, candidate := range s[1:] {
		if dist := math.Abs(logNorm - math.Log10(candidate)); dist < bestDist {
			best = candidate
			bestDist = dist
		}
	}

	// The first value of the next decade (10.0 normalized) may be closer
	// than anything in this one.
	if math.Abs(logNorm-1.0) < bestDist {
		best = s[0]
		decade++
	}

	return best * math.Pow(10, decade), nil
}

// Engineering notation prefixes, largest first.
var prefixes = []struct {
	threshold float64
	prefix    string
}{
	{1e12, "T"}, {1e9, "G"}, {1e6, "M"}, {1e3, "k"}, {1.0, ""},
	{1e-3, "m"}, {1e-6, "u"}, {1e-9, "n"}, {1e-12, "p"}, {1e-15, "f"},
}

// FormatEngineering renders a value with SI prefixes:
// 10000.0 -> "10k", 15.9e-9 -> "15.9n", 100.0 -> "100".
func FormatEngineering(v float64) string {
	if v == 0 {
		return "0"
	}

	absVal := math.Abs(v)
	sign := ""
	if v < 0 {
		sign = "-"
	}

	for _, p := range prefixes {
		if absVal >= p.threshold {
			mantissa := absVal / p.threshold
			var formatted string
			if mantissa == math.Trunc(mantissa) {
				formatted = strconv.FormatInt(int64(mantissa), 10)
			} else {
				formatted = strconv.FormatFloat(mantissa, 'g', 3, 64)
			}
			return sign + formatted + p.prefix
		}
	}

	return strconv.FormatFloat(v, 'g', 3, 64)
}
