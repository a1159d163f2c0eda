// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package netlist

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SI multipliers recognized in SPICE value suffixes. "meg" must win over
// the single-letter "m" during matching.
var unitMap = map[string]float64{
	"T":   1e12,
	"G":   1e9,
	"meg": 1e6,
	"K":   1e3,
	"k":   1e3,
	"M":   1e-3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valueRE = regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?s?$`)

// ParseValue converts a SPICE value string to a float, applying SI
// suffixes: "1k" -> 1000, "100n" -> 1e-7, "1meg" -> 1e6. A trailing unit
// letter such as the "s" in "10us" is tolerated.
func ParseValue(val string) (float64, error) {
	matches := valueRE.FindStringSubmatch(strings.TrimSpace(val))
	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	if matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}
