// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package netlist

import (
	"strings"

	"github.com/petar-djukic/spicestack/pkg/types"
)

// Prepare strips any existing analysis commands and .end directive from a
// netlist and appends the supplied analysis line followed by .end,
// producing a complete runnable netlist. The result always ends with a
// trailing newline.
func Prepare(netlist, analysisLine string) string {
	var lines []string
	for _, line := range Lines(netlist) {
		if line.Kind == types.LineAnalysis || line.Kind == types.LineEnd {
			continue
		}
		lines = append(lines, line.Raw)
	}
	lines = append(lines, analysisLine, ".end")
	return strings.Join(lines, "\n") + "\n"
}
