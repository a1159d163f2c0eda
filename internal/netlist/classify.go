// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package netlist implements the line-level vocabulary of SPICE netlists:
// classification of raw lines into structural kinds, node extraction from
// component-instance lines, heuristic port detection, and value parsing.
//
// A netlist is treated as an ordered sequence of lines; there is no circuit
// graph. Classification is stateless per line except for .subckt/.ends
// block tracking, which callers perform themselves or via BodyLines.
package netlist

import (
	"regexp"
	"strings"

	"github.com/petar-djukic/spicestack/pkg/types"
)

var (
	subcktRE   = regexp.MustCompile(`(?i)^\s*\.subckt\b`)
	endsRE     = regexp.MustCompile(`(?i)^\s*\.ends\b`)
	paramRE    = regexp.MustCompile(`(?i)^\s*\.param\s+(\w+)\s*=\s*(\S+)`)
	includeRE  = regexp.MustCompile(`(?i)^\s*\.(include|lib)\b`)
	analysisRE = regexp.MustCompile(`(?i)^\s*\.(ac|tran|op|dc)\b`)
	endRE      = regexp.MustCompile(`(?i)^\s*\.end\s*$`)
)

// Classify determines the structural kind of a single netlist line. It
// needs no surrounding context; lines inside a .subckt block still classify
// by their own shape, and callers skipping block payload must track the
// open/close state themselves.
func Classify(raw string) types.Line {
	stripped := strings.TrimSpace(raw)
	line := types.Line{Raw: raw}

	switch {
	case stripped == "":
		line.Kind = types.LineBlank
	case strings.HasPrefix(stripped, "*"):
		line.Kind = types.LineComment
	case subcktRE.MatchString(stripped):
		line.Kind = types.LineSubcktOpen
	case endsRE.MatchString(stripped):
		line.Kind = types.LineSubcktClose
	case paramRE.MatchString(stripped):
		line.Kind = types.LineParam
		m := paramRE.FindStringSubmatch(stripped)
		line.ParamKey = m[1]
		line.ParamValue = m[2]
	case includeRE.MatchString(stripped):
		line.Kind = types.LineInclude
	case analysisRE.MatchString(stripped):
		line.Kind = types.LineAnalysis
	case endRE.MatchString(stripped):
		line.Kind = types.LineEnd
	case strings.HasPrefix(stripped, "."):
		line.Kind = types.LineDirective
	case strings.HasPrefix(stripped, "+"):
		line.Kind = types.LineContinuation
	default:
		line.Kind = types.LineComponent
		line.Tokens = strings.Fields(stripped)
	}

	return line
}

// Lines splits a netlist into classified lines, in input order.
func Lines(netlist string) []types.Line {
	raw := strings.Split(netlist, "\n")
	out := make([]types.Line, len(raw))
	for i, r := range raw {
		out[i] = Classify(r)
	}
	return out
}

// BodyLines returns the classified lines that sit outside every
// .subckt/.ends block. The opening and closing lines themselves are also
// excluded; subcircuit internals are opaque payload at this layer.
func BodyLines(netlist string) []types.Line {
	var out []types.Line
	inBlock := false
	for _, line := range Lines(netlist) {
		switch line.Kind {
		case types.LineSubcktOpen:
			inBlock = true
		case types.LineSubcktClose:
			inBlock = false
		default:
			if !inBlock {
				out = append(out, line)
			}
		}
	}
	return out
}

// SubcktName returns the declared name of a .subckt block given its opening
// line, i.e. the first token after ".subckt". Falls back to the whole
// opening line when the name token is missing.
func SubcktName(openLine string) string {
	tokens := strings.Fields(strings.TrimSpace(openLine))
	if len(tokens) >= 2 {
		return tokens[1]
	}
	return strings.TrimSpace(openLine)
}
