// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types defines the plain data structures shared across spicestack
// packages: classified netlist lines, stages, connections, and warnings.
package types

// LineKind classifies a single netlist line by its structural role.
type LineKind int

const (
	LineBlank        LineKind = iota // Empty after trimming
	LineComment                      // Starts with '*'
	LineSubcktOpen                   // .subckt NAME ...
	LineSubcktClose                  // .ends [NAME]
	LineParam                        // .param KEY=VAL
	LineInclude                      // .include or .lib
	LineAnalysis                     // .ac, .tran, .op, .dc
	LineEnd                          // .end
	LineDirective                    // Any other dot directive
	LineContinuation                 // Starts with '+'
	LineComponent                    // Component instance
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineComment:
		return "comment"
	case LineSubcktOpen:
		return "subckt-open"
	case LineSubcktClose:
		return "subckt-close"
	case LineParam:
		return "param"
	case LineInclude:
		return "include"
	case LineAnalysis:
		return "analysis"
	case LineEnd:
		return "end"
	case LineDirective:
		return "directive"
	case LineContinuation:
		return "continuation"
	case LineComponent:
		return "component"
	default:
		return "unknown"
	}
}

// Line is one classified netlist line. Raw is always the original text;
// Tokens is populated only for component-instance lines, ParamKey and
// ParamValue only for .param lines.
type Line struct {
	Kind       LineKind
	Raw        string   // Original line text, verbatim
	Tokens     []string // Whitespace-split tokens (component lines only)
	ParamKey   string   // Parameter name (.param lines only)
	ParamValue string   // Parameter value (.param lines only)
}
