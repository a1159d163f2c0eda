// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package prefix implements the namespace prefixer: rewriting every
// component reference and node name in a netlist fragment under a stage
// label so independently-authored fragments can be merged without
// collisions.
//
// Renaming is structural: each line is tokenized once and only the node
// and reference fields are rewritten, never whole-line text substitution.
// The node "0" is global ground and is never renamed under any
// circumstance.
//
// Known limitation: continuation lines (leading "+") are dropped rather
// than joined onto their parent statement; multi-line component statements
// are not supported by this engine.
package prefix

import (
	"strings"

	"github.com/petar-djukic/spicestack/internal/netlist"
	"github.com/petar-djukic/spicestack/pkg/types"
)

// Options controls a single prefixing pass.
type Options struct {
	// Preserve lists node names that must not be prefixed. "0" is always
	// preserved regardless of this set.
	Preserve map[string]struct{}

	// StripSourcesOn lists node names such that any V or I source whose
	// first node is one of them is dropped entirely. Used when a stage's
	// input is driven by an upstream stage instead of its own source.
	StripSourcesOn map[string]struct{}
}

// Apply rewrites netlist under the given prefix and returns the rewritten
// body plus the verbatim text of every extracted .subckt block.
//
// Subcircuit blocks are excluded from the body entirely; their internals
// are never touched, only the X instance lines that invoke them. Analysis
// directives and .end are dropped (simulation setup belongs to the
// composed whole). Parameter declarations are renamed to {prefix}_KEY and
// every {KEY} brace reference in the body is rewritten to match.
//
// Output line order matches input order minus dropped lines, and identical
// inputs always produce byte-identical output.
func Apply(netlistText, prefix string, opts Options) (string, []string) {
	preserve := make(map[string]struct{}, len(opts.Preserve)+1)
	for n := range opts.Preserve {
		preserve[n] = struct{}{}
	}
	preserve["0"] = struct{}{}

	stripOn := opts.StripSourcesOn
	if stripOn == nil {
		stripOn = map[string]struct{}{}
	}

	lines := netlist.Lines(netlistText)

	// Pass 1: collect .subckt blocks verbatim and every .param name. The
	// full parameter-name set must be known before any line is rewritten,
	// because value expressions may reference parameters declared later.
	var subcktBlocks []string
	var paramNames []string
	var blockBuf []string
	inBlock := false
	for _, line := range lines {
		if inBlock {
			blockBuf = append(blockBuf, line.Raw)
			if line.Kind == types.LineSubcktClose {
				subcktBlocks = append(subcktBlocks, strings.Join(blockBuf, "\n"))
				blockBuf = nil
				inBlock = false
			}
			continue
		}
		switch line.Kind {
		case types.LineSubcktOpen:
			inBlock = true
			blockBuf = []string{line.Raw}
		case types.LineParam:
			paramNames = append(paramNames, line.ParamKey)
		}
	}

	// Pass 2: rewrite the body.
	var out []string
	inBlock = false
	for _, line := range lines {
		if inBlock {
			if line.Kind == types.LineSubcktClose {
				inBlock = false
			}
			continue
		}

		switch line.Kind {
		case types.LineSubcktOpen:
			inBlock = true
		case types.LineAnalysis, types.LineEnd:
			// Dropped; the caller appends its own simulation commands.
		case types.LineParam:
			out = append(out, ".param "+prefix+"_"+line.ParamKey+"="+line.ParamValue)
		case types.LineInclude:
			// External, globally-shared files; prefixing would break the
			// reference.
			out = append(out, line.Raw)
		case types.LineComment:
			text := strings.TrimLeft(strings.TrimSpace(line.Raw), "* ")
			out = append(out, "* ["+prefix+"] "+text)
		case types.LineBlank:
			out = append(out, "")
		case types.LineContinuation:
			// Dropped; see the package comment.
		case types.LineDirective:
			out = append(out, line.Raw)
		case types.LineComponent:
			rewritten, keep := componentLine(line.Tokens, prefix, preserve, stripOn)
			if keep {
				out = append(out, rewritten)
			}
		}
	}

	// Final sub-pass: rewrite {PARAM} brace references on every emitted
	// line, including .param value expressions that reference each other.
	for i, line := range out {
		for _, name := range paramNames {
			line = strings.ReplaceAll(line, "{"+name+"}", "{"+prefix+"_"+name+"}")
		}
		out[i] = line
	}

	return strings.Join(out, "\n"), subcktBlocks
}

// componentLine rewrites a single component-instance line. The second
// return is false when the line must be dropped (a stripped source).
func componentLine(tokens []string, prefix string, preserve, stripOn map[string]struct{}) (string, bool) {
	ref := tokens[0]
	letter := netlist.RefLetter(tokens)

	if letter == 'X' {
		// X<name> node1 node2 ... subckt_name. The leading X is kept
		// literally so the simulator still recognizes the instance kind;
		// the trailing model name is never a node.
		if len(tokens) < 3 {
			return strings.Join(tokens, " "), true
		}
		parts := []string{"X" + prefix + "_" + ref[1:]}
		for _, n := range tokens[1 : len(tokens)-1] {
			parts = append(parts, prefixNode(n, prefix, preserve))
		}
		parts = append(parts, tokens[len(tokens)-1])
		return strings.Join(parts, " "), true
	}

	n, known := netlist.NodeCount(letter)
	if !known {
		// Unknown component letter: pass through unchanged.
		return strings.Join(tokens, " "), true
	}

	if (letter == 'V' || letter == 'I') && len(tokens) >= 2 {
		if _, drop := stripOn[tokens[1]]; drop {
			return "", false
		}
	}

	parts := []string{string(ref[0]) + prefix + "_" + ref[1:]}
	end := 1 + n
	if end > len(tokens) {
		end = len(tokens)
	}
	for _, tok := range tokens[1:end] {
		parts = append(parts, prefixNode(tok, prefix, preserve))
	}

	rest := append([]string(nil), tokens[end:]...)

	// F/H controlled sources name their controlling V source in the first
	// trailing token; that token is a component reference, not a value,
	// and must be renamed the same way.
	if (letter == 'F' || letter == 'H') && len(rest) > 0 {
		vref := rest[0]
		if len(vref) > 0 && netlist.RefLetter([]string{vref}) == 'V' {
			rest[0] = string(vref[0]) + prefix + "_" + vref[1:]
		} else {
			rest[0] = prefix + "_" + vref
		}
	}

	parts = append(parts, rest...)
	return strings.Join(parts, " "), true
}

func prefixNode(node, prefix string, preserve map[string]struct{}) string {
	if _, ok := preserve[node]; ok {
		return node
	}
	return prefix + "_" + node
}
