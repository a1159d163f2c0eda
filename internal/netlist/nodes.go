// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package netlist

// nodeCounts maps a SPICE component letter to the number of node tokens
// that immediately follow the reference on an instance line. ngspice
// dispatches device behavior purely on this first letter.
var nodeCounts = map[byte]int{
	'R': 2, 'C': 2, 'L': 2, 'V': 2, 'I': 2, 'D': 2,
	'F': 2, 'H': 2, 'B': 2,
	'Q': 3, 'J': 3,
	'M': 4, 'E': 4, 'G': 4,
}

// NodeCount reports the node arity for a component letter. Letters are
// matched case-insensitively.
func NodeCount(letter byte) (int, bool) {
	n, ok := nodeCounts[upper(letter)]
	return n, ok
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// RefLetter returns the upper-cased component letter of an instance line's
// reference token, or 0 when tokens is empty.
func RefLetter(tokens []string) byte {
	if len(tokens) == 0 || len(tokens[0]) == 0 {
		return 0
	}
	return upper(tokens[0][0])
}

// NodeRange returns the half-open token index range [start, end) occupied
// by node names on a component-instance line.
//
// Subcircuit instances (letter X) have variable arity: every token between
// the reference and the trailing model name is a node, provided at least
// three tokens exist. Known letters take their fixed arity from the table,
// clamped to the available tokens. Unknown letters fall back to a
// conservative two-node assumption when at least three tokens are present,
// otherwise zero nodes, so exotic component types degrade gracefully
// instead of failing.
//
// This is the single source of node-position truth: both the read-only
// port detector and the renaming write path call it, so the two can never
// drift apart.
func NodeRange(tokens []string) (start, end int) {
	letter := RefLetter(tokens)
	if letter == 0 {
		return 0, 0
	}
	if letter == 'X' {
		if len(tokens) >= 3 {
			return 1, len(tokens) - 1
		}
		return 0, 0
	}
	n, known := nodeCounts[letter]
	if !known {
		if len(tokens) >= 3 {
			n = 2
		} else {
			return 0, 0
		}
	}
	end = 1 + n
	if end > len(tokens) {
		end = len(tokens)
	}
	return 1, end
}

// ExtractNodes returns the node tokens of a component-instance line, in
// order. The input slice is never modified.
func ExtractNodes(tokens []string) []string {
	start, end := NodeRange(tokens)
	if start >= end {
		return nil
	}
	nodes := make([]string, end-start)
	copy(nodes, tokens[start:end])
	return nodes
}
