// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sanitize validates user-supplied netlists and component values
// before they reach a simulator: directive allowlisting, size limits, and
// injection checks. The composition engine itself performs no filtering;
// this package is the trust boundary in front of it.
package sanitize

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MaxNetlistSize is the maximum accepted netlist length in bytes.
const MaxNetlistSize = 1_000_000

// allowedDirectives is the allowlist of safe SPICE dot-directives. Any
// dot-directive not on this list is rejected.
var allowedDirectives = map[string]struct{}{
	"ac": {}, "tran": {}, "op": {}, "dc": {},
	"param": {}, "subckt": {}, "ends": {}, "model": {},
	"include": {}, "lib": {}, "global": {}, "end": {},
	"ic": {}, "nodeset": {}, "options": {}, "temp": {}, "save": {},
}

var (
	dotDirectiveRE   = regexp.MustCompile(`(?i)^\s*\.(\w+)`)
	componentValueRE = regexp.MustCompile(`^[A-Za-z0-9_.{}\-+*/() ]+$`)
	includeLineRE    = regexp.MustCompile(`(?im)^\s*\.(include|lib)\s+"?([^"\s]+)"?`)
)

// Options controls netlist checking.
type Options struct {
	// AllowIncludes skips the .include/.lib rejection. Meant for netlists
	// whose include lines were added by trusted code, not by the caller.
	AllowIncludes bool
}

// CheckNetlist validates a netlist for dangerous SPICE directives. It
// returns nil when the netlist is safe to hand to a simulator.
//
// Continuation lines are reassembled onto their parent line before
// scanning so a directive split across lines cannot hide from the check.
func CheckNetlist(netlist string, opts Options) error {
	if len(netlist) > MaxNetlistSize {
		return fmt.Errorf("netlist too large: %d chars (max %d)", len(netlist), MaxNetlistSize)
	}

	var reassembled []string
	for _, line := range strings.Split(netlist, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), "+") && len(reassembled) > 0 {
			joined := strings.TrimLeft(line, " \t")[1:]
			reassembled[len(reassembled)-1] += " " + joined
			continue
		}
		reassembled = append(reassembled, line)
	}

	for i, line := range reassembled {
		lineno := i + 1
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "*") {
			continue
		}

		if strings.Contains(stripped, "`") {
			return fmt.Errorf("backtick execution on line %d is not allowed", lineno)
		}

		m := dotDirectiveRE.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])

		if (name == "include" || name == "lib") && !opts.AllowIncludes {
			directive := strings.Fields(stripped)[0]
			return fmt.Errorf("directive %q on line %d is not allowed in user-supplied netlists; supply models separately", directive, lineno)
		}

		if _, ok := allowedDirectives[name]; !ok {
			directive := strings.Fields(stripped)[0]
			return fmt.Errorf("disallowed SPICE directive %q on line %d", directive, lineno)
		}
	}

	return nil
}

// CheckComponentValue validates a component value string for injection
// attempts: no newlines, semicolons, backticks, or leading dot, and only
// characters from the value allowlist.
func CheckComponentValue(value string) error {
	if value == "" {
		return fmt.Errorf("component value must not be empty")
	}
	if strings.ContainsAny(value, "\n\r") {
		return fmt.Errorf("component value must not contain newlines")
	}
	if strings.Contains(value, ";") {
		return fmt.Errorf("component value must not contain semicolons")
	}
	if strings.Contains(value, "`") {
		return fmt.Errorf("component value must not contain backticks")
	}
	if strings.HasPrefix(strings.TrimLeft(value, " \t"), ".") {
		return fmt.Errorf("component value must not start with '.' (SPICE directive marker)")
	}
	if !componentValueRE.MatchString(value) {
		return fmt.Errorf("component value %q contains disallowed characters", value)
	}
	return nil
}

// CheckIncludePaths verifies that every .include/.lib path in the netlist
// resolves inside one of the allowed directories.
func CheckIncludePaths(netlist string, allowedDirs []string) error {
	resolved := make([]string, 0, len(allowedDirs))
	for _, d := range allowedDirs {
		abs, err := filepath.Abs(d)
		if err != nil {
			return fmt.Errorf("resolving allowed dir %q: %w", d, err)
		}
		resolved = append(resolved, abs)
	}

	for _, m := range includeLineRE.FindAllStringSubmatch(netlist, -1) {
		incPath, err := filepath.Abs(m[2])
		if err != nil {
			return fmt.Errorf("resolving include path %q: %w", m[2], err)
		}
		if !underAny(incPath, resolved) {
			return fmt.Errorf("include path %q resolves outside allowed directories", m[2])
		}
	}
	return nil
}

func underAny(path string, dirs []string) bool {
	for _, d := range dirs {
		if path == d {
			return true
		}
		rel, err := filepath.Rel(d, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// CheckFilename validates that a filename contains no path separators or
// traversal components.
func CheckFilename(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename must not be empty")
	}
	if strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("invalid filename: must not contain path separators")
	}
	if strings.Contains(filename, "..") {
		return fmt.Errorf("invalid filename: must not contain '..'")
	}
	return nil
}
