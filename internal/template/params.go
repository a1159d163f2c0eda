// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package template

import (
	"fmt"
	"regexp"
	"strings"
)

var paramLineRE = regexp.MustCompile(`(?i)^(\s*\.param\s+)(\w+)\s*=\s*(\S+)`)

// SubstituteParams rewrites .param lines to apply overrides: for each key
// in params, a matching ".param KEY=oldval" line has its value replaced.
// All other lines are untouched.
func SubstituteParams(netlist string, params map[string]string) string {
	if len(params) == 0 {
		return netlist
	}

	lines := strings.Split(netlist, "\n")
	for i, line := range lines {
		m := paramLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if val, ok := params[m[2]]; ok {
			lines[i] = m[1] + m[2] + "=" + val
		}
	}
	return strings.Join(lines, "\n")
}

// ModifyComponent updates a component value in a netlist. A matching
// .param key is tried first; otherwise the instance line starting with the
// component reference has its last token (the value field) replaced.
// Returns an error when the component appears nowhere in the netlist.
func ModifyComponent(netlist, component, value string) (string, error) {
	lines := strings.Split(netlist, "\n")

	found := false
	for i, line := range lines {
		m := paramLineRE.FindStringSubmatch(line)
		if m != nil && m[2] == component {
			lines[i] = m[1] + component + "=" + value
			found = true
		}
	}
	if found {
		return strings.Join(lines, "\n"), nil
	}

	compRE := regexp.MustCompile(`(?i)^(\s*` + regexp.QuoteMeta(component) + `\s+.+\s+)\S+\s*$`)
	for i, line := range lines {
		if !found && compRE.MatchString(line) {
			lines[i] = compRE.ReplaceAllString(line, "${1}"+value)
			found = true
		}
	}
	if !found {
		return "", fmt.Errorf("component %q not found in netlist", component)
	}
	return strings.Join(lines, "\n"), nil
}
