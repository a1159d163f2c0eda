// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// Template is a pre-made circuit netlist loaded from a JSON file.
type Template struct {
	ID              string                    `json:"id"`
	Name            string                    `json:"name"`
	Category        string                    `json:"category"`
	Description     string                    `json:"description"`
	DesignEquations []string                  `json:"design_equations,omitempty"`
	Netlist         string                    `json:"netlist"`
	Components      map[string]map[string]any `json:"components,omitempty"`
	Source          string                    `json:"-"` // "built-in" or "user"
	Ports           map[string]string         `json:"ports,omitempty"`
}

// TemplateSummary is the listing view of a template, without the netlist body.
type TemplateSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Source      string `json:"source"`
}
