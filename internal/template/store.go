// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package template loads pre-made circuit netlists from JSON files in a
// built-in directory and a user directory, user templates overriding
// built-ins by ID. The store carries its own state; there are no
// process-wide caches.
package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/petar-djukic/spicestack/pkg/types"
)

// Store discovers and loads circuit templates.
type Store struct {
	builtinDir string
	userDir    string
	templates  map[string]types.Template
	loaded     bool
}

// NewStore creates a Store reading built-in templates from builtinDir and
// user templates from userDir. Either directory may be absent; a missing
// directory simply contributes no templates. Loading is lazy.
func NewStore(builtinDir, userDir string) *Store {
	return &Store{builtinDir: builtinDir, userDir: userDir}
}

// Reload forces re-reading both directories.
func (s *Store) Reload() {
	s.templates = s.loadAll()
	s.loaded = true
}

func (s *Store) ensureLoaded() {
	if !s.loaded {
		s.Reload()
	}
}

func (s *Store) loadAll() map[string]types.Template {
	templates := make(map[string]types.Template)
	for _, t := range loadDir(s.builtinDir, "built-in") {
		templates[t.ID] = t
	}
	// User templates override built-ins.
	for _, t := range loadDir(s.userDir, "user") {
		templates[t.ID] = t
	}
	return templates
}

// loadDir reads every *.json file in dir, in sorted order, skipping files
// that fail to parse. A malformed user template must not break the store.
func loadDir(dir, source string) []types.Template {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var out []types.Template
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		var t types.Template
		if err := json.Unmarshal(data, &t); err != nil || t.ID == "" || t.Netlist == "" {
			continue
		}
		t.Source = source
		out = append(out, t)
	}
	return out
}

// List returns summaries of all templates, sorted by ID. When category is
// non-empty, only templates in that category are returned.
func (s *Store) List(category string) []types.TemplateSummary {
	s.ensureLoaded()

	var out []types.TemplateSummary
	for _, t := range s.templates {
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, types.TemplateSummary{
			ID:          t.ID,
			Name:        t.Name,
			Category:    t.Category,
			Description: t.Description,
			Source:      t.Source,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a template by ID.
func (s *Store) Get(id string) (types.Template, error) {
	s.ensureLoaded()

	t, ok := s.templates[id]
	if !ok {
		return types.Template{}, fmt.Errorf("template %q not found", id)
	}
	return t, nil
}
