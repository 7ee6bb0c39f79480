// Copyright 2026 The Canopy Authors
// SPDX-License-Identifier: MIT

// Package report provides the section registry behind the dashboard panels.
// Each section belongs to one tab, analyzes a controller snapshot and renders
// a focused block of the panel.
package report

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/canopy-esg/canopy/internal/view"
)

// ErrScoresNotAvailable indicates a section needs a computed score result
// and the snapshot has none yet.
var ErrScoresNotAvailable = errors.New("scores not available")

// Section is a pluggable panel section.
type Section interface {
	// Name returns the unique identifier for this section (e.g., "score-cards").
	Name() string

	// Description returns a human-readable description of what this section shows.
	Description() string

	// Tab returns the panel the section belongs to.
	Tab() view.Tab

	// Analyze prepares internal state for rendering from the snapshot.
	// Returns ErrScoresNotAvailable (wrapped) if the section cannot show
	// anything without computed scores.
	Analyze(snap *view.Snapshot) error

	// Render writes the section output to w.
	Render(w io.Writer) error
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Section)
	order    []string // insertion order for deterministic listing
)

// Register adds a section to the global registry.
// It panics if a section with the same name is already registered.
func Register(s Section) {
	mu.Lock()
	defer mu.Unlock()
	name := s.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("report section already registered: %s", name))
	}
	registry[name] = s
	order = append(order, name)
}

// Get returns the section with the given name, or nil if not found.
func Get(name string) Section {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// List returns the names of all registered sections in registration order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(order))
	copy(out, order)
	return out
}

// ForTab returns the names of the sections on tab, in registration order.
func ForTab(tab view.Tab) []string {
	mu.RLock()
	defer mu.RUnlock()
	var out []string
	for _, name := range order {
		if registry[name].Tab() == tab {
			out = append(out, name)
		}
	}
	return out
}

// resetForTesting clears the registry. Only for use in tests.
func resetForTesting() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Section)
	order = nil
}
