// Package output defines the Formatter interface for writing a dashboard
// snapshot in various formats.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/canopy-esg/canopy/internal/view"
)

// Formatter writes the active panel of a snapshot to the given writer in a
// specific format.
type Formatter interface {
	// Name returns the format name (e.g., "text", "json", "html").
	Name() string

	// Format writes the snapshot to w.
	Format(snap *view.Snapshot, w io.Writer) error
}

// SectionFilter is implemented by formatters that can limit output to a
// subset of the active tab's sections.
type SectionFilter interface {
	Formatter
	WithSections(names []string) Formatter
}

var (
	fmtMu       sync.RWMutex
	fmtRegistry = make(map[string]Formatter)
)

// RegisterFormatter adds a formatter to the global registry.
func RegisterFormatter(f Formatter) {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry[f.Name()] = f
}

// GetFormatter returns the formatter with the given name, or an error if not found.
func GetFormatter(name string) (Formatter, error) {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	f, ok := fmtRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown format: %q (available: %s)", name, formatNames())
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	fmtMu.RLock()
	defer fmtMu.RUnlock()
	return sortedNames()
}

// resetFmtForTesting clears the formatter registry. Only for use in tests.
func resetFmtForTesting() {
	fmtMu.Lock()
	defer fmtMu.Unlock()
	fmtRegistry = make(map[string]Formatter)
}

func sortedNames() []string {
	names := make([]string, 0, len(fmtRegistry))
	for name := range fmtRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// formatNames returns a comma-separated sorted list of registered format names.
func formatNames() string {
	return strings.Join(sortedNames(), ", ")
}
