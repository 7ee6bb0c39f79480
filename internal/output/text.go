package output

import (
	"io"

	"github.com/canopy-esg/canopy/internal/report"
	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	RegisterFormatter(NewTextFormatter())
}

// TextFormatter writes the terminal rendering of the active panel.
type TextFormatter struct {
	// Sections limits output to these section names when non-empty.
	Sections []string
}

// Compile-time interface check.
var _ SectionFilter = (*TextFormatter)(nil)

// NewTextFormatter returns a new TextFormatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// WithSections returns a copy of f limited to the named sections.
func (f *TextFormatter) WithSections(names []string) Formatter {
	return &TextFormatter{Sections: names}
}

// Format writes the panel to w.
func (f *TextFormatter) Format(snap *view.Snapshot, w io.Writer) error {
	return report.RenderPanel(snap, f.Sections, w)
}
