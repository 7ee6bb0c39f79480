package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/canopy-esg/canopy/internal/report"
	"github.com/canopy-esg/canopy/internal/view"
)

func init() {
	RegisterFormatter(NewJSONFormatter())
}

// JSONEnvelope wraps the panel with metadata for the JSON output format.
type JSONEnvelope struct {
	*report.PanelJSON
	Metadata JSONMetadata `json:"metadata"`
}

// JSONMetadata describes when and how the document was produced.
type JSONMetadata struct {
	GeneratedAt string   `json:"generated_at"`
	Tabs        []string `json:"tabs"`
	Periods     []string `json:"periods"`
}

// JSONFormatter writes the panel as a JSON object with a metadata envelope.
type JSONFormatter struct {
	// Compact controls whether output is compact (single line) or pretty-printed.
	// When false (default), output is indented with two spaces.
	Compact bool

	// Sections limits output to these section names when non-empty.
	Sections []string

	// nowFunc is used for testing to override the current time.
	nowFunc func() time.Time
}

// Compile-time interface check.
var _ SectionFilter = (*JSONFormatter)(nil)

// NewJSONFormatter returns a new JSONFormatter with default settings.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// WithSections returns a copy of f limited to the named sections.
func (f *JSONFormatter) WithSections(names []string) Formatter {
	return &JSONFormatter{Compact: f.Compact, Sections: names, nowFunc: f.nowFunc}
}

// Format writes the panel as a JSON document with a metadata envelope to w.
// Output is pretty-printed for terminals and non-file writers, and compact
// for pipes and files unless Compact forces it.
func (f *JSONFormatter) Format(snap *view.Snapshot, w io.Writer) error {
	panel, err := report.BuildJSON(snap, f.Sections)
	if err != nil {
		return err
	}

	now := time.Now()
	if f.nowFunc != nil {
		now = f.nowFunc()
	}

	envelope := JSONEnvelope{
		PanelJSON: panel,
		Metadata: JSONMetadata{
			GeneratedAt: now.UTC().Format("2006-01-02T15:04:05Z"),
		},
	}
	for _, t := range view.Tabs() {
		envelope.Metadata.Tabs = append(envelope.Metadata.Tabs, t.String())
	}
	for _, p := range view.Periods() {
		envelope.Metadata.Periods = append(envelope.Metadata.Periods, string(p))
	}

	var data []byte
	if f.shouldCompact(w) {
		data, err = json.Marshal(envelope)
	} else {
		data, err = json.MarshalIndent(envelope, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write json trailing newline: %w", err)
	}
	return nil
}

// shouldCompact determines whether to use compact mode.
// If Compact is explicitly set, use that value.
// Otherwise, auto-detect: pretty-print for TTYs, compact for pipes.
func (f *JSONFormatter) shouldCompact(w io.Writer) bool {
	if f.Compact {
		return true
	}

	if file, ok := w.(*os.File); ok {
		fi, err := file.Stat()
		if err != nil {
			return false // default to pretty on error
		}
		return fi.Mode()&os.ModeCharDevice == 0
	}

	// For non-file writers (e.g., bytes.Buffer in tests), default to pretty.
	return false
}
