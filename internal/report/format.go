package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/canopy-esg/canopy/internal/catalog"
)

// FormatScore renders a score the way the cards show it: shortest decimal
// form, so 88.7 stays "88.7" and 40 becomes "40".
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatMetric renders a raw metric value with thousands separators and a
// percent sign for percentage metrics.
func FormatMetric(key string, v float64) string {
	s := humanize.Commaf(v)
	if catalog.IsPercentMetric(key) {
		return s + "%"
	}
	return s
}

// formatDelta formats a delta with a +/- prefix.
func formatDelta(d float64) string {
	if d > 0 {
		return "+" + FormatScore(d)
	}
	return FormatScore(d)
}

func formatSlope(s float64) string {
	return fmt.Sprintf("%+.2f/qtr", s)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// underline returns a dash rule as wide as title.
func underline(title string) string {
	return strings.Repeat("-", width(title))
}
