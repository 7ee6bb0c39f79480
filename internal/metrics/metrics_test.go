package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/view"
)

func TestRecorder_ObserveFromController(t *testing.T) {
	rec, err := NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	c := view.NewController(view.WithObserver(rec.Observe))
	c.SelectPeriod(view.Period2024Q2)
	c.SelectPeriod(view.Period2024Q2) // no-op
	c.SelectPeriod(view.Period2024Q4)

	expected := `
# HELP canopy_score_recomputations_total Number of ESG score computations, by reporting period.
# TYPE canopy_score_recomputations_total counter
canopy_score_recomputations_total{period="2024-Q2"} 1
canopy_score_recomputations_total{period="2024-Q4"} 2
`
	require.NoError(t, testutil.CollectAndCompare(rec.recomputations, strings.NewReader(expected)))

	assert.InDelta(t, 65.3, testutil.ToFloat64(rec.scores.WithLabelValues("overall")), 1e-9)
	assert.InDelta(t, 40.2, testutil.ToFloat64(rec.scores.WithLabelValues("environmental")), 1e-9)
	assert.InDelta(t, 88.7, testutil.ToFloat64(rec.scores.WithLabelValues("governance")), 1e-9)
}

func TestRecorder_TabSelected(t *testing.T) {
	rec, err := NewRecorder(nil)
	require.NoError(t, err)

	rec.TabSelected(view.DetailedMetrics)
	rec.TabSelected(view.DetailedMetrics)
	rec.TabSelected(view.RegulatoryReporting)

	assert.Equal(t, 2.0, testutil.ToFloat64(rec.tabSelections.WithLabelValues("metrics")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.tabSelections.WithLabelValues("regulatory")))
	assert.Equal(t, 2, testutil.CollectAndCount(rec.tabSelections))
}

func TestNewRecorder_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewRecorder(reg)
	require.NoError(t, err)
	b, err := NewRecorder(reg)
	require.NoError(t, err)

	a.Observe(view.Period2024Q1, esg.ScoreResult{Overall: 50})
	assert.Equal(t, 1.0, testutil.ToFloat64(b.recomputations.WithLabelValues("2024-Q1")))
	assert.Same(t, a.scores, b.scores)
}

func TestNewRecorder_ConflictingCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "canopy_tab_selections_total",
		Help: "Number of tab changes, by selected tab.",
	}))

	_, err := NewRecorder(reg)
	require.Error(t, err)
}

func TestRecorder_Handler(t *testing.T) {
	rec, err := NewRecorder(nil)
	require.NoError(t, err)
	rec.Observe(view.Period2024Q4, esg.Calculate(esg.BaselineMetrics()))

	srv := httptest.NewServer(rec.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `canopy_score{pillar="overall"} 65.3`)
	assert.Contains(t, string(body), `canopy_score_recomputations_total{period="2024-Q4"} 1`)
}
