// Package metrics exposes dashboard activity as Prometheus metrics.
package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canopy-esg/canopy/internal/esg"
	"github.com/canopy-esg/canopy/internal/view"
)

// Recorder records score recomputations and tab selections.
type Recorder struct {
	recomputations *prometheus.CounterVec
	tabSelections  *prometheus.CounterVec
	scores         *prometheus.GaugeVec
	gatherer       prometheus.Gatherer
}

// NewRecorder registers the dashboard metrics on reg. A nil reg uses a
// fresh registry. Collectors that are already registered are reused, so
// several recorders may share one registry.
func NewRecorder(reg *prometheus.Registry) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	r := &Recorder{gatherer: reg}
	var err error
	if r.recomputations, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canopy_score_recomputations_total",
		Help: "Number of ESG score computations, by reporting period.",
	}, []string{"period"})); err != nil {
		return nil, err
	}
	if r.tabSelections, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "canopy_tab_selections_total",
		Help: "Number of tab changes, by selected tab.",
	}, []string{"tab"})); err != nil {
		return nil, err
	}
	if r.scores, err = register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "canopy_score",
		Help: "Most recently computed score, by pillar.",
	}, []string{"pillar"})); err != nil {
		return nil, err
	}
	return r, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Observe records one recomputation. It has the view.Observer signature so
// it can be passed to view.WithObserver.
func (r *Recorder) Observe(p view.Period, res esg.ScoreResult) {
	r.recomputations.WithLabelValues(string(p)).Inc()
	r.scores.WithLabelValues("environmental").Set(res.Environmental)
	r.scores.WithLabelValues("social").Set(res.Social)
	r.scores.WithLabelValues("governance").Set(res.Governance)
	r.scores.WithLabelValues("overall").Set(res.Overall)
}

// TabSelected records a tab change.
func (r *Recorder) TabSelected(t view.Tab) {
	r.tabSelections.WithLabelValues(t.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
