package view

import (
	"log/slog"

	"github.com/canopy-esg/canopy/internal/esg"
)

// ScoreFunc computes the scores shown for a period.
type ScoreFunc func(Period) esg.ScoreResult

// BaselineScores is the default ScoreFunc. It ignores the period: every
// period is scored from the same constant baseline metrics.
func BaselineScores(Period) esg.ScoreResult {
	return esg.Calculate(esg.BaselineMetrics())
}

// Observer is notified after every recomputation.
type Observer func(Period, esg.ScoreResult)

// Snapshot is a read-only copy of the controller state and cached scores.
type Snapshot struct {
	State          State            `json:"state"`
	Scores         *esg.ScoreResult `json:"scores,omitempty"`
	Recomputations int              `json:"recomputations"`
}

// Controller owns the view state and the cached score result. The cache is
// replaced only when the period changes.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	state     State
	score     ScoreFunc
	observers []Observer
	cached    esg.ScoreResult
	computed  bool
	count     int
}

// Option configures a Controller.
type Option func(*Controller)

// WithScoreFunc replaces the default BaselineScores function.
func WithScoreFunc(fn ScoreFunc) Option {
	return func(c *Controller) {
		if fn != nil {
			c.score = fn
		}
	}
}

// WithObserver registers fn to run after each recomputation.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}

// WithInitialState overrides the startup state. Invalid fields keep their
// defaults.
func WithInitialState(s State) Option {
	return func(c *Controller) {
		c.state = Reduce(Reduce(c.state, SelectTab{Tab: s.Tab}), SelectPeriod{Period: s.Period})
	}
}

// NewController creates a controller in the initial state and performs the
// first score computation.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		state: InitialState(),
		score: BaselineScores,
	}
	for _, o := range opts {
		o(c)
	}
	c.recompute()
	return c
}

// State returns the current view state.
func (c *Controller) State() State {
	return c.state
}

// SelectTab makes t the active panel. Selecting the active tab or an invalid
// tab does nothing.
func (c *Controller) SelectTab(t Tab) {
	next := Reduce(c.state, SelectTab{Tab: t})
	if next == c.state {
		return
	}
	slog.Debug("tab selected", "from", c.state.Tab, "to", next.Tab)
	c.state = next
}

// SelectPeriod changes the reporting period and recomputes the scores.
// Re-selecting the current period or an unknown period does nothing.
func (c *Controller) SelectPeriod(p Period) {
	next := Reduce(c.state, SelectPeriod{Period: p})
	if next == c.state {
		return
	}
	slog.Debug("period selected", "from", c.state.Period, "to", next.Period)
	c.state = next
	c.recompute()
}

// Dispatch applies a generic action.
func (c *Controller) Dispatch(a Action) {
	switch act := a.(type) {
	case SelectTab:
		c.SelectTab(act.Tab)
	case SelectPeriod:
		c.SelectPeriod(act.Period)
	}
}

// Scores returns the cached result and whether a computation has happened.
func (c *Controller) Scores() (esg.ScoreResult, bool) {
	return c.cached, c.computed
}

// Recomputations returns how many times the score function has run.
func (c *Controller) Recomputations() int {
	return c.count
}

// Snapshot returns a copy of the current state and cached scores.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{State: c.state, Recomputations: c.count}
	if c.computed {
		res := c.cached
		snap.Scores = &res
	}
	return snap
}

func (c *Controller) recompute() {
	res := c.score(c.state.Period)
	c.cached = res
	c.computed = true
	c.count++
	slog.Debug("scores recomputed", "period", c.state.Period, "overall", res.Overall, "risk", res.RiskLevel)
	for _, o := range c.observers {
		o(c.state.Period, res)
	}
}

// ScoresOrZero returns the snapshot's scores, or a zero result when nothing
// has been computed yet. Panels display zeros in that case.
func (s Snapshot) ScoresOrZero() esg.ScoreResult {
	if s.Scores == nil {
		return esg.ScoreResult{}
	}
	return *s.Scores
}
