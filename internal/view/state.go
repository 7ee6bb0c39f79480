package view

// State is the complete view-selection state.
type State struct {
	Tab    Tab    `json:"tab"`
	Period Period `json:"period"`
}

// InitialState returns the startup state: the Dashboard tab and the most
// recent period.
func InitialState() State {
	return State{Tab: Dashboard, Period: DefaultPeriod}
}

// Action is a user interaction that may change State.
type Action interface {
	isAction()
}

// SelectTab switches the active panel.
type SelectTab struct{ Tab Tab }

// SelectPeriod switches the reporting period.
type SelectPeriod struct{ Period Period }

func (SelectTab) isAction()    {}
func (SelectPeriod) isAction() {}

// Reduce applies a to s and returns the new state. Invalid tabs or periods
// leave the state unchanged.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case SelectTab:
		if act.Tab.Valid() {
			s.Tab = act.Tab
		}
	case SelectPeriod:
		if act.Period.Valid() {
			s.Period = act.Period
		}
	}
	return s
}
