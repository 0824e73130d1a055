package handler

import (
	"time"

	"github.com/joestump/promptsmith/internal/flow"
	"github.com/joestump/promptsmith/internal/persona"
)

// PersonaCard is one selectable persona in the step 1 grid.
type PersonaCard struct {
	persona.Persona
	Selected bool
}

// FlowView is everything the "flow" partial needs. It is derived from the
// session state and the clock only.
type FlowView struct {
	Step        flow.Step
	Personas    []PersonaCard
	PersonaID   string
	Task        string
	Prompt      string
	Error       string
	CanGenerate bool
	Copied      bool
}

// ShowPicker reports whether steps 1 and 2 are on screen.
func (v FlowView) ShowPicker() bool {
	switch v.Step {
	case flow.StepSelecting, flow.StepDescribing, flow.StepError:
		return true
	}
	return false
}

// ShowTask reports whether the task editor is on screen.
func (v FlowView) ShowTask() bool {
	return v.ShowPicker() && v.PersonaID != ""
}

// Generating reports whether a generation is in flight.
func (v FlowView) Generating() bool { return v.Step == flow.StepGenerating }

// HasResult reports whether the result panel is on screen.
func (v FlowView) HasResult() bool { return v.Step == flow.StepResult }

// LoginPage is the data for pages/login.html.
type LoginPage struct {
	BasePage
	Error string
}

// AppPage is the data for pages/app.html.
type AppPage struct {
	BasePage
	Flow FlowView
}

// newFlowView renders s at now. notice, when set, replaces the error banner;
// it carries messages that are not part of the state.
func newFlowView(s flow.State, catalog *persona.Catalog, now time.Time, notice string) FlowView {
	v := FlowView{
		Step:        s.Step(),
		PersonaID:   flow.PersonaID(s),
		Task:        flow.Task(s),
		CanGenerate: flow.CanGenerate(s),
		Copied:      flow.Copied(s, now),
		Error:       notice,
	}
	switch st := s.(type) {
	case flow.Result:
		v.Prompt = st.Prompt
	case flow.Failed:
		if v.Error == "" {
			v.Error = st.Message
		}
	}
	if catalog != nil {
		for _, p := range catalog.All() {
			v.Personas = append(v.Personas, PersonaCard{Persona: p, Selected: p.ID == v.PersonaID})
		}
	}
	return v
}
