package flow

import (
	"encoding/gob"
	"time"
)

// Snapshot is the flat, gob-encodable form of a State used by session stores.
type Snapshot struct {
	Step      Step
	AuthError string
	PersonaID string
	Task      string
	Prompt    string
	Message   string
	CopiedAt  time.Time
}

func init() {
	gob.Register(Snapshot{})
}

// Save flattens s.
func Save(s State) Snapshot {
	switch st := s.(type) {
	case LoggedOut:
		return Snapshot{Step: StepLoggedOut, AuthError: st.AuthError}
	case Selecting:
		return Snapshot{Step: StepSelecting}
	case Describing:
		return Snapshot{Step: StepDescribing, PersonaID: st.PersonaID, Task: st.Task}
	case Generating:
		return Snapshot{Step: StepGenerating, PersonaID: st.PersonaID, Task: st.Task}
	case Result:
		return Snapshot{Step: StepResult, PersonaID: st.PersonaID, Task: st.Task, Prompt: st.Prompt, CopiedAt: st.CopiedAt}
	case Failed:
		return Snapshot{Step: StepError, PersonaID: st.PersonaID, Task: st.Task, Message: st.Message}
	}
	return Snapshot{Step: StepLoggedOut}
}

// Restore rebuilds a State, keeping only the fields its tag allows. Unknown
// tags restore to the initial state.
func Restore(snap Snapshot) State {
	switch snap.Step {
	case StepSelecting:
		return Selecting{}
	case StepDescribing:
		return Describing{PersonaID: snap.PersonaID, Task: snap.Task}
	case StepGenerating:
		return Generating{PersonaID: snap.PersonaID, Task: snap.Task}
	case StepResult:
		return Result{PersonaID: snap.PersonaID, Task: snap.Task, Prompt: snap.Prompt, CopiedAt: snap.CopiedAt}
	case StepError:
		return Failed{PersonaID: snap.PersonaID, Task: snap.Task, Message: snap.Message}
	case StepLoggedOut:
		return LoggedOut{AuthError: snap.AuthError}
	}
	return Initial()
}
