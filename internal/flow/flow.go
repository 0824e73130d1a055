// Package flow is the view state machine behind the prompt optimizer UI.
//
// A session is always in exactly one State. Each state type carries only the
// fields that are meaningful for it, so a result and an error can never be
// shown together. Transitions are pure functions: they take the current state
// and return the next one, or an error when the action is not allowed.
package flow

import (
	"errors"
	"strings"
	"time"
)

// CopyFlagDuration is how long the "copied" indicator stays on after a copy.
const CopyFlagDuration = 2 * time.Second

// MissingInputMessage is shown when generate is requested without a persona or task.
const MissingInputMessage = "페르소나를 선택하고 작업을 설명해주세요."

var (
	// ErrLocked is returned for any main-flow action before a successful login.
	ErrLocked = errors.New("not authenticated")

	// ErrTransition is returned when an action is not valid in the current state.
	ErrTransition = errors.New("action not allowed in current state")

	// ErrNotReady is returned when generate is requested without a persona or
	// with a blank task.
	ErrNotReady = errors.New(MissingInputMessage)

	// ErrBusy is returned when generate is requested while one is in flight.
	ErrBusy = errors.New("generation already in progress")
)

// Step names a state tag.
type Step string

const (
	StepLoggedOut  Step = "logged_out"
	StepSelecting  Step = "selecting"
	StepDescribing Step = "describing"
	StepGenerating Step = "generating"
	StepResult     Step = "result"
	StepError      Step = "error"
)

// State is one of LoggedOut, Selecting, Describing, Generating, Result or Failed.
type State interface {
	Step() Step
}

// LoggedOut is the initial state. AuthError holds the last login failure.
type LoggedOut struct {
	AuthError string
}

// Selecting waits for a persona to be picked.
type Selecting struct{}

// Describing has a persona and an editable task.
type Describing struct {
	PersonaID string
	Task      string
}

// Generating has an outstanding call to the generation client.
type Generating struct {
	PersonaID string
	Task      string
}

// Result holds the optimized prompt. CopiedAt is zero until the first copy.
type Result struct {
	PersonaID string
	Task      string
	Prompt    string
	CopiedAt  time.Time
}

// Failed holds the message of a failed generation. The task form stays
// usable so the user can retry.
type Failed struct {
	PersonaID string
	Task      string
	Message   string
}

func (LoggedOut) Step() Step  { return StepLoggedOut }
func (Selecting) Step() Step  { return StepSelecting }
func (Describing) Step() Step { return StepDescribing }
func (Generating) Step() Step { return StepGenerating }
func (Result) Step() Step     { return StepResult }
func (Failed) Step() Step     { return StepError }

// Initial returns the state of a fresh session.
func Initial() State { return LoggedOut{} }

// Authenticated reports whether the session has passed the auth gate.
func Authenticated(s State) bool {
	if s == nil {
		return false
	}
	_, loggedOut := s.(LoggedOut)
	return !loggedOut
}

// Login applies the outcome of an auth gate call. A nil gateErr unlocks the
// main flow; otherwise the session stays logged out with message shown.
func Login(s State, gateErr error, message string) (State, error) {
	if _, ok := s.(LoggedOut); !ok {
		return s, ErrTransition
	}
	if gateErr != nil {
		return LoggedOut{AuthError: message}, nil
	}
	return Selecting{}, nil
}

// SelectPersona picks or switches the persona. The task survives a switch.
func SelectPersona(s State, personaID string) (State, error) {
	if personaID == "" {
		return s, ErrTransition
	}
	switch st := s.(type) {
	case LoggedOut:
		return s, ErrLocked
	case Selecting:
		return Describing{PersonaID: personaID}, nil
	case Describing:
		return Describing{PersonaID: personaID, Task: st.Task}, nil
	case Failed:
		return Describing{PersonaID: personaID, Task: st.Task}, nil
	default:
		return s, ErrTransition
	}
}

// EditTask replaces the task text. Editing after a failure clears the error.
func EditTask(s State, task string) (State, error) {
	switch st := s.(type) {
	case LoggedOut:
		return s, ErrLocked
	case Describing:
		return Describing{PersonaID: st.PersonaID, Task: task}, nil
	case Failed:
		return Describing{PersonaID: st.PersonaID, Task: task}, nil
	default:
		return s, ErrTransition
	}
}

// CanGenerate reports whether the generate action is enabled.
func CanGenerate(s State) bool {
	switch st := s.(type) {
	case Describing:
		return ready(st.PersonaID, st.Task)
	case Failed:
		return ready(st.PersonaID, st.Task)
	}
	return false
}

func ready(personaID, task string) bool {
	return personaID != "" && strings.TrimSpace(task) != ""
}

// StartGenerate moves to Generating. The caller owns the single outstanding
// generation call until Finish is applied.
func StartGenerate(s State) (Generating, error) {
	switch st := s.(type) {
	case LoggedOut:
		return Generating{}, ErrLocked
	case Generating:
		return Generating{}, ErrBusy
	case Selecting:
		return Generating{}, ErrNotReady
	case Describing:
		if !ready(st.PersonaID, st.Task) {
			return Generating{}, ErrNotReady
		}
		return Generating{PersonaID: st.PersonaID, Task: st.Task}, nil
	case Failed:
		if !ready(st.PersonaID, st.Task) {
			return Generating{}, ErrNotReady
		}
		return Generating{PersonaID: st.PersonaID, Task: st.Task}, nil
	default:
		return Generating{}, ErrTransition
	}
}

// Finish applies the generation client's outcome.
func Finish(s State, prompt string, genErr error) (State, error) {
	g, ok := s.(Generating)
	if !ok {
		return s, ErrTransition
	}
	if genErr != nil {
		return Failed{PersonaID: g.PersonaID, Task: g.Task, Message: genErr.Error()}, nil
	}
	return Result{PersonaID: g.PersonaID, Task: g.Task, Prompt: prompt}, nil
}

// Copy records a clipboard copy of the result at now.
func Copy(s State, now time.Time) (State, error) {
	r, ok := s.(Result)
	if !ok {
		if !Authenticated(s) {
			return s, ErrLocked
		}
		return s, ErrTransition
	}
	r.CopiedAt = now
	return r, nil
}

// Copied reports whether the copy indicator is on at now.
func Copied(s State, now time.Time) bool {
	r, ok := s.(Result)
	if !ok || r.CopiedAt.IsZero() {
		return false
	}
	return now.Sub(r.CopiedAt) < CopyFlagDuration
}

// StartOver discards persona, task, result and error. It is refused while a
// generation is in flight.
func StartOver(s State) (State, error) {
	switch s.(type) {
	case LoggedOut:
		return s, ErrLocked
	case Generating:
		return s, ErrBusy
	default:
		return Selecting{}, nil
	}
}

// PersonaID returns the selected persona, or "" when none is selected.
func PersonaID(s State) string {
	switch st := s.(type) {
	case Describing:
		return st.PersonaID
	case Generating:
		return st.PersonaID
	case Result:
		return st.PersonaID
	case Failed:
		return st.PersonaID
	}
	return ""
}

// Task returns the current task text.
func Task(s State) string {
	switch st := s.(type) {
	case Describing:
		return st.Task
	case Generating:
		return st.Task
	case Result:
		return st.Task
	case Failed:
		return st.Task
	}
	return ""
}
