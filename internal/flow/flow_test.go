package flow

import (
	"errors"
	"testing"
	"time"
)

func loggedIn(t *testing.T) State {
	t.Helper()
	s, err := Login(Initial(), nil, "")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return s
}

func TestLogin(t *testing.T) {
	s := Initial()
	if Authenticated(s) {
		t.Fatal("fresh session is authenticated")
	}

	s, err := Login(s, errors.New("mismatch"), "잘못된 비밀번호입니다.")
	if err != nil {
		t.Fatalf("Login(fail): %v", err)
	}
	lo, ok := s.(LoggedOut)
	if !ok {
		t.Fatalf("state = %T, want LoggedOut", s)
	}
	if lo.AuthError != "잘못된 비밀번호입니다." {
		t.Errorf("AuthError = %q", lo.AuthError)
	}
	if Authenticated(s) {
		t.Error("failed login authenticated the session")
	}

	s, err = Login(s, nil, "")
	if err != nil {
		t.Fatalf("Login(ok): %v", err)
	}
	if s.Step() != StepSelecting {
		t.Errorf("Step = %q, want %q", s.Step(), StepSelecting)
	}
	if !Authenticated(s) {
		t.Error("successful login did not authenticate")
	}

	if _, err := Login(s, nil, ""); !errors.Is(err, ErrTransition) {
		t.Errorf("second Login err = %v, want ErrTransition", err)
	}
}

func TestMainFlowLockedBeforeLogin(t *testing.T) {
	s := Initial()
	if _, err := SelectPersona(s, "lyra"); !errors.Is(err, ErrLocked) {
		t.Errorf("SelectPersona err = %v, want ErrLocked", err)
	}
	if _, err := EditTask(s, "x"); !errors.Is(err, ErrLocked) {
		t.Errorf("EditTask err = %v, want ErrLocked", err)
	}
	if _, err := StartGenerate(s); !errors.Is(err, ErrLocked) {
		t.Errorf("StartGenerate err = %v, want ErrLocked", err)
	}
	if _, err := Copy(s, time.Now()); !errors.Is(err, ErrLocked) {
		t.Errorf("Copy err = %v, want ErrLocked", err)
	}
	if _, err := StartOver(s); !errors.Is(err, ErrLocked) {
		t.Errorf("StartOver err = %v, want ErrLocked", err)
	}
}

func TestGenerateEnabling(t *testing.T) {
	s := loggedIn(t)
	if CanGenerate(s) {
		t.Fatal("generate enabled with no persona")
	}
	if _, err := StartGenerate(s); !errors.Is(err, ErrNotReady) {
		t.Errorf("StartGenerate(Selecting) err = %v, want ErrNotReady", err)
	}

	s, err := SelectPersona(s, "lyra")
	if err != nil {
		t.Fatalf("SelectPersona: %v", err)
	}
	if s.Step() != StepDescribing {
		t.Fatalf("Step = %q, want describing", s.Step())
	}
	if CanGenerate(s) {
		t.Error("generate enabled with empty task")
	}

	for _, blank := range []string{"", "   ", "\n\t"} {
		s, _ = EditTask(s, blank)
		if CanGenerate(s) {
			t.Errorf("generate enabled with task %q", blank)
		}
		if _, err := StartGenerate(s); !errors.Is(err, ErrNotReady) {
			t.Errorf("StartGenerate(%q) err = %v, want ErrNotReady", blank, err)
		}
	}

	s, _ = EditTask(s, "Plan a marketing launch")
	if !CanGenerate(s) {
		t.Fatal("generate disabled with persona and task")
	}

	g, err := StartGenerate(s)
	if err != nil {
		t.Fatalf("StartGenerate: %v", err)
	}
	if g.PersonaID != "lyra" || g.Task != "Plan a marketing launch" {
		t.Errorf("Generating = %+v", g)
	}
	if CanGenerate(g) {
		t.Error("generate enabled while generating")
	}
	if _, err := StartGenerate(g); !errors.Is(err, ErrBusy) {
		t.Errorf("second StartGenerate err = %v, want ErrBusy", err)
	}
}

func TestSwitchPersonaKeepsTask(t *testing.T) {
	s := loggedIn(t)
	s, _ = SelectPersona(s, "lyra")
	s, _ = EditTask(s, "write a haiku")
	s, err := SelectPersona(s, "socrates")
	if err != nil {
		t.Fatalf("SelectPersona: %v", err)
	}
	if PersonaID(s) != "socrates" {
		t.Errorf("PersonaID = %q, want socrates", PersonaID(s))
	}
	if Task(s) != "write a haiku" {
		t.Errorf("Task = %q, want preserved task", Task(s))
	}
}

func TestFinish(t *testing.T) {
	s := loggedIn(t)
	s, _ = SelectPersona(s, "lyra")
	s, _ = EditTask(s, "task")
	g, _ := StartGenerate(s)

	ok, err := Finish(g, "optimized", nil)
	if err != nil {
		t.Fatalf("Finish(ok): %v", err)
	}
	r, isResult := ok.(Result)
	if !isResult {
		t.Fatalf("state = %T, want Result", ok)
	}
	if r.Prompt != "optimized" {
		t.Errorf("Prompt = %q", r.Prompt)
	}

	failed, err := Finish(g, "", errors.New("Failed to generate prompt: boom"))
	if err != nil {
		t.Fatalf("Finish(fail): %v", err)
	}
	f, isFailed := failed.(Failed)
	if !isFailed {
		t.Fatalf("state = %T, want Failed", failed)
	}
	if f.Message != "Failed to generate prompt: boom" {
		t.Errorf("Message = %q", f.Message)
	}
	if !CanGenerate(f) {
		t.Error("retry not available after failure")
	}

	if _, err := Finish(s, "x", nil); !errors.Is(err, ErrTransition) {
		t.Errorf("Finish(Describing) err = %v, want ErrTransition", err)
	}
}

func TestEditAfterFailureClearsError(t *testing.T) {
	s := State(Failed{PersonaID: "lyra", Task: "a", Message: "boom"})
	s, err := EditTask(s, "b")
	if err != nil {
		t.Fatalf("EditTask: %v", err)
	}
	if s.Step() != StepDescribing {
		t.Errorf("Step = %q, want describing", s.Step())
	}
}

func TestCopyFlag(t *testing.T) {
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := State(Result{PersonaID: "lyra", Task: "t", Prompt: "p"})
	if Copied(s, base) {
		t.Fatal("copied before copy")
	}

	s, err := Copy(s, base)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if s.Step() != StepResult {
		t.Errorf("Copy changed step to %q", s.Step())
	}
	if !Copied(s, base) {
		t.Error("not copied right after copy")
	}
	if !Copied(s, base.Add(1999*time.Millisecond)) {
		t.Error("flag cleared before 2s")
	}
	if Copied(s, base.Add(2*time.Second)) {
		t.Error("flag still set at 2s")
	}

	if _, err := Copy(loggedIn(t), base); !errors.Is(err, ErrTransition) {
		t.Errorf("Copy(Selecting) err = %v, want ErrTransition", err)
	}
}

func TestStartOver(t *testing.T) {
	now := time.Now()
	initial := loggedIn(t)
	for _, s := range []State{
		Result{PersonaID: "lyra", Task: "t", Prompt: "p", CopiedAt: now},
		Failed{PersonaID: "lyra", Task: "t", Message: "boom"},
		Describing{PersonaID: "davinci", Task: "t"},
	} {
		got, err := StartOver(s)
		if err != nil {
			t.Fatalf("StartOver(%T): %v", s, err)
		}
		if got != initial {
			t.Errorf("StartOver(%T) = %#v, want %#v", s, got, initial)
		}
		if PersonaID(got) != "" || Task(got) != "" || Copied(got, now) || CanGenerate(got) {
			t.Errorf("StartOver(%T) left payload behind", s)
		}
	}

	if _, err := StartOver(Generating{PersonaID: "lyra", Task: "t"}); !errors.Is(err, ErrBusy) {
		t.Errorf("StartOver(Generating) err = %v, want ErrBusy", err)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	states := []State{
		LoggedOut{AuthError: "no"},
		Selecting{},
		Describing{PersonaID: "lyra", Task: "t"},
		Generating{PersonaID: "lyra", Task: "t"},
		Result{PersonaID: "lyra", Task: "t", Prompt: "p", CopiedAt: now},
		Failed{PersonaID: "lyra", Task: "t", Message: "m"},
	}
	for _, s := range states {
		if got := Restore(Save(s)); got != s {
			t.Errorf("Restore(Save(%#v)) = %#v", s, got)
		}
	}
}

func TestRestoreDropsForeignFields(t *testing.T) {
	got := Restore(Snapshot{Step: StepResult, Prompt: "p", Message: "stray"})
	if _, ok := got.(Result); !ok {
		t.Fatalf("state = %T, want Result", got)
	}
	if Restore(Snapshot{Step: "bogus"}) != Initial() {
		t.Error("unknown step did not restore to the initial state")
	}
}
