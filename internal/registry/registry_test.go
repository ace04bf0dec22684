package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-alarm/internal/core"
)

type stubChallenge struct{ id string }

func (s stubChallenge) ID() string                        { return s.id }
func (s stubChallenge) Title() string                     { return "Stub " + s.id }
func (s stubChallenge) Reset(core.RuntimeConfig)          {}
func (s stubChallenge) Input(core.Action) core.StepResult { return core.StepResult{} }
func (s stubChallenge) Tick() core.StepResult             { return core.StepResult{} }
func (s stubChallenge) TickInterval() time.Duration       { return time.Second }
func (s stubChallenge) Render(*core.Screen)               {}
func (s stubChallenge) State() core.GameState             { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Challenge { return stubChallenge{id: "stub_b"} })
	Register("stub_a", func() Challenge { return stubChallenge{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("stub_a should be registered")
	}

	c, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if c.ID() != "stub_b" {
		t.Errorf("Create() returned %q, expected stub_b", c.ID())
	}

	list := List()
	idxA, idxB := -1, -1
	for i, info := range list {
		switch info.ID {
		case "stub_a":
			idxA = i
			if info.Title != "Stub stub_a" {
				t.Errorf("Title = %q, expected 'Stub stub_a'", info.Title)
			}
		case "stub_b":
			idxB = i
		}
	}
	if idxA < 0 || idxB < 0 || idxA > idxB {
		t.Errorf("List() should contain both stubs sorted by ID, got %v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Challenge { return stubChallenge{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Challenge { return stubChallenge{id: "stub_dup"} })
}

func TestTitle(t *testing.T) {
	Register("stub_title", func() Challenge { return stubChallenge{id: "stub_title"} })

	if got := Title("stub_title"); got != "Stub stub_title" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("nope"); got != "nope" {
		t.Errorf("Title() for unknown id = %q, expected the id", got)
	}
}
