package registry

import (
	"testing"

	"github.com/vovakirdan/space-garden/internal/core"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string { return s.id }
func (s *stubGame) Title() string { return "Stub " + s.id }
func (s *stubGame) Reset(core.RuntimeConfig) {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen) {}
func (s *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Error("Exists(stub_a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub_a")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}

	list := List()
	var ids []string
	for _, info := range list {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected stub_a before stub_b", ids)
	}
	for _, info := range list {
		if info.ID == "stub_b" && info.Title != "Stub stub_b" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub stub_b")
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate id should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
