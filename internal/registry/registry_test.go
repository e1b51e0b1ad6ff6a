package registry

import (
	"errors"
	"testing"

	"github.com/jl-5/nut-wars/internal/core"
	"github.com/jl-5/nut-wars/internal/sprite"
)

type stubGame struct{ id string }

func (s *stubGame) ID() string                           { return s.id }
func (s *stubGame) Title() string                        { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) Sprites() []sprite.DrawRecord         { return nil }
func (s *stubGame) WorldSize() (int, int)                { return 1, 1 }
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", "Stub", func() (Game, error) { return &stubGame{id: "test_stub"}, nil })

	if !Exists("test_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("test_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "test_stub" {
		t.Errorf("ID() = %q, expected test_stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestCreateFactoryError(t *testing.T) {
	boom := errors.New("boom")
	Register("test_broken", "Broken", func() (Game, error) { return nil, boom })

	_, err := Create("test_broken")
	if !errors.Is(err, boom) {
		t.Errorf("Create() error = %v, expected wrapped factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "Dup", func() (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "Dup", func() (Game, error) { return &stubGame{}, nil })
}

func TestListSorted(t *testing.T) {
	Register("test_zz", "Z", func() (Game, error) { return &stubGame{}, nil })
	Register("test_aa", "A", func() (Game, error) { return &stubGame{}, nil })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
