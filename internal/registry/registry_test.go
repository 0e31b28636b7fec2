package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/skirmish/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	var got Options
	Register("stub-a", "Stub A", func(opts Options) (Game, error) {
		got = opts
		return &stubGame{id: "stub-a"}, nil
	})

	if !Exists("stub-a") {
		t.Fatal("Exists(stub-a) = false after Register")
	}

	g, err := Create("stub-a", Options{ConfigPath: "x.yaml", Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}
	if got.ConfigPath != "x.yaml" || got.Difficulty != "hard" {
		t.Errorf("factory got options %+v", got)
	}
	if got.Logger == nil {
		t.Error("factory should always receive a logger")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = info.Title == "Stub A"
		}
	}
	if !found {
		t.Errorf("List() = %v, expected stub-a with its title", List())
	}
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("missing", Options{}); err == nil {
		t.Error("Create should fail for unknown ids")
	}

	boom := errors.New("boom")
	Register("stub-broken", "Broken", func(Options) (Game, error) { return nil, boom })
	_, err := Create("stub-broken", Options{})
	if !errors.Is(err, boom) {
		t.Errorf("Create error = %v, expected it to wrap the factory error", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		r := recover()
		if r == nil || !strings.Contains(r.(string), "already registered") {
			t.Errorf("recover() = %v, expected a duplicate registration panic", r)
		}
	}()
	Register("stub-dup", "Dup", func(Options) (Game, error) { return &stubGame{}, nil })
}
