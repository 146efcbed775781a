package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

type stubGame struct {
	id, title string
	state     core.GameState
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return g.state }

func register(id, title string) {
	Register(id, func() Game { return &stubGame{id: id, title: title} })
}

func TestRegisterAndCreate(t *testing.T) {
	register("test_zeta", "Zeta")
	register("test_alpha", "Alpha")

	if !Exists("test_alpha") {
		t.Fatal("test_alpha not registered")
	}
	if Exists("test_missing") {
		t.Error("unregistered id reported as existing")
	}

	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "test_zeta" || g.Title() != "Zeta" {
		t.Errorf("Create() = %s/%s", g.ID(), g.Title())
	}

	other, _ := Create("test_zeta")
	if other == g {
		t.Error("Create returned a shared instance")
	}

	if _, err := Create("test_missing"); err == nil {
		t.Error("Create of unknown id returned no error")
	}
}

func TestListSortedByID(t *testing.T) {
	register("test_list_b", "B")
	register("test_list_a", "A")

	var got []GameInfo
	for _, info := range List() {
		if info.ID == "test_list_a" || info.ID == "test_list_b" {
			got = append(got, info)
		}
	}
	want := []GameInfo{{ID: "test_list_a", Title: "A"}, {ID: "test_list_b", Title: "B"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register("test_dup", "Dup")
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	register("test_dup", "Dup")
}
