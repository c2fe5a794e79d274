package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") || Exists("zz_missing") {
		t.Error("Exists returned wrong result")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.ID() != "zz_stub_a" {
		t.Errorf("created ID = %q", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create should fail for unknown IDs")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" {
		t.Errorf("List order = %v, expected sorted by ID", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return stubGame{id: "zz_dup"} })
}

func TestInfo(t *testing.T) {
	Register("zz_info", func() Game { return stubGame{id: "zz_info"} })

	info, ok := Info("zz_info")
	if !ok {
		t.Fatal("Info should find a registered game")
	}
	if info.ID != "zz_info" || info.Title != "Stub zz_info" {
		t.Errorf("Info = %+v", info)
	}

	if _, ok := Info("zz_nope"); ok {
		t.Error("Info should report false for unknown IDs")
	}
}
