package state

import (
	"errors"
	"testing"

	"go-waypoint-defense/internal/types"
	"go-waypoint-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type fakeCommands struct {
	placed   []string
	upgrades int
	rounds   int
	auto     bool
	err      error
}

func (f *fakeCommands) PlaceTower(defID string) (types.EntityID, error) {
	f.placed = append(f.placed, defID)
	return 1, f.err
}

func (f *fakeCommands) UpgradeSelected() error { f.upgrades++; return f.err }

func (f *fakeCommands) StartNewRound() error { f.rounds++; return f.err }

func (f *fakeCommands) SetAutoAdvance(on bool) { f.auto = on }

func (f *fakeCommands) AutoAdvance() bool { return f.auto }

func TestExecuteRoutesActions(t *testing.T) {
	f := &fakeCommands{}

	for _, a := range []struct {
		action ui.Action
		defID  string
	}{
		{ui.ActionPlaceTower, "fan"},
		{ui.ActionUpgrade, ""},
		{ui.ActionNewRound, ""},
		{ui.ActionToggleAuto, ""},
		{ui.ActionNone, ""},
	} {
		if err := execute(f, a.action, a.defID); err != nil {
			t.Errorf("execute(%d): %v", a.action, err)
		}
	}

	if len(f.placed) != 1 || f.placed[0] != "fan" {
		t.Errorf("Expected one fan placement, got %v", f.placed)
	}
	if f.upgrades != 1 || f.rounds != 1 || !f.auto {
		t.Errorf("Unexpected command counts %+v", f)
	}

	execute(f, ui.ActionToggleAuto, "")
	if f.auto {
		t.Error("Second toggle should switch auto-advance off")
	}
}

func TestExecutePropagatesErrors(t *testing.T) {
	want := errors.New("nope")
	f := &fakeCommands{err: want}
	for _, action := range []ui.Action{ui.ActionPlaceTower, ui.ActionUpgrade, ui.ActionNewRound} {
		if err := execute(f, action, "basic"); !errors.Is(err, want) {
			t.Errorf("Action %d: expected the command error, got %v", action, err)
		}
	}
}

type recordingState struct {
	name string
	log  *[]string
}

func (s recordingState) Enter() { *s.log = append(*s.log, "enter "+s.name) }

func (s recordingState) Exit() { *s.log = append(*s.log, "exit "+s.name) }

func (s recordingState) Update(float64) { *s.log = append(*s.log, "update "+s.name) }

func (s recordingState) Draw(*ebiten.Image) {}

func TestStateMachineTransitions(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.Update(1) // без состояния ничего не происходит

	a := recordingState{name: "a", log: &log}
	b := recordingState{name: "b", log: &log}
	sm.SetState(a)
	sm.Update(1)
	sm.SetState(b)

	want := []string{"enter a", "update a", "exit a", "enter b"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Step %d: expected %q, got %q", i, want[i], log[i])
		}
	}
	if sm.Current() != State(b) {
		t.Error("Expected b to be current")
	}
}
