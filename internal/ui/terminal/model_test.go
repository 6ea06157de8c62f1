package terminal

import (
	"strings"
	"testing"
	"time"

	"eyetimer/internal/core/model"
	"eyetimer/internal/core/phasetimer"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

type fakeTimer struct {
	snapshot phasetimer.Snapshot
	settings model.Settings
	calls    []string
}

func (timer *fakeTimer) Toggle() {
	timer.calls = append(timer.calls, "toggle")
	timer.snapshot.Paused = timer.snapshot.Running
	timer.snapshot.Running = !timer.snapshot.Running
}

func (timer *fakeTimer) Reset() { timer.calls = append(timer.calls, "reset") }
func (timer *fakeTimer) Skip()  { timer.calls = append(timer.calls, "skip") }

func (timer *fakeTimer) Snapshot() phasetimer.Snapshot { return timer.snapshot }
func (timer *fakeTimer) Settings() model.Settings      { return timer.settings }

func newFixture() (*fakeTimer, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	settings := model.DefaultSettings()
	timer := &fakeTimer{
		settings: settings,
		snapshot: phasetimer.Snapshot{
			Phase:     phasetimer.PhaseFocus,
			Total:     settings.Focus,
			Remaining: settings.Focus,
		},
	}
	return timer, clock
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeysDriveTimer(t *testing.T) {
	timer, clock := newFixture()
	var m tea.Model = New(timer, clock)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = m.Update(runes("s"))
	m, _ = m.Update(runes("r"))
	m, _ = m.Update(runes("x"))

	want := []string{"toggle", "skip", "reset"}
	if strings.Join(timer.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", timer.calls, want)
	}

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should quit the program")
	}
}

func TestViewShowsTimerState(t *testing.T) {
	timer, clock := newFixture()
	m := New(timer, clock)

	view := m.View()
	for _, want := range []string{"20-20-20 Eye Timer", "Focus Time", "20:00", "Next: 20s Break", "[Start]", "Look 20 feet away"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestTickReadsWallClock(t *testing.T) {
	timer, clock := newFixture()
	timer.snapshot.Running = true
	timer.snapshot.EndsAt = clock.now.Add(timer.snapshot.Total)
	var m tea.Model = New(timer, clock)

	clock.now = clock.now.Add(61 * time.Second)
	m, cmd := m.Update(TickMsg(clock.now))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	view := m.View()
	if !strings.Contains(view, "18:59") {
		t.Errorf("view should show 18:59:\n%s", view)
	}
	if !strings.Contains(view, "[Pause]") {
		t.Errorf("view should show the pause label:\n%s", view)
	}
}

func TestBreakPhaseView(t *testing.T) {
	timer, clock := newFixture()
	timer.snapshot.Phase = phasetimer.PhaseBreak
	timer.snapshot.Total = 20 * time.Second
	timer.snapshot.Remaining = 7 * time.Second
	timer.snapshot.Paused = true

	view := New(timer, clock).View()
	for _, want := range []string{"Look Away (20ft)", "0:07", "Next: 20m Focus", "[Resume]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestWindowResize(t *testing.T) {
	timer, clock := newFixture()
	m, _ := New(timer, clock).Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	if got := m.(Model).bar.Width; got != 16 {
		t.Errorf("bar width = %d, want 16", got)
	}
	m, _ = m.Update(tea.WindowSizeMsg{Width: 5, Height: 10})
	if got := m.(Model).bar.Width; got != 10 {
		t.Errorf("bar width = %d, want 10", got)
	}
}
