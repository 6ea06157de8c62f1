package terminal

import (
	"strings"
	"time"

	"eyetimer/internal/core/phasetimer"
	"eyetimer/internal/ui/timerview"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	refreshInterval = 200 * time.Millisecond
	maxBarWidth     = 48
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	focusBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	breakBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	countdownStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 0)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Reset, keys.Skip, keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{keys.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TickMsg asks the model to redraw from the wall clock.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Model renders the timer in a terminal. It holds no timer state of its own.
type Model struct {
	timer    timerview.Controller
	clock    phasetimer.Clock
	keys     keyMap
	help     help.Model
	bar      progress.Model
	now      time.Time
	quitting bool
}

// New creates the terminal model for a timer.
func New(timer timerview.Controller, clock phasetimer.Clock) Model {
	if clock == nil {
		clock = phasetimer.SystemClock{}
	}
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return Model{
		timer: timer,
		clock: clock,
		keys:  defaultKeyMap(),
		help:  help.New(),
		bar:   bar,
		now:   clock.Now(),
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.timer.Toggle()
		case key.Matches(msg, m.keys.Reset):
			m.timer.Reset()
		case key.Matches(msg, m.keys.Skip):
			m.timer.Skip()
		}
		m.now = m.clock.Now()
		return m, nil
	case TickMsg:
		m.now = m.clock.Now()
		return m, tick()
	case tea.WindowSizeMsg:
		m.bar.Width = max(min(msg.Width-4, maxBarWidth), 10)
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snapshot := m.timer.Snapshot()
	settings := m.timer.Settings()
	remaining := snapshot.RemainingAt(m.now)

	badgeStyle := focusBadgeStyle
	if snapshot.Phase == phasetimer.PhaseBreak {
		badgeStyle = breakBadgeStyle
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(timerview.Title(settings)))
	b.WriteString("\n\n")
	b.WriteString(badgeStyle.Render(timerview.Badge(snapshot.Phase)))
	b.WriteString("\n")
	b.WriteString(countdownStyle.Render(timerview.FormatCountdown(phasetimer.CeilSeconds(remaining))))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(timerview.ProgressPercent(remaining, snapshot.Total) / 100))
	b.WriteString("\n\n")
	b.WriteString(timerview.NextText(snapshot.Phase, settings))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("[" + timerview.ToggleLabel(snapshot) + "]"))
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render(timerview.Footer(settings)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

// Run starts the interactive program and blocks until the user quits.
func Run(timer timerview.Controller, clock phasetimer.Clock) error {
	_, err := tea.NewProgram(New(timer, clock), tea.WithAltScreen()).Run()
	return err
}
