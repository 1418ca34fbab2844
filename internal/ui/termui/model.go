// Package termui implements the terminal frontend: a Bubble Tea model
// that renders timer state and maps keys onto timer commands.
package termui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomotick/internal/core/model"
	"pomotick/internal/core/timer"
	"pomotick/internal/notify"
	"pomotick/internal/quotes"
)

// EventMsg wraps a timer event delivered to the program.
type EventMsg timer.Event

// Model is the root bubbletea model.
type Model struct {
	core     *timer.Timer
	events   <-chan timer.Event
	rotation *quotes.Rotation

	snap     timer.Snapshot
	quote    string
	progress progress.Model
	width    int
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	clockStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")).Underline(true)
	idleTabStyle   = lipgloss.NewStyle().Faint(true)
	quoteStyle     = lipgloss.NewStyle().Italic(true).Faint(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// NewModel builds the terminal model around an existing timer core.
func NewModel(core *timer.Timer, rotation *quotes.Rotation) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return Model{
		core:     core,
		events:   core.Subscribe(16),
		rotation: rotation,
		snap:     core.Snapshot(),
		quote:    rotation.Current(),
		progress: bar,
	}
}

func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func waitForEvent(events <-chan timer.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return tea.QuitMsg{}
		}
		return EventMsg(event)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		width := msg.Width - 8
		if width > 48 {
			width = 48
		}
		if width > 0 {
			m.progress.Width = width
		}
		return m, nil
	case EventMsg:
		return m.handleEvent(timer.Event(msg))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if m.snap.Running {
			m.core.Pause()
		} else {
			m.core.Start()
		}
	case "r":
		m.core.Reset()
	case "1":
		m.core.SwitchMode(model.ModeWork)
	case "2":
		m.core.SwitchMode(model.ModeShortBreak)
	case "3":
		m.core.SwitchMode(model.ModeLongBreak)
	}
	return m, nil
}

func (m Model) handleEvent(event timer.Event) (tea.Model, tea.Cmd) {
	m.snap.Mode = event.Mode
	m.snap.Remaining = event.Remaining
	m.snap.Running = event.Running
	m.snap.Sessions = event.Sessions

	cmds := []tea.Cmd{waitForEvent(m.events)}
	if event.Type == timer.EventCompleted {
		m.quote = m.rotation.Next()
		title, body := notify.Message(event.PreviousMode, event.Sessions)
		// \a rings the terminal bell while the line lands in scrollback.
		cmds = append(cmds, tea.Printf("\a%s — %s", title, body))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	tabs := make([]string, 0, 3)
	for _, mode := range []model.Mode{model.ModeWork, model.ModeShortBreak, model.ModeLongBreak} {
		style := idleTabStyle
		if mode == m.snap.Mode {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(mode.Label()))
	}

	status := "paused"
	if m.snap.Running {
		status = "running"
	}

	lines := []string{
		titleStyle.Render("Pomotick"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs[0], "  ", tabs[1], "  ", tabs[2]),
		clockStyle.Render(formatClock(m.snap.Remaining)) + " " + status,
		m.progress.ViewAs(m.percentDone()),
		fmt.Sprintf("Sessions completed: %d", m.snap.Sessions),
		quoteStyle.Render(m.quote),
		helpStyle.Render("space start/pause · r reset · 1/2/3 mode · q quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (m Model) percentDone() float64 {
	total := m.core.Config().DurationOf(m.snap.Mode)
	if total <= 0 {
		return 0
	}
	done := float64(total-m.snap.Remaining) / float64(total)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

func formatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
