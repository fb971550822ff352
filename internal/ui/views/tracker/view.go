package tracker

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sleepmaster/internal/modules/tracker/domain"
	trackerdto "sleepmaster/internal/modules/tracker/dto"
	"sleepmaster/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type TrackerPort interface {
	State(ctx context.Context) (trackerdto.StateOutput, error)
	Toggle(ctx context.Context) (trackerdto.ToggleOutput, error)
}

type SettingsPort interface {
	Bedtime(ctx context.Context) (string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StateLoadedMsg struct {
	State trackerdto.StateOutput
	Err   error
}

type ToggledMsg struct {
	Out trackerdto.ToggleOutput
	Err error
}

type BedtimeLoadedMsg struct {
	Bedtime string
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     TrackerPort
	settings SettingsPort
	state    trackerdto.StateOutput
	bedtime  string
	spinner  spinner.Model
	loading  bool
	errText  string
	width    int
	height   int
}

func New(port TrackerPort, settings SettingsPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, settings: settings, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStateCmd(), m.loadBedtimeCmd(), m.spinner.Tick)
}

// Sleeping reports whether an open session exists, for the status bar.
func (m Model) Sleeping() bool { return m.state.Sleeping }

// Toggle flips the tracking state asynchronously.
func (m Model) Toggle() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Toggle(context.Background())
		return ToggledMsg{Out: out, Err: err}
	}
}

func (m Model) loadStateCmd() tea.Cmd {
	return func() tea.Msg {
		state, err := m.port.State(context.Background())
		return StateLoadedMsg{State: state, Err: err}
	}
}

func (m Model) loadBedtimeCmd() tea.Cmd {
	return func() tea.Msg {
		if m.settings == nil {
			return BedtimeLoadedMsg{}
		}
		bedtime, err := m.settings.Bedtime(context.Background())
		return BedtimeLoadedMsg{Bedtime: bedtime, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case StateLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		m.state = msg.State

	case ToggledMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.errText = ""
		// Re-read instead of patching local state so the view always shows
		// exactly what was persisted.
		return m, m.loadStateCmd()

	case BedtimeLoadedMsg:
		if msg.Err == nil {
			m.bedtime = msg.Bedtime
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render(m.spinner.View() + " loading sleep data...")
	}

	var b strings.Builder

	if m.state.Sleeping {
		b.WriteString(theme.Hot.Render("● Sleeping"))
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("since " + m.state.Current.StartedAt.Local().Format("Mon 15:04")))
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("press space to wake up"))
	} else if m.state.HasLast {
		last := m.state.LastNight
		scoreStyle := lipgloss.NewStyle().Foreground(theme.ScoreColor(last.Score)).Bold(true)
		b.WriteString(theme.Title.Render("Last Night"))
		b.WriteString("\n\n")
		b.WriteString(scoreStyle.Render(fmt.Sprintf("  %d", last.Score)))
		b.WriteString(theme.Muted.Render(" / 100 sleep score"))
		b.WriteString("\n\n")
		rows := [][2]string{
			{"Duration", domain.FormatDuration(last.DurationMin)},
			{"Deep sleep", domain.FormatDuration(last.DeepSleepMin)},
			{"Light sleep", domain.FormatDuration(last.LightSleepMin)},
			{"Awake", domain.FormatDuration(last.AwakeMin)},
			{"Awakenings", fmt.Sprintf("%d", last.Awakenings)},
		}
		for _, row := range rows {
			b.WriteString(fmt.Sprintf("%s %s\n", theme.Muted.Render(fmt.Sprintf("%-12s", row[0])), row[1]))
		}
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("press space to start tracking"))
	} else {
		b.WriteString(theme.Title.Render("Sleep Master"))
		b.WriteString("\n\n")
		b.WriteString("No sleep data yet.\n")
		b.WriteString(theme.Muted.Render("Start tracking your sleep to see insights here."))
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("press space to start tracking"))
	}

	if m.bedtime != "" && !m.state.Sleeping {
		b.WriteString("\n\n")
		b.WriteString(theme.Muted.Render("suggested bedtime: " + m.bedtime))
	}
	if m.errText != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Red).Render(m.errText))
	}

	return theme.Pane.Render(b.String())
}
