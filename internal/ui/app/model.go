package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	trackerdto "sleepmaster/internal/modules/tracker/dto"
	"sleepmaster/internal/ui/theme"
	historyview "sleepmaster/internal/ui/views/history"
	trackerview "sleepmaster/internal/ui/views/tracker"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type trackerPort interface {
	State(ctx context.Context) (trackerdto.StateOutput, error)
	Toggle(ctx context.Context) (trackerdto.ToggleOutput, error)
	History(ctx context.Context) ([]trackerdto.SessionOutput, error)
}

type settingsPort interface {
	Bedtime(ctx context.Context) (string, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTracker tabID = iota
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Tracker", "History"}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab    key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "sleep/wake")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Toggle},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay
// and the status bar; tracking logic stays behind the port interfaces and
// rendering behind the sub-views.
type Model struct {
	trackView trackerview.Model
	histView  historyview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(tracker trackerPort, settings settingsPort) Model {
	var settingsBridge trackerview.SettingsPort
	if settings != nil {
		settingsBridge = settings
	}
	return Model{
		trackView: trackerview.New(tracker, settingsBridge),
		histView:  historyview.New(tracker),
		activeTab: tabTracker,
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.trackView.Init(), m.histView.Init())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width

	case trackerview.ToggledMsg:
		if msg.Err != nil {
			m.status = "toggle failed: " + msg.Err.Error()
		} else if msg.Out.Started {
			m.status = "sleep tracking started"
		} else if msg.Out.Stop.Stopped {
			m.status = "good morning, score " + scoreText(msg.Out.Stop.Session.Score)
			cmds = append(cmds, m.histView.Reload())
		} else {
			m.status = "nothing to stop"
		}
		// The tracker view refreshes its state regardless of the active tab.
		var cmd tea.Cmd
		m.trackView, cmd = m.trackView.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case " ":
			cmds = append(cmds, m.trackView.Toggle())
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabTracker:
		m.trackView, tabCmd = m.trackView.Update(msg)
	case tabHistory:
		m.histView, tabCmd = m.histView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

func scoreText(score int) string {
	return lipgloss.NewStyle().Foreground(theme.ScoreColor(score)).Render(fmt.Sprintf("%d", score))
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		switch m.activeTab {
		case tabTracker:
			content = m.trackView.View()
		case tabHistory:
			content = m.histView.View()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "sleepmaster  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.trackView.Sleeping() {
		left = theme.Hot.Render("● sleeping") + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  space:toggle  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
