package history

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"sleepmaster/internal/modules/tracker/domain"
	trackerdto "sleepmaster/internal/modules/tracker/dto"
	"sleepmaster/internal/ui/theme"
)

type HistoryPort interface {
	History(ctx context.Context) ([]trackerdto.SessionOutput, error)
}

type LoadedMsg struct {
	Sessions []trackerdto.SessionOutput
	Err      error
}

type nightItem struct {
	session trackerdto.SessionOutput
}

func (i nightItem) Title() string {
	return i.session.StartedAt.Local().Format("Mon Jan 2")
}

func (i nightItem) Description() string {
	return fmt.Sprintf("%s  score %d  %d awakenings",
		domain.FormatDuration(i.session.DurationMin), i.session.Score, i.session.Awakenings)
}

func (i nightItem) FilterValue() string {
	return i.session.StartedAt.Format("2006-01-02")
}

type Model struct {
	port HistoryPort
	list list.Model
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Sleep History"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

// Reload refreshes the list, used after a session closes.
func (m Model) Reload() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.port.History(context.Background())
		return LoadedMsg{Sessions: sessions, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)

	case LoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Sleep History — " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Sessions))
		for i, s := range msg.Sessions {
			items[i] = nightItem{session: s}
		}
		return m, m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
