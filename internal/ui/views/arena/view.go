package arena

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "timearena/internal/modules/progress/dto"
	"timearena/internal/ui/components"
	"timearena/internal/ui/theme"
)

const (
	tickInterval  = time.Second
	historyRows   = 5
	progressWidth = 30
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Status(ctx context.Context) (progressdto.StatusOutput, error)
	History(ctx context.Context, limit int) ([]progressdto.EventOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SnapshotMsg struct {
	Status progressdto.StatusOutput
	Events []progressdto.EventOutput
	Err    error
}

type TickMsg time.Time

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   ProgressPort
	status progressdto.StatusOutput
	events []progressdto.EventOutput
	loaded bool
	errMsg string
	width  int
}

func New(port ProgressPort) Model {
	return Model{port: port}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), tickCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case TickMsg:
		// Each refresh goes through Status, which also expires a finished ban.
		return m, tea.Batch(m.loadCmd(), tickCmd())

	case SnapshotMsg:
		if msg.Err != nil {
			m.errMsg = "refresh failed: " + msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.loaded = true
		m.status = msg.Status
		m.events = msg.Events

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) View() string {
	if !m.loaded {
		if m.errMsg != "" {
			return theme.App.Render(theme.BanStrip.Render(m.errMsg))
		}
		return theme.App.Render(theme.Muted.Render("loading…"))
	}
	s := m.status
	sections := []string{
		theme.Title.Render(fmt.Sprintf("⏳ TimeArena · %s", s.UserName)),
		theme.Muted.Render(s.Greeting),
		m.renderStats(),
	}
	if s.Ban != nil {
		sections = append(sections, renderBan(*s.Ban))
	}
	if len(m.events) > 0 {
		sections = append(sections, m.renderHistory())
	}
	if m.errMsg != "" {
		sections = append(sections, theme.Warn.Render(m.errMsg))
	}
	sections = append(sections, theme.Muted.Render("q quit"))
	return theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderStats() string {
	s := m.status
	minutes := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		theme.Good.Render(fmt.Sprintf("%d / %d min", s.MinutesEarned, s.MinutesMax)),
		theme.Bar.Render(components.ProgressBar(s.ProgressPercent, progressWidth))+fmt.Sprintf(" %d%%", s.ProgressPercent),
		theme.Muted.Render(fmt.Sprintf("%d min locked", s.MinutesLocked)),
	))
	level := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("Level %d", s.Level),
		theme.Muted.Render(fmt.Sprintf("%d XP", s.XP)),
		fmt.Sprintf("🔥 %d day streak", s.Streak),
	))
	return lipgloss.JoinHorizontal(lipgloss.Top, minutes, " ", level)
}

func renderBan(ban progressdto.BanOutput) string {
	return theme.BanStrip.Render(fmt.Sprintf(
		"🔴 BAN L%d · %s\nReactivates in: %s",
		ban.Level, ban.Name, components.FormatHMS(ban.Remaining),
	))
}

func (m Model) renderHistory() string {
	rows := make([]string, 0, len(m.events))
	for _, e := range m.events {
		line := e.At.Format("15:04") + "  " + e.Title
		if e.Details != "" {
			line += theme.Muted.Render("  " + e.Details)
		}
		rows = append(rows, line)
	}
	return theme.Card.Render(strings.Join(rows, "\n"))
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return SnapshotMsg{}
		}
		ctx := context.Background()
		status, err := m.port.Status(ctx)
		if err != nil {
			return SnapshotMsg{Err: err}
		}
		events, err := m.port.History(ctx, historyRows)
		return SnapshotMsg{Status: status, Events: events, Err: err}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}
