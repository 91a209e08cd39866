package intentions

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	intentiondto "focusctl/internal/modules/intention/dto"
	"focusctl/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type IntentionPort interface {
	Declare(ctx context.Context, text string) (intentiondto.IntentionOutput, error)
	CheckIn(ctx context.Context, status string) (intentiondto.CheckInOutput, error)
	Today(ctx context.Context) (intentiondto.TodayOutput, error)
	History(ctx context.Context) ([]intentiondto.IntentionOutput, error)
	Streak(ctx context.Context) (intentiondto.StreakOutput, error)
	Stats(ctx context.Context) (intentiondto.StatsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Today   intentiondto.TodayOutput
	History []intentiondto.IntentionOutput
	Streak  intentiondto.StreakOutput
	Stats   intentiondto.StatsOutput
	Err     error
}

// DeclaredMsg bubbles to the app model so the home tab can refresh.
type DeclaredMsg struct {
	Intention intentiondto.IntentionOutput
	Err       error
}

type CheckedInMsg struct {
	Out intentiondto.CheckInOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port IntentionPort

	today   intentiondto.TodayOutput
	streak  intentiondto.StreakOutput
	stats   intentiondto.StatsOutput
	history viewport.Model
	input   textinput.Model
	editing bool
	loading bool
	width   int
	height  int
}

func New(port IntentionPort) Model {
	ti := textinput.New()
	ti.Placeholder = "What matters today?"
	ti.CharLimit = 200
	ti.Width = 60

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	return Model{port: port, input: ti, history: vp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out := LoadedMsg{}
		out.Today, out.Err = m.port.Today(ctx)
		if out.Err != nil {
			return out
		}
		out.History, out.Err = m.port.History(ctx)
		if out.Err != nil {
			return out
		}
		out.Streak, out.Err = m.port.Streak(ctx)
		if out.Err != nil {
			return out
		}
		out.Stats, out.Err = m.port.Stats(ctx)
		return out
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.Width = m.width - 4
		m.history.Height = m.height - 9
		if m.history.Height < 3 {
			m.history.Height = 3
		}

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.history.SetContent(theme.Muted.Render("intentions: " + msg.Err.Error()))
			return m, nil
		}
		m.today = msg.Today
		m.streak = msg.Streak
		m.stats = msg.Stats
		m.history.SetContent(renderHistory(msg.History))

	case DeclaredMsg, CheckedInMsg:
		cmds = append(cmds, m.Reload())

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter":
				text := strings.TrimSpace(m.input.Value())
				m.editing = false
				m.input.Blur()
				m.input.SetValue("")
				if text == "" {
					return m, nil
				}
				return m, m.declareCmd(text)
			case "esc":
				m.editing = false
				m.input.Blur()
				m.input.SetValue("")
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "i":
			m.editing = true
			return m, m.input.Focus()
		case "c":
			return m, m.checkInCmd("complete")
		case "x":
			return m, m.checkInCmd("partial")
		case "m":
			return m, m.checkInCmd("missed")
		case "r":
			m.loading = true
			return m, m.Reload()
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading intentions…"))
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Intentions"))
	if m.streak.Days > 0 {
		sb.WriteString("  " + theme.Good.Render(fmt.Sprintf("🔥 %d", m.streak.Days)))
	}
	sb.WriteString("\n")

	if m.editing {
		sb.WriteString(m.input.View() + "\n")
	} else if m.today.Declared {
		sb.WriteString(statusGlyph(m.today.Intention.Status) + " " + m.today.Intention.Text + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("no intention today. press i to set one") + "\n")
	}

	sb.WriteString(theme.Muted.Render(fmt.Sprintf(
		"total %d · complete %d · partial %d · missed %d · rate %.0f%%",
		m.stats.Total, m.stats.Complete, m.stats.Partial, m.stats.Missed, m.stats.CompletionRate*100)) + "\n\n")

	sb.WriteString(m.history.View() + "\n")
	sb.WriteString(theme.Muted.Render("  i: set  c: complete  x: partial  m: missed  r: refresh"))

	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}

// Editing reports whether the declare input is focused, so the app model
// yields global keys while the user types.
func (m Model) Editing() bool {
	return m.editing
}

func statusGlyph(status string) string {
	switch status {
	case "complete":
		return theme.Good.Render("✓")
	case "partial":
		return theme.Hot.Render("~")
	case "missed":
		return theme.Muted.Render("✗")
	default:
		return theme.Muted.Render("…")
	}
}

func renderHistory(history []intentiondto.IntentionOutput) string {
	if len(history) == 0 {
		return theme.Muted.Render("No intentions yet.")
	}
	var sb strings.Builder
	for _, item := range history {
		sb.WriteString(fmt.Sprintf("%s  %s %s\n",
			theme.Muted.Render(item.Date), statusGlyph(item.Status), item.Text))
	}
	return sb.String()
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) declareCmd(text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Declare(context.Background(), text)
		return DeclaredMsg{Intention: out, Err: err}
	}
}

func (m Model) checkInCmd(status string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.CheckIn(context.Background(), status)
		return CheckedInMsg{Out: out, Err: err}
	}
}
