package focus

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	focusdto "focusctl/internal/modules/focus/dto"
	"focusctl/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type FocusPort interface {
	List(ctx context.Context) ([]focusdto.ModeOutput, error)
	Activate(ctx context.Context, modeID string) (focusdto.ActivateOutput, error)
	Deactivate(ctx context.Context) (focusdto.DeactivateOutput, error)
	ToggleGrayscale(ctx context.Context) (bool, error)
	RequestPermission(ctx context.Context) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type ModesLoadedMsg struct {
	Modes []focusdto.ModeOutput
	Err   error
}

// ActivatedMsg bubbles to the app model so other tabs can refresh.
type ActivatedMsg struct {
	Out focusdto.ActivateOutput
	Err error
}

type DeactivatedMsg struct {
	Out focusdto.DeactivateOutput
	Err error
}

type GrayscaleToggledMsg struct {
	Enabled bool
	Err     error
}

type PermissionRequestedMsg struct {
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type modeItem struct {
	mode focusdto.ModeOutput
}

func (i modeItem) Title() string {
	title := i.mode.Icon + " " + i.mode.Name
	if i.mode.IsActive {
		title += " ●"
	}
	return title
}

func (i modeItem) Description() string {
	desc := fmt.Sprintf("%d apps allowed", len(i.mode.AllowedApps))
	if i.mode.EnableGrayscale {
		desc += "  ·  grayscale"
	}
	if i.mode.IsCustom {
		desc += "  ·  custom"
	}
	return desc
}

func (i modeItem) FilterValue() string { return i.mode.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    FocusPort
	list    list.Model
	loading bool
	width   int
	height  int
}

func New(port FocusPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Ink).BorderForeground(theme.Ink)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Subtext0).BorderForeground(theme.Ink)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Focus Modes"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		modes, err := m.port.List(context.Background())
		return ModesLoadedMsg{Modes: modes, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, m.height-2)

	case ModesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Focus Modes: " + msg.Err.Error()
			return m, nil
		}
		m.list.Title = "Focus Modes"
		items := make([]list.Item, len(msg.Modes))
		for i, mode := range msg.Modes {
			items[i] = modeItem{mode: mode}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case ActivatedMsg, DeactivatedMsg:
		cmds = append(cmds, m.Reload())

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(modeItem); ok {
				return m, m.activateCmd(item.mode.ID)
			}
		case "d":
			return m, m.deactivateCmd()
		case "g":
			return m, m.toggleGrayscaleCmd()
		case "p":
			return m, m.requestPermissionCmd()
		}
	}

	if !m.loading {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading modes…"))
	}
	hint := theme.Muted.Render("  enter: activate  d: deactivate  g: grayscale  p: permission")
	return strings.TrimRight(m.list.View(), "\n") + "\n" + hint
}

// Filtering reports whether the list's search filter is active, so the app
// model yields global keys while the user types.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) activateCmd(modeID string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Activate(context.Background(), modeID)
		return ActivatedMsg{Out: out, Err: err}
	}
}

func (m Model) deactivateCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Deactivate(context.Background())
		return DeactivatedMsg{Out: out, Err: err}
	}
}

func (m Model) toggleGrayscaleCmd() tea.Cmd {
	return func() tea.Msg {
		enabled, err := m.port.ToggleGrayscale(context.Background())
		return GrayscaleToggledMsg{Enabled: enabled, Err: err}
	}
}

func (m Model) requestPermissionCmd() tea.Cmd {
	return func() tea.Msg {
		return PermissionRequestedMsg{Err: m.port.RequestPermission(context.Background())}
	}
}
