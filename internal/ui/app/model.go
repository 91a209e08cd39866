package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsdto "focusctl/internal/modules/apps/dto"
	focusdto "focusctl/internal/modules/focus/dto"
	intentiondto "focusctl/internal/modules/intention/dto"
	"focusctl/internal/ui/theme"
	focusview "focusctl/internal/ui/views/focus"
	homeview "focusctl/internal/ui/views/home"
	intentionsview "focusctl/internal/ui/views/intentions"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires. The
// CLI handlers satisfy them structurally.

type focusPort interface {
	List(ctx context.Context) ([]focusdto.ModeOutput, error)
	Activate(ctx context.Context, modeID string) (focusdto.ActivateOutput, error)
	Deactivate(ctx context.Context) (focusdto.DeactivateOutput, error)
	ToggleGrayscale(ctx context.Context) (bool, error)
	Status(ctx context.Context) (focusdto.StatusOutput, error)
	RequestPermission(ctx context.Context) error
}

type intentionPort interface {
	Declare(ctx context.Context, text string) (intentiondto.IntentionOutput, error)
	CheckIn(ctx context.Context, status string) (intentiondto.CheckInOutput, error)
	Today(ctx context.Context) (intentiondto.TodayOutput, error)
	History(ctx context.Context) ([]intentiondto.IntentionOutput, error)
	Streak(ctx context.Context) (intentiondto.StreakOutput, error)
	Stats(ctx context.Context) (intentiondto.StatsOutput, error)
}

type appsPort interface {
	List(ctx context.Context) ([]appsdto.AppOutput, error)
	Launch(ctx context.Context, packageName string) (appsdto.LaunchOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabFocus
	tabIntentions
	tabCount
)

var tabLabels = [tabCount]string{"Home", "Focus", "Intentions"}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab       key.Binding
	Help      key.Binding
	Quit      key.Binding
	Enter     key.Binding
	Declare   key.Binding
	CheckIn   key.Binding
	Grayscale key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate/launch")),
		Declare:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "set intention")),
		CheckIn:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c/x/m", "check in")),
		Grayscale: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grayscale")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter},
		{k.Declare, k.CheckIn, k.Grayscale},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay,
// and the status bar. All business logic is behind port interfaces; all
// rendering is delegated to sub-views.
type Model struct {
	homeView      homeview.Model
	focusView     focusview.Model
	intentionView intentionsview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	width     int
	height    int
}

func NewModel(focus focusPort, intention intentionPort, apps appsPort) Model {
	return Model{
		homeView:      homeview.New(focus, intention, apps),
		focusView:     focusview.New(focus),
		intentionView: intentionsview.New(intention),
		activeTab:     tabHome,
		keys:          defaultKeys(),
		help:          help.New(),
		status:        "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.homeView.Init(),
		m.focusView.Init(),
		m.intentionView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case focusview.ActivatedMsg:
		if msg.Err != nil {
			m.status = "activate failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("activated %s (blocking %d apps)", msg.Out.Name, len(msg.Out.BlockedApps))
			cmds = append(cmds, m.homeView.Reload())
		}

	case focusview.DeactivatedMsg:
		if msg.Err != nil {
			m.status = "deactivate failed: " + msg.Err.Error()
		} else if msg.Out.WasActive {
			m.status = "deactivated " + msg.Out.ModeID
			cmds = append(cmds, m.homeView.Reload())
		} else {
			m.status = "no mode was active"
		}

	case focusview.GrayscaleToggledMsg:
		if msg.Err != nil {
			m.status = "grayscale toggle failed: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("grayscale: %t", msg.Enabled)
			cmds = append(cmds, m.homeView.Reload())
		}

	case focusview.PermissionRequestedMsg:
		if msg.Err != nil {
			m.status = "permission request failed: " + msg.Err.Error()
		} else {
			m.status = "permission requested"
			cmds = append(cmds, m.homeView.Reload())
		}

	case intentionsview.DeclaredMsg:
		if msg.Err != nil {
			m.status = "intention failed: " + msg.Err.Error()
		} else {
			m.status = "intention set: " + msg.Intention.Text
			cmds = append(cmds, m.homeView.Reload())
		}

	case intentionsview.CheckedInMsg:
		if msg.Err != nil {
			m.status = "check-in failed: " + msg.Err.Error()
		} else if !msg.Out.Updated {
			m.status = "no intention declared today"
		} else {
			m.status = fmt.Sprintf("checked in: %s (streak %d)", msg.Out.Intention.Status, msg.Out.Streak)
			cmds = append(cmds, m.homeView.Reload())
		}

	case homeview.LaunchedMsg:
		if msg.Err != nil {
			m.status = "launch failed: " + msg.Err.Error()
		} else {
			m.status = "launched " + msg.PackageName
			cmds = append(cmds, m.homeView.Reload())
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to the sub-view when it owns the keyboard.
		if m.subViewTyping() {
			break
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
			return m, nil
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabHome:
		m.homeView, tabCmd = m.homeView.Update(msg)
	case tabFocus:
		m.focusView, tabCmd = m.focusView.Update(msg)
	case tabIntentions:
		m.intentionView, tabCmd = m.intentionView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.showHelp {
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.homeView.View()
	case tabFocus:
		return m.focusView.View()
	case tabIntentions:
		return m.intentionView.View()
	}
	return ""
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
	bar := "focusctl  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewTyping reports whether the active tab is capturing free-form input,
// in which case global key bindings must yield.
func (m Model) subViewTyping() bool {
	switch m.activeTab {
	case tabFocus:
		return m.focusView.Filtering()
	case tabIntentions:
		return m.intentionView.Editing()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.focusView, _ = m.focusView.Update(sz)
	m.intentionView, _ = m.intentionView.Update(sz)
}
