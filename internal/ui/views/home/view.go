package home

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appsdto "focusctl/internal/modules/apps/dto"
	focusdto "focusctl/internal/modules/focus/dto"
	intentiondto "focusctl/internal/modules/intention/dto"
	"focusctl/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type FocusPort interface {
	Status(ctx context.Context) (focusdto.StatusOutput, error)
}

type IntentionPort interface {
	Today(ctx context.Context) (intentiondto.TodayOutput, error)
	Streak(ctx context.Context) (intentiondto.StreakOutput, error)
}

type AppsPort interface {
	List(ctx context.Context) ([]appsdto.AppOutput, error)
	Launch(ctx context.Context, packageName string) (appsdto.LaunchOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Today     intentiondto.TodayOutput
	Streak    intentiondto.StreakOutput
	Focus     focusdto.StatusOutput
	Favorites []appsdto.AppOutput
	Err       error
}

type LaunchedMsg struct {
	PackageName string
	Err         error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders the launcher home: today's intention, the streak, the active
// focus mode, and the favorite apps shelf.
type Model struct {
	focus     FocusPort
	intention IntentionPort
	apps      AppsPort

	today     intentiondto.TodayOutput
	streak    intentiondto.StreakOutput
	status    focusdto.StatusOutput
	favorites []appsdto.AppOutput
	selected  int
	loading   bool
	loadErr   error
	width     int
	height    int
}

func New(focus FocusPort, intention IntentionPort, apps AppsPort) Model {
	return Model{
		focus:     focus,
		intention: intention,
		apps:      apps,
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Reload refetches everything the home screen shows. The app model calls it
// after actions on other tabs change focus or intention state.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		out := LoadedMsg{}
		out.Today, out.Err = m.intention.Today(ctx)
		if out.Err != nil {
			return out
		}
		out.Streak, out.Err = m.intention.Streak(ctx)
		if out.Err != nil {
			return out
		}
		out.Focus, out.Err = m.focus.Status(ctx)
		if out.Err != nil {
			return out
		}
		all, err := m.apps.List(ctx)
		if err != nil {
			out.Err = err
			return out
		}
		for _, app := range all {
			if app.Favorite {
				out.Favorites = append(out.Favorites, app)
			}
		}
		return out
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.loadErr = msg.Err
		if msg.Err != nil {
			return m, nil
		}
		m.today = msg.Today
		m.streak = msg.Streak
		m.status = msg.Focus
		m.favorites = msg.Favorites
		if m.selected >= len(m.favorites) {
			m.selected = 0
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.favorites)-1 {
				m.selected++
			}
		case "enter":
			if m.selected < len(m.favorites) {
				return m, m.launchCmd(m.favorites[m.selected].PackageName)
			}
		case "r":
			m.loading = true
			return m, m.Reload()
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("Loading…"))
	}
	if m.loadErr != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			theme.Muted.Render("home: "+m.loadErr.Error()))
	}

	var sb strings.Builder

	if m.today.Declared {
		sb.WriteString(theme.Title.Render("Today") + "\n")
		sb.WriteString("  " + m.today.Intention.Text + "\n")
		sb.WriteString("  " + theme.Muted.Render("status: ") + m.today.Intention.Status + "\n")
	} else {
		sb.WriteString(theme.Title.Render("Today") + "\n")
		sb.WriteString("  " + theme.Muted.Render("no intention yet. set one on the Intentions tab") + "\n")
	}
	if m.streak.Days > 0 {
		sb.WriteString("  " + theme.Good.Render(fmt.Sprintf("🔥 %d day streak", m.streak.Days)) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Focus") + "\n")
	if m.status.ActiveModeID != "" {
		sb.WriteString("  " + theme.Hot.Render("● "+m.status.ActiveModeName))
		sb.WriteString(theme.Muted.Render(fmt.Sprintf("  blocking %d apps", len(m.status.BlockedApps))) + "\n")
	} else {
		sb.WriteString("  " + theme.Muted.Render("no active mode") + "\n")
	}
	if m.status.GrayscaleEnabled {
		sb.WriteString("  " + theme.Muted.Render("grayscale on") + "\n")
	}
	if !m.status.PermissionGranted {
		sb.WriteString("  " + theme.Muted.Render("enforcement permission not granted") + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(theme.Title.Render("Favorites") + "\n")
	if len(m.favorites) == 0 {
		sb.WriteString("  " + theme.Muted.Render("none pinned. use the apps command") + "\n")
	}
	for i, fav := range m.favorites {
		line := fmt.Sprintf("%s  %s", fav.AppName, theme.Muted.Render(fav.PackageName))
		if i == m.selected {
			sb.WriteString("  " + theme.Hot.Render("▸ ") + line + "\n")
		} else {
			sb.WriteString("    " + line + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("  enter: launch  r: refresh"))

	return lipgloss.NewStyle().Width(m.width).Height(m.height).Padding(1, 2).Render(sb.String())
}

func (m Model) launchCmd(packageName string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.apps.Launch(context.Background(), packageName)
		return LaunchedMsg{PackageName: out.PackageName, Err: err}
	}
}
