// Package tui provides the interactive Bubble Tea dashboard for finplan.
package tui

import (
	"fmt"
	"strings"

	"github.com/nwrenn27-sketch/finplan/internal/budget"
	"github.com/nwrenn27-sketch/finplan/internal/config"
	"github.com/nwrenn27-sketch/finplan/internal/invest"
	"github.com/nwrenn27-sketch/finplan/internal/model"
	"github.com/nwrenn27-sketch/finplan/internal/plan"
	"github.com/nwrenn27-sketch/finplan/internal/store"
	"github.com/nwrenn27-sketch/finplan/internal/tui/components"
	"github.com/nwrenn27-sketch/finplan/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the store read finishes.
type DataLoadedMsg struct {
	Debts   []model.Debt
	Entries []model.BudgetEntry
	Err     error
}

// DebtSavedMsg is sent after the add-debt form writes to the store.
type DebtSavedMsg struct {
	Err error
}

// App is the root Bubble Tea model.
type App struct {
	dbPath string

	// Data
	debts   []model.Debt
	entries []model.BudgetEntry
	loaded  bool
	loadErr error

	// Pre-computed on every data or control change
	summary    model.BudgetSummary
	health     model.HealthReport
	comparison model.StrategyComparison
	projection model.Projection

	// Payoff controls
	strategy plan.Strategy
	extra    float64

	// Invest defaults from config
	annualReturn float64
	inflation    float64
	investYears  int

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Add-debt form (huh)
	debtForm *huh.Form
	formVals debtFormValues
	saveErr  error

	spinner spinner.Model
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
	extraStep        = 50 // dollars per +/- keypress
)

// NewApp creates a new TUI app model.
func NewApp(dbPath string, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	strategy := plan.Avalanche
	if cfg.General.DefaultStrategy == string(plan.Snowball) {
		strategy = plan.Snowball
	}

	return App{
		dbPath:       dbPath,
		strategy:     strategy,
		extra:        cfg.General.ExtraPayment,
		annualReturn: cfg.Invest.AnnualReturn,
		inflation:    cfg.Invest.Inflation,
		investYears:  30,
		spinner:      sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		loadDataCmd(a.dbPath),
		a.spinner.Tick,
	)
}

func (a *App) recompute() {
	a.summary = budget.Summarize(a.entries)
	a.health = budget.HealthScore(a.summary, a.debts)
	a.comparison = plan.Compare(a.debts, a.extra)

	// Project the budget's monthly savings forward with config defaults.
	a.projection = invest.Project(0, a.summary.Savings, a.annualReturn, a.inflation, a.investYears)
}

// activePlan returns the simulation for the currently selected strategy.
func (a App) activePlan() model.PayoffPlan {
	if a.strategy == plan.Snowball {
		return a.comparison.Snowball
	}
	return a.comparison.Avalanche
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.debtForm != nil {
			a.debtForm = a.debtForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if !a.loaded || a.showHelp || a.debtForm != nil {
			return a, nil
		}
		// Tab bar click (first line)
		if msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.loaded {
			return a, nil
		}

		// Add-debt form intercepts all keys
		if a.debtForm != nil {
			return a.updateDebtForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "a":
			a.saveErr = nil
			a.formVals = debtFormValues{}
			a.debtForm = newDebtForm(&a.formVals)
			if a.width > 0 {
				a.debtForm = a.debtForm.WithWidth(a.width).WithHeight(a.height)
			}
			return a, a.debtForm.Init()
		case "r":
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		// Payoff tab controls
		if a.activeTab == 1 {
			switch key {
			case "s":
				if a.strategy == plan.Avalanche {
					a.strategy = plan.Snowball
				} else {
					a.strategy = plan.Avalanche
				}
				return a, nil
			case "+", "=":
				a.extra += extraStep
				a.recompute()
				return a, nil
			case "-":
				a.extra -= extraStep
				if a.extra < 0 {
					a.extra = 0
				}
				a.recompute()
				return a, nil
			}
		}

		// Invest tab controls
		if a.activeTab == 3 {
			switch key {
			case "+", "=":
				if a.investYears < 50 {
					a.investYears += 5
					a.recompute()
				}
				return a, nil
			case "-":
				if a.investYears > 5 {
					a.investYears -= 5
					a.recompute()
				}
				return a, nil
			}
		}

		if len(key) == 1 {
			if tab := components.TabIdxByKey(rune(key[0])); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		a.loadErr = msg.Err
		a.debts = msg.Debts
		a.entries = msg.Entries
		a.recompute()
		return a, nil

	case DebtSavedMsg:
		a.saveErr = msg.Err
		if msg.Err == nil {
			a.loaded = false
			return a, tea.Batch(loadDataCmd(a.dbPath), a.spinner.Tick)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.debtForm != nil {
		return a.updateDebtForm(msg)
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	if a.debtForm != nil {
		return a.debtForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  finplan needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ finplan"))
	b.WriteString(subtitleStyle.Render(" · Personal Finance"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Loading your data..."))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	bindings := []struct{ key, desc string }{
		{"o p b i", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"a", "Add a debt"},
		{"s", "Toggle payoff strategy"},
		{"+ -", "Adjust extra payment / horizon"},
		{"r", "Reload data"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab)
	statusBar := components.RenderStatusBar(w, len(a.debts), len(a.entries))

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderOverviewTab(cw)
	case 1:
		content = a.renderPayoffTab(cw)
	case 2:
		content = a.renderBudgetTab(cw)
	case 3:
		content = a.renderInvestTab(cw)
	}

	if a.loadErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		content = errStyle.Render(fmt.Sprintf("  Load error: %v", a.loadErr)) + "\n" + content
	}
	if a.saveErr != nil {
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		content = errStyle.Render(fmt.Sprintf("  Save error: %v", a.saveErr)) + "\n" + content
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Data loading ───────────────────────────────────────────────

// loadDataCmd reads debts and budget entries from the store in a
// background command.
func loadDataCmd(dbPath string) tea.Cmd {
	return func() tea.Msg {
		s, err := store.Open(dbPath)
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		defer s.Close()

		debts, err := s.ListDebts()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		entries, err := s.ListEntries()
		if err != nil {
			return DataLoadedMsg{Err: err}
		}
		return DataLoadedMsg{Debts: debts, Entries: entries}
	}
}

// ─── Mouse support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 1 // leading space in the tab bar
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW + 2 // two-space separator
	}
	return -1
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
