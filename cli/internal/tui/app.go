// ABOUTME: Root bubbletea model for the configurator TUI
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/Atlas00000/terra-client/cli/internal/tui/icons"
	"github.com/Atlas00000/terra-client/cli/internal/tui/result"
	"github.com/Atlas00000/terra-client/cli/internal/tui/styles"
	"github.com/Atlas00000/terra-client/cli/internal/tui/wizard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenLoading Screen = iota
	ScreenWizard
	ScreenRecommending
	ScreenResult
)

const (
	minTerminalWidth = 80
	// header, newline, newline, footer
	frameOverhead  = 4
	requestTimeout = 15 * time.Second
)

// API is the subset of the client the TUI calls
type API interface {
	Options(ctx context.Context) (*client.ConfiguratorOptions, error)
	Recommend(ctx context.Context, in client.ConfigurationInput) (*client.ProductRecommendation, error)
}

// optionsLoadedMsg is sent when the wizard options arrive
type optionsLoadedMsg struct {
	options *client.ConfiguratorOptions
	err     error
}

// recommendedMsg is sent when the backend returns a recommendation
type recommendedMsg struct {
	rec *client.ProductRecommendation
	err error
}

// App is the root model for the TUI
type App struct {
	api     API
	screen  Screen
	width   int
	height  int
	err     error
	spinner spinner.Model

	options *client.ConfiguratorOptions
	input   client.ConfigurationInput

	// Child models
	wizardScreen *wizard.Wizard
	resultScreen *result.Result
}

// New creates a new TUI application
func New(api API) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return &App{
		api:     api,
		screen:  ScreenLoading,
		spinner: s,
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.loadOptions())
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.resultScreen != nil {
			a.resultScreen.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.wizardScreen != nil {
			a.wizardScreen.SetWidth(a.contentWidth())
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenResult:
			return a.updateResult(msg)
		default:
			if msg.String() == "q" {
				return a, tea.Quit
			}
			if msg.String() == "r" && a.err != nil {
				return a, a.restart()
			}
		}
		return a, nil

	case spinner.TickMsg:
		if a.screen != ScreenLoading && a.screen != ScreenRecommending {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case optionsLoadedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.options = msg.options
		return a, a.startWizard()

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		a.input = msg.Input
		a.screen = ScreenRecommending
		return a, tea.Batch(a.spinner.Tick, a.recommend(msg.Input))

	case wizard.WizardCancelledMsg:
		return a, tea.Quit

	case recommendedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.resultScreen = result.New(msg.rec, a.contentWidth(), a.contentHeight())
		a.screen = ScreenResult
		return a, nil

	default:
		// huh forms emit their own internal messages
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
	}

	return a, nil
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		return a, a.restart()
	}
	if a.resultScreen == nil {
		return a, nil
	}
	model, cmd := a.resultScreen.Update(msg)
	a.resultScreen = model.(*result.Result)
	return a, cmd
}

// restart clears the previous answer and starts the wizard again
func (a *App) restart() tea.Cmd {
	a.err = nil
	a.resultScreen = nil
	if a.options == nil {
		a.screen = ScreenLoading
		return tea.Batch(a.spinner.Tick, a.loadOptions())
	}
	return a.startWizard()
}

func (a *App) startWizard() tea.Cmd {
	a.wizardScreen = wizard.New(a.options)
	a.wizardScreen.SetWidth(a.contentWidth())
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// loadOptions creates a command to fetch the wizard options
func (a *App) loadOptions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		opts, err := a.api.Options(ctx)
		return optionsLoadedMsg{options: opts, err: err}
	}
}

// recommend creates a command to fetch a recommendation
func (a *App) recommend(input client.ConfigurationInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		rec, err := a.api.Recommend(ctx, input)
		return recommendedMsg{rec: rec, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch {
	case a.err != nil:
		content = a.viewError()
	case a.screen == ScreenLoading:
		content = a.viewSpinner("Loading configurator options...")
	case a.screen == ScreenRecommending:
		content = a.viewSpinner("Building your product stack...")
	case a.screen == ScreenWizard && a.wizardScreen != nil:
		content = a.wizardScreen.View()
	case a.screen == ScreenResult && a.resultScreen != nil:
		content = a.resultScreen.View()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewSpinner(label string) string {
	return styles.Panel.Render(a.spinner.View() + " " + label)
}

func (a *App) viewError() string {
	return styles.Panel.Render(
		styles.StatusCritical.Render(icons.Critical.String()+" Error: "+a.err.Error()) + "\n" +
			styles.Help.Render("Press r to retry or q to quit."))
}

// frameWidth is the rendered width of the header and footer
func (a *App) frameWidth() int {
	return max(a.width-1, minTerminalWidth)
}

// contentWidth is the width available to child screens
func (a *App) contentWidth() int {
	return a.frameWidth() - 1
}

// contentHeight is the height available to child screens
func (a *App) contentHeight() int {
	return max(a.height-frameOverhead, 5)
}

// renderHeader creates the header bar with app branding and context
func (a *App) renderHeader() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := fmt.Sprintf(" %s %s ", icons.App.String(), titleStyle.Render("Terra Configurator"))

	rightText := ""
	if a.screen == ScreenResult || a.screen == ScreenRecommending {
		rightText = " " + contextStyle.Render(fmt.Sprintf("%s / %s / %s",
			a.input.FacilityType, a.input.ThreatLevel, a.input.CoverageArea)) + " "
	}

	// "╭─" and "─╮" take four columns
	fill := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText))
	return borderStyle.Render("╭─" + leftText + strings.Repeat("─", fill) + rightText + "─╮")
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.frameWidth()

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch {
	case a.err != nil:
		shortcuts = []string{"r Retry", "q Quit"}
	case a.screen == ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case a.screen == ScreenResult:
		shortcuts = []string{"↑↓ Scroll", "r Restart", "q Quit"}
	default:
		shortcuts = []string{"q Quit"}
	}

	var styled []string
	for _, s := range shortcuts {
		key, label, _ := strings.Cut(s, " ")
		styled = append(styled, styles.KeyStyle.Render(key)+" "+labelStyle.Render(label))
	}
	leftText := " " + strings.Join(styled, "  ") + " "

	rightText := ""
	if a.screen == ScreenResult && a.resultScreen != nil {
		rightText = " " + labelStyle.Render(fmt.Sprintf("%3.0f%%", a.resultScreen.ScrollPercent()*100)) + " "
	}

	// "╰─" and "─╯" take four columns
	fill := max(0, width-4-lipgloss.Width(leftText)-lipgloss.Width(rightText))
	return borderStyle.Render("╰─" + leftText + strings.Repeat("─", fill) + rightText + "─╯")
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(api API) error {
	p := tea.NewProgram(
		New(api),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
