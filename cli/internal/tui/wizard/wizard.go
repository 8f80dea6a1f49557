// ABOUTME: Configuration wizard as a bubbletea model
// ABOUTME: Asks facility, threat, and coverage with huh selects and a step progress box

package wizard

import (
	"fmt"
	"strings"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/Atlas00000/terra-client/cli/internal/tui/icons"
	"github.com/Atlas00000/terra-client/cli/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// WizardCompleteMsg is sent when all three questions are answered
type WizardCompleteMsg struct {
	Input client.ConfigurationInput
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard walks the user through the three configuration questions
type Wizard struct {
	options client.ConfiguratorOptions
	form    *huh.Form
	step    int
	width   int

	// Form field values (strings for huh)
	facility string
	threat   string
	coverage string
}

// question describes one wizard step
type question struct {
	name        string
	title       string
	description string
	icon        icons.Icon
}

var questions = []question{
	{"Facility", "What are you protecting?", "Pick the site archetype closest to yours", icons.Facility},
	{"Threat", "What is the main concern?", "The threat drives how many units are needed", icons.Threat},
	{"Coverage", "How much ground must be covered?", "Approximate radius around the site", icons.Coverage},
}

// createTheme returns a huh theme built from the shared palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	white := lipgloss.Color("#FFFFFF")
	grayLight := lipgloss.Color("#E5E7EB")

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Primary)
	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Accent).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Danger).
		SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.Option = lipgloss.NewStyle().
		Foreground(grayLight)
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(white).
		Background(styles.Info).
		Padding(0, 2).
		MarginRight(1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(styles.Muted).
		Background(styles.Surface).
		Padding(0, 2).
		MarginRight(1)

	t.Blurred = t.Focused
	t.Blurred.Base = lipgloss.NewStyle().
		PaddingLeft(1).
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true)
	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Blurred.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Muted).
		SetString("  ")
	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Muted)

	return t
}

// New creates a wizard over the backend's option lists.
// A nil options value falls back to the built-in catalog.
func New(options *client.ConfiguratorOptions) *Wizard {
	opts := models.BuildOptions()
	if options != nil && len(options.FacilityTypes) > 0 && len(options.ThreatLevels) > 0 && len(options.CoverageAreas) > 0 {
		opts = *options
	}

	w := &Wizard{
		options:  opts,
		step:     1,
		facility: opts.FacilityTypes[0].Value,
		threat:   opts.ThreatLevels[0].Value,
		coverage: opts.CoverageAreas[0].Value,
	}
	w.form = w.createForm()
	return w
}

// huhOptions converts option lists into huh select options
func huhOptions(opts []models.Option) []huh.Option[string] {
	out := make([]huh.Option[string], 0, len(opts))
	for _, o := range opts {
		label := o.Label
		if label == "" {
			label = o.Value
		}
		out = append(out, huh.NewOption(label, o.Value))
	}
	return out
}

// current returns the option list and bound value for the active step
func (w *Wizard) current() ([]models.Option, *string) {
	switch w.step {
	case 1:
		return w.options.FacilityTypes, &w.facility
	case 2:
		return w.options.ThreatLevels, &w.threat
	default:
		return w.options.CoverageAreas, &w.coverage
	}
}

func (w *Wizard) createForm() *huh.Form {
	q := questions[w.step-1]
	opts, value := w.current()

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(q.title).
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(huhOptions(opts)...).
				Value(value),
			huh.NewNote().
				DescriptionFunc(func() string { return describe(opts, *value) }, value),
		).Title(fmt.Sprintf("Step %d: %s %s", w.step, q.icon.String(), q.name)).
			Description(q.description),
	).WithTheme(createTheme())
}

// describe returns the description of the highlighted option
func describe(opts []models.Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Description
		}
	}
	return ""
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	if w.step < len(questions) {
		w.step++
		w.form = w.createForm()
		return w, w.form.Init()
	}

	input := w.Input()
	return w, func() tea.Msg {
		return WizardCompleteMsg{Input: input}
	}
}

// Input returns the answers collected so far
func (w *Wizard) Input() client.ConfigurationInput {
	return client.ConfigurationInput{
		FacilityType: models.FacilityType(w.facility),
		ThreatLevel:  models.ThreatLevel(w.threat),
		CoverageArea: models.CoverageArea(w.coverage),
	}
}

// Step returns the 1-based index of the active question
func (w *Wizard) Step() int {
	return w.step
}

// SetWidth sets the wizard width for proper rendering
func (w *Wizard) SetWidth(width int) {
	w.width = width
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress renders the step progress indicator
func (w *Wizard) renderProgress() string {
	width := w.width - 1
	if width < 60 {
		width = 60
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary)

	var steps []string
	for i, q := range questions {
		stepNum := i + 1
		var indicator string
		var nameStyle lipgloss.Style

		switch {
		case stepNum < w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Secondary).Render(icons.CheckOK.String())
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		case stepNum == w.step:
			indicator = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Render("●")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
		default:
			indicator = lipgloss.NewStyle().Foreground(styles.Muted).Render("○")
			nameStyle = lipgloss.NewStyle().Foreground(styles.Muted)
		}

		steps = append(steps, fmt.Sprintf("%s %s", indicator, nameStyle.Render(q.name)))
	}
	stepsLine := strings.Join(steps, "    ")

	// "│  " + bar + " │"
	barWidth := width - 5
	filledWidth := (w.step * barWidth) / len(questions)
	progressBar := lipgloss.NewStyle().Foreground(styles.Primary).Render(strings.Repeat("━", filledWidth)) +
		lipgloss.NewStyle().Foreground(styles.Surface).Render(strings.Repeat("─", barWidth-filledWidth))

	title := "Configuration"
	topBorder := "┌─ " + titleStyle.Render(title) + " " + strings.Repeat("─", max(0, width-5-lipgloss.Width(title))) + "┐"
	stepsLinePadded := "│ " + stepsLine + strings.Repeat(" ", max(0, width-4-lipgloss.Width(stepsLine))) + " │"
	progressLinePadded := "│  " + progressBar + " │"
	bottomBorder := "└" + strings.Repeat("─", width-2) + "┘"

	return borderStyle.Render(strings.Join([]string{
		topBorder,
		stepsLinePadded,
		progressLinePadded,
		bottomBorder,
	}, "\n"))
}
