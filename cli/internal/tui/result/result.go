// ABOUTME: Recommendation result view as a scrollable bubbletea model
// ABOUTME: Renders the product stack, scores, validation, and explanation

package result

import (
	"fmt"
	"strings"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/client"
	"github.com/Atlas00000/terra-client/cli/internal/tui/icons"
	"github.com/Atlas00000/terra-client/cli/internal/tui/styles"
	"github.com/Atlas00000/terra-client/cli/internal/tui/widgets"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const minWidth = 60

var muted = lipgloss.NewStyle().Foreground(styles.Muted)

// Result shows one recommendation
type Result struct {
	rec      *client.ProductRecommendation
	viewport viewport.Model
	width    int
}

// New creates a result view sized to width x height
func New(rec *client.ProductRecommendation, width, height int) *Result {
	r := &Result{rec: rec}
	r.viewport = viewport.New(max(width, minWidth), max(height, 5))
	r.SetSize(width, height)
	return r
}

// SetSize resizes the view and re-renders its content
func (r *Result) SetSize(width, height int) {
	r.width = max(width, minWidth)
	r.viewport.Width = r.width
	r.viewport.Height = max(height, 5)
	r.viewport.SetContent(Render(r.rec, r.width))
}

// Recommendation returns the displayed recommendation
func (r *Result) Recommendation() *client.ProductRecommendation {
	return r.rec
}

// Init implements tea.Model
func (r *Result) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model; scrolling keys go to the viewport
func (r *Result) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	r.viewport, cmd = r.viewport.Update(msg)
	return r, cmd
}

// View implements tea.Model
func (r *Result) View() string {
	return r.viewport.View()
}

// ScrollPercent reports how far the viewport is scrolled
func (r *Result) ScrollPercent() float64 {
	return r.viewport.ScrollPercent()
}

// Render formats a recommendation at the given width
func Render(rec *client.ProductRecommendation, width int) string {
	if rec == nil {
		return styles.Subtitle.Render("No recommendation yet.")
	}
	width = max(width, minWidth)

	sections := []string{
		renderHeading(rec),
		renderProducts(rec, width),
	}
	if rec.Score != nil {
		sections = append(sections, renderScore(rec, width))
	}
	if rec.Validation != nil {
		if v := renderValidation(rec.Validation); v != "" {
			sections = append(sections, v)
		}
	}
	if rec.Explanation != nil {
		sections = append(sections, renderExplanation(rec.Explanation, width))
	}
	return strings.Join(sections, "\n\n")
}

func renderHeading(rec *client.ProductRecommendation) string {
	title := styles.Title.Render(fmt.Sprintf("%s Recommended stack", icons.App.String()))

	labels := []string{
		labelOr(models.FacilityLabels[rec.FacilityType], string(rec.FacilityType)),
		labelOr(models.ThreatLabels[rec.ThreatLevel], string(rec.ThreatLevel)),
		labelOr(models.CoverageBuckets[rec.CoverageArea].Label, string(rec.CoverageArea)),
	}
	where := styles.ValueStyle.Render(strings.Join(labels, " · ")) +
		muted.Render(fmt.Sprintf("  (%.0f km required)", rec.RequiredCoverageKm))

	line := widgets.ValidityBadge(rec.Validation)
	if rec.Description != "" {
		line += "  " + rec.Description
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, where, line)
}

func labelOr(label, fallback string) string {
	if label == "" {
		return fallback
	}
	return label
}

func renderProducts(rec *client.ProductRecommendation, width int) string {
	var sb strings.Builder
	sb.WriteString(styles.KeyStyle.Render("Products"))
	sb.WriteString("\n")

	most := 0
	for _, p := range rec.Products {
		most = max(most, p.Quantity)
	}

	times := make(map[models.ProductName]string, len(rec.ResponseTimes))
	for _, rt := range rec.ResponseTimes {
		times[rt.Product] = rt.Time
	}

	barWidth := max(8, min(24, width/4))
	for _, p := range rec.Products {
		share := 0.0
		if most > 0 {
			share = float64(p.Quantity) / float64(most) * 100
		}
		line := fmt.Sprintf("%s %-10s %s %3d",
			icons.ForProduct(p.Name).String(),
			p.Name,
			widgets.CompactBar(share, barWidth, styles.Primary),
			p.Quantity)
		if p.Capability != "" {
			line += "  " + muted.Render(p.Capability)
		}
		if t, ok := times[p.Name]; ok {
			line += muted.Render(" · " + t)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "%s %d field units", muted.Render("Total:"), rec.TotalUnits(false))
	return sb.String()
}

func renderScore(rec *client.ProductRecommendation, width int) string {
	s := rec.Score

	bar := widgets.DefaultScoreBarConfig()
	bar.Width = max(10, min(40, width-30))

	overall := fmt.Sprintf("%s %s  %s",
		styles.KeyStyle.Render("Score"),
		widgets.ScoreBarWithLabel(float64(s.Overall), bar, true),
		widgets.ConfidenceBadge(s.Confidence))

	block := widgets.DefaultMetricBlockConfig()
	block.Width = max(18, min(26, (width-3)/4))
	blocks := []string{
		widgets.ScoreBlock(icons.Coverage, "Coverage", s.Coverage, "range vs area", block),
		widgets.ScoreBlock(icons.Threat, "Threat", s.ThreatAlignment, "priority fit", block),
		widgets.ScoreBlock(icons.Gauge, "Redundancy", s.Redundancy, "spare units", block),
		widgets.ScoreBlock(icons.Info, "Cost", s.Cost, "stack size", block),
	}

	var grid string
	if block.Width*4+3 <= width {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, blocks[0], " ", blocks[1], " ", blocks[2], " ", blocks[3])
	} else {
		top := lipgloss.JoinHorizontal(lipgloss.Top, blocks[0], " ", blocks[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, blocks[2], " ", blocks[3])
		grid = lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}
	return lipgloss.JoinVertical(lipgloss.Left, overall, "", grid)
}

func renderValidation(v *models.ValidationResult) string {
	var lines []string
	for _, e := range v.Errors {
		lines = append(lines, widgets.StatusText(e, widgets.StatusCritical))
	}
	for _, w := range v.Warnings {
		lines = append(lines, widgets.StatusText(w, widgets.StatusWarning))
	}
	return strings.Join(lines, "\n")
}

func renderExplanation(e *models.Explanation, width int) string {
	wrap := lipgloss.NewStyle().Width(width - 4)

	var sb strings.Builder
	sb.WriteString(styles.KeyStyle.Render("Why this stack"))
	sb.WriteString("  ")
	sb.WriteString(widgets.ConfidenceBadge(e.Confidence))
	sb.WriteString("\n")

	for _, p := range e.Products {
		fmt.Fprintf(&sb, "%s %s x%d\n", icons.ForProduct(p.Product).String(), styles.ValueStyle.Render(string(p.Product)), p.Quantity)
		for _, reason := range p.Reasoning {
			sb.WriteString(wrap.Render("  - " + reason))
			sb.WriteString("\n")
		}
	}

	for _, gap := range e.CoverageGaps {
		sb.WriteString(widgets.StatusText(gap, widgets.StatusInfo))
		sb.WriteString("\n")
	}

	if e.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(wrap.Render(e.Summary))
	}
	return strings.TrimRight(sb.String(), "\n")
}
