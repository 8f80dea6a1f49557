// ABOUTME: Score bar with visual quality zones
// ABOUTME: Shows red/amber/green regions for 0-100 recommendation scores

package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ScoreBarConfig holds configuration for the score bar
type ScoreBarConfig struct {
	Width         int
	FairThreshold float64 // Score where the amber zone starts (default 60)
	GoodThreshold float64 // Score where the green zone starts (default 80)
	GoodColor     lipgloss.Color
	FairColor     lipgloss.Color
	PoorColor     lipgloss.Color
	EmptyColor    lipgloss.Color
	ShowZones     bool // Show threshold markers in the bar
}

// DefaultScoreBarConfig returns sensible defaults
func DefaultScoreBarConfig() ScoreBarConfig {
	return ScoreBarConfig{
		Width:         20,
		FairThreshold: 60,
		GoodThreshold: 80,
		GoodColor:     lipgloss.Color("#10B981"), // Green
		FairColor:     lipgloss.Color("#F59E0B"), // Amber
		PoorColor:     lipgloss.Color("#EF4444"), // Red
		EmptyColor:    lipgloss.Color("#374151"), // Dark gray
		ShowZones:     true,
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// zoneColor returns the color for the zone the score falls in
func (c ScoreBarConfig) zoneColor(score float64) lipgloss.Color {
	switch {
	case score >= c.GoodThreshold:
		return c.GoodColor
	case score >= c.FairThreshold:
		return c.FairColor
	default:
		return c.PoorColor
	}
}

// ScoreBar renders a bar whose fill is colored by the zone the score lands in
func ScoreBar(score float64, config ScoreBarConfig) string {
	if config.Width <= 0 {
		config.Width = 20
	}
	score = clampScore(score)

	filled := int(score / 100.0 * float64(config.Width))
	fairPos := int(config.FairThreshold / 100.0 * float64(config.Width))
	goodPos := int(config.GoodThreshold / 100.0 * float64(config.Width))

	fillStyle := lipgloss.NewStyle().Foreground(config.zoneColor(score))
	emptyStyle := lipgloss.NewStyle().Foreground(config.EmptyColor)

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < config.Width; i++ {
		switch {
		case i < filled:
			bar.WriteString(fillStyle.Render("█"))
		case config.ShowZones && (i == fairPos || i == goodPos):
			bar.WriteString(emptyStyle.Render("│"))
		default:
			bar.WriteString(emptyStyle.Render("░"))
		}
	}
	bar.WriteString("]")
	return bar.String()
}

// ScoreBarWithLabel renders a score bar followed by the numeric score and a status icon
func ScoreBarWithLabel(score float64, config ScoreBarConfig, showScore bool) string {
	bar := ScoreBar(score, config)
	if !showScore {
		return bar
	}

	score = clampScore(score)
	color := config.zoneColor(score)

	statusIcon := "✗"
	if score >= config.GoodThreshold {
		statusIcon = "✓"
	} else if score >= config.FairThreshold {
		statusIcon = "⚠"
	}

	style := lipgloss.NewStyle().Foreground(color)
	return fmt.Sprintf("%s %s %s", bar, style.Render(fmt.Sprintf("%3.0f", score)), style.Render(statusIcon))
}

// CompactBar renders a minimal proportional bar for tight spaces
func CompactBar(percent float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		width = 10
	}
	percent = clampScore(percent)

	filled := int(percent / 100.0 * float64(width))
	empty := width - filled

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("▓", filled)) +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")).Render(strings.Repeat("░", empty))
}
