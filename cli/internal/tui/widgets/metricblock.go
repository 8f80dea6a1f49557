// ABOUTME: Compact metric block widget for result displays
// ABOUTME: Combines icon, value, score bar, and details in a bordered panel

package widgets

import (
	"fmt"
	"strings"

	"github.com/Atlas00000/terra-client/cli/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
)

// MetricBlockConfig holds configuration for a metric block
type MetricBlockConfig struct {
	Width       int
	BorderColor lipgloss.Color
	TitleColor  lipgloss.Color
	ValueColor  lipgloss.Color
}

// DefaultMetricBlockConfig returns sensible defaults
func DefaultMetricBlockConfig() MetricBlockConfig {
	return MetricBlockConfig{
		Width:       22,
		BorderColor: lipgloss.Color("#6B7280"), // Muted gray
		TitleColor:  lipgloss.Color("#06B6D4"), // Cyan
		ValueColor:  lipgloss.Color("#F9FAFB"), // Light
	}
}

// padLine pads styled content to the inner width using its display width
func padLine(content string, innerWidth int) string {
	return "│  " + content + strings.Repeat(" ", max(0, innerWidth-lipgloss.Width(content))) + "│"
}

func topBorder(icon icons.Icon, title string, innerWidth int, titleColor lipgloss.Color) string {
	titleStr := truncate(fmt.Sprintf("%s %s", icon.String(), title), innerWidth-1)
	fill := max(0, innerWidth-lipgloss.Width(titleStr)-1)
	return "┌─ " + lipgloss.NewStyle().Foreground(titleColor).Render(titleStr) + " " + strings.Repeat("─", fill) + "┐"
}

// MetricBlock renders a compact metric display block
func MetricBlock(icon icons.Icon, title string, value string, subtitle string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 22
	}
	innerWidth := config.Width - 4

	valueStyle := lipgloss.NewStyle().Foreground(config.ValueColor).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder(icon, title, innerWidth, config.TitleColor)),
		borderStyle.Render(padLine(valueStyle.Render(truncate(value, innerWidth)), innerWidth)),
		borderStyle.Render(padLine(subtitleStyle.Render(truncate(subtitle, innerWidth)), innerWidth)),
		borderStyle.Render("└" + strings.Repeat("─", config.Width-2) + "┘"),
	}, "\n")
}

// ScoreBlock renders a metric block for a 0-100 sub-score with a compact bar
func ScoreBlock(icon icons.Icon, title string, score int, details string, config MetricBlockConfig) string {
	if config.Width <= 0 {
		config.Width = 22
	}
	innerWidth := config.Width - 4
	barWidth := max(1, innerWidth-1)

	bars := DefaultScoreBarConfig()
	color := bars.zoneColor(float64(score))
	level := StatusFromScore(score)

	valueLine := lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%3d", score)) +
		" " + StatusIcon(level)
	bar := CompactBar(float64(score), barWidth, color)
	detailStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	borderStyle := lipgloss.NewStyle().Foreground(config.BorderColor)

	return strings.Join([]string{
		borderStyle.Render(topBorder(icon, title, innerWidth, config.TitleColor)),
		borderStyle.Render(padLine(valueLine, innerWidth)),
		borderStyle.Render(padLine(bar, innerWidth)),
		borderStyle.Render(padLine(detailStyle.Render(truncate(details, innerWidth)), innerWidth)),
		borderStyle.Render("└" + strings.Repeat("─", config.Width-2) + "┘"),
	}, "\n")
}

// truncate shortens a string to maxLen runes with ellipsis if needed
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
