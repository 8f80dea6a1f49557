// ABOUTME: Status badge widgets for quick visual status indication
// ABOUTME: Provides colored inline badges for confidence, validity, and scores

package widgets

import (
	"fmt"
	"strings"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
)

// StatusLevel represents the severity of a status
type StatusLevel int

const (
	StatusOK StatusLevel = iota
	StatusWarning
	StatusCritical
	StatusInfo
	StatusNeutral
)

// Badge colors
var (
	BadgeOKBg      = lipgloss.Color("#10B981")
	BadgeOKFg      = lipgloss.Color("#FFFFFF")
	BadgeWarnBg    = lipgloss.Color("#F59E0B")
	BadgeWarnFg    = lipgloss.Color("#000000")
	BadgeCritBg    = lipgloss.Color("#EF4444")
	BadgeCritFg    = lipgloss.Color("#FFFFFF")
	BadgeInfoBg    = lipgloss.Color("#3B82F6")
	BadgeInfoFg    = lipgloss.Color("#FFFFFF")
	BadgeNeutralBg = lipgloss.Color("#6B7280")
	BadgeNeutralFg = lipgloss.Color("#FFFFFF")
)

func levelColors(level StatusLevel) (bg, fg lipgloss.Color) {
	switch level {
	case StatusOK:
		return BadgeOKBg, BadgeOKFg
	case StatusWarning:
		return BadgeWarnBg, BadgeWarnFg
	case StatusCritical:
		return BadgeCritBg, BadgeCritFg
	case StatusInfo:
		return BadgeInfoBg, BadgeInfoFg
	default:
		return BadgeNeutralBg, BadgeNeutralFg
	}
}

// Badge renders a colored status badge
func Badge(text string, level StatusLevel) string {
	bg, fg := levelColors(level)

	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(fg).
		Padding(0, 1).
		Bold(true)

	return style.Render(text)
}

// StatusFromScore returns the status level for a 0-100 score
func StatusFromScore(score int) StatusLevel {
	if score >= 80 {
		return StatusOK
	}
	if score >= 60 {
		return StatusWarning
	}
	return StatusCritical
}

// StatusFromConfidence maps a confidence tier onto a status level
func StatusFromConfidence(c models.Confidence) StatusLevel {
	switch c {
	case models.ConfidenceHigh:
		return StatusOK
	case models.ConfidenceMedium:
		return StatusWarning
	case models.ConfidenceLow:
		return StatusCritical
	default:
		return StatusNeutral
	}
}

// ConfidenceBadge renders a confidence tier as an uppercase badge
func ConfidenceBadge(c models.Confidence) string {
	if c == "" {
		return Badge("--", StatusNeutral)
	}
	return Badge(strings.ToUpper(string(c)), StatusFromConfidence(c))
}

// ValidityBadge renders VALID or INVALID
func ValidityBadge(v *models.ValidationResult) string {
	switch {
	case v == nil:
		return Badge("UNCHECKED", StatusNeutral)
	case !v.IsValid:
		return Badge("INVALID", StatusCritical)
	case len(v.Warnings) > 0:
		return Badge(fmt.Sprintf("VALID · %d WARN", len(v.Warnings)), StatusWarning)
	default:
		return Badge("VALID", StatusOK)
	}
}

// StatusIcon returns the appropriate icon for a status level
func StatusIcon(level StatusLevel) string {
	bg, _ := levelColors(level)
	style := lipgloss.NewStyle().Foreground(bg)

	switch level {
	case StatusOK:
		return style.Render(icons.CheckOK.String())
	case StatusWarning:
		return style.Render(icons.Warning.String())
	case StatusCritical:
		return style.Render(icons.Critical.String())
	case StatusInfo:
		return style.Render(icons.Info.String())
	default:
		return style.Render("•")
	}
}

// StatusText returns styled status text with icon
func StatusText(text string, level StatusLevel) string {
	bg, _ := levelColors(level)
	textStyle := lipgloss.NewStyle().Foreground(bg)
	return fmt.Sprintf("%s %s", StatusIcon(level), textStyle.Render(text))
}
