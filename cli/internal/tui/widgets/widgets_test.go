// ABOUTME: Tests for badge, score bar, and metric block widgets
// ABOUTME: Verifies status mapping and rendered widths

package widgets

import (
	"strings"
	"testing"

	"github.com/Atlas00000/terra-client/backend/models"
	"github.com/Atlas00000/terra-client/cli/internal/tui/icons"
	"github.com/charmbracelet/lipgloss"
)

func TestStatusFromScore(t *testing.T) {
	tests := []struct {
		score int
		want  StatusLevel
	}{
		{100, StatusOK},
		{80, StatusOK},
		{79, StatusWarning},
		{60, StatusWarning},
		{59, StatusCritical},
		{0, StatusCritical},
	}

	for _, tt := range tests {
		if got := StatusFromScore(tt.score); got != tt.want {
			t.Errorf("StatusFromScore(%d): expected %d, got %d", tt.score, tt.want, got)
		}
	}
}

func TestStatusFromConfidence(t *testing.T) {
	tests := []struct {
		confidence models.Confidence
		want       StatusLevel
	}{
		{models.ConfidenceHigh, StatusOK},
		{models.ConfidenceMedium, StatusWarning},
		{models.ConfidenceLow, StatusCritical},
		{"", StatusNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.confidence), func(t *testing.T) {
			if got := StatusFromConfidence(tt.confidence); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestConfidenceBadge(t *testing.T) {
	if got := ConfidenceBadge(models.ConfidenceMedium); !strings.Contains(got, "MEDIUM") {
		t.Errorf("expected MEDIUM in badge, got %q", got)
	}
	if got := ConfidenceBadge(""); !strings.Contains(got, "--") {
		t.Errorf("expected placeholder badge, got %q", got)
	}
}

func TestValidityBadge(t *testing.T) {
	tests := []struct {
		name string
		v    *models.ValidationResult
		want string
	}{
		{"nil", nil, "UNCHECKED"},
		{"invalid", &models.ValidationResult{IsValid: false, Errors: []string{"x"}}, "INVALID"},
		{"warnings", &models.ValidationResult{IsValid: true, Warnings: []string{"a", "b"}}, "2 WARN"},
		{"clean", &models.ValidationResult{IsValid: true}, "VALID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidityBadge(tt.v); !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in badge, got %q", tt.want, got)
			}
		})
	}
}

func TestScoreBar_Width(t *testing.T) {
	config := DefaultScoreBarConfig()
	config.Width = 30

	for _, score := range []float64{-10, 0, 45, 89, 100, 150} {
		bar := ScoreBar(score, config)
		// Brackets add two columns
		if w := lipgloss.Width(bar); w != config.Width+2 {
			t.Errorf("score %.0f: expected width %d, got %d", score, config.Width+2, w)
		}
	}
}

func TestScoreBar_FillCount(t *testing.T) {
	config := DefaultScoreBarConfig()
	config.Width = 10
	config.ShowZones = false

	bar := ScoreBar(50, config)
	if got := strings.Count(bar, "█"); got != 5 {
		t.Errorf("expected 5 filled cells, got %d", got)
	}
}

func TestScoreBarWithLabel(t *testing.T) {
	config := DefaultScoreBarConfig()

	tests := []struct {
		score float64
		icon  string
	}{
		{92, "✓"},
		{70, "⚠"},
		{30, "✗"},
	}

	for _, tt := range tests {
		got := ScoreBarWithLabel(tt.score, config, true)
		if !strings.Contains(got, tt.icon) {
			t.Errorf("score %.0f: expected %s in label, got %q", tt.score, tt.icon, got)
		}
	}

	if got := ScoreBarWithLabel(50, config, false); strings.Contains(got, " 50") {
		t.Errorf("expected no numeric label, got %q", got)
	}
}

func TestScoreBlock_LinesShareWidth(t *testing.T) {
	config := DefaultMetricBlockConfig()
	config.Width = 26

	block := ScoreBlock(icons.Gauge, "Coverage", 85, "ranges overlap well", config)
	lines := strings.Split(block, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != config.Width {
			t.Errorf("line %d: expected width %d, got %d (%q)", i, config.Width, w, line)
		}
	}
}

func TestMetricBlock_TruncatesLongValues(t *testing.T) {
	config := DefaultMetricBlockConfig()

	block := MetricBlock(icons.Tower, "Kallon", strings.Repeat("9", 50), "units", config)
	for i, line := range strings.Split(block, "\n") {
		if w := lipgloss.Width(line); w != config.Width {
			t.Errorf("line %d: expected width %d, got %d", i, config.Width, w)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("expected short, got %s", got)
	}
	if got := truncate("a very long string", 10); got != "a very ..." {
		t.Errorf("expected 'a very ...', got %q", got)
	}
}
