// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"

	"github.com/Atlas00000/terra-client/backend/models"
)

var (
	useNerdFonts     bool
	nerdFontDetected sync.Once
)

// detectNerdFonts checks if Nerd Fonts should be used
func detectNerdFonts() bool {
	// Explicit override via environment variable
	if env := os.Getenv("TERRA_NERD_FONTS"); env != "" {
		return env == "1" || strings.ToLower(env) == "true"
	}

	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")

	// iTerm2, Alacritty, WezTerm, Kitty typically have Nerd Fonts
	nerdFontTerminals := []string{
		"iTerm.app",
		"alacritty",
		"WezTerm",
		"kitty",
		"ghostty",
	}

	for _, t := range nerdFontTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, strings.ToLower(t)) {
			return true
		}
	}

	if os.Getenv("NERD_FONTS") == "1" {
		return true
	}

	return false
}

// HasNerdFonts returns true if Nerd Fonts are available
func HasNerdFonts() bool {
	nerdFontDetected.Do(func() {
		useNerdFonts = detectNerdFonts()
	})
	return useNerdFonts
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Product families
	Platform = Icon{"󰒋", "▣"} // nf-md-server
	Tower    = Icon{"󰐻", "▲"} // nf-md-radio_tower
	UAV      = Icon{"󰀳", "✈"} // nf-md-airplane
	Ground   = Icon{"󰞫", "■"} // nf-md-car_side

	// Wizard questions
	Facility = Icon{"󰆧", "⌂"} // nf-md-factory
	Threat   = Icon{"󰒃", "⛊"} // nf-md-shield_check
	Coverage = Icon{"󰍎", "◎"} // nf-md-map_marker_radius

	// Status indicators
	CheckOK  = Icon{"", "✓"}  // nf-oct-check_circle
	Warning  = Icon{"", "⚠"}  // nf-oct-alert
	Critical = Icon{"", "✗"}  // nf-oct-x_circle
	Info     = Icon{"", "ℹ"}  // nf-oct-info
	Gauge    = Icon{"󰓅", "◐"} // nf-md-gauge

	// Actions
	Restart = Icon{"󰑓", "↻"} // nf-md-refresh
	Quit    = Icon{"󰗼", "×"} // nf-md-exit_to_app

	// Application
	App = Icon{"󰒃", "◈"} // nf-md-shield_check
)

// ForProduct returns the icon for a catalogued product
func ForProduct(name models.ProductName) Icon {
	switch name {
	case models.ProductArtemisOS:
		return Platform
	case models.ProductKallon:
		return Tower
	case models.ProductArcher, models.ProductIroko:
		return UAV
	case models.ProductDuma:
		return Ground
	default:
		return Info
	}
}
