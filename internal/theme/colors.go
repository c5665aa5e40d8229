package theme

import "github.com/charmbracelet/lipgloss"

// AdaptiveColor picks a light- or dark-background variant at render time.
// The Apply function in this package can force one side via the
// appearance setting.
type AdaptiveColor = lipgloss.AdaptiveColor

// Brand colors
var (
	ColorPrimary   = AdaptiveColor{Light: "55", Dark: "99"}  // Purple - title
	ColorSecondary = AdaptiveColor{Light: "30", Dark: "86"}  // Cyan - subtitles
)

// Session state colors
var (
	ColorCompleted  = AdaptiveColor{Light: "28", Dark: "2"} // Green - ended sessions
	ColorInProgress = AdaptiveColor{Light: "130", Dark: "3"} // Yellow - running sessions
)

// UI semantic colors
var (
	ColorError     = AdaptiveColor{Light: "160", Dark: "196"} // Bright red
	ColorHighlight = AdaptiveColor{Light: "235", Dark: "255"} // Emphasis
	ColorMuted     = AdaptiveColor{Light: "245", Dark: "241"} // Secondary text
	ColorNormal    = AdaptiveColor{Light: "236", Dark: "250"} // Default text
	ColorSelected  = AdaptiveColor{Light: "55", Dark: "212"}  // Multi-select marker
	ColorSubtle    = AdaptiveColor{Light: "243", Dark: "245"} // Labels
	ColorVersion   = AdaptiveColor{Light: "247", Dark: "240"} // Dark gray
)

// Session state symbols (Unicode)
const (
	SymbolCompleted  = "○"
	SymbolInProgress = "●"
	SymbolSelected   = "✓"
)

// Apply forces the light or dark side of every adaptive color, or leaves
// background detection alone for "auto".
func Apply(appearance string) {
	switch appearance {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}
