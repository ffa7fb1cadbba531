// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color variables, overridable via ApplyTheme.
var (
	HighlightColor = lipgloss.AdaptiveColor{Light: "#AD58B4", Dark: "#AD58B4"}
	SubtleColor    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	ErrorColor     = lipgloss.AdaptiveColor{Light: "#E95678", Dark: "#E95678"}
	SuccessColor   = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#73F59F"}
)

// Shared styles, rebuilt whenever the theme changes.
var (
	Title         lipgloss.Style
	SectionLabel  lipgloss.Style
	Hint          lipgloss.Style
	FieldError    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	TableHeader   lipgloss.Style
	TableRankCell lipgloss.Style
	EmptyState    lipgloss.Style
	PaneBorder    lipgloss.Style
	FocusedBorder lipgloss.Style
	HelpBar       lipgloss.Style
)

func init() {
	rebuildStyles()
}

func rebuildStyles() {
	Title = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	SectionLabel = lipgloss.NewStyle().Bold(true)
	Hint = lipgloss.NewStyle().Foreground(SubtleColor)
	FieldError = lipgloss.NewStyle().Foreground(ErrorColor)
	StatusInfo = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusError = lipgloss.NewStyle().Foreground(ErrorColor).Bold(true)
	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(SubtleColor)
	TableRankCell = lipgloss.NewStyle().Foreground(HighlightColor)
	EmptyState = lipgloss.NewStyle().Foreground(SubtleColor).Italic(true)
	PaneBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(SubtleColor)
	FocusedBorder = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(HighlightColor)
	HelpBar = lipgloss.NewStyle().Foreground(SubtleColor)
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ApplyTheme overrides the color variables and rebuilds all styles. Empty
// values keep the current color.
func ApplyTheme(highlight, subtle, errColor, success string) error {
	assign := func(target *lipgloss.AdaptiveColor, name, hex string) error {
		if hex == "" {
			return nil
		}
		if !hexColorPattern.MatchString(hex) {
			return fmt.Errorf("invalid hex color for %s: %s", name, hex)
		}
		*target = lipgloss.AdaptiveColor{Light: hex, Dark: hex}
		return nil
	}

	if err := assign(&HighlightColor, "highlight", highlight); err != nil {
		return err
	}
	if err := assign(&SubtleColor, "subtle", subtle); err != nil {
		return err
	}
	if err := assign(&ErrorColor, "error", errColor); err != nil {
		return err
	}
	if err := assign(&SuccessColor, "success", success); err != nil {
		return err
	}

	rebuildStyles()
	return nil
}

// PadCell pads or truncates s to exactly width terminal columns, accounting
// for wide runes in non-ASCII names.
func PadCell(s string, width int) string {
	if width < 1 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
