package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols for the grid and chrome. Number styles
// follow the classic minesweeper coloring (1 blue, 2 green, 3 red, ...).
type Theme struct {
	Name string

	Title   lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style
	Danger  lipgloss.Style
	Success lipgloss.Style
	Cursor  lipgloss.Style

	Numbers [9]lipgloss.Style

	HiddenSym, FlagSym, MineSym, BlankSym string
	FaceLive, FaceWon, FaceLost           string
}

// themeNames is the cycling order for the theme hotkey.
var themeNames = []string{"classic", "neon", "mono"}

func numberStyles(colors [9]string) [9]lipgloss.Style {
	var out [9]lipgloss.Style
	for i, c := range colors {
		if c == "" {
			out[i] = lipgloss.NewStyle().Faint(true)
			continue
		}
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return out
}

// ThemeByName resolves a theme, falling back to classic for unknown names.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:      "neon",
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Cursor:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Numbers:   numberStyles([9]string{"", "51", "46", "201", "99", "208", "87", "213", "245"}),
			HiddenSym: "◼", FlagSym: "⚑", MineSym: "✸", BlankSym: "·",
			FaceLive: "(•‿•)", FaceWon: "(⌐■_■)", FaceLost: "(x_x)",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:      "mono",
			Title:     plain,
			Accent:    plain,
			Muted:     plain,
			Danger:    plain,
			Success:   plain,
			Cursor:    lipgloss.NewStyle().Reverse(true),
			Numbers:   numberStyles([9]string{}),
			HiddenSym: "#", FlagSym: "F", MineSym: "*", BlankSym: ".",
			FaceLive: ":|", FaceWon: ":)", FaceLost: ":(",
		}
	default:
		return Theme{
			Name:      "classic",
			Title:     lipgloss.NewStyle().Bold(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Muted:     lipgloss.NewStyle().Faint(true),
			Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Cursor:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Numbers:   numberStyles([9]string{"", "12", "2", "9", "4", "1", "6", "5", "8"}),
			HiddenSym: "■", FlagSym: "⚑", MineSym: "✸", BlankSym: "·",
			FaceLive: "🙂", FaceWon: "😎", FaceLost: "😵",
		}
	}
}

// NextTheme returns the theme after name in the cycling order.
func NextTheme(name string) Theme {
	for i, n := range themeNames {
		if n == strings.ToLower(name) {
			return ThemeByName(themeNames[(i+1)%len(themeNames)])
		}
	}
	return ThemeByName(themeNames[0])
}
