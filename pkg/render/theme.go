package render

import "github.com/charmbracelet/lipgloss"

// Theme defines colors and icons for terminal rendering.
type Theme struct {
	Name    string
	Heading lipgloss.Style
	Note    lipgloss.Style
	Step    lipgloss.Style
	Result  lipgloss.Style
	Muted   lipgloss.Style
	Icons   ThemeIcons
}

// ThemeIcons defines the icon set for a theme.
type ThemeIcons struct {
	Note   string
	Step   string
	Result string
	Rule   string
}

// DefaultTheme returns a vibrant color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),  // blue
		Note:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),            // gray
		Step:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),            // orange
		Result:  lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),  // green
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Icons: ThemeIcons{
			Note:   "·",
			Step:   "→",
			Result: "✓",
			Rule:   "─",
		},
	}
}

// OrcaTheme returns a muted, professional theme.
func OrcaTheme() Theme {
	return Theme{
		Name:    "orca",
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),  // pale blue
		Note:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),            // lighter gray
		Step:    lipgloss.NewStyle().Foreground(lipgloss.Color("179")),            // muted gold
		Result:  lipgloss.NewStyle().Foreground(lipgloss.Color("108")),            // sage green
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Icons: ThemeIcons{
			Note:   "·",
			Step:   "›",
			Result: "✓",
			Rule:   "─",
		},
	}
}

// MonoTheme returns a monochrome theme (no colors).
func MonoTheme() Theme {
	return Theme{
		Name:    "mono",
		Heading: lipgloss.NewStyle().Bold(true),
		Note:    lipgloss.NewStyle(),
		Step:    lipgloss.NewStyle(),
		Result:  lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Icons: ThemeIcons{
			Note:   "-",
			Step:   ">",
			Result: "*",
			Rule:   "-",
		},
	}
}

// ThemeByName returns a theme by name, defaulting to DefaultTheme.
func ThemeByName(name string) Theme {
	switch name {
	case "orca":
		return OrcaTheme()
	case "mono":
		return MonoTheme()
	default:
		return DefaultTheme()
	}
}
