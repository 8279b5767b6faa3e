package theme

import "github.com/charmbracelet/lipgloss"

// Palette lists the colours a mode is built from.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Border  lipgloss.Color
	Surface lipgloss.Color
}

var (
	lightPalette = Palette{
		Primary: lipgloss.Color("25"),  // Blue
		Accent:  lipgloss.Color("161"), // Magenta
		Text:    lipgloss.Color("235"), // Near black
		Muted:   lipgloss.Color("243"), // Gray
		Error:   lipgloss.Color("160"), // Red
		Border:  lipgloss.Color("250"), // Light gray
		Surface: lipgloss.Color("255"), // White
	}

	darkPalette = Palette{
		Primary: lipgloss.Color("99"),  // Purple
		Accent:  lipgloss.Color("212"), // Pink
		Text:    lipgloss.Color("252"), // Light gray
		Muted:   lipgloss.Color("245"), // Gray
		Error:   lipgloss.Color("196"), // Red
		Border:  lipgloss.Color("240"), // Dark gray
		Surface: lipgloss.Color("235"), // Dark background
	}
)

// Styles is the full set of styles used to render results and panes.
type Styles struct {
	Mode     Mode
	Palette  Palette
	Title    lipgloss.Style
	Word     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Muted    lipgloss.Style
	Link     lipgloss.Style
	Error    lipgloss.Style
	Pane     lipgloss.Style
	Focused  lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	Spinner  lipgloss.Style
}

// StylesFor builds the style set for mode using the default renderer.
func StylesFor(mode Mode) Styles {
	return StylesWithRenderer(mode, lipgloss.DefaultRenderer())
}

// StylesWithRenderer builds the style set for mode bound to r, so output
// written somewhere other than stdout gets the right colour profile.
func StylesWithRenderer(mode Mode, r *lipgloss.Renderer) Styles {
	p := lightPalette
	if mode == Dark {
		p = darkPalette
	}

	pane := r.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 1)

	return Styles{
		Mode:    mode,
		Palette: p,
		Title: r.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			MarginBottom(1),
		Word: r.NewStyle().
			Bold(true).
			Foreground(p.Primary),
		Label: r.NewStyle().
			Bold(true).
			Foreground(p.Muted),
		Value: r.NewStyle().
			Foreground(p.Text),
		Muted: r.NewStyle().
			Foreground(p.Muted).
			Italic(true),
		Link: r.NewStyle().
			Foreground(p.Accent).
			Underline(true),
		Error: r.NewStyle().
			Foreground(p.Error).
			Bold(true),
		Pane:    pane,
		Focused: pane.BorderForeground(p.Primary),
		Selected: r.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary).
			PaddingLeft(1),
		Footer: r.NewStyle().
			Foreground(p.Muted).
			MarginTop(1),
		HelpKey: r.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Width(12),
		HelpDesc: r.NewStyle().
			Foreground(p.Text),
		Spinner: r.NewStyle().
			Foreground(p.Primary),
	}
}
