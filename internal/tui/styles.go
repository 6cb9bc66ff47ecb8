package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Pane         lipgloss.Style
	PaneActive   lipgloss.Style
	Title        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Detail       lipgloss.Style
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	Badge        lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	HintKey      lipgloss.Style
	HintDesc     lipgloss.Style
}

// palette holds the colors a theme resolves to.
type palette struct {
	primary lipgloss.TerminalColor
	subtle  lipgloss.TerminalColor
	accent  lipgloss.TerminalColor
	border  lipgloss.TerminalColor
}

// DefaultStyles returns the adaptive (terminal-background aware) styles.
func DefaultStyles() Styles {
	return StylesForTheme("auto")
}

// StylesForTheme builds the style set for the configured theme:
// "dark", "light", or "auto" for terminal-adaptive colors. The accent
// is the brand purple used across the application.
func StylesForTheme(theme string) Styles {
	var p palette
	switch theme {
	case "dark":
		p = palette{
			primary: lipgloss.Color("#E6E6E6"),
			subtle:  lipgloss.Color("#707070"),
			accent:  lipgloss.Color("#9D5CFF"),
			border:  lipgloss.Color("#505050"),
		}
	case "light":
		p = palette{
			primary: lipgloss.Color("#1A1A2E"),
			subtle:  lipgloss.Color("#888888"),
			accent:  lipgloss.Color("#7F22FE"),
			border:  lipgloss.Color("#AAAAAA"),
		}
	default:
		p = palette{
			primary: lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#E6E6E6"},
			subtle:  lipgloss.AdaptiveColor{Light: "#888888", Dark: "#707070"},
			accent:  lipgloss.AdaptiveColor{Light: "#7F22FE", Dark: "#9D5CFF"},
			border:  lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#505050"},
		}
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent),

		Item: lipgloss.NewStyle().
			Foreground(p.primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(p.accent).
			Foreground(lipgloss.Color("#FFFFFF")),

		Detail: lipgloss.NewStyle().
			Foreground(p.subtle),

		Chip: lipgloss.NewStyle().
			Foreground(p.subtle).
			Padding(0, 1),

		ChipSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.accent).
			Padding(0, 1),

		Badge: lipgloss.NewStyle().
			Foreground(p.accent),

		Empty: lipgloss.NewStyle().
			Foreground(p.subtle),

		Status: lipgloss.NewStyle().
			Foreground(p.accent).
			PaddingLeft(1),

		HintKey: lipgloss.NewStyle().
			Foreground(p.subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(p.subtle),
	}
}
