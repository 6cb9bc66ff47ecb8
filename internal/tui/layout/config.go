package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + header row (2) + pane borders (2) + help bar (2)
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// TwoPaneWidthOffset is subtracted before dividing by 2.
	// Accounts for borders and spacing between the two panes.
	TwoPaneWidthOffset int

	// MinPaneWidth is the minimum width for each pane.
	MinPaneWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int

	// HeaderReduction accounts for the title lines inside a pane.
	HeaderReduction int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as a percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	NameCharLimit  int
	DescCharLimit  int
	URLCharLimit   int
	ColorCharLimit int

	// StandardWidth is the display width shared by all form inputs.
	StandardWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:    7,
			MinHeight:          5,
			TwoPaneWidthOffset: 6,
			MinPaneWidth:       24,
			ContentPadding:     4,
			HeaderReduction:    2,
		},
		Modal: ModalConfig{
			WidthPercent: 40,
			MinWidth:     44,
			MaxWidth:     72,
		},
		Input: InputConfig{
			NameCharLimit:  100,
			DescCharLimit:  200,
			URLCharLimit:   500,
			ColorCharLimit: 16,
			StandardWidth:  40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
