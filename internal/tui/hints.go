package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHints renders hints in horizontal format for the bottom bar:
// "j/k:move h/l:pane a:add"
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
	}
	return " " + strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals:
// "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// contextualHints returns the bottom-bar hints for the current view.
func (a App) contextualHints() []Hint {
	if a.view == ViewBrowse {
		return []Hint{
			{Key: "h/l", Desc: "filter"},
			{Key: "j/k", Desc: "move"},
			{Key: "o", Desc: "open"},
			{Key: "Y", Desc: "yank URL"},
			{Key: "tab", Desc: "manage"},
			{Key: "q", Desc: "quit"},
		}
	}
	return []Hint{
		{Key: "j/k", Desc: "move"},
		{Key: "h/l", Desc: "pane"},
		{Key: "a", Desc: "add"},
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "delete"},
		{Key: "J/K", Desc: "reorder"},
		{Key: "tab", Desc: "browse"},
		{Key: "q", Desc: "quit"},
	}
}

// modalHints returns the inline hints for the open modal.
func (a App) modalHints() []Hint {
	if a.mode == ModeConfirmDelete {
		return []Hint{
			{Key: "y", Desc: "confirm"},
			{Key: "n", Desc: "cancel"},
		}
	}
	return []Hint{
		{Key: "Enter", Desc: "save"},
		{Key: "Tab", Desc: "next field"},
		{Key: "Esc", Desc: "cancel"},
	}
}
