package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"hub/internal/tui/layout"
)

// FormState holds the edit buffers for the add/edit modals. The buffers
// are distinct from the store's authoritative copy until an explicit
// commit; cancelling discards them without touching the store.
type FormState struct {
	NameInput  textinput.Model
	DescInput  textinput.Model
	URLInput   textinput.Model
	ColorInput textinput.Model
	Focus      int    // index into the mode's visible inputs
	EditID     string // id of the folder or app being edited
}

// NewFormState creates a FormState with initialized inputs.
func NewFormState(cfg layout.LayoutConfig) FormState {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = cfg.Input.NameCharLimit
	nameInput.Width = cfg.Input.StandardWidth

	descInput := textinput.New()
	descInput.Placeholder = "Description (optional)"
	descInput.CharLimit = cfg.Input.DescCharLimit
	descInput.Width = cfg.Input.StandardWidth

	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	colorInput := textinput.New()
	colorInput.Placeholder = "#RRGGBB"
	colorInput.CharLimit = cfg.Input.ColorCharLimit
	colorInput.Width = cfg.Input.StandardWidth

	return FormState{
		NameInput:  nameInput,
		DescInput:  descInput,
		URLInput:   urlInput,
		ColorInput: colorInput,
	}
}

// Reset clears all inputs for a new modal session.
func (f *FormState) Reset() {
	f.NameInput.Reset()
	f.DescInput.Reset()
	f.URLInput.Reset()
	f.ColorInput.Reset()
	f.NameInput.Blur()
	f.DescInput.Blur()
	f.URLInput.Blur()
	f.ColorInput.Blur()
	f.Focus = 0
	f.EditID = ""
}

// ConfirmState holds the pending destructive operation while the
// confirmation modal is shown.
type ConfirmState struct {
	Prompt   string
	FolderID string
	AppID    string // empty = folder delete
}

// Reset clears the pending operation.
func (c *ConfirmState) Reset() {
	c.Prompt = ""
	c.FolderID = ""
	c.AppID = ""
}
