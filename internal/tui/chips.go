package tui

import "hub/internal/model"

// Chip is one selectable filter on the browse view: either a built-in
// catalog area or a custom folder.
type Chip struct {
	Label    string
	FolderID string // "" = built-in area
	Color    string // folder color, "" for areas
}

// IsFolder returns true when the chip selects a custom folder.
func (c Chip) IsFolder() bool {
	return c.FolderID != ""
}

// BuildChips merges the built-in areas with the custom folders, areas
// first so the first built-in category is the default selection.
func BuildChips(areas []string, folders []model.Folder) []Chip {
	chips := make([]Chip, 0, len(areas)+len(folders))
	for _, area := range areas {
		chips = append(chips, Chip{Label: area})
	}
	for _, f := range folders {
		chips = append(chips, Chip{Label: f.Name, FolderID: f.ID, Color: f.Color})
	}
	return chips
}
