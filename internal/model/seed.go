package model

// Default folder colors.
const (
	ColorBrand = "#7F22FE"
	ColorTeal  = "#00D4AA"
)

// DefaultFolders returns the seed collection used when no persisted
// state exists. The fixed ids keep a reseeded install stable across
// sessions.
func DefaultFolders() []Folder {
	return []Folder{
		{ID: "1", Name: "Marketing", Color: ColorBrand, Apps: []App{}},
		{ID: "2", Name: "Operations", Color: ColorTeal, Apps: []App{}},
	}
}
