package model

// Folder is a user-created, colored container of apps.
// The app slice is display order; it only changes through explicit
// reorder operations, never by implicit sorting.
type Folder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Apps  []App  `json:"apps"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Name  string
	Color string
}

// NewFolder creates a Folder with a generated id and an empty app list.
func NewFolder(params NewFolderParams) Folder {
	return Folder{
		ID:    NewID(),
		Name:  params.Name,
		Color: params.Color,
		Apps:  []App{},
	}
}

// AppByID finds an app in the folder by id, returns nil if not found.
func (f *Folder) AppByID(id string) *App {
	for i := range f.Apps {
		if f.Apps[i].ID == id {
			return &f.Apps[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the folder.
func (f Folder) Clone() Folder {
	apps := make([]App, len(f.Apps))
	copy(apps, f.Apps)
	f.Apps = apps
	return f
}

// CloneFolders returns a deep copy of a folder collection. Snapshots
// handed to consumers are built with this so they never alias the
// canonical state.
func CloneFolders(folders []Folder) []Folder {
	result := make([]Folder, len(folders))
	for i := range folders {
		result[i] = folders[i].Clone()
	}
	return result
}
