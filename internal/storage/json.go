package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"hub/internal/model"
)

// JSONBackend implements Backend using a single JSON file holding the
// serialized folder array.
type JSONBackend struct {
	path string
}

// NewJSONBackend creates a JSONBackend with the given file path.
func NewJSONBackend(path string) *JSONBackend {
	return &JSONBackend{path: path}
}

// Path returns the storage file path.
func (b *JSONBackend) Path() string {
	return b.path
}

// folderRecord is the loosely-typed persisted folder shape. Older
// snapshots may carry apps without ids or without the url field; Load
// normalizes every record to the strict model types.
type folderRecord struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Color string          `json:"color"`
	Apps  json.RawMessage `json:"apps"`
}

// appRecord is the loosely-typed persisted app shape. Pointer fields
// distinguish absent from empty.
type appRecord struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

// Load reads the folder array from the JSON file and runs the
// migration pass. Returns (nil, nil) when the file does not exist and
// an error when the content is unparseable or not an array.
func (b *JSONBackend) Load() ([]model.Folder, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var records []folderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	folders := make([]model.Folder, len(records))
	for i, rec := range records {
		folders[i] = normalizeFolder(rec)
	}
	return folders, nil
}

// normalizeFolder migrates a persisted record to the current schema:
// the app list is coerced to a sequence (empty when missing or
// malformed), missing app ids are synthesized, and missing string
// fields default to "". Any future optional app field follows the same
// default-empty coercion.
func normalizeFolder(rec folderRecord) model.Folder {
	folder := model.Folder{
		ID:    rec.ID,
		Name:  rec.Name,
		Color: rec.Color,
		Apps:  []model.App{},
	}

	var apps []appRecord
	if len(rec.Apps) > 0 {
		if err := json.Unmarshal(rec.Apps, &apps); err != nil {
			apps = nil
		}
	}

	for _, a := range apps {
		id := orEmpty(a.ID)
		if id == "" {
			id = model.NewID()
		}
		folder.Apps = append(folder.Apps, model.App{
			ID:          id,
			Name:        orEmpty(a.Name),
			Description: orEmpty(a.Description),
			URL:         orEmpty(a.URL),
		})
	}
	return folder
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Save writes the full folder collection to the JSON file.
// Creates the directory if it doesn't exist.
func (b *JSONBackend) Save(folders []model.Folder) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(folders, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(b.path, data, 0644)
}
