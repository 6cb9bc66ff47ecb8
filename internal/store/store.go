// Package store owns the canonical custom-folder collection. All
// mutation and persistence logic lives here; consumers hold a *Store
// handle and never touch the persisted representation directly.
package store

import (
	"io"

	"github.com/sirupsen/logrus"

	"hub/internal/model"
	"hub/internal/storage"
)

// Subscriber receives a fresh snapshot after every completed mutation.
// The snapshot is a deep copy and must be treated as read-only.
type Subscriber func(folders []model.Folder)

// Store is the single source of truth for custom folders. It is not
// safe for concurrent use; mutations are expected to run on the UI
// goroutine, one event at a time.
type Store struct {
	backend storage.Backend
	log     *logrus.Logger
	folders []model.Folder
	subs    []Subscriber
}

// New loads the persisted collection through backend. Absent or corrupt
// state falls back to the default seed; load errors are logged, never
// returned.
func New(backend storage.Backend, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}

	folders, err := backend.Load()
	if err != nil {
		log.WithError(err).Warn("loading folders failed, falling back to defaults")
		folders = nil
	}
	if folders == nil {
		folders = model.DefaultFolders()
	}

	return &Store{
		backend: backend,
		log:     log,
		folders: folders,
	}
}

// Folders returns a deep-copied snapshot of the current collection.
func (s *Store) Folders() []model.Folder {
	return model.CloneFolders(s.folders)
}

// FolderByID returns a copy of the folder with the given id.
func (s *Store) FolderByID(id string) (model.Folder, bool) {
	f := s.find(id)
	if f == nil {
		return model.Folder{}, false
	}
	return f.Clone(), true
}

// Subscribe registers fn to be called with a new snapshot after every
// mutation. Subscribers are notified in registration order.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// AddFolder appends a new folder with a fresh id and no apps.
// Duplicate names are allowed.
func (s *Store) AddFolder(name, color string) {
	s.folders = append(s.folders, model.NewFolder(model.NewFolderParams{
		Name:  name,
		Color: color,
	}))
	s.commit()
}

// FolderPatch holds optional folder field updates; nil fields are left
// unchanged.
type FolderPatch struct {
	Name  *string
	Color *string
}

// UpdateFolder merges patch into the folder with the given id.
// Unknown ids are ignored.
func (s *Store) UpdateFolder(id string, patch FolderPatch) {
	f := s.find(id)
	if f == nil {
		return
	}
	if patch.Name != nil {
		f.Name = *patch.Name
	}
	if patch.Color != nil {
		f.Color = *patch.Color
	}
	s.commit()
}

// DeleteFolder removes the folder with the given id and all apps it
// contains. Unknown ids are ignored.
func (s *Store) DeleteFolder(id string) {
	for i := range s.folders {
		if s.folders[i].ID == id {
			s.folders = append(s.folders[:i], s.folders[i+1:]...)
			s.commit()
			return
		}
	}
}

// AddApp appends a new app with a fresh id to the folder's app list.
// Unknown folder ids are ignored.
func (s *Store) AddApp(folderID string, params model.NewAppParams) {
	f := s.find(folderID)
	if f == nil {
		return
	}
	f.Apps = append(f.Apps, model.NewApp(params))
	s.commit()
}

// AppPatch holds optional app field updates; nil fields are left
// unchanged.
type AppPatch struct {
	Name        *string
	Description *string
	URL         *string
}

// UpdateApp merges patch into the matching app. Unknown folder or app
// ids are ignored.
func (s *Store) UpdateApp(folderID, appID string, patch AppPatch) {
	f := s.find(folderID)
	if f == nil {
		return
	}
	app := f.AppByID(appID)
	if app == nil {
		return
	}
	if patch.Name != nil {
		app.Name = *patch.Name
	}
	if patch.Description != nil {
		app.Description = *patch.Description
	}
	if patch.URL != nil {
		app.URL = *patch.URL
	}
	s.commit()
}

// ReorderApps moves the app at index from to index to, shifting the
// apps in between. Out-of-range indices are clamped to the valid range;
// a move that resolves to the same position is a no-op.
func (s *Store) ReorderApps(folderID string, from, to int) {
	f := s.find(folderID)
	if f == nil || len(f.Apps) == 0 {
		return
	}

	from = clamp(from, 0, len(f.Apps)-1)
	to = clamp(to, 0, len(f.Apps)-1)
	if from == to {
		return
	}

	app := f.Apps[from]
	f.Apps = append(f.Apps[:from], f.Apps[from+1:]...)
	f.Apps = append(f.Apps[:to], append([]model.App{app}, f.Apps[to:]...)...)
	s.commit()
}

// DeleteApp removes the matching app from the folder's app list.
// Unknown folder or app ids are ignored.
func (s *Store) DeleteApp(folderID, appID string) {
	f := s.find(folderID)
	if f == nil {
		return
	}
	for i := range f.Apps {
		if f.Apps[i].ID == appID {
			f.Apps = append(f.Apps[:i], f.Apps[i+1:]...)
			s.commit()
			return
		}
	}
}

// ImportMerge folds imported folders into the collection. Folders are
// matched by name; apps whose URL already exists in the target folder
// are skipped. Returns the number of folders created and apps added.
func (s *Store) ImportMerge(imported []model.Folder) (foldersAdded, appsAdded int) {
	changed := false

	for _, imp := range imported {
		target := s.findByName(imp.Name)
		if target == nil {
			s.folders = append(s.folders, model.NewFolder(model.NewFolderParams{
				Name:  imp.Name,
				Color: imp.Color,
			}))
			target = &s.folders[len(s.folders)-1]
			foldersAdded++
			changed = true
		}

		for _, app := range imp.Apps {
			if app.URL != "" && folderHasURL(target, app.URL) {
				continue
			}
			target.Apps = append(target.Apps, model.NewApp(model.NewAppParams{
				Name:        app.Name,
				Description: app.Description,
				URL:         app.URL,
			}))
			appsAdded++
			changed = true
		}
	}

	if changed {
		s.commit()
	}
	return foldersAdded, appsAdded
}

// commit persists the full collection and notifies subscribers. A
// failed save keeps the in-memory state authoritative for the session;
// the mutation stays visible but may not survive a reload.
func (s *Store) commit() {
	if err := s.backend.Save(s.folders); err != nil {
		s.log.WithError(err).Error("persisting folders failed")
	}
	for _, fn := range s.subs {
		fn(s.Folders())
	}
}

func (s *Store) find(id string) *model.Folder {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return &s.folders[i]
		}
	}
	return nil
}

func (s *Store) findByName(name string) *model.Folder {
	for i := range s.folders {
		if s.folders[i].Name == name {
			return &s.folders[i]
		}
	}
	return nil
}

func folderHasURL(f *model.Folder, url string) bool {
	for i := range f.Apps {
		if f.Apps[i].URL == url {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
