package storage

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"hub/internal/model"
)

const currentSchemaVersion = 2

// SQLiteBackend implements Backend using a SQLite database.
type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// NewSQLiteBackend creates a SQLiteBackend with the given database path.
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	b := &SQLiteBackend{db: db, path: path}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return b, nil
}

// Path returns the database file path.
func (b *SQLiteBackend) Path() string {
	return b.path
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// migrate runs database migrations.
func (b *SQLiteBackend) migrate() error {
	var version int
	err := b.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < 1 {
		if err := b.migrateV1(); err != nil {
			return err
		}
	}

	if version < 2 {
		if err := b.migrateV2(); err != nil {
			return err
		}
	}

	return nil
}

// migrateV1 creates the initial schema. V1 predates app launch URLs.
func (b *SQLiteBackend) migrateV1() error {
	schema := `
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS folders (
			id TEXT PRIMARY KEY NOT NULL,
			name TEXT NOT NULL,
			color TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS apps (
			id TEXT NOT NULL,
			folder_id TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			PRIMARY KEY (folder_id, id),
			FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_apps_folder_id ON apps(folder_id);

		INSERT OR REPLACE INTO schema_version (version) VALUES (1);
	`
	_, err := b.db.Exec(schema)
	return err
}

// migrateV2 adds the app url column.
func (b *SQLiteBackend) migrateV2() error {
	migration := `
		ALTER TABLE apps ADD COLUMN url TEXT NOT NULL DEFAULT '';
		UPDATE schema_version SET version = 2;
	`
	_, err := b.db.Exec(migration)
	return err
}

// Load reads the folder collection from the SQLite database, preserving
// the stored positions. An empty database loads as an empty non-nil
// collection.
func (b *SQLiteBackend) Load() ([]model.Folder, error) {
	folders := []model.Folder{}

	rows, err := b.db.Query(`
		SELECT id, name, color
		FROM folders
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.Color); err != nil {
			return nil, err
		}
		f.Apps = []model.App{}
		folders = append(folders, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	appRows, err := b.db.Query(`
		SELECT folder_id, id, name, description, url
		FROM apps
		ORDER BY folder_id, position
	`)
	if err != nil {
		return nil, err
	}
	defer appRows.Close()

	byID := make(map[string]*model.Folder, len(folders))
	for i := range folders {
		byID[folders[i].ID] = &folders[i]
	}

	for appRows.Next() {
		var folderID string
		var app model.App
		if err := appRows.Scan(&folderID, &app.ID, &app.Name, &app.Description, &app.URL); err != nil {
			return nil, err
		}
		if f, ok := byID[folderID]; ok {
			f.Apps = append(f.Apps, app)
		}
	}
	if err := appRows.Err(); err != nil {
		return nil, err
	}

	return folders, nil
}

// Save writes the full folder collection to the SQLite database.
// Uses a transaction for atomicity - all or nothing.
func (b *SQLiteBackend) Save(folders []model.Folder) error {
	tx, err := b.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM apps"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM folders"); err != nil {
		return err
	}

	folderStmt, err := tx.Prepare(`
		INSERT INTO folders (id, name, color, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer folderStmt.Close()

	appStmt, err := tx.Prepare(`
		INSERT INTO apps (id, folder_id, name, description, url, position)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer appStmt.Close()

	for pos, f := range folders {
		if _, err := folderStmt.Exec(f.ID, f.Name, f.Color, pos); err != nil {
			return err
		}
		for appPos, app := range f.Apps {
			if _, err := appStmt.Exec(app.ID, f.ID, app.Name, app.Description, app.URL, appPos); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
