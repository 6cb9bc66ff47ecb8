package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"hub/internal/catalog"
	"hub/internal/model"
	"hub/internal/store"
	"hub/internal/storage"
	"hub/internal/tui"
)

// memBackend keeps folders in memory so tests never touch the
// filesystem.
type memBackend struct {
	folders []model.Folder
}

func (b *memBackend) Load() ([]model.Folder, error) { return b.folders, nil }

func (b *memBackend) Save(folders []model.Folder) error {
	b.folders = model.CloneFolders(folders)
	return nil
}

func newTestApp(t *testing.T, folders []model.Folder, config *storage.Config) (tui.App, *store.Store) {
	t.Helper()
	st := store.New(&memBackend{folders: folders}, nil)
	return tui.NewApp(tui.AppParams{Store: st, Config: config}), st
}

func seedFolders() []model.Folder {
	return []model.Folder{
		{
			ID:    "f1",
			Name:  "Marketing",
			Color: "#7F22FE",
			Apps: []model.App{
				{ID: "a1", Name: "Planner", URL: "https://tools.internal/planner"},
				{ID: "a2", Name: "Assets", URL: "https://tools.internal/assets"},
				{ID: "a3", Name: "Drafts"},
			},
		},
		{ID: "f2", Name: "Operations", Color: "#00D4AA", Apps: []model.App{}},
	}
}

func press(t *testing.T, app tui.App, r rune) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(tui.App)
}

func pressKey(t *testing.T, app tui.App, key tea.KeyType) tui.App {
	t.Helper()
	updated, _ := app.Update(tea.KeyMsg{Type: key})
	return updated.(tui.App)
}

func typeText(t *testing.T, app tui.App, text string) tui.App {
	t.Helper()
	for _, r := range text {
		app = press(t, app, r)
	}
	return app
}

func toManage(t *testing.T, app tui.App) tui.App {
	t.Helper()
	app = pressKey(t, app, tea.KeyTab)
	if app.CurrentView() != tui.ViewManage {
		t.Fatal("expected manage view after tab")
	}
	return app
}

func TestApp_StartsOnBrowseView(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	if app.CurrentView() != tui.ViewBrowse {
		t.Error("expected browse view on start")
	}
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode on start")
	}
}

func TestApp_TabSwitchesViews(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	app = pressKey(t, app, tea.KeyTab)
	if app.CurrentView() != tui.ViewManage {
		t.Error("expected manage view after tab")
	}

	app = pressKey(t, app, tea.KeyTab)
	if app.CurrentView() != tui.ViewBrowse {
		t.Error("expected browse view after second tab")
	}
}

func TestApp_ManageFolderNavigation(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	if app.FolderCursor() != 0 {
		t.Errorf("expected initial folder cursor 0, got %d", app.FolderCursor())
	}

	app = press(t, app, 'j')
	if app.FolderCursor() != 1 {
		t.Errorf("after j, expected folder cursor 1, got %d", app.FolderCursor())
	}

	// j at the bottom stays put
	app = press(t, app, 'j')
	if app.FolderCursor() != 1 {
		t.Errorf("j at bottom should stay at 1, got %d", app.FolderCursor())
	}

	app = press(t, app, 'k')
	if app.FolderCursor() != 0 {
		t.Errorf("after k, expected folder cursor 0, got %d", app.FolderCursor())
	}

	app = press(t, app, 'k')
	if app.FolderCursor() != 0 {
		t.Errorf("k at top should stay at 0, got %d", app.FolderCursor())
	}
}

func TestApp_ManagePaneSwitch(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	if app.FocusedPane() != tui.PaneFolders {
		t.Error("expected folder pane focused initially")
	}

	app = press(t, app, 'l')
	if app.FocusedPane() != tui.PaneApps {
		t.Error("expected app pane after l")
	}

	app = press(t, app, 'j')
	if app.AppCursor() != 1 {
		t.Errorf("expected app cursor 1, got %d", app.AppCursor())
	}

	app = press(t, app, 'h')
	if app.FocusedPane() != tui.PaneFolders {
		t.Error("expected folder pane after h")
	}
}

func TestApp_SwitchingFolderResetsAppCursor(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'l')
	app = press(t, app, 'j')
	app = press(t, app, 'h')
	app = press(t, app, 'j') // to second folder

	if app.AppCursor() != 0 {
		t.Errorf("expected app cursor reset on folder change, got %d", app.AppCursor())
	}
}

func TestApp_AddFolderFlow(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'a')
	if app.CurrentMode() != tui.ModeAddFolder {
		t.Fatal("expected add-folder modal")
	}

	app = typeText(t, app, "Design")
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected modal closed after commit")
	}

	folders := st.Folders()
	if len(folders) != 3 {
		t.Fatalf("expected 3 folders, got %d", len(folders))
	}
	added := folders[2]
	if added.Name != "Design" {
		t.Errorf("expected folder 'Design', got %q", added.Name)
	}
	// The color buffer is preselected with the configured default.
	if added.Color != model.ColorBrand {
		t.Errorf("expected default color %q, got %q", model.ColorBrand, added.Color)
	}
	if !strings.Contains(app.Status(), "Design") {
		t.Errorf("expected status to mention the new folder, got %q", app.Status())
	}
}

func TestApp_AddFolderRequiresName(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'a')
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeAddFolder {
		t.Error("empty name should keep the modal open")
	}
	if len(st.Folders()) != 2 {
		t.Error("no folder should be created without a name")
	}

	// Esc abandons the modal without creating anything.
	app = pressKey(t, app, tea.KeyEsc)
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode after esc")
	}
	if len(st.Folders()) != 2 {
		t.Error("esc must not create a folder")
	}
}

func TestApp_AddAppFlow(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'l')
	app = press(t, app, 'a')
	if app.CurrentMode() != tui.ModeAddApp {
		t.Fatal("expected add-app modal")
	}

	app = typeText(t, app, "New Tool")
	app = pressKey(t, app, tea.KeyTab) // to description
	app = typeText(t, app, "does things")
	app = pressKey(t, app, tea.KeyTab) // to url
	app = typeText(t, app, "https://tools.internal/new")
	app = pressKey(t, app, tea.KeyEnter)

	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected modal closed after commit")
	}

	apps := st.Folders()[0].Apps
	if len(apps) != 4 {
		t.Fatalf("expected 4 apps, got %d", len(apps))
	}
	added := apps[3]
	if added.Name != "New Tool" || added.Description != "does things" || added.URL != "https://tools.internal/new" {
		t.Errorf("unexpected app: %+v", added)
	}
}

func TestApp_EditAppEmptyNameGetsPlaceholder(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'l')
	app = press(t, app, 'e')
	if app.CurrentMode() != tui.ModeEditApp {
		t.Fatal("expected edit-app modal")
	}

	// Clear the prefilled name ("Planner", 7 runes).
	for i := 0; i < 7; i++ {
		app = pressKey(t, app, tea.KeyBackspace)
	}
	app = pressKey(t, app, tea.KeyEnter)

	got := st.Folders()[0].Apps[0]
	if got.Name != "(untitled)" {
		t.Errorf("expected placeholder name, got %q", got.Name)
	}
	if got.ID != "a1" {
		t.Error("editing must not change the app id")
	}
}

func TestApp_EditFolder(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'e')
	if app.CurrentMode() != tui.ModeEditFolder {
		t.Fatal("expected edit-folder modal")
	}

	app = typeText(t, app, " 2.0") // appended to the prefilled name
	app = pressKey(t, app, tea.KeyEnter)

	f := st.Folders()[0]
	if f.Name != "Marketing 2.0" {
		t.Errorf("expected renamed folder, got %q", f.Name)
	}
	if f.Color != "#7F22FE" {
		t.Errorf("color should be unchanged, got %q", f.Color)
	}
}

func TestApp_DeleteFolderConfirmFlow(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)

	app = press(t, app, 'd')
	if app.CurrentMode() != tui.ModeConfirmDelete {
		t.Fatal("expected confirmation modal")
	}

	// n cancels
	app = press(t, app, 'n')
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("expected normal mode after n")
	}
	if len(st.Folders()) != 2 {
		t.Error("cancelled delete must not remove the folder")
	}

	// y confirms
	app = press(t, app, 'd')
	app = press(t, app, 'y')
	folders := st.Folders()
	if len(folders) != 1 {
		t.Fatalf("expected 1 folder after delete, got %d", len(folders))
	}
	if folders[0].ID != "f2" {
		t.Errorf("wrong folder deleted: %+v", folders)
	}
}

func TestApp_DeleteAppSkipConfirm(t *testing.T) {
	config := storage.DefaultConfig()
	config.SkipDeleteConfirm = true
	app, st := newTestApp(t, seedFolders(), &config)
	app = toManage(t, app)

	app = press(t, app, 'l')
	app = press(t, app, 'd')

	if app.CurrentMode() != tui.ModeNormal {
		t.Error("skip-confirm should delete without a modal")
	}
	apps := st.Folders()[0].Apps
	if len(apps) != 2 {
		t.Fatalf("expected 2 apps after delete, got %d", len(apps))
	}
	if apps[0].ID != "a2" {
		t.Errorf("wrong app deleted: %+v", apps)
	}
}

func TestApp_ReorderApps(t *testing.T) {
	app, st := newTestApp(t, seedFolders(), nil)
	app = toManage(t, app)
	app = press(t, app, 'l')

	// J moves the first app down; the cursor follows it.
	app = press(t, app, 'J')
	apps := st.Folders()[0].Apps
	if apps[0].ID != "a2" || apps[1].ID != "a1" {
		t.Errorf("expected a2,a1 order, got %+v", apps)
	}
	if app.AppCursor() != 1 {
		t.Errorf("cursor should follow the moved app, got %d", app.AppCursor())
	}

	// K moves it back up.
	app = press(t, app, 'K')
	apps = st.Folders()[0].Apps
	if apps[0].ID != "a1" {
		t.Errorf("expected a1 first again, got %+v", apps)
	}

	// K at the top is a no-op.
	app = press(t, app, 'K')
	if st.Folders()[0].Apps[0].ID != "a1" || app.AppCursor() != 0 {
		t.Error("move past the top must be a no-op")
	}
}

func TestApp_BrowseChipNavigation(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	if app.ChipIndex() != 0 {
		t.Errorf("expected first chip selected, got %d", app.ChipIndex())
	}

	app = press(t, app, 'l')
	if app.ChipIndex() != 1 {
		t.Errorf("expected chip 1 after l, got %d", app.ChipIndex())
	}

	app = press(t, app, 'j')
	app = press(t, app, 'l')
	if app.BrowseCursor() != 0 {
		t.Error("changing chips should reset the browse cursor")
	}

	app = press(t, app, 'h')
	app = press(t, app, 'h')
	app = press(t, app, 'h') // clamps at first chip
	if app.ChipIndex() != 0 {
		t.Errorf("expected chip 0, got %d", app.ChipIndex())
	}
}

func TestApp_BrowseFolderChipShowsApps(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	// Folder chips come after the built-in area chips.
	for i := 0; i < len(catalog.Areas()); i++ {
		app = press(t, app, 'l')
	}

	view := app.View()
	if !strings.Contains(view, "Planner") {
		t.Error("expected folder apps listed on the browse view")
	}
}

func TestApp_BrowseCatalogShowsBadges(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	// The "All" chip lists the catalog; the first entry carries the
	// recommended badge (selected row), Analytics 24 the new badge.
	view := app.View()
	if !strings.Contains(view, "[recommended]") {
		t.Error("expected recommended badge on the selected catalog row")
	}
	if !strings.Contains(view, "[new]") {
		t.Error("expected new badge on an unselected catalog row")
	}
}

func TestApp_BrowseOpenWithoutURL(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	// Select the Marketing folder chip and move to the URL-less app.
	for i := 0; i < len(catalog.Areas()); i++ {
		app = press(t, app, 'l')
	}
	app = press(t, app, 'j')
	app = press(t, app, 'j')
	app = press(t, app, 'o')

	if !strings.Contains(app.Status(), "no URL set") {
		t.Errorf("expected a no-URL status, got %q", app.Status())
	}
}

func TestApp_BrowseCatalogOpenShowsPortalHint(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	app = press(t, app, 'o')

	if !strings.Contains(app.Status(), "web portal") {
		t.Errorf("expected portal status for catalog entries, got %q", app.Status())
	}
}

func TestApp_EmptyStore(t *testing.T) {
	// A legitimately empty collection, not the seed fallback.
	app, _ := newTestApp(t, []model.Folder{}, nil)
	app = toManage(t, app)

	// None of these may panic or create state.
	app = press(t, app, 'j')
	app = press(t, app, 'l')
	app = press(t, app, 'e')
	app = press(t, app, 'd')
	app = press(t, app, 'J')

	if app.FocusedPane() != tui.PaneFolders {
		t.Error("empty collection should keep the folder pane focused")
	}
	if app.CurrentMode() != tui.ModeNormal {
		t.Error("edit and delete on an empty collection must not open modals")
	}
}

func TestApp_QuitFromBothViews(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command from browse view")
	}

	app = toManage(t, app)
	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("expected quit command from manage view")
	}
}

func TestApp_WindowResize(t *testing.T) {
	app, _ := newTestApp(t, seedFolders(), nil)

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	app = updated.(tui.App)

	view := app.View()
	if view == "" {
		t.Error("expected non-empty view after resize")
	}
}
