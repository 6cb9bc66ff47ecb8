package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hub/internal/catalog"
	"hub/internal/model"
	"hub/internal/store"
	"hub/internal/storage"
	"hub/internal/tui/layout"
)

// placeholderAppName is substituted when an app is committed with an
// empty name.
const placeholderAppName = "(untitled)"

// View identifies the active screen.
type View int

const (
	ViewBrowse View = iota
	ViewManage
)

// Mode identifies the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddFolder
	ModeEditFolder
	ModeAddApp
	ModeEditApp
	ModeConfirmDelete
)

// Pane identifies the focused pane on the manage view.
type Pane int

const (
	PaneFolders Pane = iota
	PaneApps
)

// App is the main bubbletea model. It holds transient UI state only;
// every mutation goes through the injected store handle.
type App struct {
	store        *store.Store
	config       storage.Config
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	folders []model.Folder // current snapshot

	view View
	mode Mode

	// Manage view state
	pane         Pane
	folderCursor int
	appCursor    int

	// Browse view state
	chips        []Chip
	chipIdx      int
	browseCursor int

	form    FormState
	confirm ConfirmState

	status string

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store        *store.Store
	Config       *storage.Config // optional, uses defaults if nil
	Keys         *KeyMap         // optional, uses default if nil
	Styles       *Styles         // optional, derived from config theme if nil
	LayoutConfig *layout.LayoutConfig
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	config := storage.DefaultConfig()
	if params.Config != nil {
		config = *params.Config
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := StylesForTheme(config.Theme)
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	app := App{
		store:        params.Store,
		config:       config,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		form:         NewFormState(layoutConfig),
		view:         ViewBrowse,
		width:        80,
		height:       24,
	}

	app.refresh()
	return app
}

// WithDimensions returns a copy of the app with fixed dimensions.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// refresh pulls a fresh snapshot from the store and clamps all cursors
// against the new collection.
func (a *App) refresh() {
	a.folders = a.store.Folders()
	a.chips = BuildChips(catalog.Areas(), a.folders)

	a.folderCursor = clampCursor(a.folderCursor, len(a.folders))
	a.appCursor = clampCursor(a.appCursor, len(a.currentApps()))
	if a.chipIdx >= len(a.chips) {
		a.chipIdx = 0
	}
	a.browseCursor = clampCursor(a.browseCursor, a.browseListLen())
	if len(a.folders) == 0 {
		a.pane = PaneFolders
	}
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

// currentFolder returns the folder under the manage cursor, nil when
// the collection is empty.
func (a *App) currentFolder() *model.Folder {
	if len(a.folders) == 0 {
		return nil
	}
	return &a.folders[a.folderCursor]
}

func (a *App) currentApps() []model.App {
	f := a.currentFolder()
	if f == nil {
		return nil
	}
	return f.Apps
}

// currentApp returns the app under the manage cursor, nil when the
// selected folder has no apps.
func (a *App) currentApp() *model.App {
	apps := a.currentApps()
	if len(apps) == 0 {
		return nil
	}
	return &apps[a.appCursor]
}

// selectedChip returns the chip selected on the browse view.
func (a *App) selectedChip() Chip {
	if len(a.chips) == 0 {
		return Chip{}
	}
	return a.chips[a.chipIdx]
}

// chipFolder returns the custom folder selected on the browse view,
// nil when a built-in area chip is selected.
func (a *App) chipFolder() *model.Folder {
	chip := a.selectedChip()
	if !chip.IsFolder() {
		return nil
	}
	for i := range a.folders {
		if a.folders[i].ID == chip.FolderID {
			return &a.folders[i]
		}
	}
	return nil
}

func (a *App) browseListLen() int {
	if f := a.chipFolder(); f != nil {
		return len(f.Apps)
	}
	return len(catalog.Filter(a.selectedChip().Label, nil, ""))
}

// Exported accessors used by tests and the quick-search entry point.

// CurrentView returns the active view.
func (a App) CurrentView() View { return a.view }

// CurrentMode returns the active interaction mode.
func (a App) CurrentMode() Mode { return a.mode }

// FocusedPane returns the focused manage pane.
func (a App) FocusedPane() Pane { return a.pane }

// FolderCursor returns the folder cursor on the manage view.
func (a App) FolderCursor() int { return a.folderCursor }

// AppCursor returns the app cursor on the manage view.
func (a App) AppCursor() int { return a.appCursor }

// ChipIndex returns the selected chip index on the browse view.
func (a App) ChipIndex() int { return a.chipIdx }

// BrowseCursor returns the list cursor on the browse view.
func (a App) BrowseCursor() int { return a.browseCursor }

// Status returns the transient status line message.
func (a App) Status() string { return a.status }

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		if a.mode != ModeNormal {
			return a.updateModal(msg)
		}
		if a.view == ViewManage {
			return a.updateManage(msg)
		}
		return a.updateBrowse(msg)
	}

	return a, nil
}

// updateBrowse handles keys on the browse view (read-only surface).
func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.SwitchView):
		a.view = ViewManage
		a.status = ""

	case key.Matches(msg, a.keys.Left):
		if a.chipIdx > 0 {
			a.chipIdx--
			a.browseCursor = 0
		}

	case key.Matches(msg, a.keys.Right):
		if a.chipIdx < len(a.chips)-1 {
			a.chipIdx++
			a.browseCursor = 0
		}

	case key.Matches(msg, a.keys.Down):
		if a.browseCursor < a.browseListLen()-1 {
			a.browseCursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.browseCursor > 0 {
			a.browseCursor--
		}

	case key.Matches(msg, a.keys.Open):
		a.openBrowseSelection()

	case key.Matches(msg, a.keys.YankURL):
		if f := a.chipFolder(); f != nil && a.browseCursor < len(f.Apps) {
			a.yankURL(f.Apps[a.browseCursor])
		}
	}

	return a, nil
}

// openBrowseSelection opens the selected app's URL; catalog entries and
// URL-less apps only get a status message.
func (a *App) openBrowseSelection() {
	if f := a.chipFolder(); f != nil {
		if a.browseCursor >= len(f.Apps) {
			return
		}
		app := f.Apps[a.browseCursor]
		if app.URL == "" {
			a.status = "no URL set for " + displayName(app)
			return
		}
		OpenURL(app.URL)
		a.status = "opened " + displayName(app)
		return
	}

	entries := catalog.Filter(a.selectedChip().Label, nil, "")
	if a.browseCursor < len(entries) {
		a.status = entries[a.browseCursor].Title + " opens from the web portal"
	}
}

// updateManage handles keys on the manage view.
func (a App) updateManage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.SwitchView):
		a.view = ViewBrowse
		a.status = ""

	case key.Matches(msg, a.keys.Left):
		a.pane = PaneFolders

	case key.Matches(msg, a.keys.Right):
		if a.currentFolder() != nil {
			a.pane = PaneApps
		}

	case key.Matches(msg, a.keys.Down):
		if a.pane == PaneFolders {
			if a.folderCursor < len(a.folders)-1 {
				a.folderCursor++
				a.appCursor = 0
			}
		} else if a.appCursor < len(a.currentApps())-1 {
			a.appCursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.pane == PaneFolders {
			if a.folderCursor > 0 {
				a.folderCursor--
				a.appCursor = 0
			}
		} else if a.appCursor > 0 {
			a.appCursor--
		}

	case key.Matches(msg, a.keys.Add):
		a.openAddModal()

	case key.Matches(msg, a.keys.Edit):
		a.openEditModal()

	case key.Matches(msg, a.keys.Delete):
		a.requestDelete()

	case key.Matches(msg, a.keys.MoveUp):
		a.moveApp(-1)

	case key.Matches(msg, a.keys.MoveDown):
		a.moveApp(1)

	case key.Matches(msg, a.keys.Open):
		if a.pane == PaneFolders {
			if a.currentFolder() != nil {
				a.pane = PaneApps
			}
		} else if app := a.currentApp(); app != nil {
			if app.URL == "" {
				a.status = "no URL set for " + displayName(*app)
			} else {
				OpenURL(app.URL)
				a.status = "opened " + displayName(*app)
			}
		}

	case key.Matches(msg, a.keys.YankURL):
		if app := a.currentApp(); app != nil {
			a.yankURL(*app)
		}
	}

	return a, nil
}

// moveApp swaps the selected app with its neighbor. Moves past either
// end of the list are no-ops.
func (a *App) moveApp(delta int) {
	f := a.currentFolder()
	if f == nil || a.pane != PaneApps || len(f.Apps) == 0 {
		return
	}
	target := a.appCursor + delta
	if target < 0 || target >= len(f.Apps) {
		return
	}
	a.store.ReorderApps(f.ID, a.appCursor, target)
	a.refresh()
	a.appCursor = target
}

func (a *App) yankURL(app model.App) {
	if app.URL == "" {
		a.status = "no URL set for " + displayName(app)
		return
	}
	if err := clipboard.WriteAll(app.URL); err != nil {
		a.status = "clipboard unavailable"
		return
	}
	a.status = "copied URL of " + displayName(app)
}

// openAddModal opens the add-folder or add-app modal depending on the
// focused pane.
func (a *App) openAddModal() {
	a.form.Reset()
	if a.pane == PaneFolders {
		a.form.ColorInput.SetValue(a.config.DefaultFolderColor)
		a.mode = ModeAddFolder
	} else {
		if a.currentFolder() == nil {
			return
		}
		a.mode = ModeAddApp
	}
	a.setFormFocus(0)
}

// openEditModal loads the selection into the edit buffers.
func (a *App) openEditModal() {
	a.form.Reset()
	if a.pane == PaneFolders {
		f := a.currentFolder()
		if f == nil {
			return
		}
		a.form.NameInput.SetValue(f.Name)
		a.form.ColorInput.SetValue(f.Color)
		a.form.EditID = f.ID
		a.mode = ModeEditFolder
	} else {
		app := a.currentApp()
		if app == nil {
			return
		}
		a.form.NameInput.SetValue(app.Name)
		a.form.DescInput.SetValue(app.Description)
		a.form.URLInput.SetValue(app.URL)
		a.form.EditID = app.ID
		a.mode = ModeEditApp
	}
	a.setFormFocus(0)
}

// requestDelete shows the confirmation modal, or deletes immediately
// when confirmations are disabled.
func (a *App) requestDelete() {
	if a.pane == PaneFolders {
		f := a.currentFolder()
		if f == nil {
			return
		}
		a.confirm = ConfirmState{
			Prompt:   fmt.Sprintf("Delete folder %q and all apps inside it?", f.Name),
			FolderID: f.ID,
		}
	} else {
		f := a.currentFolder()
		app := a.currentApp()
		if f == nil || app == nil {
			return
		}
		a.confirm = ConfirmState{
			Prompt:   fmt.Sprintf("Remove app %q from this folder?", displayName(*app)),
			FolderID: f.ID,
			AppID:    app.ID,
		}
	}

	if a.config.SkipDeleteConfirm {
		a.performDelete()
		return
	}
	a.mode = ModeConfirmDelete
}

func (a *App) performDelete() {
	if a.confirm.AppID != "" {
		a.store.DeleteApp(a.confirm.FolderID, a.confirm.AppID)
	} else if a.confirm.FolderID != "" {
		a.store.DeleteFolder(a.confirm.FolderID)
	}
	a.confirm.Reset()
	a.mode = ModeNormal
	a.refresh()
}

// updateModal handles keys while a modal is open.
func (a App) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.mode == ModeConfirmDelete {
		switch msg.String() {
		case "y", "enter":
			a.performDelete()
		case "n", "esc", "q":
			a.confirm.Reset()
			a.mode = ModeNormal
		}
		return a, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		a.form.Reset()
		a.mode = ModeNormal
		return a, nil

	case tea.KeyEnter:
		a.commitForm()
		return a, nil

	case tea.KeyTab, tea.KeyDown:
		a.cycleFormFocus(1)
		return a, nil

	case tea.KeyShiftTab, tea.KeyUp:
		a.cycleFormFocus(-1)
		return a, nil
	}

	inputs := a.formInputs()
	if a.form.Focus < len(inputs) {
		var cmd tea.Cmd
		*inputs[a.form.Focus], cmd = inputs[a.form.Focus].Update(msg)
		return a, cmd
	}
	return a, nil
}

// formInputs returns the inputs visible for the current modal mode.
func (a *App) formInputs() []*textinput.Model {
	switch a.mode {
	case ModeAddFolder, ModeEditFolder:
		return []*textinput.Model{&a.form.NameInput, &a.form.ColorInput}
	case ModeAddApp, ModeEditApp:
		return []*textinput.Model{&a.form.NameInput, &a.form.DescInput, &a.form.URLInput}
	}
	return nil
}

func (a *App) setFormFocus(idx int) {
	inputs := a.formInputs()
	for i, input := range inputs {
		if i == idx {
			input.Focus()
		} else {
			input.Blur()
		}
	}
	a.form.Focus = idx
}

func (a *App) cycleFormFocus(delta int) {
	inputs := a.formInputs()
	if len(inputs) == 0 {
		return
	}
	next := (a.form.Focus + delta + len(inputs)) % len(inputs)
	a.setFormFocus(next)
}

// commitForm validates the buffers and issues the store operation for
// the current modal mode. Invalid input keeps the modal open.
func (a *App) commitForm() {
	name := strings.TrimSpace(a.form.NameInput.Value())

	switch a.mode {
	case ModeAddFolder:
		// Creating a folder requires a non-empty name.
		if name == "" {
			return
		}
		color := strings.TrimSpace(a.form.ColorInput.Value())
		if color == "" {
			color = a.config.DefaultFolderColor
		}
		a.store.AddFolder(name, color)
		a.status = "added folder " + name

	case ModeEditFolder:
		f := a.currentFolder()
		if f == nil {
			break
		}
		// Empty name keeps the folder's current name.
		if name == "" {
			name = f.Name
		}
		color := strings.TrimSpace(a.form.ColorInput.Value())
		if color == "" {
			color = f.Color
		}
		a.store.UpdateFolder(a.form.EditID, store.FolderPatch{Name: &name, Color: &color})
		a.status = "updated folder " + name

	case ModeAddApp:
		f := a.currentFolder()
		if f == nil {
			break
		}
		if name == "" {
			return
		}
		a.store.AddApp(f.ID, model.NewAppParams{
			Name:        name,
			Description: strings.TrimSpace(a.form.DescInput.Value()),
			URL:         strings.TrimSpace(a.form.URLInput.Value()),
		})
		a.status = "added app " + name

	case ModeEditApp:
		f := a.currentFolder()
		if f == nil {
			break
		}
		if name == "" {
			name = placeholderAppName
		}
		desc := strings.TrimSpace(a.form.DescInput.Value())
		url := strings.TrimSpace(a.form.URLInput.Value())
		a.store.UpdateApp(f.ID, a.form.EditID, store.AppPatch{
			Name:        &name,
			Description: &desc,
			URL:         &url,
		})
		a.status = "updated app " + name
	}

	a.form.Reset()
	a.mode = ModeNormal
	a.refresh()
}

// displayName returns the app name with the empty-name placeholder
// applied.
func displayName(app model.App) string {
	if app.Name == "" {
		return placeholderAppName
	}
	return app.Name
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
