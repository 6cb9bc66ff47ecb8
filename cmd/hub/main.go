package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"hub/internal/catalog"
	"hub/internal/exporter"
	"hub/internal/importer"
	"hub/internal/picker"
	"hub/internal/search"
	"hub/internal/store"
	"hub/internal/storage"
	"hub/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "import":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: hub import <file.html> [fallback folder]\n")
				os.Exit(1)
			}
			fallback := "Imported"
			if len(os.Args) >= 4 {
				fallback = os.Args[3]
			}
			runImport(os.Args[2], fallback)
			return
		case "export":
			var outputPath string
			if len(os.Args) >= 3 {
				outputPath = os.Args[2]
			}
			runExport(outputPath)
			return
		default:
			// Treat as search query (join all remaining args)
			query := strings.Join(os.Args[1:], " ")
			runQuickSearch(query)
			return
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `hub - folder launcher for internal tools

Usage:
  hub                        Open interactive TUI
  hub <query>                Quick search -> select -> open
  hub import <file> [folder] Import apps from an HTML link list
  hub export [path]          Export folders to HTML
  hub help                   Show this help

TUI Keybindings:
  Browse view:
    h/l         Previous/next filter chip
    j/k         Move down/up
    o/Enter     Open app URL
    Y           Copy app URL to clipboard
    tab         Switch to manage view

  Manage view:
    j/k         Move down/up
    h/l         Focus folder/app pane
    a           Add folder or app
    e           Edit selection
    d           Delete selection (asks for confirmation)
    J/K         Move app down/up in its folder
    tab         Switch to browse view

  q             Quit

Data Storage:
  ~/.config/hub/folders.json (or hub.db when present)
`
	fmt.Print(help)
}

// newLogger returns a logger writing to the hub log file. When the log
// file cannot be opened the logger discards output; the TUI owns the
// terminal.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	path, err := storage.DefaultLogPath()
	if err != nil {
		return log
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return log
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return log
	}
	log.SetOutput(f)
	return log
}

// openStore opens the storage backend and loads the folder store.
func openStore(log *logrus.Logger) (*store.Store, storage.Backend) {
	backend, err := storage.OpenBackend()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}
	return store.New(backend, log), backend
}

func closeBackend(backend storage.Backend) {
	if c, ok := backend.(io.Closer); ok {
		_ = c.Close()
	}
}

// runTUI runs the full interactive TUI. The store persists after every
// mutation, so there is nothing to save on exit.
func runTUI() {
	log := newLogger()
	st, backend := openStore(log)
	defer closeBackend(backend)

	configPath, err := storage.DefaultConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config path: %v\n", err)
		os.Exit(1)
	}
	config, err := storage.LoadConfig(configPath)
	if err != nil {
		log.WithError(err).Warn("loading config failed, using defaults")
		defaults := storage.DefaultConfig()
		config = &defaults
	}

	app := tui.NewApp(tui.AppParams{Store: st, Config: config})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runQuickSearch fuzzy-searches apps and the built-in catalog, then
// opens the selected app in the browser.
func runQuickSearch(query string) {
	log := newLogger()
	st, backend := openStore(log)
	defer closeBackend(backend)

	items := picker.AppItems(search.FuzzySearchApps(st.Folders(), query))
	items = append(items, picker.CatalogItems(search.FuzzySearchCatalog(catalog.Entries(), query))...)

	if len(items) == 0 {
		fmt.Printf("No apps found for '%s'\n", query)
		os.Exit(0)
	}

	var selected *picker.Item

	if len(items) == 1 {
		selected = &items[0]
	} else {
		p := picker.New(items, query)
		program := tea.NewProgram(p)
		finalModel, err := program.Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running picker: %v\n", err)
			os.Exit(1)
		}

		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			os.Exit(0)
		}
		selected = finalPicker.SelectedItem()
	}

	if selected == nil {
		os.Exit(0)
	}
	if selected.Catalog {
		fmt.Printf("%s opens from the web portal\n", selected.Name)
		os.Exit(0)
	}
	if selected.URL == "" {
		fmt.Printf("%s has no URL set\n", selected.Name)
		os.Exit(0)
	}

	fmt.Printf("Opening: %s\n", selected.Name)
	tui.OpenURL(selected.URL)
}

// runImport handles the import subcommand.
func runImport(filePath, fallbackFolder string) {
	log := newLogger()
	st, backend := openStore(log)
	defer closeBackend(backend)

	file, err := os.Open(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	folders, err := importer.ParseHTMLLinks(file, fallbackFolder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	foldersAdded, appsAdded := st.ImportMerge(folders)
	fmt.Printf("Imported %d apps into %d new folders\n", appsAdded, foldersAdded)
}

// runExport handles the export subcommand.
func runExport(outputPath string) {
	if outputPath == "" {
		var err error
		outputPath, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting default export path: %v\n", err)
			os.Exit(1)
		}
	}

	log := newLogger()
	st, backend := openStore(log)
	defer closeBackend(backend)

	folders := st.Folders()
	html := exporter.ExportHTML(folders)

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	appCount := 0
	for _, f := range folders {
		appCount += len(f.Apps)
	}
	fmt.Printf("Exported %d folders, %d apps to %s\n", len(folders), appCount, outputPath)
}
