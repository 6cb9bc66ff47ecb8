package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hub/internal/search"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// Item is one selectable row in the quick-search picker: a folder app
// or a built-in catalog entry.
type Item struct {
	Name    string
	Detail  string
	URL     string // "" = not directly openable
	Catalog bool
}

// AppItems converts app search results to picker items.
func AppItems(results []search.Result) []Item {
	items := make([]Item, len(results))
	for i, r := range results {
		detail := r.Folder.Name
		if r.App.URL != "" {
			detail += "  " + r.App.URL
		}
		items[i] = Item{
			Name:   r.App.Name,
			Detail: detail,
			URL:    r.App.URL,
		}
	}
	return items
}

// CatalogItems converts catalog search results to picker items.
func CatalogItems(results []search.CatalogResult) []Item {
	items := make([]Item, len(results))
	for i, r := range results {
		items[i] = Item{
			Name:    r.Entry.Title,
			Detail:  "catalog  " + r.Entry.Description,
			Catalog: true,
		}
	}
	return items
}

// Picker is a simple TUI for selecting from quick-search results.
type Picker struct {
	items     []Item
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	height    int
}

// New creates a new Picker with the given items.
func New(items []Item, query string) Picker {
	return Picker{
		items:  items,
		query:  query,
		cursor: 0,
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			p.selected = true
			return p, tea.Quit

		case tea.KeyDown:
			if p.cursor < len(p.items)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}

		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				if p.cursor < len(p.items)-1 {
					p.cursor++
				}
				return p, nil
			case "k":
				if p.cursor > 0 {
					p.cursor--
				}
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, len(p.items))))
	b.WriteString("\n\n")

	for i, item := range p.items {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(item.Name)))
		b.WriteString(fmt.Sprintf("   %s\n", detailStyle.Render(item.Detail)))
	}

	b.WriteString("\n")
	b.WriteString(detailStyle.Render("j/k: move  Enter: open  q/Esc: cancel"))

	return b.String()
}

// SelectedItem returns the selected item, or nil if cancelled.
func (p Picker) SelectedItem() *Item {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.items) {
		return &p.items[p.cursor]
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
