package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hub/internal/catalog"
	"hub/internal/model"
	"hub/internal/tui/layout"
)

// renderView creates the complete view for the current mode.
func (a App) renderView() string {
	if a.mode != ModeNormal {
		return a.renderModal()
	}

	var body string
	if a.view == ViewManage {
		body = a.renderManage()
	} else {
		body = a.renderBrowse()
	}

	bottom := a.renderHints(a.contextualHints())
	if a.status != "" {
		bottom = a.styles.Status.Render(a.status) + "\n" + bottom
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), body, bottom),
	)

	// Place to exact terminal dimensions to prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the app title and view name.
func (a App) renderHeader() string {
	name := "browse"
	if a.view == ViewManage {
		name = "manage"
	}
	return a.styles.Title.Render("hub") + a.styles.Detail.Render(" · "+name)
}

// renderManage renders the two-pane management surface.
func (a App) renderManage() string {
	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	paneWidth := layout.CalculateTwoPaneWidth(a.width, a.layoutConfig.Pane)

	left := a.renderFolderPane(paneWidth, paneHeight)
	right := a.renderAppPane(paneWidth, paneHeight)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderFolderPane renders the folder list.
func (a App) renderFolderPane(width, height int) string {
	var content strings.Builder
	content.WriteString(a.styles.Title.Render("Folders") + "\n\n")

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	visible := layout.CalculateVisibleHeight(height, a.layoutConfig.Pane.HeaderReduction)

	if len(a.folders) == 0 {
		content.WriteString(a.styles.Empty.Render("(no folders, press a to add one)"))
	} else {
		offset := layout.CalculateViewportOffset(a.folderCursor, len(a.folders), visible)
		for i, f := range a.folders {
			if i < offset {
				continue
			}
			if i >= offset+visible {
				break
			}
			selected := a.pane == PaneFolders && i == a.folderCursor
			content.WriteString(a.renderFolderItem(f, selected, itemWidth) + "\n")
		}
	}

	return a.paneStyle(a.pane == PaneFolders).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderFolderItem renders one folder row: colored marker, name, app count.
func (a App) renderFolderItem(f model.Folder, selected bool, maxWidth int) string {
	count := fmt.Sprintf(" (%d)", len(f.Apps))
	line, _ := layout.TruncateWithPrefixSuffix(f.Name, maxWidth-2, "", count, a.layoutConfig.Text)

	marker := lipgloss.NewStyle().Foreground(lipgloss.Color(f.Color)).Render("■")

	if selected {
		for layout.VisibleLength(line) < maxWidth-2 {
			line += " "
		}
		return marker + " " + a.styles.ItemSelected.Render(line)
	}
	return marker + " " + a.styles.Item.Render(line)
}

// renderAppPane renders the app list of the selected folder.
func (a App) renderAppPane(width, height int) string {
	var content strings.Builder

	f := a.currentFolder()
	title := "Apps"
	if f != nil {
		title = "Apps · " + f.Name
	}
	content.WriteString(a.styles.Title.Render(title) + "\n\n")

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	visible := layout.CalculateVisibleHeight(height, a.layoutConfig.Pane.HeaderReduction)

	apps := a.currentApps()
	if len(apps) == 0 {
		content.WriteString(a.styles.Empty.Render("(no apps, press a to add one)"))
	} else {
		offset := layout.CalculateViewportOffset(a.appCursor, len(apps), visible)
		for i, app := range apps {
			if i < offset {
				continue
			}
			if i >= offset+visible {
				break
			}
			selected := a.pane == PaneApps && i == a.appCursor
			content.WriteString(a.renderAppItem(app, selected, itemWidth) + "\n")
		}
	}

	return a.paneStyle(a.pane == PaneApps).
		Width(width).
		Height(height).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderAppItem renders one app row with its description or URL.
func (a App) renderAppItem(app model.App, selected bool, maxWidth int) string {
	text := displayName(app)
	if detail := appDetail(app); detail != "" {
		text += "  " + detail
	}
	line, _ := layout.TruncateText(text, maxWidth, a.layoutConfig.Text)

	if selected {
		for layout.VisibleLength(line) < maxWidth {
			line += " "
		}
		return a.styles.ItemSelected.Render(line)
	}
	return a.styles.Item.Render(line)
}

func appDetail(app model.App) string {
	if app.Description != "" {
		return app.Description
	}
	return app.URL
}

// renderBrowse renders the chip row and the selected list.
func (a App) renderBrowse() string {
	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	paneWidth := layout.CalculateFullPaneWidth(a.width, a.layoutConfig.Pane)

	chips := a.renderChips()

	var content strings.Builder
	itemWidth := layout.CalculateItemWidth(paneWidth, a.layoutConfig.Pane)
	visible := layout.CalculateVisibleHeight(paneHeight, a.layoutConfig.Pane.HeaderReduction)

	if f := a.chipFolder(); f != nil {
		if len(f.Apps) == 0 {
			content.WriteString(a.styles.Empty.Render("No apps in this folder yet. Press tab to manage folders."))
		} else {
			offset := layout.CalculateViewportOffset(a.browseCursor, len(f.Apps), visible)
			for i, app := range f.Apps {
				if i < offset {
					continue
				}
				if i >= offset+visible {
					break
				}
				content.WriteString(a.renderAppItem(app, i == a.browseCursor, itemWidth) + "\n")
			}
		}
	} else {
		entries := catalog.Filter(a.selectedChip().Label, nil, "")
		offset := layout.CalculateViewportOffset(a.browseCursor, len(entries), visible)
		for i, entry := range entries {
			if i < offset {
				continue
			}
			if i >= offset+visible {
				break
			}
			content.WriteString(a.renderCatalogItem(entry, i == a.browseCursor, itemWidth) + "\n")
		}
	}

	pane := a.styles.PaneActive.
		Width(paneWidth).
		Height(paneHeight).
		Render(strings.TrimRight(content.String(), "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, chips, pane)
}

// renderChips renders the selectable filter row: built-in areas plus
// custom folders.
func (a App) renderChips() string {
	parts := make([]string, len(a.chips))
	for i, chip := range a.chips {
		label := chip.Label
		if chip.IsFolder() {
			marker := lipgloss.NewStyle().Foreground(lipgloss.Color(chip.Color)).Render("●")
			label = marker + " " + label
		}
		if i == a.chipIdx {
			parts[i] = a.styles.ChipSelected.Render(label)
		} else {
			parts[i] = a.styles.Chip.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderCatalogItem renders one built-in catalog entry. The badge keeps
// its own style on unselected rows; the selection highlight flattens it.
func (a App) renderCatalogItem(entry catalog.Entry, selected bool, maxWidth int) string {
	text := entry.Title + "  " + entry.Description
	badge := ""
	if entry.Badge != catalog.BadgeNone {
		badge = "  [" + string(entry.Badge) + "]"
	}
	line, _ := layout.TruncateText(text, maxWidth-len(badge), a.layoutConfig.Text)

	if selected {
		line += badge
		for layout.VisibleLength(line) < maxWidth {
			line += " "
		}
		return a.styles.ItemSelected.Render(line)
	}
	out := a.styles.Item.Render(line)
	if badge != "" {
		out += a.styles.Badge.Render(badge)
	}
	return out
}

// renderModal renders the current modal dialog.
func (a App) renderModal() string {
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	modalStyle := a.styles.PaneActive.
		Padding(1, 2).
		Width(modalWidth)

	var b strings.Builder

	switch a.mode {
	case ModeAddFolder:
		b.WriteString(a.styles.Title.Render("Add Folder") + "\n\n")
		b.WriteString("Name:\n" + a.form.NameInput.View() + "\n\n")
		b.WriteString("Color:\n" + a.form.ColorInput.View())

	case ModeEditFolder:
		b.WriteString(a.styles.Title.Render("Edit Folder") + "\n\n")
		b.WriteString("Name:\n" + a.form.NameInput.View() + "\n\n")
		b.WriteString("Color:\n" + a.form.ColorInput.View())

	case ModeAddApp:
		b.WriteString(a.styles.Title.Render("Add App") + "\n\n")
		b.WriteString("Name:\n" + a.form.NameInput.View() + "\n\n")
		b.WriteString("Description:\n" + a.form.DescInput.View() + "\n\n")
		b.WriteString("URL:\n" + a.form.URLInput.View())

	case ModeEditApp:
		b.WriteString(a.styles.Title.Render("Edit App") + "\n\n")
		b.WriteString("Name:\n" + a.form.NameInput.View() + "\n\n")
		b.WriteString("Description:\n" + a.form.DescInput.View() + "\n\n")
		b.WriteString("URL:\n" + a.form.URLInput.View())

	case ModeConfirmDelete:
		b.WriteString(a.styles.Title.Render("Confirm") + "\n\n")
		b.WriteString(a.confirm.Prompt)
	}

	b.WriteString("\n\n")
	b.WriteString(a.renderHintsInline(a.modalHints()))

	modal := modalStyle.Render(b.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

func (a App) paneStyle(active bool) lipgloss.Style {
	if active {
		return a.styles.PaneActive
	}
	return a.styles.Pane
}
