package layout

// CalculateModalWidth computes responsive modal width based on a
// percentage of terminal width, clamped between MinWidth and MaxWidth.
func CalculateModalWidth(terminalWidth int, cfg ModalConfig) int {
	width := terminalWidth * cfg.WidthPercent / 100

	if width < cfg.MinWidth {
		width = cfg.MinWidth
	}
	if width > cfg.MaxWidth {
		width = cfg.MaxWidth
	}

	// Don't exceed terminal width
	if width > terminalWidth-4 {
		width = terminalWidth - 4
	}
	if width < 1 {
		return 1
	}

	return width
}

// CalculateVisibleListItems computes the start and end indices for a
// scrollable list. Returns (start, end) where items[start:end] should
// be displayed.
func CalculateVisibleListItems(maxVisible, selectedIdx, totalItems int) (start, end int) {
	if totalItems <= maxVisible {
		return 0, totalItems
	}

	if selectedIdx >= maxVisible {
		start = selectedIdx - maxVisible + 1
	}

	end = start + maxVisible
	if end > totalItems {
		end = totalItems
	}

	return start, end
}
