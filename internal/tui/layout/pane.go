package layout

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateTwoPaneWidth computes the width of each pane in the two-pane
// manage layout.
func CalculateTwoPaneWidth(terminalWidth int, cfg PaneConfig) int {
	width := (terminalWidth - cfg.TwoPaneWidthOffset) / 2
	if width < cfg.MinPaneWidth {
		return cfg.MinPaneWidth
	}
	return width
}

// CalculateFullPaneWidth computes the width of the single full-width
// browse pane.
func CalculateFullPaneWidth(terminalWidth int, cfg PaneConfig) int {
	width := terminalWidth - cfg.TwoPaneWidthOffset
	if width < cfg.MinPaneWidth {
		return cfg.MinPaneWidth
	}
	return width
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateVisibleHeight computes the visible item count in a pane.
func CalculateVisibleHeight(paneHeight, headerLines int) int {
	height := paneHeight - headerLines
	if height < 1 {
		return 1
	}
	return height
}

// CalculateViewportOffset calculates the scroll offset needed to keep
// the selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
