package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tallyho/internal/domain"
)

// BlockRenderer handles rendering of block rows
type BlockRenderer struct {
	styles  *Styles
	showIDs bool
}

// NewBlockRenderer creates a new block renderer
func NewBlockRenderer(styles *Styles, showIDs bool) *BlockRenderer {
	return &BlockRenderer{
		styles:  styles,
		showIDs: showIDs,
	}
}

// RenderBlock renders a single block row
func (r *BlockRenderer) RenderBlock(block domain.Block, isCursor bool,
	showCheckbox bool, isSelected bool, isPendingDelete bool) string {

	// Background color for the cursor row
	bgColor := ""
	if isCursor {
		bgColor = "238"
	}

	var parts []string

	// Checkbox, shown once anything is selected
	if showCheckbox {
		checkbox := "[ ]"
		if isSelected {
			checkbox = "[x]"
		}
		checkboxStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
		parts = append(parts, checkboxStyle.Render(checkbox))
		parts = append(parts, " ")
	}

	// Name, padded so the counts line up
	name := fmt.Sprintf("%-24s", block.Name)
	nameStyle := lipgloss.NewStyle().Background(lipgloss.Color(bgColor))
	if isPendingDelete {
		nameStyle = r.styles.Danger.Background(lipgloss.Color(bgColor))
	}
	parts = append(parts, nameStyle.Render(name))

	// Count
	countStyle := r.styles.Count.Background(lipgloss.Color(bgColor))
	parts = append(parts, countStyle.Render(fmt.Sprintf("%4d", block.Count)))

	// Short id suffix
	if r.showIDs {
		parts = append(parts, " ")
		parts = append(parts, r.styles.Dim.Render("#"+shortID(block.ID)))
	}

	return strings.Join(parts, "")
}

// shortID truncates an id for display
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
