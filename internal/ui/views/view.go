package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tallyho/internal/domain"
	"tallyho/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width             int
	Height            int
	Blocks            []domain.Block
	Cursor            int
	Selected          map[string]bool
	SelectedCount     int
	PendingDelete     string
	PendingDeleteName string
	Mode              types.Mode
	TextInput         string
	StatusMessage     string
	StatusIsError     bool
	HelpView          string
	ViewportOffset    int
	ViewportHeight    int
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	blockRender  *BlockRenderer
	dialogRender *DialogRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(showIDs bool) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		blockRender:  NewBlockRenderer(styles, showIDs),
		dialogRender: NewDialogRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	// The add prompt replaces the board while it is open
	if state.Mode == types.ModeAddBlock {
		return r.dialogRender.RenderAddDialog(state.TextInput, state.Width, state.Height)
	}

	content := &strings.Builder{}

	// Title with right-aligned board summary
	logo := r.styles.Title.Render("tallyho")

	rightContent := r.styles.Dim.Render(fmt.Sprintf("%d block(s)", len(state.Blocks)))
	if state.SelectedCount > 0 {
		rightContent = fmt.Sprintf("%s  %s", rightContent,
			r.styles.Dim.Render(fmt.Sprintf("%d selected", state.SelectedCount)))
	}

	logoWidth := lipgloss.Width(logo)
	rightWidth := lipgloss.Width(rightContent)
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80 // Default terminal width
	}
	availableWidth := termWidth - 4 // Account for main container padding
	paddingWidth := availableWidth - logoWidth - rightWidth

	var titleLine string
	if paddingWidth > 0 {
		titleLine = fmt.Sprintf("%s%s%s", logo, strings.Repeat(" ", paddingWidth), rightContent)
	} else {
		// If not enough space, just show with minimal spacing
		titleLine = fmt.Sprintf("%s  %s", logo, rightContent)
	}

	content.WriteString(titleLine)
	content.WriteString("\n")

	// Confirmation prompts stay inline so the board remains visible
	switch state.Mode {
	case types.ModeDeleteConfirm:
		if state.PendingDeleteName != "" {
			content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Delete block '%s'? (y/n): ", state.PendingDeleteName)))
			content.WriteString("\n")
		}
	case types.ModeClearConfirm:
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Clear all %d block(s)? (y/n): ", len(state.Blocks))))
		content.WriteString("\n")
	}

	// Main content
	if len(state.Blocks) == 0 {
		content.WriteString(r.styles.Dim.Render("No blocks yet. Press a to add one."))
	} else {
		content.WriteString(r.renderBlockList(state))
	}

	// Footer: status line plus key hints, pushed to the bottom
	footerLines := []string{}
	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		footerLines = append(footerLines, style.Render(state.StatusMessage))
	}
	if state.HelpView != "" {
		footerLines = append(footerLines, state.HelpView)
	} else {
		footerLines = append(footerLines, r.styles.Help.Render("Press ? for help"))
	}

	currentLines := strings.Count(content.String(), "\n") + 1

	// Account for container padding (1 top, 1 bottom from Padding(1, 2))
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22 // Default terminal height minus padding
	}

	paddingNeeded := availableLines - currentLines - len(footerLines)
	if paddingNeeded > 0 {
		content.WriteString(strings.Repeat("\n", paddingNeeded))
	}
	for _, line := range footerLines {
		content.WriteString("\n")
		content.WriteString(line)
	}

	mainStyle := r.styles.Main.MaxHeight(state.Height)
	return mainStyle.Render(content.String())
}

// renderBlockList renders the scrollable list of blocks
func (r *Renderer) renderBlockList(state ViewState) string {
	var lines []string
	showCheckbox := state.SelectedCount > 0

	visibleLines := make([]string, 0)
	for i, block := range state.Blocks {
		if i < state.ViewportOffset {
			continue
		}
		line := r.blockRender.RenderBlock(
			block,
			i == state.Cursor,
			showCheckbox,
			state.Selected[block.ID],
			block.ID == state.PendingDelete,
		)
		visibleLines = append(visibleLines, line)
	}

	// Calculate effective height
	total := len(state.Blocks)
	effectiveHeight := state.ViewportHeight
	needsTopIndicator := state.ViewportOffset > 0
	needsBottomIndicator := len(visibleLines) > effectiveHeight || total > state.ViewportOffset+state.ViewportHeight

	if needsTopIndicator {
		effectiveHeight--
	}
	if needsBottomIndicator {
		effectiveHeight--
	}

	if needsTopIndicator {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", state.ViewportOffset)))
	}

	// Add visible lines (up to effective height)
	for i := 0; i < effectiveHeight && i < len(visibleLines); i++ {
		lines = append(lines, visibleLines[i])
	}

	if needsBottomIndicator {
		itemsBelow := total - (state.ViewportOffset + effectiveHeight)
		if itemsBelow < 0 {
			itemsBelow = 0
		}
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", itemsBelow)))
	}

	return strings.Join(lines, "\n")
}
