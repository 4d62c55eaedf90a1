package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DialogRenderer renders the centered add-block dialog
type DialogRenderer struct {
	styles *Styles
}

// NewDialogRenderer creates a new dialog renderer
func NewDialogRenderer(styles *Styles) *DialogRenderer {
	return &DialogRenderer{styles: styles}
}

// RenderAddDialog renders the new-block prompt centered in the window.
// inputView is the already-rendered text input line.
func (d *DialogRenderer) RenderAddDialog(inputView string, width, height int) string {
	lines := []string{
		d.styles.DialogTitle.Render("New block"),
		"",
		"Name",
		strings.TrimSuffix(inputView, "\n"),
		"",
		d.styles.Dim.Render("Enter add · Esc cancel"),
	}

	panel := d.styles.DialogBox.Width(dialogWidth(width)).Render(strings.Join(lines, "\n"))
	if width <= 0 || height <= 0 {
		return panel
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}

// dialogWidth keeps the panel readable on narrow terminals
func dialogWidth(width int) int {
	w := 40
	if width > 0 && width-4 < w {
		w = width - 4
	}
	if w < 20 {
		w = 20
	}
	return w
}
