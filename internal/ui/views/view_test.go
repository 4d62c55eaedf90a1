package views

import (
	"fmt"
	"strings"
	"testing"

	"tallyho/internal/domain"
	"tallyho/internal/ui/input/types"
)

func testBlocks() []domain.Block {
	return []domain.Block{
		{ID: "id-aaaa-1111", Name: "water", Count: 3},
		{ID: "id-bbbb-2222", Name: "coffee", Count: 0},
	}
}

func baseState() ViewState {
	return ViewState{
		Width:          80,
		Height:         24,
		Blocks:         testBlocks(),
		Selected:       map[string]bool{},
		ViewportHeight: 15,
	}
}

func TestRenderEmptyBoard(t *testing.T) {
	r := NewRenderer(false)
	st := baseState()
	st.Blocks = nil

	view := r.Render(st)

	if !strings.Contains(view, "tallyho") {
		t.Fatal("view missing title")
	}
	if !strings.Contains(view, "0 block(s)") {
		t.Fatal("view missing block count")
	}
	if !strings.Contains(view, "No blocks yet. Press a to add one.") {
		t.Fatal("view missing empty board hint")
	}
}

func TestRenderBlockRows(t *testing.T) {
	r := NewRenderer(false)
	view := r.Render(baseState())

	if !strings.Contains(view, fmt.Sprintf("%-24s%4d", "water", 3)) {
		t.Fatalf("view missing the water row:\n%s", view)
	}
	if !strings.Contains(view, fmt.Sprintf("%-24s%4d", "coffee", 0)) {
		t.Fatalf("view missing the coffee row:\n%s", view)
	}
	if !strings.Contains(view, "2 block(s)") {
		t.Fatal("view missing block count")
	}
}

func TestRenderCheckboxesOnlyWithSelection(t *testing.T) {
	r := NewRenderer(false)

	st := baseState()
	view := r.Render(st)
	if strings.Contains(view, "[ ]") || strings.Contains(view, "[x]") {
		t.Fatal("checkboxes should be hidden without a selection")
	}

	st.Selected = map[string]bool{"id-aaaa-1111": true}
	st.SelectedCount = 1
	view = r.Render(st)
	if !strings.Contains(view, "[x] ") {
		t.Fatal("selected row missing its checkbox")
	}
	if !strings.Contains(view, "[ ] ") {
		t.Fatal("unselected row missing its placeholder checkbox")
	}
	if !strings.Contains(view, "1 selected") {
		t.Fatal("title missing selection count")
	}
}

func TestRenderDeleteConfirmPrompt(t *testing.T) {
	r := NewRenderer(false)
	st := baseState()
	st.Mode = types.ModeDeleteConfirm
	st.PendingDelete = "id-aaaa-1111"
	st.PendingDeleteName = "water"

	view := r.Render(st)

	if !strings.Contains(view, "Delete block 'water'? (y/n): ") {
		t.Fatalf("view missing delete prompt:\n%s", view)
	}
	// The board stays visible behind the prompt
	if !strings.Contains(view, "coffee") {
		t.Fatal("block list should stay visible during delete confirm")
	}
}

func TestRenderClearConfirmPrompt(t *testing.T) {
	r := NewRenderer(false)
	st := baseState()
	st.Mode = types.ModeClearConfirm

	view := r.Render(st)

	if !strings.Contains(view, "Clear all 2 block(s)? (y/n): ") {
		t.Fatalf("view missing clear prompt:\n%s", view)
	}
}

func TestRenderAddDialogReplacesBoard(t *testing.T) {
	r := NewRenderer(false)
	st := baseState()
	st.Mode = types.ModeAddBlock
	st.TextInput = "> groceries"

	view := r.Render(st)

	if !strings.Contains(view, "New block") {
		t.Fatalf("view missing dialog title:\n%s", view)
	}
	if !strings.Contains(view, "groceries") {
		t.Fatal("view missing typed text")
	}
	if strings.Contains(view, "water") {
		t.Fatal("board should be hidden while the dialog is open")
	}
}

func TestRenderScrollIndicators(t *testing.T) {
	r := NewRenderer(false)
	st := baseState()

	blocks := make([]domain.Block, 30)
	for i := range blocks {
		blocks[i] = domain.Block{ID: fmt.Sprintf("id-%02d", i), Name: fmt.Sprintf("block-%02d", i)}
	}
	st.Blocks = blocks
	st.ViewportOffset = 10
	st.ViewportHeight = 5
	st.Cursor = 12

	view := r.Render(st)

	if !strings.Contains(view, "10 more above") {
		t.Fatalf("view missing top scroll indicator:\n%s", view)
	}
	if !strings.Contains(view, "more below") {
		t.Fatalf("view missing bottom scroll indicator:\n%s", view)
	}
}

func TestRenderStatusAndHelpFooter(t *testing.T) {
	r := NewRenderer(false)
	st := baseState()
	st.StatusMessage = "Added 'water'"

	view := r.Render(st)
	if !strings.Contains(view, "Added 'water'") {
		t.Fatal("view missing status message")
	}
	if !strings.Contains(view, "Press ? for help") {
		t.Fatal("view missing default help hint")
	}

	st.HelpView = "a add · q quit"
	view = r.Render(st)
	if !strings.Contains(view, "a add · q quit") {
		t.Fatal("view missing help footer")
	}
	if strings.Contains(view, "Press ? for help") {
		t.Fatal("default hint should be replaced by the help footer")
	}
}

func TestRenderShortIDSuffix(t *testing.T) {
	r := NewRenderer(true)
	view := r.Render(baseState())

	if !strings.Contains(view, "#id-aaaa-") {
		t.Fatalf("view missing short id suffix:\n%s", view)
	}
}
