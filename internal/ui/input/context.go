package input

import (
	"tallyho/internal/board"
	"tallyho/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.UIState
	Store *board.Store
}

// CurrentIndex returns the cursor position
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalBlocks returns the number of blocks on the board
func (c *ModelContext) TotalBlocks() int {
	return c.Store.Len()
}

// BlockIDAt returns the id of the block at the given index, or "" when
// the index is out of range
func (c *ModelContext) BlockIDAt(index int) string {
	blocks := c.Store.Blocks()
	if index < 0 || index >= len(blocks) {
		return ""
	}
	return blocks[index].ID
}

// CurrentBlockID returns the id of the block under the cursor
func (c *ModelContext) CurrentBlockID() string {
	return c.BlockIDAt(c.CurrentIndex())
}

// HasSelection returns true if any blocks are selected
func (c *ModelContext) HasSelection() bool {
	return c.Store.SelectionCount() > 0
}

// SelectedCount returns the number of selected blocks
func (c *ModelContext) SelectedCount() int {
	return c.Store.SelectionCount()
}
