package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode. Exactly one mode is active at a time;
// the confirmation dialogs are modes, not overlays with hidden state.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddBlock
	ModeDeleteConfirm
	ModeClearConfirm
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalBlocks() int
	BlockIDAt(index int) string
	CurrentBlockID() string
	HasSelection() bool
	SelectedCount() int
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
