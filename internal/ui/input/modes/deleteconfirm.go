package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"tallyho/internal/ui/input/types"
)

// DeleteConfirmMode asks before removing the block marked for deletion.
// The pending target itself lives in the board store, set when the mode
// was entered.
type DeleteConfirmMode struct{}

func NewDeleteConfirmMode() *DeleteConfirmMode {
	return &DeleteConfirmMode{}
}

func (m *DeleteConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *DeleteConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DeleteConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DeleteConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		// Confirm deletion
		return []types.Action{
			types.ConfirmDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc":
		// Cancel deletion
		return []types.Action{
			types.CancelDeleteAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	return nil, false
}
