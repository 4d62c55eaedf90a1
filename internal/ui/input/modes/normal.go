package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tallyho/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		// In normal mode, Esc doesn't do anything
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter toggles selection on the block under the cursor
		if ctx.CurrentBlockID() != "" {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case " ":
		// Space toggles selection on the block under the cursor
		if ctx.CurrentBlockID() != "" {
			return []types.Action{types.ToggleSelectAction{}}, true
		}
		return nil, false

	case "a":
		// Add a new block
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAddBlock}}, true

	case "+":
		// Bump every selected block by one
		if ctx.HasSelection() {
			return []types.Action{types.ConfirmIncrementAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "d", "x":
		// Delete the block under the cursor (after confirmation)
		if id := ctx.CurrentBlockID(); id != "" {
			return []types.Action{
				types.RequestDeleteAction{ID: id},
				types.ChangeModeAction{Mode: types.ModeDeleteConfirm},
			}, true
		}
		return nil, false

	case "C":
		// Clear the whole board (after confirmation)
		if ctx.TotalBlocks() > 0 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true
		}
		return nil, false

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		// Quit
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		} else {
			// First g, wait for next key
			m.lastKeyWasG = true
			m.lastGTime = time.Now()
			return nil, true // consume the key but don't do anything
		}

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
