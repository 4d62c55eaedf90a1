package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Harness drives a Model outside a running Bubble Tea program. Tests
// feed messages through Send and inspect the resulting state and view.
type Harness struct {
	model *Model
}

// NewHarness wraps model for programmatic message delivery.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes msg through the model's Update and follows any returned
// commands until they settle.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

// processCmd executes commands and feeds their messages back into the
// model, expanding batches along the way.
func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := h.runCmd(cmd)
		if msg == nil {
			return
		}

		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				h.processCmd(sub)
			}
			return
		}

		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		cmd = next
	}
}

// runCmd invokes cmd, abandoning it if it does not produce a message
// promptly. Status expiry timers and cursor blinks run on multi-second
// schedules and would otherwise stall every Send.
func (h *Harness) runCmd(cmd tea.Cmd) tea.Msg {
	result := make(chan tea.Msg, 1)
	go func() {
		result <- cmd()
	}()

	select {
	case msg := <-result:
		return msg
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// View renders the model's current view.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model returns the wrapped model for direct inspection.
func (h *Harness) Model() *Model {
	return h.model
}
