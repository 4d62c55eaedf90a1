package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"tallyho/internal/board"
	"tallyho/internal/config"
	"tallyho/internal/eventbus"
	"tallyho/internal/ui/input"
	inputtypes "tallyho/internal/ui/input/types"
	"tallyho/internal/ui/state"
	"tallyho/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  *board.Store
	state  *state.UIState // transient presentation state

	// UI-specific state not in UIState
	width  int
	height int
	help   help.Model
	keys   KeyMap

	renderer     *views.Renderer // view renderer
	inputHandler *input.Handler  // input handling
	helpOps      *HelpOps        // pager-based help

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *board.Store) *Model {
	return &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		state:        state.NewUIState(),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		renderer:     views.NewRenderer(cfg.UI.ShowIDs),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetSize seeds the window dimensions before the first WindowSizeMsg arrives
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.updateViewportHeight()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()

	case tea.KeyMsg:
		// Create context for input handler
		ctx := &input.ModelContext{
			State: m.state,
			Store: m.store,
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		// Component messages (cursor blink) go to the input handler first
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	blocks := m.store.Blocks()

	selected := make(map[string]bool)
	for _, id := range m.store.SelectedIDs() {
		selected[id] = true
	}

	// The bump hint only applies while something is selected
	m.keys.Increment.SetEnabled(len(selected) > 0)

	pendingID := m.store.PendingDelete()
	pendingName := ""
	if pendingID != "" {
		if block, ok := m.store.Get(pendingID); ok {
			pendingName = block.Name
		}
	}

	textInput := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		textInput = ti.View()
	}

	return m.renderer.Render(views.ViewState{
		Width:             m.width,
		Height:            m.height,
		Blocks:            blocks,
		Cursor:            m.state.Cursor,
		Selected:          selected,
		SelectedCount:     len(selected),
		PendingDelete:     pendingID,
		PendingDeleteName: pendingName,
		Mode:              m.inputHandler.CurrentMode(),
		TextInput:         textInput,
		StatusMessage:     m.state.StatusMessage,
		StatusIsError:     m.state.StatusIsError,
		HelpView:          m.help.View(m.keys),
		ViewportOffset:    m.state.ViewportOffset,
		ViewportHeight:    m.state.ViewportHeight,
	})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		count := m.store.Len()
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1, count)
		case "down":
			m.state.MoveCursor(1, count)
		case "home":
			m.state.CursorToTop()
		case "end":
			m.state.CursorToBottom(count)
		case "pageup":
			m.state.PageUp(count)
		case "pagedown":
			m.state.PageDown(count)
		}

	case inputtypes.ToggleSelectAction:
		if id := m.blockIDAt(m.state.Cursor); id != "" {
			m.store.ToggleSelect(id)
		}

	case inputtypes.ConfirmIncrementAction:
		if n := m.store.ConfirmIncrement(); n > 0 {
			m.setStatus(fmt.Sprintf("Bumped %d block(s)", n), false)
			return m.clearStatusAfter()
		}

	case inputtypes.RequestDeleteAction:
		m.store.RequestDelete(a.ID)

	case inputtypes.ConfirmDeleteAction:
		if block, ok := m.store.ConfirmDelete(); ok {
			m.state.ClampCursor(m.store.Len())
			m.state.EnsureCursorVisible()
			m.setStatus(fmt.Sprintf("Deleted '%s'", block.Name), false)
			return m.clearStatusAfter()
		}

	case inputtypes.CancelDeleteAction:
		m.store.CancelDelete()

	case inputtypes.ClearAllAction:
		n := m.store.ClearAll()
		m.state.CursorToTop()
		m.setStatus(fmt.Sprintf("Cleared %d block(s)", n), false)
		return m.clearStatusAfter()

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeAddBlock {
			if block, ok := m.store.Add(a.Text); ok {
				// Put the cursor on the new block at the end of the list
				m.state.Cursor = m.store.Len() - 1
				m.state.EnsureCursorVisible()
				m.setStatus(fmt.Sprintf("Added '%s'", block.Name), false)
				return m.clearStatusAfter()
			}
		}

	case inputtypes.CancelTextAction:
		// The input handler resets its own text field

	case inputtypes.UpdateTextAction:
		// Text input state lives in the input handler

	case inputtypes.ToggleHelpAction:
		return m.fetchHelpPager(buildHelpContent())

	case inputtypes.QuitAction:
		if !a.Force {
			m.store.Save()
		}
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		m.state.StatusIsError = false
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.BoardLoadedEvent:
		if e.Count > 0 {
			m.setStatus(fmt.Sprintf("Loaded %d block(s)", e.Count), false)
			return m.clearStatusAfter()
		}

	case eventbus.ErrorEvent:
		// Errors stay on the status line until the next action replaces them
		m.setStatus(e.Message, true)
	}

	return nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: m.helpOps.ShowHelpInPager(helpContent)}
	}
}

// blockIDAt returns the id of the block at the given list index
func (m *Model) blockIDAt(index int) string {
	blocks := m.store.Blocks()
	if index < 0 || index >= len(blocks) {
		return ""
	}
	return blocks[index].ID
}

// setStatus replaces the status line
func (m *Model) setStatus(message string, isError bool) {
	m.state.StatusMessage = message
	m.state.StatusIsError = isError
}

// clearStatusAfter returns a command that clears the status line after a delay
func (m *Model) clearStatusAfter() tea.Cmd {
	return tea.Tick(3*time.Second, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// updateViewportHeight calculates the available height for the block list
func (m *Model) updateViewportHeight() {
	// Account for title (2 lines), status (2 lines), help (1 line), and padding
	reservedLines := 7

	m.state.ViewportHeight = m.height - reservedLines
	if m.state.ViewportHeight < 1 {
		m.state.ViewportHeight = 1
	}

	// Ensure viewport offset is still valid
	m.state.EnsureCursorVisible()
}
