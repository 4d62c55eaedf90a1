package state

// UIState contains the transient presentation state. Domain state lives in
// the board store; nothing in here is ever persisted.
type UIState struct {
	// Cursor and viewport
	Cursor         int // index of the row under the cursor
	ViewportOffset int // first visible row
	ViewportHeight int // rows available for the block list

	// Status bar message, replaced by the outcome of the last action
	StatusMessage string
	StatusIsError bool
}

// NewUIState creates a new UI state
func NewUIState() *UIState {
	return &UIState{
		ViewportHeight: 20, // Default until the first WindowSizeMsg
	}
}

// ClampCursor keeps the cursor inside the list bounds.
func (s *UIState) ClampCursor(count int) {
	if count == 0 {
		s.Cursor = 0
		return
	}
	if s.Cursor >= count {
		s.Cursor = count - 1
	}
	if s.Cursor < 0 {
		s.Cursor = 0
	}
}

// MoveCursor moves the cursor by delta within the list bounds and keeps it
// visible.
func (s *UIState) MoveCursor(delta, count int) {
	s.Cursor += delta
	s.ClampCursor(count)
	s.EnsureCursorVisible()
}

// CursorToTop jumps to the first row.
func (s *UIState) CursorToTop() {
	s.Cursor = 0
	s.EnsureCursorVisible()
}

// CursorToBottom jumps to the last row.
func (s *UIState) CursorToBottom(count int) {
	s.Cursor = count - 1
	s.ClampCursor(count)
	s.EnsureCursorVisible()
}

// EnsureCursorVisible scrolls the viewport so the cursor row is on screen.
func (s *UIState) EnsureCursorVisible() {
	if s.ViewportHeight <= 0 {
		return
	}
	if s.Cursor < s.ViewportOffset {
		s.ViewportOffset = s.Cursor
	}
	if s.Cursor >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.Cursor - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}

// PageUp moves the cursor up one viewport height.
func (s *UIState) PageUp(count int) {
	s.MoveCursor(-s.ViewportHeight, count)
}

// PageDown moves the cursor down one viewport height.
func (s *UIState) PageDown(count int) {
	s.MoveCursor(s.ViewportHeight, count)
}
