package board

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"tallyho/internal/domain"
	"tallyho/internal/eventbus"
	"tallyho/internal/storage"
)

// slotKey is the single storage slot holding the serialized collection.
const slotKey = "blocks"

// Domain error kinds. Both are non-fatal: a corrupt board falls back to
// empty on load, a failed save leaves the in-memory state authoritative
// for the rest of the session.
var (
	ErrCorruptBoard = errors.New("board: corrupt persisted state")
	ErrSaveFailed   = errors.New("board: save failed")
)

// Store owns the ordered block collection, the selection set and the
// pending-deletion reference. Mutations persist the full collection
// synchronously and are announced on the event bus.
type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	bus     eventbus.EventBus

	blocks   []domain.Block  // insertion order, preserved across round-trips
	selected map[string]bool // ids marked for the next batch increment
	pending  string          // id awaiting delete confirmation, "" if none
}

// NewStore creates a Store persisting through backend. bus may be nil.
func NewStore(backend storage.Backend, bus eventbus.EventBus) *Store {
	return &Store{
		backend:  backend,
		bus:      bus,
		selected: make(map[string]bool),
	}
}

// Add appends a new block named name with a fresh id and a zero count,
// then persists. The empty string is rejected; a name of only spaces is
// accepted (raw emptiness check, no trimming).
func (s *Store) Add(name string) (domain.Block, bool) {
	if name == "" {
		return domain.Block{}, false
	}

	s.mu.Lock()
	blk := domain.Block{ID: domain.NewID(), Name: name, Count: 0}
	s.blocks = append(s.blocks, blk)
	saveErr := s.persistLocked()
	s.mu.Unlock()

	s.reportSaveError(saveErr)
	s.publish(eventbus.BlockAddedEvent{Block: blk})
	return blk, true
}

// ToggleSelect flips membership of id in the selection set. Selection is
// never persisted, and ids absent from the collection are not validated.
func (s *Store) ToggleSelect(id string) {
	s.mu.Lock()
	if s.selected[id] {
		delete(s.selected, id)
	} else {
		s.selected[id] = true
	}
	count := len(s.selected)
	s.mu.Unlock()

	s.publish(eventbus.SelectionChangedEvent{Count: count})
}

// ConfirmIncrement bumps every selected block that still exists by exactly
// one, persists, then clears the selection unconditionally. Returns the
// number of blocks actually bumped; stale selected ids bump nothing.
func (s *Store) ConfirmIncrement() int {
	s.mu.Lock()
	bumped := make([]string, 0, len(s.selected))
	for i := range s.blocks {
		if s.selected[s.blocks[i].ID] {
			s.blocks[i].Count++
			bumped = append(bumped, s.blocks[i].ID)
		}
	}
	saveErr := s.persistLocked()
	s.selected = make(map[string]bool)
	s.mu.Unlock()

	s.reportSaveError(saveErr)
	s.publish(eventbus.BlocksIncrementedEvent{IDs: bumped})
	s.publish(eventbus.SelectionChangedEvent{Count: 0})
	return len(bumped)
}

// RequestDelete records id as the deletion candidate awaiting confirmation.
func (s *Store) RequestDelete(id string) {
	s.mu.Lock()
	s.pending = id
	s.mu.Unlock()
}

// ConfirmDelete removes the pending block from the collection, persists,
// prunes the id from the selection set and clears the pending reference.
// Removal of an id that no longer exists is a harmless no-op; with no
// pending id recorded the whole call does nothing.
func (s *Store) ConfirmDelete() (domain.Block, bool) {
	s.mu.Lock()
	if s.pending == "" {
		s.mu.Unlock()
		return domain.Block{}, false
	}
	id := s.pending
	s.pending = ""

	var removed domain.Block
	found := false
	for i := range s.blocks {
		if s.blocks[i].ID == id {
			removed = s.blocks[i]
			s.blocks = append(s.blocks[:i], s.blocks[i+1:]...)
			found = true
			break
		}
	}
	delete(s.selected, id)
	count := len(s.selected)
	saveErr := s.persistLocked()
	s.mu.Unlock()

	s.reportSaveError(saveErr)
	if !found {
		return domain.Block{}, false
	}
	s.publish(eventbus.BlockRemovedEvent{ID: removed.ID, Name: removed.Name})
	s.publish(eventbus.SelectionChangedEvent{Count: count})
	return removed, true
}

// CancelDelete clears the pending-deletion reference without touching the
// collection.
func (s *Store) CancelDelete() {
	s.mu.Lock()
	s.pending = ""
	s.mu.Unlock()
}

// ClearAll empties the collection and persists the empty state. The
// selection set and pending reference are reset too, so nothing keeps
// referencing vanished ids.
func (s *Store) ClearAll() int {
	s.mu.Lock()
	removed := len(s.blocks)
	s.blocks = nil
	s.selected = make(map[string]bool)
	s.pending = ""
	saveErr := s.persistLocked()
	s.mu.Unlock()

	s.reportSaveError(saveErr)
	s.publish(eventbus.BoardClearedEvent{Removed: removed})
	s.publish(eventbus.SelectionChangedEvent{Count: 0})
	return removed
}

// Load replaces the collection with the persisted one. An absent slot
// yields an empty board; corrupt bytes are logged and yield an empty
// board. Load never fails outward.
func (s *Store) Load() {
	var blocks []domain.Block
	var loadErr error

	data, ok, err := s.backend.Read(slotKey)
	switch {
	case err != nil:
		loadErr = err
	case ok:
		blocks, loadErr = decodeBlocks(data)
	}
	if loadErr != nil {
		log.Printf("Board load failed, starting empty: %v", loadErr)
		blocks = nil
	}

	s.mu.Lock()
	s.blocks = blocks
	s.selected = make(map[string]bool)
	s.pending = ""
	s.mu.Unlock()

	if loadErr != nil {
		s.publish(eventbus.ErrorEvent{Message: "load failed, starting empty", Err: loadErr})
	}
	s.publish(eventbus.BoardLoadedEvent{Count: len(blocks)})
}

// Save serializes the full collection and writes it to the storage slot.
// A write failure is reported but the in-memory state stays untouched.
func (s *Store) Save() {
	s.mu.RLock()
	saveErr := s.persistLocked()
	s.mu.RUnlock()

	s.reportSaveError(saveErr)
}

// Blocks returns the collection in insertion order as a copy.
func (s *Store) Blocks() []domain.Block {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// Len returns the number of blocks on the board.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}

// Get returns the block with the given id.
func (s *Store) Get(id string) (domain.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, blk := range s.blocks {
		if blk.ID == id {
			return blk, true
		}
	}
	return domain.Block{}, false
}

// IsSelected reports whether id is in the selection set.
func (s *Store) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[id]
}

// SelectionCount returns the size of the selection set.
func (s *Store) SelectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// SelectedIDs returns the selected ids in board order. Stale ids (selected
// but no longer on the board) are not included.
func (s *Store) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.selected))
	for _, blk := range s.blocks {
		if s.selected[blk.ID] {
			ids = append(ids, blk.ID)
		}
	}
	return ids
}

// PendingDelete returns the id awaiting delete confirmation, or "".
func (s *Store) PendingDelete() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

// persistLocked writes the current collection to the storage slot. Callers
// hold s.mu.
func (s *Store) persistLocked() error {
	data, err := encodeBlocks(s.blocks)
	if err != nil {
		return err
	}
	if err := s.backend.Write(slotKey, data); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return nil
}

func (s *Store) reportSaveError(err error) {
	if err == nil {
		return
	}
	log.Printf("Board save failed, keeping in-memory state: %v", err)
	s.publish(eventbus.ErrorEvent{Message: "save failed", Err: err})
}

func (s *Store) publish(event eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(event)
	}
}
