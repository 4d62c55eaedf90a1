package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBlockAdded        EventType = "BlockAdded"
	EventBlockRemoved      EventType = "BlockRemoved"
	EventBlocksIncremented EventType = "BlocksIncremented"
	EventSelectionChanged  EventType = "SelectionChanged"
	EventBoardCleared      EventType = "BoardCleared"
	EventBoardLoaded       EventType = "BoardLoaded"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventError             EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BlockAddedEvent is emitted when a new block is created
type BlockAddedEvent struct {
	Block Block
}

func (e BlockAddedEvent) Type() EventType { return EventBlockAdded }

// BlockRemovedEvent is emitted when a block is deleted
type BlockRemovedEvent struct {
	ID   string
	Name string
}

func (e BlockRemovedEvent) Type() EventType { return EventBlockRemoved }

// BlocksIncrementedEvent is emitted after a batch increment is applied
type BlocksIncrementedEvent struct {
	IDs []string // ids that were actually bumped (stale selections excluded)
}

func (e BlocksIncrementedEvent) Type() EventType { return EventBlocksIncremented }

// SelectionChangedEvent is emitted whenever the selection set changes
type SelectionChangedEvent struct {
	Count int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// BoardClearedEvent is emitted when the whole board is wiped
type BoardClearedEvent struct {
	Removed int
}

func (e BoardClearedEvent) Type() EventType { return EventBoardCleared }

// BoardLoadedEvent is emitted when the board is (re)loaded from storage
type BoardLoadedEvent struct {
	Count int
}

func (e BoardLoadedEvent) Type() EventType { return EventBoardLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
