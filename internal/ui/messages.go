package ui

import (
	"tallyho/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct{}

// helpPagerMsg contains the result of showing help in the pager
type helpPagerMsg struct {
	err error
}
