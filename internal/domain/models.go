package domain

import "github.com/google/uuid"

// Block represents a named counter
type Block struct {
	ID    string
	Name  string
	Count int
}

// NewID returns a fresh collision-resistant block identifier
func NewID() string {
	return uuid.NewString()
}
