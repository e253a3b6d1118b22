package store

import (
	"context"
	"errors"

	"spice-pos/internal/domain"
)

var (
	ErrStateNotFound = errors.New("state not found")
)

// State is the durable portion of the engine: the menu catalog and the
// sales ledger. The in-progress cart is deliberately not persisted, so a
// restart always starts with an empty cart.
type State struct {
	MenuItems []domain.MenuItem `json:"menuItems"`
	Sales     []domain.Sale     `json:"sales"`
}

// Store persists the whole State document under a single fixed key.
type Store interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
}
