// Package store holds the in-memory state containers behind the storefront
// API: the cart, the order history and the user profile. Each store owns its
// state exclusively and is driven by tagged command values dispatched to a
// pure transition function. Commands referencing unknown ids are silent
// no-ops — callers never handle errors from a dispatch.
package store

import (
	"sync"

	"quickmart-api/models"
)

// CartState is the working set of items a user intends to purchase. Total
// is always recomputed from the items, never mutated independently.
type CartState struct {
	Items []models.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// CartCommand is a tagged state transition for the cart.
type CartCommand interface{ isCartCommand() }

// AddItem puts an item into the cart. If an item with the same id is
// already present, its quantity is bumped in place instead of appending a
// duplicate line.
type AddItem struct {
	Item models.CartItem
}

// UpdateQuantity sets the quantity of the item matching ID. A quantity
// below 1 is ignored entirely: items are only ever removed through
// RemoveItem, never by decrementing to zero.
type UpdateQuantity struct {
	ID       string
	Quantity int
}

// RemoveItem drops the item matching ID. Idempotent.
type RemoveItem struct {
	ID string
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddItem) isCartCommand()        {}
func (UpdateQuantity) isCartCommand() {}
func (RemoveItem) isCartCommand()     {}
func (ClearCart) isCartCommand()      {}

func reduceCart(state CartState, cmd CartCommand) CartState {
	switch c := cmd.(type) {
	case AddItem:
		merged := false
		for i := range state.Items {
			if state.Items[i].ID == c.Item.ID {
				state.Items[i].Quantity += c.Item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			state.Items = append(state.Items, c.Item)
		}
	case UpdateQuantity:
		if c.Quantity < 1 {
			return state
		}
		for i := range state.Items {
			if state.Items[i].ID == c.ID {
				state.Items[i].Quantity = c.Quantity
				break
			}
		}
	case RemoveItem:
		kept := state.Items[:0]
		for _, item := range state.Items {
			if item.ID != c.ID {
				kept = append(kept, item)
			}
		}
		state.Items = kept
	case ClearCart:
		state.Items = nil
	}
	state.Total = cartTotal(state.Items)
	return state
}

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.LineTotal()
	}
	return total
}

// CartStore serialises cart commands. Dispatches are applied in the order
// they arrive; there is no batching or reordering.
type CartStore struct {
	mu    sync.Mutex
	state CartState
}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Dispatch applies one command to the cart.
func (s *CartStore) Dispatch(cmd CartCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceCart(s.state, cmd)
}

// State returns a snapshot of the cart. The items slice is copied so the
// caller cannot reach into the store's state.
func (s *CartStore) State() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.state
	snapshot.Items = append([]models.CartItem(nil), s.state.Items...)
	return snapshot
}
