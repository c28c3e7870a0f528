package store

import (
	"sync"

	"quickmart-api/models"
)

// OrderState holds every order placed in this session plus a pointer to the
// one currently being tracked. CurrentOrder is an independent copy of its
// list entry, not an alias: UpdateOrderStatus keeps the two in sync
// explicitly.
type OrderState struct {
	Orders       []models.Order `json:"orders"`
	CurrentOrder *models.Order  `json:"current_order"`
}

// OrderCommand is a tagged state transition for the order history.
type OrderCommand interface{ isOrderCommand() }

// CreateOrder appends a new order and makes it current. Id uniqueness is
// the caller's responsibility; the store does not generate ids nor reject
// duplicates.
type CreateOrder struct {
	Order models.Order
}

// UpdateOrderStatus replaces the status of the order matching OrderID, in
// the list and — when it refers to the same order — in CurrentOrder too.
// Unknown ids are ignored.
type UpdateOrderStatus struct {
	OrderID string
	Status  models.OrderStatus
}

// SetCurrentOrder assigns the current order directly, without checking it
// against the order list. Pass nil to clear.
type SetCurrentOrder struct {
	Order *models.Order
}

// ClearOrders wipes the history and the current order.
type ClearOrders struct{}

func (CreateOrder) isOrderCommand()       {}
func (UpdateOrderStatus) isOrderCommand() {}
func (SetCurrentOrder) isOrderCommand()   {}
func (ClearOrders) isOrderCommand()       {}

func reduceOrder(state OrderState, cmd OrderCommand) OrderState {
	switch c := cmd.(type) {
	case CreateOrder:
		order := copyOrder(c.Order)
		state.Orders = append(state.Orders, order)
		current := copyOrder(order)
		state.CurrentOrder = &current
	case UpdateOrderStatus:
		for i := range state.Orders {
			if state.Orders[i].ID == c.OrderID {
				state.Orders[i].Status = c.Status
				break
			}
		}
		if state.CurrentOrder != nil && state.CurrentOrder.ID == c.OrderID {
			current := copyOrder(*state.CurrentOrder)
			current.Status = c.Status
			state.CurrentOrder = &current
		}
	case SetCurrentOrder:
		if c.Order == nil {
			state.CurrentOrder = nil
		} else {
			current := copyOrder(*c.Order)
			state.CurrentOrder = &current
		}
	case ClearOrders:
		state.Orders = nil
		state.CurrentOrder = nil
	}
	return state
}

// copyOrder deep-copies an order so snapshots never share item slices.
func copyOrder(o models.Order) models.Order {
	o.Items = append([]models.CartItem(nil), o.Items...)
	return o
}

// OrderStore serialises order commands.
type OrderStore struct {
	mu    sync.Mutex
	state OrderState
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

// Dispatch applies one command to the order history.
func (s *OrderStore) Dispatch(cmd OrderCommand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = reduceOrder(s.state, cmd)
}

// State returns a deep snapshot of the order history.
func (s *OrderStore) State() OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := OrderState{}
	for _, o := range s.state.Orders {
		snapshot.Orders = append(snapshot.Orders, copyOrder(o))
	}
	if s.state.CurrentOrder != nil {
		current := copyOrder(*s.state.CurrentOrder)
		snapshot.CurrentOrder = &current
	}
	return snapshot
}

// Find returns a copy of the order matching id, and false when absent.
func (s *OrderStore) Find(id string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.state.Orders {
		if o.ID == id {
			return copyOrder(o), true
		}
	}
	return models.Order{}, false
}
