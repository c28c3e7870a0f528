package store

import (
	"testing"

	"quickmart-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milk() models.CartItem {
	return models.CartItem{ID: "milk-1", Name: "Amul Taaza Toned Fresh Milk", Price: 28, Quantity: 1, Image: "products/milk.png"}
}

func bread() models.CartItem {
	return models.CartItem{ID: "bread-1", Name: "Harvest Gold White Bread", Price: 45, Quantity: 2, Image: "products/bread.png"}
}

func TestCartAddAndTotal(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})

	state := s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 28.0, state.Total)

	s.Dispatch(UpdateQuantity{ID: "milk-1", Quantity: 3})
	state = s.State()
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 84.0, state.Total)

	// Below 1 is a no-op: the item stays with its current quantity
	s.Dispatch(UpdateQuantity{ID: "milk-1", Quantity: 0})
	state = s.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Equal(t, 84.0, state.Total)
}

func TestCartAddExistingMergesQuantity(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})
	s.Dispatch(AddItem{Item: milk()})

	state := s.State()
	require.Len(t, state.Items, 1, "same id must never duplicate a line")
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 56.0, state.Total)
}

func TestCartTotalAlwaysRecomputed(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})
	s.Dispatch(AddItem{Item: bread()})
	s.Dispatch(UpdateQuantity{ID: "bread-1", Quantity: 1})
	s.Dispatch(RemoveItem{ID: "milk-1"})

	state := s.State()
	var want float64
	for _, item := range state.Items {
		want += item.Price * float64(item.Quantity)
	}
	assert.Equal(t, want, state.Total)
}

func TestCartRemoveIsIdempotent(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})
	s.Dispatch(AddItem{Item: bread()})

	s.Dispatch(RemoveItem{ID: "milk-1"})
	once := s.State()
	s.Dispatch(RemoveItem{ID: "milk-1"})
	twice := s.State()

	assert.Equal(t, once, twice)
	assert.Equal(t, 90.0, twice.Total)
}

func TestCartUpdateUnknownIDIsNoop(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})
	before := s.State()

	s.Dispatch(UpdateQuantity{ID: "ghost", Quantity: 5})
	assert.Equal(t, before, s.State())
}

func TestCartClear(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})
	s.Dispatch(AddItem{Item: bread()})
	s.Dispatch(ClearCart{})

	state := s.State()
	assert.Empty(t, state.Items)
	assert.Zero(t, state.Total)
}

func TestCartStateIsSnapshot(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})

	state := s.State()
	state.Items[0].Quantity = 99

	assert.Equal(t, 1, s.State().Items[0].Quantity, "mutating a snapshot must not reach the store")
}

func TestCartInsertionOrderPreserved(t *testing.T) {
	s := NewCartStore()
	s.Dispatch(AddItem{Item: milk()})
	s.Dispatch(AddItem{Item: bread()})
	s.Dispatch(AddItem{Item: models.CartItem{ID: "eggs-1", Name: "Farm Fresh White Eggs", Price: 42, Quantity: 1}})

	state := s.State()
	require.Len(t, state.Items, 3)
	assert.Equal(t, []string{"milk-1", "bread-1", "eggs-1"}, []string{state.Items[0].ID, state.Items[1].ID, state.Items[2].ID})
}
