package store

import (
	"testing"

	"econoflex/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartIsIsolatedPerSession(t *testing.T) {
	s := NewMemoryStore()

	s.AppendItem("sessao-a", models.CartItem{ID: "1", Quantity: 1})

	assert.Len(t, s.Cart("sessao-a").Items, 1)
	assert.Empty(t, s.Cart("sessao-b").Items)
}

func TestCartReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.AppendItem("sessao", models.CartItem{ID: "1", Quantity: 1})

	cart := s.Cart("sessao")
	cart.Items[0].Quantity = 99

	assert.Equal(t, 1, s.Cart("sessao").Items[0].Quantity)
}

func TestUpdateAndRemove(t *testing.T) {
	s := NewMemoryStore()
	s.AppendItem("sessao", models.CartItem{ID: "1", Quantity: 1})
	s.AppendItem("sessao", models.CartItem{ID: "2", Quantity: 2})

	assert.True(t, s.UpdateItemQuantity("sessao", "2", 5))
	assert.False(t, s.UpdateItemQuantity("sessao", "3", 5))

	assert.True(t, s.RemoveItem("sessao", "1"))
	assert.False(t, s.RemoveItem("sessao", "1"))

	items := s.Cart("sessao").Items
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestClearCart(t *testing.T) {
	s := NewMemoryStore()
	s.AppendItem("sessao", models.CartItem{ID: "1", Quantity: 1})

	s.ClearCart("sessao")
	assert.Empty(t, s.Cart("sessao").Items)
}

func TestSelectionDefaults(t *testing.T) {
	s := NewMemoryStore()

	sel := s.Selection("sessao")
	assert.Equal(t, DefaultShippingID, sel.ShippingID)
	assert.False(t, sel.CEPConfirmed)

	sel.CEP = "01310-100"
	sel.CEPConfirmed = true
	s.SaveSelection("sessao", sel)

	saved := s.Selection("sessao")
	assert.True(t, saved.CEPConfirmed)
	assert.Equal(t, "01310-100", saved.CEP)
}
