package services

import (
	"log"

	"econoflex/internal/models"

	"github.com/google/uuid"
)

// CartStore define as operações de armazenamento usadas pelo CartService.
type CartStore interface {
	Cart(sessionID string) models.Cart
	AppendItem(sessionID string, item models.CartItem)
	UpdateItemQuantity(sessionID, itemID string, quantity int) bool
	RemoveItem(sessionID, itemID string) bool
	ClearCart(sessionID string)
}

// CartService, gerencia as operações do carrinho de cada sessão.
type CartService struct {
	store CartStore
}

// NewCartService cria um novo CartService sobre o armazenamento dado.
func NewCartService(store CartStore) *CartService {
	return &CartService{store: store}
}

// AddItem cria uma nova linha no carrinho e devolve a linha gravada. Duas
// adições do mesmo produto e variante viram duas linhas distintas: não há
// fusão de quantidades. A validação de preço e quantidade é do chamador.
func (cs *CartService) AddItem(sessionID string, draft models.CartItemDraft) models.CartItem {
	item := models.CartItem{
		ID:            uuid.New().String(),
		Name:          draft.Name,
		Brand:         draft.Brand,
		Year:          draft.Year,
		Quantity:      draft.Quantity,
		OriginalPrice: draft.OriginalPrice,
		CurrentPrice:  draft.CurrentPrice,
	}
	cs.store.AppendItem(sessionID, item)
	log.Printf("CartService.AddItem - session %s: %s (%s, %s) x%d", sessionID, item.Name, item.Brand, item.Year, item.Quantity)
	return item
}

// UpdateQuantity grava a nova quantidade de uma linha, limitada a no mínimo 1
// para que chamadores fora da interface não deixem o carrinho em estado
// inválido. Linha inexistente vira no-op.
func (cs *CartService) UpdateQuantity(sessionID, itemID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if !cs.store.UpdateItemQuantity(sessionID, itemID, quantity) {
		log.Printf("CartService.UpdateQuantity - session %s: item %s não está no carrinho", sessionID, itemID)
	}
}

// RemoveItem tira uma linha do carrinho. Remover um ID ausente não é erro.
func (cs *CartService) RemoveItem(sessionID, itemID string) {
	if !cs.store.RemoveItem(sessionID, itemID) {
		log.Printf("CartService.RemoveItem - session %s: item %s não está no carrinho", sessionID, itemID)
		return
	}
	log.Printf("CartService.RemoveItem - session %s: item %s removido", sessionID, itemID)
}

// Clear esvazia o carrinho da sessão.
func (cs *CartService) Clear(sessionID string) {
	cs.store.ClearCart(sessionID)
	log.Printf("CartService.Clear - session %s", sessionID)
}

// Cart devolve o carrinho da sessão na ordem de inserção.
func (cs *CartService) Cart(sessionID string) models.Cart {
	return cs.store.Cart(sessionID)
}

// TotalQuantity soma as quantidades de todas as linhas. Sempre recalculado,
// nunca memorizado.
func (cs *CartService) TotalQuantity(sessionID string) int {
	total := 0
	for _, item := range cs.store.Cart(sessionID).Items {
		total += item.Quantity
	}
	return total
}

// Subtotal soma quantidade × preço atual de cada linha. Sempre recalculado.
func (cs *CartService) Subtotal(sessionID string) float64 {
	subtotal := 0.0
	for _, item := range cs.store.Cart(sessionID).Items {
		subtotal += float64(item.Quantity) * item.CurrentPrice
	}
	return subtotal
}
