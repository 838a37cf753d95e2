// Package store guarda o estado por sessão da loja, apenas em memória.
// Cada sessão de navegação tem seu próprio carrinho e sua própria seleção de
// checkout; nada é persistido porque, a partir do redirecionamento, o
// checkout externo passa a ser o sistema de registro.
package store

import (
	"sync"

	"econoflex/internal/models"
)

// DefaultShippingID é o frete pré-selecionado de toda seleção nova.
const DefaultShippingID = "envio-mini"

// MemoryStore protege carrinhos e seleções com um RWMutex: o servidor HTTP
// atende requisições concorrentes da mesma sessão.
type MemoryStore struct {
	mu         sync.RWMutex
	carts      map[string][]models.CartItem
	selections map[string]models.CheckoutSelection
}

// NewMemoryStore cria um MemoryStore vazio.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts:      make(map[string][]models.CartItem),
		selections: make(map[string]models.CheckoutSelection),
	}
}

// Cart devolve uma cópia do carrinho da sessão, na ordem de inserção.
func (s *MemoryStore) Cart(sessionID string) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return models.Cart{SessionID: sessionID, Items: items}
}

// AppendItem acrescenta uma linha ao final do carrinho da sessão.
func (s *MemoryStore) AppendItem(sessionID string, item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionID] = append(s.carts[sessionID], item)
}

// UpdateItemQuantity grava a quantidade de uma linha. Devolve false quando a
// linha não existe.
func (s *MemoryStore) UpdateItemQuantity(sessionID, itemID string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem tira uma linha do carrinho. Devolve false quando a linha não
// existe.
func (s *MemoryStore) RemoveItem(sessionID, itemID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[sessionID]
	for i := range items {
		if items[i].ID == itemID {
			s.carts[sessionID] = append(items[:i], items[i+1:]...)
			return true
		}
	}
	return false
}

// ClearCart esvazia o carrinho da sessão.
func (s *MemoryStore) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}

// Selection devolve a seleção de checkout da sessão, criando uma com o frete
// padrão quando ainda não existe.
func (s *MemoryStore) Selection(sessionID string) models.CheckoutSelection {
	s.mu.RLock()
	sel, ok := s.selections[sessionID]
	s.mu.RUnlock()
	if ok {
		return sel
	}
	return models.CheckoutSelection{ShippingID: DefaultShippingID}
}

// SaveSelection grava a seleção de checkout da sessão.
func (s *MemoryStore) SaveSelection(sessionID string, sel models.CheckoutSelection) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selections[sessionID] = sel
}
