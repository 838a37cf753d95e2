package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"econoflex/internal/models"
	"econoflex/internal/pricing"
	"econoflex/internal/shipping"
)

// SelectionStore define o armazenamento das seleções de checkout.
type SelectionStore interface {
	Selection(sessionID string) models.CheckoutSelection
	SaveSelection(sessionID string, sel models.CheckoutSelection)
}

var (
	// ErrInvalidCEP indica um CEP sem os 8 dígitos obrigatórios.
	ErrInvalidCEP = errors.New("CEP inválido: informe 8 dígitos")
	// ErrUnknownShipping indica uma opção de frete fora do catálogo.
	ErrUnknownShipping = errors.New("opção de frete desconhecida")
	// ErrNotReady indica que algum dos três portões do checkout está aberto.
	ErrNotReady = errors.New("checkout ainda não está pronto")
)

// CheckoutService combina o carrinho, o frete escolhido e a descrição do
// veículo no portão de prontidão do checkout, e resolve o destino do
// redirecionamento quando tudo está pronto.
type CheckoutService struct {
	cart  *CartService
	store SelectionStore
	now   func() time.Time
}

// NewCheckoutService cria um CheckoutService sobre o carrinho e o
// armazenamento de seleções.
func NewCheckoutService(cart *CartService, store SelectionStore) *CheckoutService {
	return &CheckoutService{cart: cart, store: store, now: time.Now}
}

// ConfirmDestination valida o CEP de entrega e confirma o destino. Devolve o
// CEP mascarado como 00000-000.
func (s *CheckoutService) ConfirmDestination(sessionID, cep string) (string, error) {
	if !shipping.ValidCEP(cep) {
		return "", ErrInvalidCEP
	}
	sel := s.store.Selection(sessionID)
	sel.CEP = shipping.FormatCEP(cep)
	sel.CEPConfirmed = true
	s.store.SaveSelection(sessionID, sel)
	log.Printf("CheckoutService.ConfirmDestination - session %s: CEP %s", sessionID, sel.CEP)
	return sel.CEP, nil
}

// ChangeDestination desfaz a confirmação do CEP ("Alterar CEP"). O frete
// escolhido e a descrição do veículo são mantidos.
func (s *CheckoutService) ChangeDestination(sessionID string) {
	sel := s.store.Selection(sessionID)
	sel.CEPConfirmed = false
	s.store.SaveSelection(sessionID, sel)
}

// SelectShipping escolhe uma opção de frete do catálogo.
func (s *CheckoutService) SelectShipping(sessionID, optionID string) error {
	if _, ok := shipping.OptionByID(optionID); !ok {
		return ErrUnknownShipping
	}
	sel := s.store.Selection(sessionID)
	sel.ShippingID = optionID
	s.store.SaveSelection(sessionID, sel)
	return nil
}

// SetVehicleInfo grava a descrição obrigatória do veículo (ano, modelo e
// potência).
func (s *CheckoutService) SetVehicleInfo(sessionID, info string) {
	sel := s.store.Selection(sessionID)
	sel.VehicleInfo = info
	s.store.SaveSelection(sessionID, sel)
}

// ready avalia os três portões: CEP confirmado, carrinho não vazio e
// descrição do veículo preenchida após o trim.
func ready(sel models.CheckoutSelection, totalQuantity int) bool {
	return sel.CEPConfirmed && totalQuantity > 0 && strings.TrimSpace(sel.VehicleInfo) != ""
}

// Summary recalcula o resumo do checkout sob demanda. O frete só entra no
// total depois do CEP confirmado, e as previsões de entrega são refeitas a
// cada chamada a partir da data atual.
func (s *CheckoutService) Summary(sessionID string) models.CheckoutSummary {
	sel := s.store.Selection(sessionID)
	subtotal := s.cart.Subtotal(sessionID)

	shippingPrice := 0.0
	if sel.CEPConfirmed {
		if opt, ok := shipping.OptionByID(sel.ShippingID); ok {
			shippingPrice = opt.Price
		}
	}

	total := subtotal + shippingPrice
	summary := models.CheckoutSummary{
		Subtotal:      pricing.RoundCents(subtotal),
		ShippingID:    sel.ShippingID,
		ShippingPrice: shippingPrice,
		Total:         pricing.RoundCents(total),
		PixTotal:      pricing.RoundCents(pricing.PixPrice(total)),
		Ready:         ready(sel, s.cart.TotalQuantity(sessionID)),
	}
	if sel.CEPConfirmed {
		summary.CEP = sel.CEP
		summary.Options = shipping.OptionsWithDelivery(s.now())
	}
	return summary
}

// Start resolve a URL de checkout externa quando os três portões estão
// fechados. Um frete sem destino configurado vira erro explícito, nunca um
// no-op silencioso.
func (s *CheckoutService) Start(sessionID string) (string, error) {
	sel := s.store.Selection(sessionID)
	if !ready(sel, s.cart.TotalQuantity(sessionID)) {
		return "", ErrNotReady
	}
	url, err := shipping.ResolveCheckoutDestination(sel.ShippingID)
	if err != nil {
		log.Printf("CheckoutService.Start - session %s: %v", sessionID, err)
		return "", err
	}
	log.Printf("CheckoutService.Start - session %s: redirecionando para o checkout %s", sessionID, sel.ShippingID)
	return url, nil
}
