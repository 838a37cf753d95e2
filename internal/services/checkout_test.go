package services

import (
	"errors"
	"testing"

	"econoflex/internal/models"
	"econoflex/internal/shipping"
	"econoflex/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture() (*CheckoutService, *CartService, *store.MemoryStore) {
	memStore := store.NewMemoryStore()
	cart := NewCartService(memStore)
	return NewCheckoutService(cart, memStore), cart, memStore
}

// addSubtotal adiciona um item que soma exatamente o subtotal dado.
func addSubtotal(cart *CartService, subtotal float64) models.CartItem {
	return cart.AddItem(testSession, models.CartItemDraft{
		Name:         "Econoflex Brasil",
		Brand:        "Fiat",
		Year:         "2014",
		Quantity:     1,
		CurrentPrice: subtotal,
	})
}

func TestConfirmDestination(t *testing.T) {
	checkout, _, _ := newCheckoutFixture()

	formatted, err := checkout.ConfirmDestination(testSession, "01310-100")
	require.NoError(t, err)
	assert.Equal(t, "01310-100", formatted)

	formatted, err = checkout.ConfirmDestination(testSession, "69005040")
	require.NoError(t, err)
	assert.Equal(t, "69005-040", formatted)

	_, err = checkout.ConfirmDestination(testSession, "1234")
	assert.True(t, errors.Is(err, ErrInvalidCEP))
}

func TestSelectShipping(t *testing.T) {
	checkout, _, _ := newCheckoutFixture()

	require.NoError(t, checkout.SelectShipping(testSession, "sedex"))
	assert.Equal(t, "sedex", checkout.Summary(testSession).ShippingID)

	err := checkout.SelectShipping(testSession, "motoboy")
	assert.True(t, errors.Is(err, ErrUnknownShipping))
	// a seleção anterior permanece
	assert.Equal(t, "sedex", checkout.Summary(testSession).ShippingID)
}

func TestSummaryTotals(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture()
	addSubtotal(cart, 100)

	// antes do CEP confirmado o frete não entra no total
	summary := checkout.Summary(testSession)
	assert.Equal(t, 100.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.ShippingPrice)
	assert.Equal(t, 100.0, summary.Total)

	_, err := checkout.ConfirmDestination(testSession, "01310100")
	require.NoError(t, err)

	// frete padrão envio-mini: R$19,58
	summary = checkout.Summary(testSession)
	assert.Equal(t, "envio-mini", summary.ShippingID)
	assert.Equal(t, 19.58, summary.ShippingPrice)
	assert.Equal(t, 119.58, summary.Total)
	assert.Equal(t, 107.62, summary.PixTotal)
	assert.Equal(t, "01310-100", summary.CEP)
	require.Len(t, summary.Options, 3)
}

func TestSummaryRecomputesOnEveryCall(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture()
	item := addSubtotal(cart, 100)
	_, err := checkout.ConfirmDestination(testSession, "01310100")
	require.NoError(t, err)

	assert.Equal(t, 119.58, checkout.Summary(testSession).Total)

	cart.UpdateQuantity(testSession, item.ID, 2)
	assert.Equal(t, 219.58, checkout.Summary(testSession).Total)

	checkout.ChangeDestination(testSession)
	assert.Equal(t, 200.0, checkout.Summary(testSession).Total)
}

func TestReadinessGates(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture()

	// nada preenchido
	assert.False(t, checkout.Summary(testSession).Ready)

	// carrinho apenas
	item := addSubtotal(cart, 127.42)
	assert.False(t, checkout.Summary(testSession).Ready)

	// carrinho + CEP
	_, err := checkout.ConfirmDestination(testSession, "01310100")
	require.NoError(t, err)
	assert.False(t, checkout.Summary(testSession).Ready)

	// descrição só de espaços não conta
	checkout.SetVehicleInfo(testSession, "   ")
	assert.False(t, checkout.Summary(testSession).Ready)

	// os três portões fechados
	checkout.SetVehicleInfo(testSession, "Fiat Uno 2014 1.0")
	assert.True(t, checkout.Summary(testSession).Ready)

	// desfazer qualquer portão desarma a prontidão na hora
	checkout.ChangeDestination(testSession)
	assert.False(t, checkout.Summary(testSession).Ready)

	_, err = checkout.ConfirmDestination(testSession, "01310100")
	require.NoError(t, err)
	assert.True(t, checkout.Summary(testSession).Ready)

	cart.RemoveItem(testSession, item.ID)
	assert.False(t, checkout.Summary(testSession).Ready)
}

func TestStartRequiresReadiness(t *testing.T) {
	checkout, _, _ := newCheckoutFixture()

	_, err := checkout.Start(testSession)
	assert.True(t, errors.Is(err, ErrNotReady))
}

func TestStartResolvesDestination(t *testing.T) {
	checkout, cart, _ := newCheckoutFixture()
	addSubtotal(cart, 127.42)
	_, err := checkout.ConfirmDestination(testSession, "01310100")
	require.NoError(t, err)
	checkout.SetVehicleInfo(testSession, "Fiat Uno 2014 1.0")

	url, err := checkout.Start(testSession)
	require.NoError(t, err)
	assert.Equal(t, "https://go.perfectpay.com.br/PPU38CQ6OID", url)

	require.NoError(t, checkout.SelectShipping(testSession, "sedex"))
	url, err = checkout.Start(testSession)
	require.NoError(t, err)
	assert.Equal(t, "https://go.perfectpay.com.br/PPU38CQ6OIQ", url)
}

func TestStartWithUnconfiguredDestination(t *testing.T) {
	checkout, cart, memStore := newCheckoutFixture()
	addSubtotal(cart, 127.42)
	_, err := checkout.ConfirmDestination(testSession, "01310100")
	require.NoError(t, err)
	checkout.SetVehicleInfo(testSession, "Fiat Uno 2014 1.0")

	// uma seleção corrompida fora da interface pública não pode navegar
	sel := memStore.Selection(testSession)
	sel.ShippingID = "frete-fantasma"
	memStore.SaveSelection(testSession, sel)

	_, err = checkout.Start(testSession)
	require.Error(t, err)
	assert.True(t, errors.Is(err, shipping.ErrDestinationNotConfigured))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink(models.ContactForm{
		Nome:     "Maria Perez",
		Email:    "maria@email.com.br",
		Telefone: "11971923030",
		Mensagem: "Quero saber mais",
	})

	assert.Contains(t, link, "https://wa.me/559295266850?text=")
	assert.Contains(t, link, "Maria+Perez")
	assert.Contains(t, link, "maria%40email.com.br")
}
