package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	// os preços reais da vitrine: R$498,00 por R$127,42
	assert.Equal(t, 74, DiscountPercent(498, 127.42))
	assert.Equal(t, 50, DiscountPercent(100, 50))
	assert.Equal(t, 0, DiscountPercent(100, 100))
	assert.Equal(t, 0, DiscountPercent(0, 10))
}

func TestPixPrice(t *testing.T) {
	assert.Equal(t, 114.68, RoundCents(PixPrice(127.42)))
	// subtotal 100,00 + frete 19,58: total 119,58, Pix 107,62
	assert.Equal(t, 107.62, RoundCents(PixPrice(100+19.58)))
}

func TestInstallmentValue(t *testing.T) {
	assert.InDelta(t, 21.2366, InstallmentValue(127.42, 6), 0.0001)
	assert.Equal(t, 127.42, InstallmentValue(127.42, 1))
	// parcelas abaixo de 1 viram pagamento à vista
	assert.Equal(t, 127.42, InstallmentValue(127.42, 0))

	// a última parcela não absorve a sobra: 6 × 21,24 = 127,44, um centavo
	// acima do total exibido
	assert.Equal(t, 21.24, RoundCents(InstallmentValue(127.42, 6)))
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 107.62, RoundCents(107.622))
	assert.Equal(t, 107.63, RoundCents(107.625))
	assert.Equal(t, 100.0, RoundCents(100))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$127,42", FormatBRL(127.42))
	assert.Equal(t, "R$498,00", FormatBRL(498))
	assert.Equal(t, "R$19,58", FormatBRL(19.58))
	assert.Equal(t, "R$0,00", FormatBRL(0))
}
