package pricing

import (
	"fmt"
	"math"
	"strings"
)

// PixDiscount é o desconto aplicado em pagamentos via Pix.
const PixDiscount = 0.10

// DiscountPercent calcula o percentual de desconto arredondado entre o preço
// original e o atual.
func DiscountPercent(original, current float64) int {
	if original <= 0 {
		return 0
	}
	return int(math.Round((original - current) / original * 100))
}

// PixPrice aplica o desconto de 10% do Pix sobre um valor.
func PixPrice(v float64) float64 {
	return v * (1 - PixDiscount)
}

// InstallmentValue divide o preço em parcelas iguais, sem juros. A última
// parcela não absorve a sobra de arredondamento: os valores exibidos podem
// divergir do total em um centavo.
func InstallmentValue(price float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	return price / float64(count)
}

// RoundCents arredonda para duas casas decimais.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatBRL formata um valor monetário no padrão brasileiro: R$127,42.
func FormatBRL(v float64) string {
	return "R$" + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
