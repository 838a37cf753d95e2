package shipping

import (
	"errors"
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"econoflex/internal/models"
)

// Catálogo estático de fretes. A ordem de declaração é a ordem de exibição.
var Options = []models.ShippingOption{
	{ID: "envio-mini", Name: "ENVIO MINI Promocional", BusinessDays: 19, Price: 19.58},
	{ID: "pac", Name: "PAC Promocional", BusinessDays: 13, Price: 29.54},
	{ID: "sedex", Name: "SEDEX Promocional", BusinessDays: 7, Price: 64.11},
}

// URLs de checkout externas por opção de frete. A partir do redirecionamento
// o processador de pagamento é o sistema de registro.
var checkoutURLs = map[string]string{
	"envio-mini": "https://go.perfectpay.com.br/PPU38CQ6OID",
	"pac":        "https://go.perfectpay.com.br/PPU38CQ6OG3",
	"sedex":      "https://go.perfectpay.com.br/PPU38CQ6OIQ",
}

// HostedPaymentURL é a página de pagamento hospedada usada pelo fluxo de
// dados de entrega.
const HostedPaymentURL = "https://www.pagamentos-seguro.link/checkout/44469fe8-82d7-4994-b075-793739a11314"

// ErrDestinationNotConfigured indica uma opção de frete sem URL de checkout.
var ErrDestinationNotConfigured = errors.New("destino de checkout não configurado")

var weekdays = [...]string{
	"domingo",
	"segunda-feira",
	"terça-feira",
	"quarta-feira",
	"quinta-feira",
	"sexta-feira",
	"sábado",
}

// AddBusinessDays avança a data dia a dia contando apenas dias úteis
// (segunda a sexta). O laço é proposital: uma tabela de feriados pode ser
// encaixada aqui depois. Com businessDays zero a data volta inalterada.
func AddBusinessDays(start time.Time, businessDays int) time.Time {
	result := start
	added := 0
	for added < businessDays {
		result = result.AddDate(0, 0, 1)
		if wd := result.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return result
}

// FormatDeliveryDate formata a data no padrão pt-BR: "sexta-feira, 19/12".
func FormatDeliveryDate(t time.Time) string {
	return fmt.Sprintf("%s, %02d/%02d", weekdays[t.Weekday()], t.Day(), int(t.Month()))
}

// DeliveryText monta o texto de previsão de entrega a partir de hoje, com a
// primeira letra maiúscula: "Chega Sexta-feira, 19/12".
func DeliveryText(today time.Time, businessDays int) string {
	date := FormatDeliveryDate(AddBusinessDays(today, businessDays))
	return "Chega " + capitalize(date)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// OptionsWithDelivery retorna o catálogo na ordem de declaração, cada opção
// com a previsão de entrega calculada a partir de hoje. Sempre recalcula:
// uma página aberta além da meia-noite deve refletir a nova data.
func OptionsWithDelivery(today time.Time) []models.ShippingQuote {
	quotes := make([]models.ShippingQuote, 0, len(Options))
	for _, opt := range Options {
		quotes = append(quotes, models.ShippingQuote{
			ShippingOption: opt,
			Delivery:       DeliveryText(today, opt.BusinessDays),
		})
	}
	return quotes
}

// OptionByID procura uma opção de frete no catálogo.
func OptionByID(id string) (models.ShippingOption, bool) {
	for _, opt := range Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return models.ShippingOption{}, false
}

// ResolveCheckoutDestination mapeia a opção de frete escolhida para a URL de
// checkout externa correspondente.
func ResolveCheckoutDestination(id string) (string, error) {
	url, ok := checkoutURLs[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrDestinationNotConfigured, id)
	}
	return url, nil
}
