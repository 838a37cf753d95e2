package models

import "strings"

// CheckoutSelection guarda o estado efêmero do checkout de uma sessão:
// CEP de entrega, frete escolhido e a descrição obrigatória do veículo.
type CheckoutSelection struct {
	CEP          string `json:"cep"`
	CEPConfirmed bool   `json:"cep_confirmed"`
	ShippingID   string `json:"shipping_id"`
	VehicleInfo  string `json:"vehicle_info"`
}

// CheckoutSummary é o resumo recalculado a cada leitura; nenhum campo é
// memorizado entre chamadas.
type CheckoutSummary struct {
	Subtotal      float64         `json:"subtotal"`
	ShippingID    string          `json:"shipping_id"`
	ShippingPrice float64         `json:"shipping_price"`
	Total         float64         `json:"total"`
	PixTotal      float64         `json:"pix_total"`
	Ready         bool            `json:"ready"`
	CEP           string          `json:"cep,omitempty"`
	Options       []ShippingQuote `json:"options,omitempty"`
}

// CustomerData são os dados de entrega preenchidos antes do pagamento.
type CustomerData struct {
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
	CPF         string `json:"cpf"`
	CEP         string `json:"cep"`
	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// Complete informa se todos os campos obrigatórios foram preenchidos.
// Complemento é o único campo opcional.
func (d CustomerData) Complete() bool {
	required := []string{
		d.Nome, d.Email, d.Telefone, d.CPF, d.CEP,
		d.Endereco, d.Numero, d.Bairro, d.Cidade, d.Estado,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
