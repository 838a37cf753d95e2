package models

// ShippingOption é uma linha do catálogo estático de fretes.
type ShippingOption struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BusinessDays int     `json:"business_days"`
	Price        float64 `json:"price"`
}

// ShippingQuote é uma opção de frete enriquecida com a previsão de entrega,
// calculada na hora a partir da data atual.
type ShippingQuote struct {
	ShippingOption
	Delivery string `json:"delivery"`
}
