package models

// Product representa o produto vendido na vitrine.
type Product struct {
	Name            string   `json:"name"`
	Breadcrumb      string   `json:"breadcrumb"`
	SoldCount       int      `json:"sold_count"`
	OriginalPrice   float64  `json:"original_price"`
	CurrentPrice    float64  `json:"current_price"`
	MaxInstallments int      `json:"max_installments"`
	Images          []string `json:"images"`
}

// InstallmentPlan é uma linha da tabela de parcelamento sem juros.
type InstallmentPlan struct {
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
	Total    float64 `json:"total"`
}
