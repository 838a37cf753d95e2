package models

// Cart, o carrinho de uma sessão. Vive apenas em memória: nada sobrevive ao
// reinício do processo.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// CartItem representa uma linha do carrinho. Os preços unitários são copiados
// do produto no momento da adição e não mudam depois; só a quantidade é
// mutável. Duas adições do mesmo produto/variante viram duas linhas distintas.
type CartItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Brand         string  `json:"brand"`
	Year          string  `json:"year"`
	Quantity      int     `json:"quantity"`
	OriginalPrice float64 `json:"original_price"`
	CurrentPrice  float64 `json:"current_price"`
}

// CartItemDraft carrega os dados de uma nova linha antes do ID ser gerado.
type CartItemDraft struct {
	Name          string
	Brand         string
	Year          string
	Quantity      int
	OriginalPrice float64
	CurrentPrice  float64
}
