// Package catalog concentra os dados estáticos da vitrine: produto, marcas,
// avaliações e meios de pagamento. Nada aqui muda em tempo de execução.
package catalog

import (
	"econoflex/internal/models"
	"econoflex/internal/pricing"
)

// Product é o único produto da loja.
var Product = models.Product{
	Name:            "Econoflex Brasil",
	Breadcrumb:      "Início > automóvel > Econoflex Brasil",
	SoldCount:       2060,
	OriginalPrice:   498,
	CurrentPrice:    127.42,
	MaxInstallments: 6,
	Images: []string{
		"/static/product-1.jpeg",
		"/static/product-2.jpeg",
		"/static/product-3.jpeg",
		"/static/product-4.jpeg",
	},
}

// CarBrands são as marcas aceitas na seleção de variante.
var CarBrands = []string{
	"Chevrolet (GM)",
	"Citroën",
	"Fiat",
	"Honda",
	"Ford",
	"Hyundai",
	"Volkswagen",
	"Toyota",
	"Renault",
	"Peugeot",
	"Nissan",
	"Jeep",
	"Kia",
	"Mitsubishi",
	"GWM",
	"Lifan",
	"Jac",
	"BMW",
	"Caoa Chery",
}

const (
	firstYear = 1995
	lastYear  = 2026
)

// Years lista os anos de fabricação aceitos, do mais antigo ao mais novo.
func Years() []int {
	years := make([]int, 0, lastYear-firstYear+1)
	for y := firstYear; y <= lastYear; y++ {
		years = append(years, y)
	}
	return years
}

// InstallmentPlans monta a tabela de parcelamento de 1x até o máximo de
// parcelas, sempre sem juros.
func InstallmentPlans() []models.InstallmentPlan {
	plans := make([]models.InstallmentPlan, 0, Product.MaxInstallments)
	for n := 1; n <= Product.MaxInstallments; n++ {
		plans = append(plans, models.InstallmentPlan{
			Quantity: n,
			Value:    pricing.InstallmentValue(Product.CurrentPrice, n),
			Total:    Product.CurrentPrice,
		})
	}
	return plans
}

// PaymentMethods são as bandeiras exibidas no rodapé da loja.
var PaymentMethods = []string{
	"Visa",
	"Mastercard",
	"American Express",
	"Diners Club",
	"Aura",
	"Elo",
	"Discover",
	"Boleto",
	"Pix",
}

// RatingDistribution é a distribuição percentual das notas.
var RatingDistribution = []models.RatingBucket{
	{Stars: 5, Percentage: 86},
	{Stars: 4, Percentage: 11},
	{Stars: 3, Percentage: 2},
	{Stars: 2, Percentage: 0.6},
	{Stars: 1, Percentage: 0.4},
}

// Reviews são as avaliações publicadas, da mais recente para a mais antiga.
var Reviews = []models.Review{
	{Name: "G. Nunes", Date: "18/12/2025", Rating: 5, Comment: "Econoflex excelente! Meu carro está economizando muito combustível. Recomendo demais!"},
	{Name: "V. Cardoso", Date: "16/12/2025", Rating: 4, Comment: "Instalação simples e prática. Já percebi diferença no consumo de gasolina."},
	{Name: "D. Martins", Date: "14/12/2025", Rating: 5, Comment: "Produto original com garantia. Economia real de combustível!"},
	{Name: "H. Souza", Date: "12/12/2025", Rating: 5, Comment: "Redutor Econoflex chegou antes do prazo. Qualidade impecável, recomendo!"},
	{Name: "P. Lima", Date: "10/12/2025", Rating: 4, Comment: "Ótimo custo-benefício. Motor funcionando melhor e economizando gasolina."},
	{Name: "E. Barbosa", Date: "08/12/2025", Rating: 5, Comment: "Material de qualidade. Economia de combustível notável após instalação."},
	{Name: "I. Ferraz", Date: "06/12/2025", Rating: 5, Comment: "Econoflex funciona perfeitamente! Economia de até 40% no meu veículo."},
	{Name: "O. Ramos", Date: "04/12/2025", Rating: 4, Comment: "Produto de qualidade premium. Instalação fácil e economia garantida."},
	{Name: "K. Moreira", Date: "02/12/2025", Rating: 5, Comment: "Entrega super rápida e produto exatamente como na foto. Muito satisfeito!"},
	{Name: "N. Campos", Date: "30/11/2025", Rating: 5, Comment: "Econoflex original com qualidade. Material resistente e econômico."},
	{Name: "S. Teixeira", Date: "28/11/2025", Rating: 4, Comment: "Produto original, embalagem impecável. Economia de combustível real."},
	{Name: "C. Dias", Date: "26/11/2025", Rating: 5, Comment: "Qualidade excepcional! Meu carro ficou mais econômico."},
	{Name: "R. Melo", Date: "24/11/2025", Rating: 5, Comment: "Material de primeira, economia incrível. Atendimento nota 10!"},
	{Name: "L. Castro", Date: "22/11/2025", Rating: 4, Comment: "Redutor muito bom. Não esquenta e economiza bastante combustível."},
	{Name: "M. Freitas", Date: "20/11/2025", Rating: 5, Comment: "Econoflex lindo, instalação perfeita. Economia show!"},
	{Name: "A. Vieira", Date: "18/11/2025", Rating: 5, Comment: "Produto oficial, qualidade garantida. Entrega no prazo prometido."},
	{Name: "J. Cunha", Date: "16/11/2025", Rating: 4, Comment: "Excelente qualidade do material. Economia bem perceptível."},
	{Name: "F. Ribeiro", Date: "14/11/2025", Rating: 5, Comment: "Econoflex oficial com todos os detalhes originais. Muito satisfeito!"},
	{Name: "G. Santana", Date: "12/11/2025", Rating: 5, Comment: "Material premium, acabamento impecável. Vale cada centavo!"},
	{Name: "T. Azevedo", Date: "10/11/2025", Rating: 4, Comment: "Redutor excelente. Ideal para quem quer economizar combustível."},
	{Name: "D. Correia", Date: "08/11/2025", Rating: 5, Comment: "Instalação perfeita! Economia bem aplicada no meu veículo."},
	{Name: "H. Monteiro", Date: "06/11/2025", Rating: 5, Comment: "Produto original Econoflex. Qualidade superior e design autêntico."},
	{Name: "P. Gonçalves", Date: "04/11/2025", Rating: 4, Comment: "Redutor de qualidade, economia fiel ao prometido. Recomendo!"},
	{Name: "E. Mendes", Date: "02/11/2025", Rating: 5, Comment: "Material excelente. Não desperdiça combustível e mantém o conforto."},
	{Name: "I. Araújo", Date: "31/10/2025", Rating: 5, Comment: "Entrega rápida, produto bem embalado. Qualidade nota 10!"},
	{Name: "O. Carvalho", Date: "29/10/2025", Rating: 4, Comment: "Redutor de qualidade premium. Economia resistente e bem feita."},
	{Name: "K. Lopes", Date: "27/10/2025", Rating: 5, Comment: "Econoflex oficial com todos os selos de autenticidade. Perfeita!"},
	{Name: "S. Pinto", Date: "23/10/2025", Rating: 4, Comment: "Qualidade excepcional do produto. Economia ficou perfeita."},
	{Name: "C. Rezende", Date: "21/10/2025", Rating: 5, Comment: "Produto original, atendimento excelente. Muito satisfeito com a compra!"},
	{Name: "R. Vargas", Date: "19/10/2025", Rating: 5, Comment: "Econoflex de qualidade superior. Material premium e acabamento perfeito."},
}
