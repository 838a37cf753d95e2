package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"econoflex/internal/catalog"
	"econoflex/internal/models"
	"econoflex/internal/pricing"
	"econoflex/internal/services"
	"econoflex/internal/shipping"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler atende as requisições HTTP da loja.
type Handler struct {
	cart     *services.CartService
	checkout *services.CheckoutService
	email    *services.EmailService
}

// NewHandler cria um novo Handler com os serviços da loja.
func NewHandler(cart *services.CartService, checkout *services.CheckoutService, email *services.EmailService) *Handler {
	return &Handler{
		cart:     cart,
		checkout: checkout,
		email:    email,
	}
}

const sessionCookie = "user_session"

// RegisterRoutes registra todas as rotas da loja no engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/product", h.ProductPage)
	r.GET("/product/details", h.ProductDetails)
	r.GET("/reviews", h.Reviews)
	r.GET("/payment-methods", h.PaymentMethods)
	r.GET("/shipping/options", h.ShippingOptions)

	// Rotas do carrinho
	r.GET("/cart", h.GetCart)
	r.GET("/cart/count", h.GetCartCount)
	r.POST("/cart/add", h.AddToCart)
	r.POST("/cart/update", h.UpdateCartItem)
	r.POST("/cart/remove", h.RemoveFromCart)
	r.POST("/cart/clear", h.ClearCart)

	// Rotas do checkout
	checkout := r.Group("/checkout")
	{
		checkout.POST("/cep", h.ConfirmCEP)
		checkout.POST("/cep/change", h.ChangeCEP)
		checkout.POST("/shipping", h.SelectShipping)
		checkout.POST("/vehicle", h.SetVehicleInfo)
		checkout.GET("/summary", h.CheckoutSummary)
		checkout.POST("/start", h.StartCheckout)
		checkout.POST("/customer", h.SubmitCustomerData)
	}

	r.POST("/contact", h.HandleContact)
	r.POST("/login", h.HandleLogin)
}

// sessionID garante um cookie de sessão para o visitante.
func (h *Handler) sessionID(c *gin.Context) string {
	id, _ := c.Cookie(sessionCookie)
	if id == "" {
		id = uuid.New().String()
		c.SetCookie(sessionCookie, id, 3600*24*30, "/", "", false, true)
		log.Printf("Handler.sessionID - nova sessão: %s", id)
	}
	return id
}

// ProductPage devolve o produto com preços, desconto e variantes.
func (h *Handler) ProductPage(c *gin.Context) {
	p := catalog.Product
	installment := pricing.RoundCents(pricing.InstallmentValue(p.CurrentPrice, p.MaxInstallments))
	c.JSON(http.StatusOK, gin.H{
		"product":          p,
		"price_display":    pricing.FormatBRL(p.CurrentPrice),
		"discount_percent": pricing.DiscountPercent(p.OriginalPrice, p.CurrentPrice),
		"pix_price":        pricing.RoundCents(pricing.PixPrice(p.CurrentPrice)),
		"installments": gin.H{
			"count": p.MaxInstallments,
			"value": installment,
			"text":  fmt.Sprintf("%d x de %s sem juros", p.MaxInstallments, pricing.FormatBRL(installment)),
		},
		"brands": catalog.CarBrands,
		"years":  catalog.Years(),
	})
}

// ProductDetails devolve os detalhes de pagamento: tabela de parcelamento e
// fretes com previsão de entrega.
func (h *Handler) ProductDetails(c *gin.Context) {
	p := catalog.Product
	c.JSON(http.StatusOK, gin.H{
		"current_price":     p.CurrentPrice,
		"original_price":    p.OriginalPrice,
		"discount_percent":  pricing.DiscountPercent(p.OriginalPrice, p.CurrentPrice),
		"pix_price":         pricing.RoundCents(pricing.PixPrice(p.CurrentPrice)),
		"installment_plans": catalog.InstallmentPlans(),
		"shipping_options":  shipping.OptionsWithDelivery(time.Now()),
	})
}

// Reviews devolve as avaliações publicadas e a distribuição das notas.
func (h *Handler) Reviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"reviews":             catalog.Reviews,
		"rating_distribution": catalog.RatingDistribution,
	})
}

// PaymentMethods devolve as bandeiras aceitas.
func (h *Handler) PaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"payment_methods": catalog.PaymentMethods})
}

// ShippingOptions calcula os fretes para um CEP. O CEP precisa ter exatamente
// 8 dígitos; não há validação geográfica.
func (h *Handler) ShippingOptions(c *gin.Context) {
	cep := c.Query("cep")
	if !shipping.ValidCEP(cep) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "CEP inválido: informe 8 dígitos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cep":     shipping.FormatCEP(cep),
		"options": shipping.OptionsWithDelivery(time.Now()),
	})
}

// GetCart devolve o carrinho com os agregados derivados.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	cart := h.cart.Cart(sessionID)
	subtotal := pricing.RoundCents(h.cart.Subtotal(sessionID))
	c.JSON(http.StatusOK, gin.H{
		"cart":             cart,
		"total_items":      h.cart.TotalQuantity(sessionID),
		"subtotal":         subtotal,
		"subtotal_display": pricing.FormatBRL(subtotal),
	})
}

// GetCartCount devolve só a quantidade total, para o badge do cabeçalho.
func (h *Handler) GetCartCount(c *gin.Context) {
	sessionID, _ := c.Cookie(sessionCookie)
	if sessionID == "" {
		c.JSON(http.StatusOK, gin.H{"count": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": h.cart.TotalQuantity(sessionID)})
}

// AddToCart acrescenta uma linha nova ao carrinho com a variante escolhida.
func (h *Handler) AddToCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		Brand    string `json:"brand"`
		Year     string `json:"year"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}
	if req.Brand == "" || req.Year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Selecione a marca e o ano do veículo antes de comprar."})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	p := catalog.Product
	item := h.cart.AddItem(sessionID, models.CartItemDraft{
		Name:          p.Name,
		Brand:         req.Brand,
		Year:          req.Year,
		Quantity:      req.Quantity,
		OriginalPrice: p.OriginalPrice,
		CurrentPrice:  p.CurrentPrice,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Produto adicionado ao carrinho",
		"item":    item,
		"count":   h.cart.TotalQuantity(sessionID),
	})
}

// UpdateCartItem grava a quantidade de uma linha, limitada a no mínimo 1.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	h.cart.UpdateQuantity(sessionID, req.ID, req.Quantity)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": h.cart.TotalQuantity(sessionID)})
}

// RemoveFromCart tira uma linha do carrinho; ID ausente não é erro.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	h.cart.RemoveItem(sessionID, req.ID)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": h.cart.TotalQuantity(sessionID)})
}

// ClearCart esvazia o carrinho da sessão.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID := h.sessionID(c)
	h.cart.Clear(sessionID)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": 0})
}

// ConfirmCEP valida e confirma o CEP de entrega do checkout.
func (h *Handler) ConfirmCEP(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		CEP string `json:"cep"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	formatted, err := h.checkout.ConfirmDestination(sessionID, req.CEP)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"cep":     formatted,
		"summary": h.checkout.Summary(sessionID),
	})
}

// ChangeCEP desfaz a confirmação do CEP ("Alterar CEP").
func (h *Handler) ChangeCEP(c *gin.Context) {
	sessionID := h.sessionID(c)
	h.checkout.ChangeDestination(sessionID)
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": h.checkout.Summary(sessionID)})
}

// SelectShipping escolhe uma opção de frete do catálogo.
func (h *Handler) SelectShipping(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		OptionID string `json:"option_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	if err := h.checkout.SelectShipping(sessionID, req.OptionID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": h.checkout.Summary(sessionID)})
}

// SetVehicleInfo grava a descrição obrigatória do veículo.
func (h *Handler) SetVehicleInfo(c *gin.Context) {
	sessionID := h.sessionID(c)

	var req struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	h.checkout.SetVehicleInfo(sessionID, req.Description)
	c.JSON(http.StatusOK, gin.H{"success": true, "summary": h.checkout.Summary(sessionID)})
}

// CheckoutSummary devolve o resumo recalculado do checkout.
func (h *Handler) CheckoutSummary(c *gin.Context) {
	sessionID := h.sessionID(c)
	c.JSON(http.StatusOK, h.checkout.Summary(sessionID))
}

// StartCheckout redireciona para a página de checkout externa quando os três
// portões estão fechados. Destino não configurado vira erro explícito.
func (h *Handler) StartCheckout(c *gin.Context) {
	sessionID := h.sessionID(c)

	url, err := h.checkout.Start(sessionID)
	switch {
	case errors.Is(err, services.ErrNotReady):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		return
	case errors.Is(err, shipping.ErrDestinationNotConfigured):
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Destino de checkout não configurado"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Não foi possível iniciar a compra"})
		return
	}

	c.Redirect(http.StatusSeeOther, url)
}

// SubmitCustomerData valida os dados de entrega e devolve a URL da página de
// pagamento hospedada. Nada é gravado localmente.
func (h *Handler) SubmitCustomerData(c *gin.Context) {
	var data models.CustomerData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	data.CPF = formatCPF(data.CPF)
	data.Telefone = formatPhone(data.Telefone)
	data.CEP = shipping.FormatCEP(data.CEP)
	data.Estado = strings.ToUpper(strings.TrimSpace(data.Estado))

	if !data.Complete() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Preencha todos os campos obrigatórios."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"customer":    data,
		"payment_url": shipping.HostedPaymentURL,
	})
}

// HandleContact valida o formulário de contato e devolve o deep link do
// WhatsApp. Se o SMTP estiver configurado, a loja também é avisada por
// e-mail; falha no e-mail não falha a requisição.
func (h *Handler) HandleContact(c *gin.Context) {
	var form models.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	if form.Nome == "" || form.Email == "" || form.Telefone == "" || form.Mensagem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Por favor, preencha todos os campos."})
		return
	}

	if err := h.email.SendContactNotification(form); err != nil {
		log.Printf("HandleContact - notificação por e-mail falhou: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Redirecionando para o WhatsApp...",
		"whatsapp_url": services.WhatsAppLink(form),
	})
}

// HandleLogin é um esboço: valida os campos e responde que a funcionalidade
// está em desenvolvimento. Nunca autentica.
func (h *Handler) HandleLogin(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Dados inválidos"})
		return
	}

	if form.Email == "" || form.Senha == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Por favor, preencha e-mail e senha."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Funcionalidade em desenvolvimento."})
}
