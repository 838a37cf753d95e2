package main

import (
	"log"
	"os"

	"econoflex/internal/handlers"
	"econoflex/internal/services"
	"econoflex/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Modo de produção
	gin.SetMode(gin.ReleaseMode)

	memStore := store.NewMemoryStore()
	cartService := services.NewCartService(memStore)
	checkoutService := services.NewCheckoutService(cartService, memStore)
	h := handlers.NewHandler(cartService, checkoutService, services.NewEmailService())

	// Engine criado manualmente para controlar os middlewares
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	// Configuração de segurança de proxy
	if err := r.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.Fatalf("Proxies confiáveis não puderam ser configurados: %v", err)
	}

	h.RegisterRoutes(r)

	// Plataformas de deploy informam a porta pela variável de ambiente
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}

	log.Printf("HTTP Server iniciando na porta %s", port)
	log.Printf("Acesse: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("HTTP Server não pôde iniciar: %v", err)
	}
}
