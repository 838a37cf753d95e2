package services

import (
	"fmt"
	"net/url"

	"econoflex/internal/models"
)

// WhatsAppNumber é o destino dos contatos da loja.
const WhatsAppNumber = "559295266850"

// WhatsAppLink monta o deep link do WhatsApp com a mensagem do formulário de
// contato. O formulário não grava nada: o envio real acontece no aplicativo
// de mensagens do visitante.
func WhatsAppLink(form models.ContactForm) string {
	message := fmt.Sprintf(
		"Nome: %s\nE-mail: %s\nTelefone: %s\nMensagem: %s",
		form.Nome, form.Email, form.Telefone, form.Mensagem,
	)
	return "https://wa.me/" + WhatsAppNumber + "?text=" + url.QueryEscape(message)
}
