package services

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"

	"econoflex/internal/models"
)

// storeInbox recebe as notificações de contato.
const storeInbox = "Econoflexbrasil@outlook.com"

// EmailService envia notificações da loja por e-mail.
type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService lê a configuração SMTP do ambiente. Sem SMTP_USER e
// SMTP_PASS o serviço fica desativado e apenas registra em log.
func NewEmailService() *EmailService {
	smtpHost := "smtp.gmail.com"
	smtpPort := 587
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpUser == "" || smtpPass == "" {
		log.Println("SMTP não configurado. Envio de e-mail desativado.")
		return &EmailService{
			dialer: nil,
			from:   "noreply@econoflexbrasil.com.br",
		}
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass),
		from:   smtpUser,
	}
}

// SendContactNotification repassa uma mensagem do formulário de contato para
// a caixa da loja.
func (es *EmailService) SendContactNotification(form models.ContactForm) error {
	if es.dialer == nil {
		log.Printf("E-mail desativado. Contato de %s <%s> registrado apenas em log.", form.Nome, form.Email)
		return nil
	}

	body := fmt.Sprintf(`
		<h2>Novo contato pelo site</h2>
		<p><strong>Nome:</strong> %s</p>
		<p><strong>E-mail:</strong> %s</p>
		<p><strong>Telefone:</strong> %s</p>
		<p><strong>Mensagem:</strong></p>
		<p>%s</p>
	`, form.Nome, form.Email, form.Telefone, form.Mensagem)

	m := gomail.NewMessage()
	m.SetHeader("From", es.from)
	m.SetHeader("To", storeInbox)
	m.SetHeader("Subject", "Novo contato pelo site - "+form.Nome)
	m.SetBody("text/html", body)

	if err := es.dialer.DialAndSend(m); err != nil {
		log.Printf("Envio de e-mail de contato falhou: %v", err)
		return err
	}

	log.Printf("Notificação de contato enviada para %s", storeInbox)
	return nil
}
