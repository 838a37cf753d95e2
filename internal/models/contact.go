package models

// ContactForm, o formulário de contato da loja. O envio não grava nada:
// a mensagem é encaminhada para o WhatsApp da loja.
type ContactForm struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Mensagem string `json:"mensagem"`
}

// LoginForm, o formulário de login. O login é apenas um esboço e nunca
// autentica ninguém.
type LoginForm struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}
