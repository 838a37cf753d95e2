package handlers

// Máscaras dos campos do formulário de dados de entrega. Só formato; nenhuma
// validação de dígito verificador.

func onlyDigits(s string, max int) string {
	digits := make([]byte, 0, max)
	for i := 0; i < len(s) && len(digits) < max; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	return string(digits)
}

// formatCPF mascara o CPF como 000.000.000-00.
func formatCPF(s string) string {
	digits := onlyDigits(s, 11)
	switch {
	case len(digits) <= 3:
		return digits
	case len(digits) <= 6:
		return digits[:3] + "." + digits[3:]
	case len(digits) <= 9:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:]
	default:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	}
}

// formatPhone mascara o telefone como (00) 00000-0000.
func formatPhone(s string) string {
	digits := onlyDigits(s, 11)
	switch {
	case len(digits) <= 2:
		return digits
	case len(digits) <= 7:
		return "(" + digits[:2] + ") " + digits[2:]
	default:
		return "(" + digits[:2] + ") " + digits[2:7] + "-" + digits[7:]
	}
}
