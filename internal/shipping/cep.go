package shipping

// StripCEP remove tudo que não é dígito e limita o resultado a 8 dígitos.
func StripCEP(s string) string {
	digits := make([]byte, 0, 8)
	for i := 0; i < len(s) && len(digits) < 8; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	return string(digits)
}

// ValidCEP aceita exatamente 8 dígitos após remover tudo que não é dígito.
// Não há validação geográfica além do formato.
func ValidCEP(s string) bool {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			count++
		}
	}
	return count == 8
}

// FormatCEP devolve o CEP mascarado como 00000-000.
func FormatCEP(s string) string {
	digits := StripCEP(s)
	if len(digits) > 5 {
		return digits[:5] + "-" + digits[5:]
	}
	return digits
}
