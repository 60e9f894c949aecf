package validator

import "strings"

// onlyDigits drops every non-digit rune.
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCPF strips punctuation from a CPF ("529.982.247-25" -> "52998224725").
func NormalizeCPF(cpf string) string {
	return onlyDigits(cpf)
}

// IsValidCPF checks length and both check digits of a CPF.
// Sequences of one repeated digit pass the checksum but are not issued, so they are rejected.
func IsValidCPF(cpf string) bool {
	digits := NormalizeCPF(cpf)
	if len(digits) != 11 {
		return false
	}
	if strings.Count(digits, digits[:1]) == len(digits) {
		return false
	}

	d := make([]int, 11)
	for i, r := range digits {
		d[i] = int(r - '0')
	}

	return cpfCheckDigit(d[:9]) == d[9] && cpfCheckDigit(d[:10]) == d[10]
}

func cpfCheckDigit(d []int) int {
	sum := 0
	weight := len(d) + 1
	for _, n := range d {
		sum += n * weight
		weight--
	}
	r := sum * 10 % 11
	if r == 10 {
		return 0
	}
	return r
}

// NormalizeCEP accepts "01310-100", "01310.100" or "01310100" and returns the 8 digits.
func NormalizeCEP(cep string) (string, bool) {
	clean := strings.NewReplacer("-", "", ".", "", " ", "").Replace(strings.TrimSpace(cep))
	if len(clean) != 8 || onlyDigits(clean) != clean {
		return "", false
	}
	return clean, true
}
