package utils

import "strconv"

// ParseIntDefault converte s em inteiro, usando def quando s é vazio
func ParseIntDefault(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}

	return strconv.Atoi(s)
}
