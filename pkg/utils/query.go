package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryInt lê um inteiro não negativo da query string; ausente vale 0
func QueryInt(values url.Values, key string) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s deve ser um número inteiro", key)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s deve ser maior ou igual a 0", key)
	}

	return n, nil
}
