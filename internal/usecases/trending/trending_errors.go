package trending

import (
	"errors"
	"fmt"
)

// Mensagens expostas ao cliente
var (
	ErrMissingOwner           = errors.New("invalid authentication")
	ErrOpenAIKeyNotConfigured = errors.New("OpenAI API key not configured")
	ErrFetchAds               = errors.New("failed to fetch ads data")
	ErrGenerateTrends         = errors.New("failed to generate trending products")
	ErrInvalidAIResponse      = errors.New("invalid AI response format")
	ErrReplaceProducts        = errors.New("failed to save trending products")
	ErrListProducts           = errors.New("failed to fetch trending products")
)

// TrendError carrega o código da API junto ao erro base
type TrendError struct {
	Err     error
	Code    string
	Details string
}

func (e *TrendError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrendError) Unwrap() error {
	return e.Err
}

func NewTrendError(baseErr error, code string, details string) *TrendError {
	return &TrendError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
