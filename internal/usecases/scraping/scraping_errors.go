package scraping

import (
	"errors"
	"fmt"
)

// Mensagens expostas ao cliente
var (
	ErrMissingOwner           = errors.New("invalid authentication")
	ErrMetaTokenNotConfigured = errors.New("facebook API token not configured")
	ErrSaveAds                = errors.New("failed to save scraped ads")
	ErrSaveFallbackAds        = errors.New("failed to save fallback ads")
)

// ScrapeError carrega o código da API junto ao erro base
type ScrapeError struct {
	Err     error
	Code    string
	Details string
}

func (e *ScrapeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}

func NewScrapeError(baseErr error, code string, details string) *ScrapeError {
	return &ScrapeError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
