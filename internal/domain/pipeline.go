package domain

// ScrapeRequest é o corpo aceito pela coleta de anúncios
type ScrapeRequest struct {
	DateRange int `json:"dateRange" validate:"gte=0"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScrapeResponse struct {
	Success   bool      `json:"success"`
	Ads       int       `json:"ads"`
	Message   string    `json:"message"`
	DateRange DateRange `json:"dateRange"`
	Fallback  bool      `json:"fallback,omitempty"`
}

type AnalyzeResponse struct {
	Success  bool   `json:"success"`
	Products int    `json:"products"`
	Message  string `json:"message"`
}
