package domain

import (
	"time"
)

// Plataformas conhecidas
const (
	PlatformFacebook = "Facebook"
)

type Ad struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Platform    string    `json:"platform"`
	ImageURL    *string   `json:"image_url"`
	VideoURL    *string   `json:"video_url"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	Country     string    `json:"country"`
	DaysActive  int       `json:"days_active"`
	Brand       string    `json:"brand"`
	Category    string    `json:"category"`
	AdURL       *string   `json:"ad_url"`
	ScrapedAt   time.Time `json:"scraped_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Engagement soma curtidas, comentários e compartilhamentos
func (a *Ad) Engagement() int {
	return a.Likes + a.Comments + a.Shares
}

// Summary reduz o anúncio ao formato enviado para o modelo de linguagem
func (a *Ad) Summary() AdSummary {
	return AdSummary{
		Title:      a.Title,
		Platform:   a.Platform,
		Category:   a.Category,
		Engagement: a.Engagement(),
		DaysActive: a.DaysActive,
	}
}

type AdSummary struct {
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	Category   string `json:"category"`
	Engagement int    `json:"engagement"`
	DaysActive int    `json:"days_active"`
}

type CreateAdRequest struct {
	Title       string  `json:"title" validate:"required,max=500"`
	Description string  `json:"description" validate:"max=5000"`
	Platform    string  `json:"platform" validate:"required,max=50"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
	Likes       int     `json:"likes" validate:"gte=0"`
	Comments    int     `json:"comments" validate:"gte=0"`
	Shares      int     `json:"shares" validate:"gte=0"`
	Country     string  `json:"country" validate:"max=100"`
	DaysActive  int     `json:"days_active" validate:"gte=0"`
	Brand       string  `json:"brand" validate:"max=200"`
	Category    string  `json:"category" validate:"max=100"`
	AdURL       *string `json:"ad_url" validate:"omitempty,url"`
}

// AdFilters restringe a listagem e a exportação de anúncios de um dono
type AdFilters struct {
	Platform      string
	Country       string
	Category      string
	MinEngagement int
	SinceDays     int
	Limit         int
	Offset        int
}
