package domain

import "time"

// DashboardStats consolida os indicadores exibidos no painel de um dono
type DashboardStats struct {
	TotalAds         int            `json:"total_ads"`
	TotalEngagement  int64          `json:"total_engagement"`
	AvgEngagement    int64          `json:"avg_engagement"`
	TopCategory      string         `json:"top_category"`
	Categories       map[string]int `json:"categories"`
	Platforms        map[string]int `json:"platforms"`
	TrendingProducts int            `json:"trending_products"`
	LastScrapedAt    *time.Time     `json:"last_scraped_at"`
	LastAnalysisDate *string        `json:"last_analysis_date"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

// AdTotals é o agregado bruto dos anúncios de um dono
type AdTotals struct {
	Count         int
	Engagement    int64
	LastScrapedAt *time.Time
}

type CategoryCount struct {
	Name  string
	Count int
}
