package domain

import "time"

type TrendingProduct struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Rank          int       `json:"rank"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Score         float64   `json:"score"`
	Trend         string    `json:"trend"`
	Reason        string    `json:"reason"`
	Platforms     []string  `json:"platforms"`
	AvgEngagement string    `json:"avg_engagement"`
	AnalysisDate  string    `json:"analysis_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
