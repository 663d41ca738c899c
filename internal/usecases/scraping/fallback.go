package scraping

import (
	"time"

	"github.com/vfg2006/ad-trends-api/internal/domain"
)

const (
	fallbackCountry = "India"
	fallbackAdURL   = "https://facebook.com/ads/library"
)

type fallbackAd struct {
	title       string
	description string
	imageURL    string
	likes       int
	comments    int
	shares      int
	brand       string
	category    string
}

var fallbackCatalog = []fallbackAd{
	{
		title:       "Digital Marketing Course - Learn Online",
		description: "Master digital marketing with our comprehensive course. Perfect for beginners and professionals. 100% practical training with live projects.",
		imageURL:    "https://images.unsplash.com/photo-1460925895917-afdab827c52f?w=400&h=300&fit=crop",
		likes:       1250,
		comments:    89,
		shares:      42,
		brand:       "EduTech India",
		category:    "Education",
	},
	{
		title:       "Premium Smartphone at Best Price",
		description: "Get the latest smartphone with amazing features. 48MP camera, 5000mAh battery, 128GB storage. Limited time offer!",
		imageURL:    "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400&h=300&fit=crop",
		likes:       2100,
		comments:    156,
		shares:      78,
		brand:       "TechMart India",
		category:    "Electronics",
	},
}

// FallbackAds monta o conjunto fixo de amostra gravado quando a Ads Library falha.
// days_active é sorteado em [1, lookbackDays].
func FallbackAds(ownerID string, lookbackDays int, now time.Time, randIntN func(n int) int) []*domain.Ad {
	if lookbackDays <= 0 {
		lookbackDays = defaultLookbackDays
	}

	ads := make([]*domain.Ad, 0, len(fallbackCatalog))
	for _, item := range fallbackCatalog {
		imageURL := item.imageURL
		adURL := fallbackAdURL

		ads = append(ads, &domain.Ad{
			UserID:      ownerID,
			Title:       item.title,
			Description: item.description,
			Platform:    domain.PlatformFacebook,
			ImageURL:    &imageURL,
			Likes:       item.likes,
			Comments:    item.comments,
			Shares:      item.shares,
			Country:     fallbackCountry,
			DaysActive:  randIntN(lookbackDays) + 1,
			Brand:       item.brand,
			Category:    item.category,
			AdURL:       &adURL,
			ScrapedAt:   now,
		})
	}

	return ads
}
