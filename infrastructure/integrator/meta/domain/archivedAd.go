package metadomain

// ArchivedAd é um registro retornado pelo endpoint ads_archive
type ArchivedAd struct {
	ID                      string             `json:"id"`
	AdCreativeBody          string             `json:"ad_creative_body"`
	AdCreativeBodies        []string           `json:"ad_creative_bodies"`
	PageName                string             `json:"page_name"`
	AdSnapshotURL           string             `json:"ad_snapshot_url"`
	AdDeliveryStartTime     string             `json:"ad_delivery_start_time"`
	Impressions             *Range             `json:"impressions"`
	Spend                   *Range             `json:"spend"`
	DemographicDistribution []DemographicShare `json:"demographic_distribution"`
	RegionDistribution      []RegionShare      `json:"region_distribution"`
}

// CreativeBody retorna o texto do criativo, priorizando o campo singular
func (a ArchivedAd) CreativeBody() string {
	if a.AdCreativeBody != "" {
		return a.AdCreativeBody
	}
	for _, body := range a.AdCreativeBodies {
		if body != "" {
			return body
		}
	}
	return ""
}

type Range struct {
	LowerBound string `json:"lower_bound"`
	UpperBound string `json:"upper_bound"`
}

type DemographicShare struct {
	Percentage string `json:"percentage"`
	Age        string `json:"age"`
	Gender     string `json:"gender"`
}

type RegionShare struct {
	Percentage string `json:"percentage"`
	Region     string `json:"region"`
}

type Paging struct {
	Cursors struct {
		Before string `json:"before"`
		After  string `json:"after"`
	} `json:"cursors"`
	Next string `json:"next"`
}

type ArchivedAdsResponse struct {
	Data   []ArchivedAd `json:"data"`
	Paging *Paging      `json:"paging,omitempty"`
}

// ArchiveQuery descreve uma busca na Ads Library
type ArchiveQuery struct {
	StartDate   string
	EndDate     string
	CountryCode string
	AdType      string
	Limit       int
	MaxPages    int
}
