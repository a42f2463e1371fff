package domain

import "time"

// SourceCategory classifica a origem de uma entrega (playlist, canal, etc.)
type SourceCategory string

const (
	SourceCategoryVendor      SourceCategory = "vendor"
	SourceCategoryOrganic     SourceCategory = "organic"
	SourceCategoryAlgorithmic SourceCategory = "algorithmic"
	SourceCategoryOther       SourceCategory = "other"
)

func (c SourceCategory) IsValid() bool {
	switch c {
	case SourceCategoryVendor, SourceCategoryOrganic, SourceCategoryAlgorithmic, SourceCategoryOther:
		return true
	}
	return false
}

// SourceMetric representa as janelas de entrega de uma única fonte de uma campanha
type SourceMetric struct {
	ID         string         `json:"id"`
	CampaignID string         `json:"campaign_id"`
	SourceName string         `json:"source_name"`
	Category   SourceCategory `json:"category"`
	Last24h    int64          `json:"last_24h"`
	Last7d     int64          `json:"last_7d"`
	Last12m    int64          `json:"last_12m"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type UpsertSourceMetricRequest struct {
	SourceName string         `json:"source_name"`
	Category   SourceCategory `json:"category"`
	Last24h    int64          `json:"last_24h"`
	Last7d     int64          `json:"last_7d"`
	Last12m    int64          `json:"last_12m"`
}
