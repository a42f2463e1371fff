package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusPaused   CampaignStatus = "paused"
	CampaignStatusArchived CampaignStatus = "archived"
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusArchived:
		return true
	}
	return false
}

// GoalMetric indica o que a meta da campanha conta
type GoalMetric string

const (
	GoalMetricStreams GoalMetric = "streams"
	GoalMetricReposts GoalMetric = "reposts"
)

type Campaign struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	ArtistName string         `json:"artist_name"`
	Platform   string         `json:"platform"`
	Goal       int64          `json:"goal"`
	GoalMetric GoalMetric     `json:"goal_metric"`
	StartDate  *time.Time     `json:"start_date"`
	EndDate    *time.Time     `json:"end_date"`
	Status     CampaignStatus `json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type CreateCampaignRequest struct {
	Name       string     `json:"name"`
	ArtistName string     `json:"artist_name"`
	Platform   string     `json:"platform"`
	Goal       int64      `json:"goal"`
	GoalMetric GoalMetric `json:"goal_metric"`
	StartDate  *string    `json:"start_date,omitempty"`
	EndDate    *string    `json:"end_date,omitempty"`
}

type UpdateCampaignRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	ArtistName *string `json:"artist_name,omitempty"`
	Platform   *string `json:"platform,omitempty"`
	Goal       *int64  `json:"goal,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Status     *string `json:"status,omitempty"`
}

type CampaignFilters struct {
	Statuses []CampaignStatus
}
