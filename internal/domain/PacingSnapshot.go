package domain

import "time"

// PacingSnapshot representa o resultado de pacing de uma campanha armazenado no banco para um dia
type PacingSnapshot struct {
	ID                  int64        `json:"id"`
	CampaignID          string       `json:"campaign_id"`
	CampaignName        string       `json:"campaign_name"`
	Date                time.Time    `json:"date"`
	Status              PacingStatus `json:"status"`
	Goal                int64        `json:"goal"`
	StreamsDelivered    int64        `json:"streams_delivered"`
	DailyRate           int64        `json:"daily_rate"`
	RequiredDailyRate   int64        `json:"required_daily_rate"`
	ProjectedAtEnd      int64        `json:"projected_at_end"`
	ProgressPercent     float64      `json:"progress_percent"`
	GoalIntersectionDay *int         `json:"goal_intersection_day"`
	Attainment          float64      `json:"attainment"` // projected_at_end / goal
	Position            int          `json:"position"`
	PositionChange      int          `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition    int          `json:"previous_position"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

type PacingRankingResponse struct {
	Date       string            `json:"date"`
	Ranking    []*PacingSnapshot `json:"ranking"`
	LastUpdate time.Time         `json:"last_update"`
}
