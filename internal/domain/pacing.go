package domain

import "time"

type PacingStatus string

const (
	PacingStatusNotStarted PacingStatus = "not_started"
	PacingStatusCompleted  PacingStatus = "completed"
	PacingStatusAhead      PacingStatus = "ahead"
	PacingStatusOnTrack    PacingStatus = "on_track"
	PacingStatusBehind     PacingStatus = "behind"
)

// WindowedMetrics agrega as janelas de entrega. Last12m é tratado como o total acumulado.
type WindowedMetrics struct {
	Last24h int64 `json:"last_24h"`
	Last7d  int64 `json:"last_7d"`
	Last12m int64 `json:"last_12m"`
}

// TimelineInput são as datas brutas da campanha e o instante de referência
type TimelineInput struct {
	StartDate           *time.Time `json:"start_date,omitempty"`
	EndDate             *time.Time `json:"end_date,omitempty"`
	DefaultDurationDays int        `json:"default_duration_days"`
	Now                 time.Time  `json:"now"`
}

// CampaignTimeline é a janela efetiva resolvida a partir do TimelineInput
type CampaignTimeline struct {
	EffectiveStart time.Time `json:"effective_start"`
	EffectiveEnd   time.Time `json:"effective_end"`
	TotalDays      int       `json:"total_days"`
	ElapsedDays    int       `json:"elapsed_days"`
	RemainingDays  int       `json:"remaining_days"`
	HasNotStarted  bool      `json:"has_not_started"`
}

// Started indica se a campanha já começou em relação ao instante de referência
func (t CampaignTimeline) Started() bool {
	return !t.HasNotStarted
}

type PacingInput struct {
	Goal     int64           `json:"goal"`
	Metrics  WindowedMetrics `json:"metrics"`
	Timeline TimelineInput   `json:"timeline"`
}

type TimelinePoint struct {
	Day          int    `json:"day"`
	Date         string `json:"date"`
	RequiredPace int64  `json:"required_pace"`
	Actual       *int64 `json:"actual,omitempty"`
	Projected    *int64 `json:"projected,omitempty"`
}

// PacingResult é a saída do motor de pacing.
// GoalIntersectionDay nulo significa meta inalcançável no ritmo atual ou sem meta; 0 é meta já atingida.
type PacingResult struct {
	Status              PacingStatus     `json:"status"`
	GoalConfigured      bool             `json:"goal_configured"`
	StreamsDelivered    int64            `json:"streams_delivered"`
	RemainingStreams    int64            `json:"remaining_streams"`
	ProgressPercent     float64          `json:"progress_percent"`
	DailyRate           int64            `json:"daily_rate"`
	RequiredDailyRate   int64            `json:"required_daily_rate"`
	ProjectedAtEnd      int64            `json:"projected_at_end"`
	GoalIntersectionDay *int             `json:"goal_intersection_day"`
	Timeline            CampaignTimeline `json:"timeline"`
	Series              []TimelinePoint  `json:"series"`
}

type PacingFilters struct {
	ExcludeCategories []SourceCategory
	Now               *time.Time
}

type CampaignPacingResponse struct {
	Campaign     *Campaign       `json:"campaign"`
	Metrics      WindowedMetrics `json:"metrics"`
	SourcesCount int             `json:"sources_count"`
	Result       PacingResult    `json:"pacing"`
}
