package pacing

import (
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/pkg/utils"
)

const daysPerWeek = 7

// Calculate calcula status, taxas, projeção e restante. Não preenche
// GoalIntersectionDay nem Series; isso fica com ComputePacing.
func (e *Engine) Calculate(input domain.PacingInput) domain.PacingResult {
	input = normalizeInput(input)
	goal := input.Goal

	timeline := ResolveTimeline(
		input.Timeline.StartDate,
		input.Timeline.EndDate,
		e.durationDays(input.Timeline.DefaultDurationDays),
		input.Timeline.Now,
	)

	delivered := input.Metrics.Last12m
	dailyRate := DailyRate(input.Metrics)

	var remaining int64
	var progress float64
	if goal > 0 {
		remaining = max(0, goal-delivered)
		// trunca para não exibir 100% antes da meta
		progress = utils.TruncateWithTwoDecimalPlace(min(100, float64(delivered)/float64(goal)*100))
	}

	var required int64
	if timeline.RemainingDays > 0 {
		required = ceilDiv(remaining, int64(timeline.RemainingDays))
	}

	projected := addSat(delivered, mulSat(dailyRate, int64(timeline.RemainingDays)))

	return domain.PacingResult{
		Status:            e.classify(timeline, goal, delivered, projected),
		GoalConfigured:    goal > 0,
		StreamsDelivered:  delivered,
		RemainingStreams:  remaining,
		ProgressPercent:   progress,
		DailyRate:         dailyRate,
		RequiredDailyRate: required,
		ProjectedAtEnd:    projected,
		Timeline:          timeline,
	}
}

// DailyRate usa a média de 7 dias e só recorre à leitura de 24h quando não há uma semana de dados
func DailyRate(metrics domain.WindowedMetrics) int64 {
	if last7d := nonNegative(metrics.Last7d); last7d > 0 {
		return roundInt64(float64(last7d) / daysPerWeek)
	}
	return nonNegative(metrics.Last24h)
}

// classify: a primeira regra que casar vence. Com goal == 0 o status é apenas indicativo.
func (e *Engine) classify(timeline domain.CampaignTimeline, goal, delivered, projected int64) domain.PacingStatus {
	switch {
	case timeline.HasNotStarted:
		return domain.PacingStatusNotStarted
	case goal > 0 && delivered >= goal:
		return domain.PacingStatusCompleted
	case goal > 0 && projected >= goal:
		if float64(projected) >= float64(goal)*e.opts.AheadThreshold {
			return domain.PacingStatusAhead
		}
		return domain.PacingStatusOnTrack
	default:
		return domain.PacingStatusBehind
	}
}

func (e *Engine) durationDays(days int) int {
	if days <= 0 {
		return e.opts.DefaultDurationDays
	}
	return days
}
