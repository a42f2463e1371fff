package pacing

import (
	"time"

	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

const day = 24 * time.Hour

// ResolveTimeline resolve início, fim e contagem de dias da campanha.
// Sem data de início usa now-30d; sem data de fim usa início + defaultDurationDays.
func ResolveTimeline(startDate, endDate *time.Time, defaultDurationDays int, now time.Time) domain.CampaignTimeline {
	if defaultDurationDays <= 0 {
		defaultDurationDays = DefaultDurationDays
	}

	effectiveStart := now.Add(-missingStartLookbackDays * day)
	if startDate != nil {
		effectiveStart = *startDate
	}

	effectiveEnd := effectiveStart.Add(time.Duration(defaultDurationDays) * day)
	if endDate != nil {
		effectiveEnd = *endDate
	}

	totalDays := max(1, ceilDays(effectiveEnd.Sub(effectiveStart)))

	hasNotStarted := startDate != nil && startDate.After(now)

	elapsedDays := 0
	if !hasNotStarted {
		elapsedDays = min(max(ceilDays(now.Sub(effectiveStart)), 0), totalDays)
	}

	return domain.CampaignTimeline{
		EffectiveStart: effectiveStart,
		EffectiveEnd:   effectiveEnd,
		TotalDays:      totalDays,
		ElapsedDays:    elapsedDays,
		RemainingDays:  totalDays - elapsedDays,
		HasNotStarted:  hasNotStarted,
	}
}

// ceilDays arredonda a duração para cima em dias inteiros. Durações negativas truncam em direção a zero.
func ceilDays(d time.Duration) int {
	days := d / day
	if d%day > 0 {
		days++
	}
	return int(days)
}
