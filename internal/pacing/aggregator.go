package pacing

import (
	"slices"

	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

// Aggregate soma as janelas de todas as fontes recebidas. Não filtra categorias.
func Aggregate(sources []domain.SourceMetric) domain.WindowedMetrics {
	var total domain.WindowedMetrics
	for _, source := range sources {
		total.Last24h = addSat(total.Last24h, nonNegative(source.Last24h))
		total.Last7d = addSat(total.Last7d, nonNegative(source.Last7d))
		total.Last12m = addSat(total.Last12m, nonNegative(source.Last12m))
	}
	return total
}

// FilterSources devolve as fontes cujas categorias não estão em exclude
func FilterSources(sources []domain.SourceMetric, exclude ...domain.SourceCategory) []domain.SourceMetric {
	if len(exclude) == 0 {
		return sources
	}

	filtered := make([]domain.SourceMetric, 0, len(sources))
	for _, source := range sources {
		if slices.Contains(exclude, source.Category) {
			continue
		}
		filtered = append(filtered, source)
	}
	return filtered
}
