package pacing

import "math"

// EstimateIntersectionDay estima o dia (relativo ao início) em que a entrega acumulada
// cruza ou cruzou a meta. Retorna nil sem meta ou quando a meta não é alcançável no
// ritmo atual; nil não deve ser exibido como dia 0.
func EstimateIntersectionDay(delivered, goal int64, elapsedDays int, dailyRate int64) *int {
	if goal <= 0 {
		return nil
	}

	delivered = nonNegative(delivered)
	elapsedDays = max(elapsedDays, 0)

	if delivered >= goal {
		// meta atingida no primeiro dia, ou sem tempo decorrido registrado
		if elapsedDays == 0 {
			return &elapsedDays
		}
		intersection := int(math.Round(float64(elapsedDays) * float64(goal) / float64(delivered)))
		return &intersection
	}

	if dailyRate > 0 {
		days := ceilDiv(goal-delivered, dailyRate)
		intersection := math.MaxInt
		if days <= int64(math.MaxInt-elapsedDays) {
			intersection = elapsedDays + int(days)
		}
		return &intersection
	}

	return nil
}
