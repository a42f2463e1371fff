package pacing

import (
	"sort"
	"time"

	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

type samplePoint struct {
	point    domain.TimelinePoint
	explicit bool
}

// SampleTimeline gera a série do gráfico com no máximo maxPoints amostras, mais o
// marcador de "hoje" quando ele cai entre duas amostras.
func SampleTimeline(timeline domain.CampaignTimeline, goal, delivered, dailyRate int64, maxPoints int) []domain.TimelinePoint {
	if maxPoints < minMaxPoints {
		maxPoints = DefaultMaxPoints
	}

	s := sampler{
		start:     timeline.EffectiveStart,
		totalDays: max(1, timeline.TotalDays),
		started:   timeline.Started(),
		goal:      nonNegative(goal),
		delivered: nonNegative(delivered),
		dailyRate: nonNegative(dailyRate),
	}
	s.elapsedDays = min(max(timeline.ElapsedDays, 0), s.totalDays)

	step := max(1, s.totalDays/(maxPoints-1))
	if s.seriesLength(step) > maxPoints+1 {
		step = int(ceilDiv(int64(s.totalDays), int64(maxPoints-1)))
	}

	candidates := make([]samplePoint, 0, s.totalDays/step+3)
	sampled := make(map[int]bool, cap(candidates))
	for d := 0; d < s.totalDays; d += step {
		candidates = append(candidates, samplePoint{point: s.pointAt(d)})
		sampled[d] = true
	}
	candidates = append(candidates, samplePoint{point: s.pointAt(s.totalDays)})
	sampled[s.totalDays] = true

	if s.started && !sampled[s.elapsedDays] {
		candidates = append(candidates, samplePoint{point: s.todayPoint(), explicit: true})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].point.Day != candidates[j].point.Day {
			return candidates[i].point.Day < candidates[j].point.Day
		}
		return candidates[i].explicit && !candidates[j].explicit
	})

	series := make([]domain.TimelinePoint, 0, len(candidates))
	for _, c := range candidates {
		if len(series) > 0 && series[len(series)-1].Day == c.point.Day {
			continue
		}
		series = append(series, c.point)
	}

	return series
}

type sampler struct {
	start       time.Time
	totalDays   int
	elapsedDays int
	started     bool
	goal        int64
	delivered   int64
	dailyRate   int64
}

// seriesLength conta os pontos gerados com o passo informado, incluindo o marcador de hoje
func (s sampler) seriesLength(step int) int {
	n := (s.totalDays+step-1)/step + 1
	if s.started && s.elapsedDays%step != 0 && s.elapsedDays != s.totalDays {
		n++
	}
	return n
}

func (s sampler) pointAt(d int) domain.TimelinePoint {
	point := domain.TimelinePoint{
		Day:          d,
		Date:         s.start.Add(time.Duration(d) * day).Format(time.DateOnly),
		RequiredPace: s.requiredPace(d),
	}

	if !s.started {
		return point
	}

	if d <= s.elapsedDays {
		var actual int64
		if s.elapsedDays > 0 {
			actual = roundInt64(float64(s.delivered) / float64(s.elapsedDays) * float64(d))
		}
		point.Actual = &actual
	}

	if d >= s.elapsedDays {
		projected := addSat(s.delivered, mulSat(s.dailyRate, int64(max(0, d-s.elapsedDays))))
		point.Projected = &projected
	}

	return point
}

func (s sampler) todayPoint() domain.TimelinePoint {
	actual, projected := s.delivered, s.delivered
	return domain.TimelinePoint{
		Day:          s.elapsedDays,
		Date:         s.start.Add(time.Duration(s.elapsedDays) * day).Format(time.DateOnly),
		RequiredPace: s.requiredPace(s.elapsedDays),
		Actual:       &actual,
		Projected:    &projected,
	}
}

// requiredPace é a linha de referência de entrega perfeitamente uniforme
func (s sampler) requiredPace(d int) int64 {
	return roundInt64(float64(s.goal) / float64(s.totalDays) * float64(d))
}
