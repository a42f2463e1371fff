// Package pacing contém o motor de pacing e previsão de entrega das campanhas.
// Todas as funções são puras: nenhuma faz I/O nem guarda estado entre chamadas.
package pacing

import (
	"math"

	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

const (
	DefaultAheadThreshold      = 1.1
	DefaultMaxPoints           = 90
	DefaultDurationDays        = 90
	missingStartLookbackDays   = 30
	minMaxPoints               = 2
	defaultAheadThresholdFloor = 1.0
)

// Options são os parâmetros ajustáveis do motor. Valores zero usam os padrões.
type Options struct {
	AheadThreshold      float64
	MaxPoints           int
	DefaultDurationDays int
}

// Engine é imutável após a construção e pode ser usado concorrentemente.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if math.IsNaN(opts.AheadThreshold) || math.IsInf(opts.AheadThreshold, 0) || opts.AheadThreshold < defaultAheadThresholdFloor {
		opts.AheadThreshold = DefaultAheadThreshold
	}

	if opts.MaxPoints < minMaxPoints {
		opts.MaxPoints = DefaultMaxPoints
	}

	if opts.DefaultDurationDays <= 0 {
		opts.DefaultDurationDays = DefaultDurationDays
	}

	return &Engine{opts: opts}
}

func (e *Engine) Options() Options {
	return e.opts
}

var defaultEngine = NewEngine(Options{})

// ComputePacing calcula o pacing com as opções padrão
func ComputePacing(input domain.PacingInput) domain.PacingResult {
	return defaultEngine.ComputePacing(input)
}

// ComputePacing resolve a janela da campanha, classifica o pacing, estima o dia em que a
// meta é atingida e gera a série do gráfico.
func (e *Engine) ComputePacing(input domain.PacingInput) domain.PacingResult {
	input = normalizeInput(input)

	result := e.Calculate(input)
	result.GoalIntersectionDay = EstimateIntersectionDay(
		result.StreamsDelivered,
		input.Goal,
		result.Timeline.ElapsedDays,
		result.DailyRate,
	)
	result.Series = SampleTimeline(
		result.Timeline,
		input.Goal,
		result.StreamsDelivered,
		result.DailyRate,
		e.opts.MaxPoints,
	)

	return result
}

func normalizeInput(input domain.PacingInput) domain.PacingInput {
	input.Goal = nonNegative(input.Goal)
	input.Metrics = domain.WindowedMetrics{
		Last24h: nonNegative(input.Metrics.Last24h),
		Last7d:  nonNegative(input.Metrics.Last7d),
		Last12m: nonNegative(input.Metrics.Last12m),
	}
	return input
}

func nonNegative(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

// ceilDiv assume denominador positivo e numerador não negativo
func ceilDiv(num, den int64) int64 {
	q := num / den
	if num%den != 0 {
		q++
	}
	return q
}

// addSat e mulSat operam sobre valores não negativos e saturam em math.MaxInt64
func addSat(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

func mulSat(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}

func roundInt64(f float64) int64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Round(f))
}
