package pacing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

func timelineFixture(total, elapsed int, notStarted bool) domain.CampaignTimeline {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return domain.CampaignTimeline{
		EffectiveStart: start,
		EffectiveEnd:   start.AddDate(0, 0, total),
		TotalDays:      total,
		ElapsedDays:    elapsed,
		RemainingDays:  total - elapsed,
		HasNotStarted:  notStarted,
	}
}

func findPoint(series []domain.TimelinePoint, day int) (domain.TimelinePoint, bool) {
	for _, point := range series {
		if point.Day == day {
			return point, true
		}
	}
	return domain.TimelinePoint{}, false
}

func TestSampleTimeline_ShortCampaignSamplesEveryDay(t *testing.T) {
	series := SampleTimeline(timelineFixture(10, 4, false), 1000, 400, 50, DefaultMaxPoints)

	require.Len(t, series, 11)
	assertSeriesShape(t, series, 10, 11)

	assert.Equal(t, "2024-01-01", series[0].Date)
	assert.Equal(t, "2024-01-11", series[10].Date)

	assert.Equal(t, int64(0), series[0].RequiredPace)
	assert.Equal(t, int64(500), series[5].RequiredPace)
	assert.Equal(t, int64(1000), series[10].RequiredPace)

	require.NotNil(t, series[2].Actual)
	assert.Equal(t, int64(200), *series[2].Actual)
	assert.Nil(t, series[2].Projected)

	require.NotNil(t, series[4].Actual)
	require.NotNil(t, series[4].Projected)
	assert.Equal(t, int64(400), *series[4].Actual)
	assert.Equal(t, int64(400), *series[4].Projected)

	assert.Nil(t, series[7].Actual)
	require.NotNil(t, series[7].Projected)
	assert.Equal(t, int64(550), *series[7].Projected)
}

func TestSampleTimeline_InsertsTodayMarkerBetweenSamples(t *testing.T) {
	series := SampleTimeline(timelineFixture(365, 101, false), 36500, 5050, 40, DefaultMaxPoints)

	assertSeriesShape(t, series, 365, DefaultMaxPoints+1)

	today, ok := findPoint(series, 101)
	require.True(t, ok, "today marker missing")
	require.NotNil(t, today.Actual)
	require.NotNil(t, today.Projected)
	assert.Equal(t, int64(5050), *today.Actual)
	assert.Equal(t, int64(5050), *today.Projected)
	assert.Equal(t, int64(10100), today.RequiredPace)

	last := series[len(series)-1]
	require.NotNil(t, last.Projected)
	assert.Equal(t, int64(5050+40*264), *last.Projected)
	assert.Nil(t, last.Actual)
}

func TestSampleTimeline_Stride(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		elapsed  int
		expected int
		stride   int
	}{
		{name: "campanha padrão de 90 dias amostra todos os dias", total: 90, elapsed: 37, expected: 91, stride: 1},
		{name: "180 dias usa passo de 2", total: 180, elapsed: 60, expected: 91, stride: 2},
		{name: "marcador de hoje força passo maior", total: 180, elapsed: 61, expected: 62, stride: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series := SampleTimeline(timelineFixture(tt.total, tt.elapsed, false), 9000, 3700, 100, DefaultMaxPoints)

			require.Len(t, series, tt.expected)
			assertSeriesShape(t, series, tt.total, DefaultMaxPoints+1)
			assert.Equal(t, tt.stride, series[1].Day)

			_, ok := findPoint(series, tt.elapsed)
			assert.True(t, ok)
		})
	}
}

func TestSampleTimeline_NoMarkerWhenTodayIsSampled(t *testing.T) {
	series := SampleTimeline(timelineFixture(20, 5, false), 100, 50, 5, DefaultMaxPoints)

	assert.Len(t, series, 21)
	assertSeriesShape(t, series, 20, 21)
}

func TestSampleTimeline_NotStartedHasOnlyRequiredPace(t *testing.T) {
	series := SampleTimeline(timelineFixture(30, 0, true), 3000, 900, 100, DefaultMaxPoints)

	assertSeriesShape(t, series, 30, DefaultMaxPoints+1)
	for _, point := range series {
		assert.Nil(t, point.Actual)
		assert.Nil(t, point.Projected)
	}
}

func TestSampleTimeline_StartedWithZeroElapsed(t *testing.T) {
	series := SampleTimeline(timelineFixture(5, 0, false), 500, 80, 10, DefaultMaxPoints)

	require.NotNil(t, series[0].Actual)
	require.NotNil(t, series[0].Projected)
	assert.Equal(t, int64(0), *series[0].Actual)
	assert.Equal(t, int64(80), *series[0].Projected)

	for _, point := range series[1:] {
		assert.Nil(t, point.Actual)
		require.NotNil(t, point.Projected)
		assert.Equal(t, 80+10*int64(point.Day), *point.Projected)
	}
}

func TestSampleTimeline_FinishedCampaign(t *testing.T) {
	series := SampleTimeline(timelineFixture(30, 30, false), 3000, 2700, 90, DefaultMaxPoints)

	last := series[len(series)-1]
	require.NotNil(t, last.Actual)
	require.NotNil(t, last.Projected)
	assert.Equal(t, int64(2700), *last.Actual)
	assert.Equal(t, int64(2700), *last.Projected)
}

func TestSampleTimeline_LengthIsBoundedForAnyDuration(t *testing.T) {
	for total := 1; total <= 1500; total++ {
		elapsed := total / 3
		series := SampleTimeline(timelineFixture(total, elapsed, false), 100000, 1000, 10, DefaultMaxPoints)

		assertSeriesShape(t, series, total, DefaultMaxPoints+1)

		_, ok := findPoint(series, elapsed)
		assert.True(t, ok, "elapsed day %d missing for total %d", elapsed, total)
	}
}

func TestSampleTimeline_ProjectionSaturates(t *testing.T) {
	series := SampleTimeline(timelineFixture(90, 10, false), math.MaxInt64, math.MaxInt64/2, math.MaxInt64/2, DefaultMaxPoints)

	assertSeriesShape(t, series, 90, DefaultMaxPoints+1)
	for _, point := range series {
		assert.GreaterOrEqual(t, point.RequiredPace, int64(0))
		if point.Actual != nil {
			assert.GreaterOrEqual(t, *point.Actual, int64(0))
		}
		if point.Projected != nil {
			assert.GreaterOrEqual(t, *point.Projected, int64(0))
		}
	}

	last := series[len(series)-1]
	require.NotNil(t, last.Projected)
	assert.Equal(t, int64(math.MaxInt64), *last.Projected)
	assert.Equal(t, int64(math.MaxInt64), last.RequiredPace)
}

func TestSampleTimeline_InvalidMaxPointsUsesDefault(t *testing.T) {
	series := SampleTimeline(timelineFixture(500, 0, true), 100, 0, 0, 0)

	assertSeriesShape(t, series, 500, DefaultMaxPoints+1)
}
