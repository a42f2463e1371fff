package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-pacing-api/internal/config"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	forecastingmocks "github.com/vfg2006/campaign-pacing-api/internal/usecases/forecasting/mocks"
	"go.uber.org/mock/gomock"
)

type syncMocks struct {
	campaignRepo *mocks.MockCampaignRepository
	snapshotRepo *mocks.MockPacingSnapshotRepository
	forecaster   *forecastingmocks.MockForecaster
}

func newTestSyncService(t *testing.T, retentionDays int) (*PacingSnapshotSyncService, syncMocks) {
	ctrl := gomock.NewController(t)

	m := syncMocks{
		campaignRepo: mocks.NewMockCampaignRepository(ctrl),
		snapshotRepo: mocks.NewMockPacingSnapshotRepository(ctrl),
		forecaster:   forecastingmocks.NewMockForecaster(ctrl),
	}

	cfg := &config.Config{
		PacingSnapshotSync: config.PacingSnapshotSync{
			CronSchedule:      "0 2 * * *",
			MaxConcurrentJobs: 2,
			RetentionDays:     retentionDays,
		},
	}

	return NewPacingSnapshotSyncService(m.campaignRepo, m.snapshotRepo, m.forecaster, cfg), m
}

func forecastFor(projected int64) func(context.Context, *domain.Campaign, domain.PacingFilters) (*domain.CampaignPacingResponse, error) {
	return func(_ context.Context, c *domain.Campaign, _ domain.PacingFilters) (*domain.CampaignPacingResponse, error) {
		return &domain.CampaignPacingResponse{
			Campaign: c,
			Result: domain.PacingResult{
				Status:         domain.PacingStatusOnTrack,
				ProjectedAtEnd: projected,
			},
		}, nil
	}
}

func TestPacingSnapshotSyncService_processCampaignsWithDate(t *testing.T) {
	now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	yesterday := day.AddDate(0, 0, -1)

	campaigns := []*domain.Campaign{
		{ID: "cmp-a", Name: "Campanha A", Goal: 1000},
		{ID: "cmp-b", Name: "Campanha B", Goal: 1000},
		{ID: "cmp-c", Name: "Campanha C", Goal: 0},
	}

	tests := []struct {
		name     string
		setup    func(m syncMocks)
		validate func(t *testing.T, result []*domain.PacingSnapshot)
	}{
		{
			name: "Sem ranking anterior - posições novas sem variação",
			setup: func(m syncMocks) {
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[0], gomock.Any()).DoAndReturn(forecastFor(800))
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[1], gomock.Any()).DoAndReturn(forecastFor(1200))
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[2], gomock.Any()).DoAndReturn(forecastFor(500))

				m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), yesterday).Return(nil, nil)
				m.snapshotRepo.EXPECT().GetLatestDate(gomock.Any()).Return(nil, nil)
				m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(3)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PacingSnapshot) {
				require.Len(t, result, 3)

				assert.Equal(t, "cmp-b", result[0].CampaignID)
				assert.Equal(t, 1.2, result[0].Attainment)
				assert.Equal(t, 1, result[0].Position)

				assert.Equal(t, "cmp-a", result[1].CampaignID)
				assert.Equal(t, 0.8, result[1].Attainment)

				assert.Equal(t, "cmp-c", result[2].CampaignID)
				assert.Equal(t, 0.0, result[2].Attainment)
				assert.Equal(t, 3, result[2].Position)

				for _, s := range result {
					assert.Equal(t, day, s.Date)
					assert.Equal(t, 0, s.PositionChange)
					assert.Equal(t, 0, s.PreviousPosition)
				}
			},
		},
		{
			name: "Com ranking do dia anterior - calcula variação de posição",
			setup: func(m syncMocks) {
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[0], gomock.Any()).DoAndReturn(forecastFor(1500))
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[1], gomock.Any()).DoAndReturn(forecastFor(900))
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[2], gomock.Any()).DoAndReturn(forecastFor(0))

				m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), yesterday).Return([]*domain.PacingSnapshot{
					{CampaignID: "cmp-b", Position: 1},
					{CampaignID: "cmp-a", Position: 2},
				}, nil)
				m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PacingSnapshot) {
				require.Len(t, result, 3)

				assert.Equal(t, "cmp-a", result[0].CampaignID)
				assert.Equal(t, 2, result[0].PreviousPosition)
				assert.Equal(t, 1, result[0].PositionChange)

				assert.Equal(t, "cmp-b", result[1].CampaignID)
				assert.Equal(t, 1, result[1].PreviousPosition)
				assert.Equal(t, -1, result[1].PositionChange)

				assert.Equal(t, 0, result[2].PreviousPosition)
			},
		},
		{
			name: "Sem dia anterior - usa o último ranking gravado",
			setup: func(m syncMocks) {
				latest := day.AddDate(0, 0, -3)

				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(forecastFor(100)).Times(3)
				m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), yesterday).Return(nil, nil)
				m.snapshotRepo.EXPECT().GetLatestDate(gomock.Any()).Return(&latest, nil)
				m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), latest).Return([]*domain.PacingSnapshot{
					{CampaignID: "cmp-c", Position: 1},
				}, nil)
				m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PacingSnapshot) {
				for _, s := range result {
					if s.CampaignID == "cmp-c" {
						assert.Equal(t, 1, s.PreviousPosition)
					}
				}
			},
		},
		{
			name: "Falha no cálculo de uma campanha - demais seguem",
			setup: func(m syncMocks) {
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[0], gomock.Any()).Return(nil, errors.New("db down"))
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[1], gomock.Any()).DoAndReturn(forecastFor(1000))
				m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), campaigns[2], gomock.Any()).DoAndReturn(forecastFor(1000))

				m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), yesterday).Return(nil, nil)
				m.snapshotRepo.EXPECT().GetLatestDate(gomock.Any()).Return(nil, nil)
				m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(2)).Return(nil)
			},
			validate: func(t *testing.T, result []*domain.PacingSnapshot) {
				assert.Len(t, result, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newTestSyncService(t, 0)
			tt.setup(m)

			result, err := service.processCampaignsWithDate(context.Background(), campaigns, now)
			require.NoError(t, err)

			tt.validate(t, result)
		})
	}
}

func TestPacingSnapshotSyncService_SyncPacingSnapshots(t *testing.T) {
	now := time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC)

	t.Run("sem campanhas ativas", func(t *testing.T) {
		service, m := newTestSyncService(t, 180)

		m.campaignRepo.EXPECT().
			List(gomock.Any(), domain.CampaignFilters{Statuses: []domain.CampaignStatus{domain.CampaignStatusActive}}).
			Return(nil, nil)

		require.NoError(t, service.SyncPacingSnapshots(context.Background()))

		status := service.GetStatus()
		assert.Equal(t, 0, status["last_sync_snapshots"])
		assert.False(t, status["sync_running"].(bool))
	})

	t.Run("remove snapshots fora da retenção", func(t *testing.T) {
		service, m := newTestSyncService(t, 30)
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

		m.campaignRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Campaign{{ID: "cmp-a", Goal: 10}}, nil)
		m.forecaster.EXPECT().Now().Return(now).AnyTimes()
		m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(forecastFor(10))
		m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), day.AddDate(0, 0, -1)).Return(nil, nil)
		m.snapshotRepo.EXPECT().GetLatestDate(gomock.Any()).Return(nil, nil)
		m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(nil)
		m.snapshotRepo.EXPECT().DeleteOlderThan(gomock.Any(), day.AddDate(0, 0, -30)).Return(int64(4), nil)

		require.NoError(t, service.SyncPacingSnapshots(context.Background()))
		assert.Equal(t, 1, service.GetStatus()["last_sync_snapshots"])
	})

	t.Run("erro ao listar campanhas fica no status", func(t *testing.T) {
		service, m := newTestSyncService(t, 0)

		m.campaignRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		err := service.SyncPacingSnapshots(context.Background())

		require.Error(t, err)
		assert.Contains(t, service.GetStatus()["last_sync_error"], "timeout")
	})

	t.Run("erro ao salvar snapshots fica no status", func(t *testing.T) {
		service, m := newTestSyncService(t, 30)
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

		m.campaignRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Campaign{{ID: "cmp-a", Goal: 10}}, nil)
		m.forecaster.EXPECT().Now().Return(now).AnyTimes()
		m.forecaster.EXPECT().ForecastCampaign(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(forecastFor(10))
		m.snapshotRepo.EXPECT().GetByDate(gomock.Any(), day.AddDate(0, 0, -1)).Return(nil, nil)
		m.snapshotRepo.EXPECT().GetLatestDate(gomock.Any()).Return(nil, nil)
		m.snapshotRepo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Len(1)).Return(errors.New("deadlock detected"))

		err := service.SyncPacingSnapshots(context.Background())

		require.Error(t, err)
		status := service.GetStatus()
		assert.NotEmpty(t, status["last_sync_error"])
		assert.Contains(t, status["last_sync_error"], "deadlock detected")
		assert.Equal(t, 0, status["last_sync_snapshots"])
	})

	t.Run("execução em andamento é ignorada", func(t *testing.T) {
		service, _ := newTestSyncService(t, 0)
		service.syncRunning = true

		require.NoError(t, service.SyncPacingSnapshots(context.Background()))
		assert.False(t, service.TriggerManualSync())
	})
}

func TestPacingSnapshotSyncService_StartDisabled(t *testing.T) {
	service, _ := newTestSyncService(t, 0)

	assert.NoError(t, service.Start(context.Background()))
	assert.False(t, service.GetStatus()["sync_enabled"].(bool))
}

func TestAttainment(t *testing.T) {
	assert.Equal(t, 0.0, attainment(100, 0))
	assert.Equal(t, 0.3333, attainment(1, 3))
	assert.Equal(t, 2.0, attainment(200, 100))
}
