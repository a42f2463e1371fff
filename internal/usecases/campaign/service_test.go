package campaign

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newTestService(t *testing.T) (*Service, *mocks.MockCampaignRepository, *mocks.MockSourceMetricRepository) {
	ctrl := gomock.NewController(t)

	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	sourceRepo := mocks.NewMockSourceMetricRepository(ctrl)

	service := &Service{
		campaignRepo: campaignRepo,
		sourceRepo:   sourceRepo,
		generateID:   func() (string, error) { return "ID00000001", nil },
	}

	return service, campaignRepo, sourceRepo
}

func assertCampaignError(t *testing.T, err error, base error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.ErrorIs(t, err, base)

	var campaignErr *CampaignError
	require.True(t, errors.As(err, &campaignErr))
	assert.Equal(t, code, campaignErr.Code)
}

func TestService_CreateCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active campaign with defaults", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)

		campaignRepo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Campaign) error {
				assert.Equal(t, "ID00000001", c.ID)
				assert.Equal(t, domain.CampaignStatusActive, c.Status)
				assert.Equal(t, domain.GoalMetricStreams, c.GoalMetric)
				require.NotNil(t, c.StartDate)
				assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *c.StartDate)
				assert.Nil(t, c.EndDate)
				return nil
			})

		campaign, err := service.CreateCampaign(ctx, &domain.CreateCampaignRequest{
			Name:      "  Lançamento  ",
			Goal:      100000,
			StartDate: strPtr("2024-03-01"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Lançamento", campaign.Name)
	})

	tests := []struct {
		name    string
		request *domain.CreateCampaignRequest
		base    error
		code    string
	}{
		{"missing name", &domain.CreateCampaignRequest{Goal: 10}, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
		{"negative goal", &domain.CreateCampaignRequest{Name: "A", Goal: -1}, ErrInvalidRequest, apiErrors.ErrInvalidRequest},
		{"unknown goal metric", &domain.CreateCampaignRequest{Name: "A", GoalMetric: "likes"}, ErrInvalidRequest, apiErrors.ErrInvalidRequest},
		{"malformed date", &domain.CreateCampaignRequest{Name: "A", StartDate: strPtr("01/03/2024")}, ErrInvalidDates, apiErrors.ErrInvalidFormat},
		{"end before start", &domain.CreateCampaignRequest{Name: "A", StartDate: strPtr("2024-03-10"), EndDate: strPtr("2024-03-01")}, ErrInvalidDates, apiErrors.ErrInvalidCampaignDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService(t)

			_, err := service.CreateCampaign(ctx, tt.request)

			assertCampaignError(t, err, tt.base, tt.code)
		})
	}

	t.Run("repository failure", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		campaignRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := service.CreateCampaign(ctx, &domain.CreateCampaignRequest{Name: "A"})

		assertCampaignError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	})
}

func TestService_GetCampaign(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		campaignRepo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := service.GetCampaign(ctx, "missing")

		assertCampaignError(t, err, ErrCampaignNotFound, apiErrors.ErrCampaignNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.GetCampaign(ctx, " ")

		assertCampaignError(t, err, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_UpdateCampaign(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	existing := func() *domain.Campaign {
		s := start
		return &domain.Campaign{ID: "cmp-1", Name: "A", Goal: 100, StartDate: &s, Status: domain.CampaignStatusActive}
	}

	t.Run("patches only informed fields", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		goal := int64(500)

		campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(existing(), nil)
		campaignRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		campaign, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{
			ID:      "cmp-1",
			Goal:    &goal,
			Status:  strPtr("paused"),
			EndDate: strPtr("2024-05-30"),
		})

		require.NoError(t, err)
		assert.Equal(t, "A", campaign.Name)
		assert.Equal(t, int64(500), campaign.Goal)
		assert.Equal(t, domain.CampaignStatusPaused, campaign.Status)
		require.NotNil(t, campaign.EndDate)
		assert.Equal(t, "2024-05-30", campaign.EndDate.Format(time.DateOnly))
	})

	t.Run("empty date clears the field", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)

		campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(existing(), nil)
		campaignRepo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		campaign, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{ID: "cmp-1", StartDate: strPtr("")})

		require.NoError(t, err)
		assert.Nil(t, campaign.StartDate)
	})

	t.Run("invalid status", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(existing(), nil)

		_, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{ID: "cmp-1", Status: strPtr("deleted")})

		assertCampaignError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidCampaignStatus)
	})

	t.Run("end date before stored start", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(existing(), nil)

		_, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{ID: "cmp-1", EndDate: strPtr("2024-02-01")})

		assertCampaignError(t, err, ErrInvalidDates, apiErrors.ErrInvalidCampaignDates)
	})

	t.Run("row vanished during update", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(existing(), nil)
		campaignRepo.EXPECT().Update(ctx, gomock.Any()).Return(sql.ErrNoRows)

		_, err := service.UpdateCampaign(ctx, &domain.UpdateCampaignRequest{ID: "cmp-1"})

		assertCampaignError(t, err, ErrCampaignNotFound, apiErrors.ErrCampaignNotFound)
	})
}

func TestService_ListCampaigns(t *testing.T) {
	ctx := context.Background()

	t.Run("passes status filter", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		statuses := []domain.CampaignStatus{domain.CampaignStatusActive}

		campaignRepo.EXPECT().
			List(ctx, domain.CampaignFilters{Statuses: statuses}).
			Return([]*domain.Campaign{{ID: "cmp-1"}}, nil)

		campaigns, err := service.ListCampaigns(ctx, statuses)

		require.NoError(t, err)
		assert.Len(t, campaigns, 1)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		service, _, _ := newTestService(t)

		_, err := service.ListCampaigns(ctx, []domain.CampaignStatus{"finished"})

		assertCampaignError(t, err, ErrInvalidStatus, apiErrors.ErrInvalidCampaignStatus)
	})
}

func TestService_UpsertSource(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults category to other", func(t *testing.T) {
		service, campaignRepo, sourceRepo := newTestService(t)

		campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(&domain.Campaign{ID: "cmp-1"}, nil)
		sourceRepo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, m *domain.SourceMetric) error {
				assert.Equal(t, domain.SourceCategoryOther, m.Category)
				assert.Equal(t, "Playlist A", m.SourceName)
				assert.Equal(t, "cmp-1", m.CampaignID)
				return nil
			})

		metric, err := service.UpsertSource(ctx, "cmp-1", &domain.UpsertSourceMetricRequest{
			SourceName: " Playlist A ",
			Last24h:    10,
			Last7d:     70,
			Last12m:    900,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(900), metric.Last12m)
	})

	tests := []struct {
		name    string
		request *domain.UpsertSourceMetricRequest
		base    error
		code    string
	}{
		{"missing source name", &domain.UpsertSourceMetricRequest{}, ErrMissingRequiredData, apiErrors.ErrMissingRequiredData},
		{"invalid category", &domain.UpsertSourceMetricRequest{SourceName: "A", Category: "paid"}, ErrInvalidCategory, apiErrors.ErrInvalidSourceCategory},
		{"negative window", &domain.UpsertSourceMetricRequest{SourceName: "A", Last7d: -1}, ErrInvalidRequest, apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newTestService(t)

			_, err := service.UpsertSource(ctx, "cmp-1", tt.request)

			assertCampaignError(t, err, tt.base, tt.code)
		})
	}

	t.Run("unknown campaign", func(t *testing.T) {
		service, campaignRepo, _ := newTestService(t)
		campaignRepo.EXPECT().GetByID(ctx, "missing").Return(nil, nil)

		_, err := service.UpsertSource(ctx, "missing", &domain.UpsertSourceMetricRequest{SourceName: "A"})

		assertCampaignError(t, err, ErrCampaignNotFound, apiErrors.ErrCampaignNotFound)
	})
}

func TestService_ListSources(t *testing.T) {
	ctx := context.Background()
	service, campaignRepo, sourceRepo := newTestService(t)

	campaignRepo.EXPECT().GetByID(ctx, "cmp-1").Return(&domain.Campaign{ID: "cmp-1"}, nil)
	sourceRepo.EXPECT().ListByCampaignID(ctx, "cmp-1").Return([]domain.SourceMetric{{SourceName: "A"}}, nil)

	sources, err := service.ListSources(ctx, "cmp-1")

	require.NoError(t, err)
	assert.Len(t, sources, 1)
}
