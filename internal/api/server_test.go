package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-pacing-api/internal/config"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/campaign-pacing-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/campaign"
	campaignmocks "github.com/vfg2006/campaign-pacing-api/internal/usecases/campaign/mocks"
	forecastingmocks "github.com/vfg2006/campaign-pacing-api/internal/usecases/forecasting/mocks"
	rankingmocks "github.com/vfg2006/campaign-pacing-api/internal/usecases/ranking/mocks"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-pacing-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	adminToken  = "admin-token"
	clientToken = "client-token"
)

type fakeSyncJob struct {
	accept    bool
	triggered int
}

func (f *fakeSyncJob) TriggerManualSync() bool {
	f.triggered++
	return f.accept
}

func (f *fakeSyncJob) GetStatus() map[string]any {
	return map[string]any{"sync_enabled": true}
}

type testServer struct {
	handler     http.Handler
	auth        *authmocks.MockAuthenticator
	campaigns   *campaignmocks.MockCampaignService
	forecaster  *forecastingmocks.MockForecaster
	ranking     *rankingmocks.MockRankingService
	snapshotJob *fakeSyncJob
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)

	ts := &testServer{
		auth:        authmocks.NewMockAuthenticator(ctrl),
		campaigns:   campaignmocks.NewMockCampaignService(ctrl),
		forecaster:  forecastingmocks.NewMockForecaster(ctrl),
		ranking:     rankingmocks.NewMockRankingService(ctrl),
		snapshotJob: &fakeSyncJob{accept: true},
	}

	ts.auth.EXPECT().ValidateToken(adminToken).Return(&domain.Claims{UserID: 1, UserRoleID: middleware.RoleAdmin}, nil).AnyTimes()
	ts.auth.EXPECT().ValidateToken(clientToken).Return(&domain.Claims{UserID: 3, UserRoleID: middleware.RoleClient}, nil).AnyTimes()

	cfg := &config.Config{Server: config.Server{AllowedOrigins: []string{"http://localhost:3000"}}}
	ts.handler = NewHandler(cfg, Services{
		Authenticator:      ts.auth,
		CampaignService:    ts.campaigns,
		Forecaster:         ts.forecaster,
		RankingService:     ts.ranking,
		PacingSnapshotSync: ts.snapshotJob,
	})

	return ts
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestServer_PublicRoutes(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/healthcheck", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	ts.auth.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "s3nha").Return("jwt", nil)
	rec = ts.do(http.MethodPost, "/v1/login", "", `{"email":"ana@example.com","password":"s3nha"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"jwt"}`, rec.Body.String())

	ts.auth.EXPECT().LoginUser(gomock.Any(), "ana@example.com", "errada").Return("",
		authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta"))
	rec = ts.do(http.MethodPost, "/v1/login", "", `{"email":"ana@example.com","password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidCredentials, decodeError(t, rec).Code)
}

func TestServer_RequiresAuthentication(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/v1/campaigns", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_Me(t *testing.T) {
	ts := newTestServer(t)
	ts.auth.EXPECT().GetUserProfile(gomock.Any(), 3).Return(&domain.User{ID: 3, Email: "c@example.com"}, nil)

	rec := ts.do(http.MethodGet, "/v1/me", clientToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"c@example.com"`)
}

func TestServer_Campaigns(t *testing.T) {
	t.Run("client cannot create", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/v1/campaigns", clientToken, `{"name":"Lançamento"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin creates", func(t *testing.T) {
		ts := newTestServer(t)
		ts.campaigns.EXPECT().
			CreateCampaign(gomock.Any(), &domain.CreateCampaignRequest{Name: "Lançamento", Goal: 1000}).
			Return(&domain.Campaign{ID: "cmp-1", Name: "Lançamento", Goal: 1000}, nil)

		rec := ts.do(http.MethodPost, "/v1/campaigns", adminToken, `{"name":"Lançamento","goal":1000}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"cmp-1"`)
	})

	t.Run("status filter is split", func(t *testing.T) {
		ts := newTestServer(t)
		ts.campaigns.EXPECT().
			ListCampaigns(gomock.Any(), []domain.CampaignStatus{domain.CampaignStatusActive, domain.CampaignStatusPaused}).
			Return([]*domain.Campaign{}, nil)

		rec := ts.do(http.MethodGet, "/v1/campaigns?status=active,paused", clientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("update uses id from path", func(t *testing.T) {
		ts := newTestServer(t)
		ts.campaigns.EXPECT().
			UpdateCampaign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
				assert.Equal(t, "cmp-1", req.ID)
				return &domain.Campaign{ID: req.ID}, nil
			})

		rec := ts.do(http.MethodPut, "/v1/campaigns/cmp-1", adminToken, `{"id":"other","goal":10}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPut, "/v1/campaigns/cmp-1/sources", adminToken, `{`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
	})
}

func TestServer_CampaignPacing(t *testing.T) {
	t.Run("filters are parsed from the query", func(t *testing.T) {
		ts := newTestServer(t)
		now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

		ts.forecaster.EXPECT().
			GetCampaignPacing(gomock.Any(), "cmp-1", domain.PacingFilters{
				ExcludeCategories: []domain.SourceCategory{domain.SourceCategoryVendor, domain.SourceCategoryOther},
				Now:               &now,
			}).
			Return(&domain.CampaignPacingResponse{
				Result: domain.PacingResult{Status: domain.PacingStatusBehind},
			}, nil)

		rec := ts.do(http.MethodGet, "/v1/campaigns/cmp-1/pacing?exclude_categories=vendor,%20other&now=2024-03-10", clientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"behind"`)
	})

	t.Run("unknown campaign", func(t *testing.T) {
		ts := newTestServer(t)
		ts.forecaster.EXPECT().
			GetCampaignPacing(gomock.Any(), "missing", gomock.Any()).
			Return(nil, campaign.NewCampaignErrorWithID(campaign.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, "missing", ""))

		rec := ts.do(http.MethodGet, "/v1/campaigns/missing/pacing", clientToken, "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrCampaignNotFound, decodeError(t, rec).Code)
	})

	t.Run("invalid now", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/v1/campaigns/cmp-1/pacing?now=ontem", clientToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code)
	})

	t.Run("history with dates", func(t *testing.T) {
		ts := newTestServer(t)
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		ts.forecaster.EXPECT().
			GetPacingHistory(gomock.Any(), "cmp-1", &start, gomock.Nil()).
			Return([]*domain.PacingSnapshot{{CampaignID: "cmp-1"}}, nil)

		rec := ts.do(http.MethodGet, "/v1/campaigns/cmp-1/pacing/history?start_date=2024-03-01", clientToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestServer_ComputePacing(t *testing.T) {
	ts := newTestServer(t)
	ts.forecaster.EXPECT().
		ComputePacing(gomock.Any(), domain.PacingInput{Goal: 1000, Metrics: domain.WindowedMetrics{Last12m: 500}}).
		Return(domain.PacingResult{Status: domain.PacingStatusOnTrack, GoalConfigured: true})

	rec := ts.do(http.MethodPost, "/v1/pacing/compute", clientToken, `{"goal":1000,"metrics":{"last_12m":500}}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"goal_configured":true`)
}

func TestServer_Ranking(t *testing.T) {
	ts := newTestServer(t)
	date := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	ts.ranking.EXPECT().
		GetPacingRanking(gomock.Any(), &date).
		Return(&domain.PacingRankingResponse{Date: "2024-03-09"}, nil)

	assert.Equal(t, http.StatusForbidden, ts.do(http.MethodGet, "/v1/ranking/pacing", clientToken, "").Code)

	rec := ts.do(http.MethodGet, "/v1/ranking/pacing?date=2024-03-09", adminToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"date":"2024-03-09"`)
}

func TestServer_CronJobs(t *testing.T) {
	t.Run("triggers snapshot job", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/v1/cron/pacing-snapshot/run", adminToken, "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, ts.snapshotJob.triggered)
	})

	t.Run("job already running", func(t *testing.T) {
		ts := newTestServer(t)
		ts.snapshotJob.accept = false

		rec := ts.do(http.MethodPost, "/v1/cron/all/run", adminToken, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrJobAlreadyRunning, decodeError(t, rec).Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodPost, "/v1/cron/meta/run", adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, ts.snapshotJob.triggered)
	})

	t.Run("status", func(t *testing.T) {
		ts := newTestServer(t)

		rec := ts.do(http.MethodGet, "/v1/cron/status", adminToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"pacing-snapshot"`)
	})
}

func TestServer_UnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/v1/accounts", adminToken, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrRouteNotFound, decodeError(t, rec).Code)
}
