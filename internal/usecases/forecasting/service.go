// Package forecasting liga o motor de pacing às campanhas armazenadas: carrega as fontes,
// aplica os filtros de categoria, fixa o relógio e memoiza o resultado quando há cache.
package forecasting

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"slices"
	"time"

	"github.com/vfg2006/campaign-pacing-api/infrastructure/cache"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/internal/pacing"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-pacing-api/pkg/log"
	"github.com/vfg2006/campaign-pacing-api/pkg/utils"
)

const defaultHistoryDays = 30

type Forecaster interface {
	GetCampaignPacing(ctx context.Context, campaignID string, filters domain.PacingFilters) (*domain.CampaignPacingResponse, error)
	ForecastCampaign(ctx context.Context, c *domain.Campaign, filters domain.PacingFilters) (*domain.CampaignPacingResponse, error)
	ComputePacing(ctx context.Context, input domain.PacingInput) domain.PacingResult
	GetPacingHistory(ctx context.Context, campaignID string, startDate, endDate *time.Time) ([]*domain.PacingSnapshot, error)
	Now() time.Time
}

type Service struct {
	campaignRepo       repository.CampaignRepository
	sourceRepo         repository.SourceMetricRepository
	snapshotRepo       repository.PacingSnapshotRepository
	engine             *pacing.Engine
	cache              cache.PacingCache
	excludedCategories []domain.SourceCategory
	granularity        time.Duration
	clock              func() time.Time
}

type Option func(*Service)

// WithCache habilita a memoização dos resultados
func WithCache(c cache.PacingCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// WithClockGranularity trunca o relógio para que chamadas próximas gerem o mesmo input
func WithClockGranularity(granularity time.Duration) Option {
	return func(s *Service) {
		s.granularity = granularity
	}
}

// WithExcludedCategories define categorias sempre removidas antes da agregação
func WithExcludedCategories(categories []domain.SourceCategory) Option {
	return func(s *Service) {
		s.excludedCategories = categories
	}
}

func NewService(
	campaignRepo repository.CampaignRepository,
	sourceRepo repository.SourceMetricRepository,
	snapshotRepo repository.PacingSnapshotRepository,
	engine *pacing.Engine,
	opts ...Option,
) *Service {
	s := &Service{
		campaignRepo: campaignRepo,
		sourceRepo:   sourceRepo,
		snapshotRepo: snapshotRepo,
		engine:       engine,
		clock:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Now é o instante de referência: relógio em UTC truncado pela granularidade configurada
func (s *Service) Now() time.Time {
	now := s.clock().UTC()
	if s.granularity > 0 {
		now = now.Truncate(s.granularity)
	}
	return now
}

func (s *Service) GetCampaignPacing(ctx context.Context, campaignID string, filters domain.PacingFilters) (*domain.CampaignPacingResponse, error) {
	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("Erro ao buscar campanha")
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha")
	}
	if c == nil {
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	return s.ForecastCampaign(ctx, c, filters)
}

func (s *Service) ForecastCampaign(ctx context.Context, c *domain.Campaign, filters domain.PacingFilters) (*domain.CampaignPacingResponse, error) {
	for _, category := range filters.ExcludeCategories {
		if !category.IsValid() {
			return nil, campaign.NewCampaignErrorWithID(campaign.ErrInvalidCategory, apiErrors.ErrInvalidSourceCategory, c.ID, string(category))
		}
	}

	sources, err := s.sourceRepo.ListByCampaignID(ctx, c.ID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", c.ID).Error("Erro ao listar fontes")
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, c.ID, "Falha ao listar fontes da campanha")
	}

	sources = pacing.FilterSources(sources, slices.Concat(s.excludedCategories, filters.ExcludeCategories)...)
	metrics := pacing.Aggregate(sources)

	now := s.Now()
	if filters.Now != nil {
		now = filters.Now.UTC()
	}

	input := domain.PacingInput{
		Goal:    c.Goal,
		Metrics: metrics,
		Timeline: domain.TimelineInput{
			StartDate: c.StartDate,
			EndDate:   c.EndDate,
			Now:       now,
		},
	}

	result := s.ComputePacing(ctx, input)

	log.ForContext(ctx).WithFields(log.Fields{
		"campaign_id":   c.ID,
		"pacing_status": result.Status,
	}).Debug("Pacing calculado")

	return &domain.CampaignPacingResponse{
		Campaign:     c,
		Metrics:      metrics,
		SourcesCount: len(sources),
		Result:       result,
	}, nil
}

// ComputePacing executa o motor; falhas do cache só geram aviso
func (s *Service) ComputePacing(ctx context.Context, input domain.PacingInput) domain.PacingResult {
	if input.Timeline.Now.IsZero() {
		input.Timeline.Now = s.Now()
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, input)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao ler pacing do cache")
		} else if cached != nil {
			return *cached
		}
	}

	result := s.engine.ComputePacing(input)

	if s.cache != nil {
		if err := s.cache.Set(ctx, input, &result); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao gravar pacing no cache")
		}
	}

	return result
}

// GetPacingHistory devolve os snapshots diários; sem datas, os últimos 30 dias
func (s *Service) GetPacingHistory(ctx context.Context, campaignID string, startDate, endDate *time.Time) ([]*domain.PacingSnapshot, error) {
	end := utils.StartOfDay(s.Now())
	if endDate != nil {
		end = utils.StartOfDay(endDate.UTC())
	}

	start := end.AddDate(0, 0, -defaultHistoryDays)
	if startDate != nil {
		start = utils.StartOfDay(startDate.UTC())
	}

	if start.After(end) {
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrInvalidDates, apiErrors.ErrInvalidRequest, campaignID, "Data inicial posterior à data final")
	}

	c, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha")
	}
	if c == nil {
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, campaignID, "")
	}

	snapshots, err := s.snapshotRepo.GetByCampaignAndDateRange(ctx, campaignID, start, end)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("Erro ao buscar histórico de pacing")
		return nil, campaign.NewCampaignErrorWithID(campaign.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar histórico de pacing")
	}

	return snapshots, nil
}
