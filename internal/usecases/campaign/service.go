package campaign

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-pacing-api/pkg/log"
	"github.com/vfg2006/campaign-pacing-api/pkg/utils"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, statuses []domain.CampaignStatus) ([]*domain.Campaign, error)
	ListSources(ctx context.Context, campaignID string) ([]domain.SourceMetric, error)
	UpsertSource(ctx context.Context, campaignID string, request *domain.UpsertSourceMetricRequest) (*domain.SourceMetric, error)
}

type Service struct {
	campaignRepo repository.CampaignRepository
	sourceRepo   repository.SourceMetricRepository
	generateID   func() (string, error)
}

func NewService(
	campaignRepo repository.CampaignRepository,
	sourceRepo repository.SourceMetricRepository,
) CampaignService {
	return &Service{
		campaignRepo: campaignRepo,
		sourceRepo:   sourceRepo,
		generateID:   utils.GenerateID,
	}
}

func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome da campanha é obrigatório")
	}

	if request.Goal < 0 {
		return nil, NewCampaignError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Meta não pode ser negativa")
	}

	goalMetric := request.GoalMetric
	if goalMetric == "" {
		goalMetric = domain.GoalMetricStreams
	}
	if goalMetric != domain.GoalMetricStreams && goalMetric != domain.GoalMetricReposts {
		return nil, NewCampaignError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "Métrica de meta deve ser streams ou reposts")
	}

	startDate, endDate, err := parseDates(request.StartDate, request.EndDate)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	campaign := &domain.Campaign{
		ID:         id,
		Name:       name,
		ArtistName: strings.TrimSpace(request.ArtistName),
		Platform:   strings.TrimSpace(request.Platform),
		Goal:       request.Goal,
		GoalMetric: goalMetric,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     domain.CampaignStatusActive,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao criar campanha")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar campanha")
	}

	log.ForContext(ctx).WithField("campaign_id", campaign.ID).Info("Campanha criada")

	return campaign, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, request *domain.UpdateCampaignRequest) (*domain.Campaign, error) {
	campaign, err := s.GetCampaign(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, NewCampaignErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, request.ID, "Nome da campanha é obrigatório")
		}
		campaign.Name = name
	}

	if request.ArtistName != nil {
		campaign.ArtistName = strings.TrimSpace(*request.ArtistName)
	}

	if request.Platform != nil {
		campaign.Platform = strings.TrimSpace(*request.Platform)
	}

	if request.Goal != nil {
		if *request.Goal < 0 {
			return nil, NewCampaignErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, request.ID, "Meta não pode ser negativa")
		}
		campaign.Goal = *request.Goal
	}

	if request.Status != nil {
		status := domain.CampaignStatus(*request.Status)
		if !status.IsValid() {
			return nil, NewCampaignErrorWithID(ErrInvalidStatus, apiErrors.ErrInvalidCampaignStatus, request.ID, *request.Status)
		}
		campaign.Status = status
	}

	if request.StartDate != nil {
		campaign.StartDate, err = utils.ParseOptionalDate(request.StartDate)
		if err != nil {
			return nil, NewCampaignErrorWithID(ErrInvalidDates, apiErrors.ErrInvalidFormat, request.ID, "Data de início deve estar no formato YYYY-MM-DD")
		}
	}

	if request.EndDate != nil {
		campaign.EndDate, err = utils.ParseOptionalDate(request.EndDate)
		if err != nil {
			return nil, NewCampaignErrorWithID(ErrInvalidDates, apiErrors.ErrInvalidFormat, request.ID, "Data de fim deve estar no formato YYYY-MM-DD")
		}
	}

	if err := validateWindow(campaign.StartDate, campaign.EndDate); err != nil {
		return nil, err
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, request.ID, "")
		}
		log.ForContext(ctx).WithError(err).WithField("campaign_id", request.ID).Error("Erro ao atualizar campanha")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, request.ID, "Falha ao atualizar campanha")
	}

	return campaign, nil
}

func (s *Service) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return nil, NewCampaignError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "ID da campanha é obrigatório")
	}

	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", id).Error("Erro ao buscar campanha")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar campanha")
	}

	if campaign == nil {
		return nil, NewCampaignErrorWithID(ErrCampaignNotFound, apiErrors.ErrCampaignNotFound, id, "")
	}

	return campaign, nil
}

func (s *Service) ListCampaigns(ctx context.Context, statuses []domain.CampaignStatus) ([]*domain.Campaign, error) {
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, NewCampaignError(ErrInvalidStatus, apiErrors.ErrInvalidCampaignStatus, string(status))
		}
	}

	campaigns, err := s.campaignRepo.List(ctx, domain.CampaignFilters{Statuses: statuses})
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao listar campanhas")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar campanhas")
	}

	return campaigns, nil
}

func (s *Service) ListSources(ctx context.Context, campaignID string) ([]domain.SourceMetric, error) {
	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	sources, err := s.sourceRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("Erro ao listar fontes")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao listar fontes da campanha")
	}

	return sources, nil
}

func (s *Service) UpsertSource(ctx context.Context, campaignID string, request *domain.UpsertSourceMetricRequest) (*domain.SourceMetric, error) {
	sourceName := strings.TrimSpace(request.SourceName)
	if sourceName == "" {
		return nil, NewCampaignErrorWithID(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, campaignID, "Nome da fonte é obrigatório")
	}

	category := request.Category
	if category == "" {
		category = domain.SourceCategoryOther
	}
	if !category.IsValid() {
		return nil, NewCampaignErrorWithID(ErrInvalidCategory, apiErrors.ErrInvalidSourceCategory, campaignID, string(category))
	}

	if request.Last24h < 0 || request.Last7d < 0 || request.Last12m < 0 {
		return nil, NewCampaignErrorWithID(ErrInvalidRequest, apiErrors.ErrInvalidRequest, campaignID, "Janelas de entrega não podem ser negativas")
	}

	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	metric := &domain.SourceMetric{
		ID:         id,
		CampaignID: campaignID,
		SourceName: sourceName,
		Category:   category,
		Last24h:    request.Last24h,
		Last7d:     request.Last7d,
		Last12m:    request.Last12m,
	}

	if err := s.sourceRepo.Upsert(ctx, metric); err != nil {
		log.ForContext(ctx).WithError(err).WithField("campaign_id", campaignID).Error("Erro ao gravar fonte")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao gravar fonte da campanha")
	}

	return metric, nil
}

func parseDates(start, end *string) (*time.Time, *time.Time, error) {
	startDate, err := utils.ParseOptionalDate(start)
	if err != nil {
		return nil, nil, NewCampaignError(ErrInvalidDates, apiErrors.ErrInvalidFormat, "Data de início deve estar no formato YYYY-MM-DD")
	}

	endDate, err := utils.ParseOptionalDate(end)
	if err != nil {
		return nil, nil, NewCampaignError(ErrInvalidDates, apiErrors.ErrInvalidFormat, "Data de fim deve estar no formato YYYY-MM-DD")
	}

	if err := validateWindow(startDate, endDate); err != nil {
		return nil, nil, err
	}

	return startDate, endDate, nil
}

// validateWindow rejeita fim anterior ao início; datas ausentes são resolvidas pelo motor
func validateWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return NewCampaignError(ErrInvalidDates, apiErrors.ErrInvalidCampaignDates, "Data de fim anterior à data de início")
	}
	return nil
}
