// Package scheduler contém os serviços de agendamento para geração de snapshots de pacing
package scheduler

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository"
	"github.com/vfg2006/campaign-pacing-api/internal/config"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/forecasting"
	"github.com/vfg2006/campaign-pacing-api/pkg/log"
	"github.com/vfg2006/campaign-pacing-api/pkg/utils"
)

const defaultMaxConcurrentJobs = 4

type PacingSnapshotSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	RetentionDays     int
	SyncEnabled       bool
}

// PacingSnapshotSyncService calcula diariamente o pacing das campanhas ativas e grava o ranking
type PacingSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              PacingSnapshotSyncConfig
	campaignRepo        repository.CampaignRepository
	snapshotRepo        repository.PacingSnapshotRepository
	forecaster          forecasting.Forecaster
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSnapshots   int
	lastSyncError       string
}

func NewPacingSnapshotSyncService(
	campaignRepo repository.CampaignRepository,
	snapshotRepo repository.PacingSnapshotRepository,
	forecaster forecasting.Forecaster,
	cfg *config.Config,
) *PacingSnapshotSyncService {
	syncConfig := PacingSnapshotSyncConfig{
		CronSchedule:      cfg.PacingSnapshotSync.CronSchedule,
		MaxConcurrentJobs: cfg.PacingSnapshotSync.MaxConcurrentJobs,
		RetentionDays:     cfg.PacingSnapshotSync.RetentionDays,
		SyncEnabled:       cfg.PacingSnapshotSync.Enabled,
	}
	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = defaultMaxConcurrentJobs
	}

	logrus.WithFields(logrus.Fields{
		"job_cron":            syncConfig.CronSchedule,
		"job_max_concurrency": syncConfig.MaxConcurrentJobs,
		"job_retention_days":  syncConfig.RetentionDays,
		"job_enabled":         syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshots de pacing carregada")

	return &PacingSnapshotSyncService{
		scheduler:    gocron.NewScheduler(time.UTC),
		config:       syncConfig,
		campaignRepo: campaignRepo,
		snapshotRepo: snapshotRepo,
		forecaster:   forecaster,
	}
}

func (s *PacingSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Snapshots de pacing desabilitados por configuração")
		return nil
	}

	logrus.WithField("job_cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots de pacing")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncPacingSnapshots(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração de snapshots de pacing")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshots de pacing: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots de pacing")
		s.scheduler.Stop()
	}()

	return nil
}

// IsRunning informa se existe uma sincronização em andamento
func (s *PacingSnapshotSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// SyncPacingSnapshots calcula e persiste os snapshots do dia; execuções concorrentes são ignoradas
func (s *PacingSnapshotSyncService) SyncPacingSnapshots(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Geração de snapshots de pacing já em andamento, ignorando")
		return nil
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	ctx, _ = log.WithCorrelationID(ctx)
	logger := log.ForContext(ctx)

	snapshots, err := s.sync(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncSnapshots = len(snapshots)
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	if err != nil {
		return err
	}

	logger.WithFields(log.Fields{
		"job_snapshots": len(snapshots),
		"job_duration":  time.Since(startTime).String(),
	}).Info("Geração de snapshots de pacing concluída")

	return nil
}

func (s *PacingSnapshotSyncService) sync(ctx context.Context) ([]*domain.PacingSnapshot, error) {
	logger := log.ForContext(ctx)

	campaigns, err := s.campaignRepo.List(ctx, domain.CampaignFilters{
		Statuses: []domain.CampaignStatus{domain.CampaignStatusActive},
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas ativas: %w", err)
	}

	if len(campaigns) == 0 {
		logger.Info("Nenhuma campanha ativa para geração de snapshots de pacing")
		return nil, nil
	}

	logger.WithField("job_campaigns", len(campaigns)).Info("Campanhas encontradas para geração de snapshots de pacing")

	snapshots, err := s.processCampaignsWithDate(ctx, campaigns, s.forecaster.Now())
	if err != nil {
		return nil, err
	}

	if s.config.RetentionDays > 0 {
		cutoff := utils.StartOfDay(s.forecaster.Now()).AddDate(0, 0, -s.config.RetentionDays)
		deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.WithError(err).Warn("Erro ao remover snapshots de pacing antigos")
		} else if deleted > 0 {
			logger.WithField("job_deleted", deleted).Info("Snapshots de pacing antigos removidos")
		}
	}

	return snapshots, nil
}

// processCampaignsWithDate calcula o pacing de cada campanha no instante informado e salva o ranking do dia
func (s *PacingSnapshotSyncService) processCampaignsWithDate(ctx context.Context, campaigns []*domain.Campaign, now time.Time) ([]*domain.PacingSnapshot, error) {
	logger := log.ForContext(ctx)
	date := utils.StartOfDay(now)

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	results := make(chan *domain.PacingSnapshot, len(campaigns))
	var wg sync.WaitGroup

	for _, c := range campaigns {
		wg.Add(1)

		go func(c *domain.Campaign) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			response, err := s.forecaster.ForecastCampaign(ctx, c, domain.PacingFilters{Now: &now})
			if err != nil {
				logger.WithError(err).WithField("campaign_id", c.ID).Error("Erro ao calcular pacing da campanha")
				return
			}

			results <- newSnapshot(c, date, response.Result)
		}(c)
	}

	wg.Wait()
	close(results)

	snapshots := make([]*domain.PacingSnapshot, 0, len(campaigns))
	for snapshot := range results {
		snapshots = append(snapshots, snapshot)
	}

	updatePositions(snapshots, s.previousPositions(ctx, date))

	if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
		logger.WithError(err).Error("Erro ao salvar snapshots de pacing")
		return snapshots, fmt.Errorf("erro ao salvar snapshots de pacing: %w", err)
	}

	return snapshots, nil
}

// previousPositions busca o ranking do dia anterior ou, na falta dele, o último ranking gravado
func (s *PacingSnapshotSyncService) previousPositions(ctx context.Context, date time.Time) map[string]int {
	logger := log.ForContext(ctx)
	positions := make(map[string]int)

	previous, err := s.snapshotRepo.GetByDate(ctx, date.AddDate(0, 0, -1))
	if err != nil {
		logger.WithError(err).Warn("Erro ao buscar ranking de pacing anterior")
		return positions
	}

	if len(previous) == 0 {
		latest, err := s.snapshotRepo.GetLatestDate(ctx)
		if err != nil || latest == nil || !latest.Before(date) {
			return positions
		}

		previous, err = s.snapshotRepo.GetByDate(ctx, *latest)
		if err != nil {
			logger.WithError(err).Warn("Erro ao buscar ranking de pacing anterior")
			return positions
		}
	}

	for _, snapshot := range previous {
		positions[snapshot.CampaignID] = snapshot.Position
	}

	return positions
}

func newSnapshot(c *domain.Campaign, date time.Time, result domain.PacingResult) *domain.PacingSnapshot {
	return &domain.PacingSnapshot{
		CampaignID:          c.ID,
		CampaignName:        c.Name,
		Date:                date,
		Status:              result.Status,
		Goal:                c.Goal,
		StreamsDelivered:    result.StreamsDelivered,
		DailyRate:           result.DailyRate,
		RequiredDailyRate:   result.RequiredDailyRate,
		ProjectedAtEnd:      result.ProjectedAtEnd,
		ProgressPercent:     result.ProgressPercent,
		GoalIntersectionDay: result.GoalIntersectionDay,
		Attainment:          attainment(result.ProjectedAtEnd, c.Goal),
	}
}

func attainment(projected, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	return math.Round(float64(projected)/float64(goal)*10000) / 10000
}

// updatePositions ordena por atingimento projetado e compara com as posições anteriores
func updatePositions(snapshots []*domain.PacingSnapshot, previous map[string]int) {
	sort.SliceStable(snapshots, func(i, j int) bool {
		if snapshots[i].Attainment != snapshots[j].Attainment {
			return snapshots[i].Attainment > snapshots[j].Attainment
		}
		return snapshots[i].CampaignID < snapshots[j].CampaignID
	})

	for i, snapshot := range snapshots {
		snapshot.Position = i + 1

		if before, exists := previous[snapshot.CampaignID]; exists {
			snapshot.PreviousPosition = before
			snapshot.PositionChange = before - snapshot.Position
		}
	}
}

// TriggerManualSync inicia manualmente a geração de snapshots; retorna false se já houver uma em andamento
func (s *PacingSnapshotSyncService) TriggerManualSync() bool {
	if s.IsRunning() {
		logrus.Info("Geração de snapshots de pacing já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando geração manual de snapshots de pacing")
	go func() {
		if err := s.SyncPacingSnapshots(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na geração manual de snapshots de pacing")
		}
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *PacingSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_snapshots":    s.lastSyncSnapshots,
		"last_sync_error":        s.lastSyncError,
	}
}
