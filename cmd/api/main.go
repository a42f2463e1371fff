package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/cache"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/migration"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository"
	"github.com/vfg2006/campaign-pacing-api/internal/api"
	"github.com/vfg2006/campaign-pacing-api/internal/config"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
	"github.com/vfg2006/campaign-pacing-api/internal/pacing"
	"github.com/vfg2006/campaign-pacing-api/internal/scheduler"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/authenticating"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/campaign"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/forecasting"
	"github.com/vfg2006/campaign-pacing-api/internal/usecases/ranking"
	"github.com/vfg2006/campaign-pacing-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if cfg.Database.Migrate {
		applied, err := migration.Run(ctx, pgConn, migration.Steps)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações do banco de dados")
		}
		logrus.WithField("applied", applied).Info("Migrações do banco de dados verificadas")
	}

	userRepo := repository.NewUserRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	sourceRepo := repository.NewSourceMetricRepository(pgConn)
	snapshotRepo := repository.NewPacingSnapshotRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg.Auth)
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := authenticator.EnsureAdminUser(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			logrus.WithError(err).Error("Erro ao criar administrador inicial")
		}
	}

	engine := pacing.NewEngine(pacing.Options{
		AheadThreshold:      cfg.Pacing.AheadThreshold,
		MaxPoints:           cfg.Pacing.MaxPoints,
		DefaultDurationDays: cfg.Pacing.DefaultDurationDays,
	})

	forecastOpts := []forecasting.Option{
		forecasting.WithClockGranularity(cfg.Pacing.ClockGranularity),
		forecasting.WithExcludedCategories(excludedCategories(cfg.Pacing.ExcludedCategories)),
	}
	if pacingCache := newPacingCache(ctx, cfg.Redis); pacingCache != nil {
		forecastOpts = append(forecastOpts, forecasting.WithCache(pacingCache))
	}

	forecaster := forecasting.NewService(campaignRepo, sourceRepo, snapshotRepo, engine, forecastOpts...)
	campaignService := campaign.NewService(campaignRepo, sourceRepo)
	rankingService := ranking.NewPacingRankingService(snapshotRepo)

	pacingSnapshotSyncService := scheduler.NewPacingSnapshotSyncService(campaignRepo, snapshotRepo, forecaster, cfg)
	if err := pacingSnapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots de pacing")
	} else {
		logrus.Info("Agendador de snapshots de pacing iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator:      authenticator,
		CampaignService:    campaignService,
		Forecaster:         forecaster,
		RankingService:     rankingService,
		PacingSnapshotSync: pacingSnapshotSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

// newPacingCache conecta ao Redis quando habilitado; sem Redis o pacing é sempre recalculado
func newPacingCache(ctx context.Context, cfg config.Redis) cache.PacingCache {
	if !cfg.Enabled {
		logrus.Info("Cache de pacing desabilitado por configuração")
		return nil
	}

	client, err := cache.NewRedisClient(ctx, cfg.URL)
	if err != nil {
		logrus.WithError(err).Warn("Redis indisponível, seguindo sem cache de pacing")
		return nil
	}

	logrus.WithField("ttl", cfg.TTL.String()).Info("Cache de pacing no Redis habilitado")
	return cache.NewPacingCache(client, cfg.TTL)
}

func excludedCategories(values []string) []domain.SourceCategory {
	categories := make([]domain.SourceCategory, 0, len(values))
	for _, value := range values {
		category := domain.SourceCategory(value)
		if !category.IsValid() {
			logrus.WithField("category", value).Warn("Categoria de fonte desconhecida ignorada em PACING_EXCLUDED_CATEGORIES")
			continue
		}
		categories = append(categories, category)
	}
	return categories
}
