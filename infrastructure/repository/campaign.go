package repository

//go:generate mockgen -source=campaign.go -destination=mocks/mock_campaign.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

const campaignsTable = "campaigns"

var campaignColumns = []string{
	"id",
	"name",
	"artist_name",
	"platform",
	"goal",
	"goal_metric",
	"start_date",
	"end_date",
	"status",
	"created_at",
	"updated_at",
}

type CampaignRepository interface {
	Create(ctx context.Context, campaign *domain.Campaign) error
	Update(ctx context.Context, campaign *domain.Campaign) error
	GetByID(ctx context.Context, id string) (*domain.Campaign, error)
	List(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Insert(campaignsTable).
		Columns("id", "name", "artist_name", "platform", "goal", "goal_metric", "start_date", "end_date", "status").
		Values(
			campaign.ID,
			campaign.Name,
			campaign.ArtistName,
			campaign.Platform,
			campaign.Goal,
			campaign.GoalMetric,
			campaign.StartDate,
			campaign.EndDate,
			campaign.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.CreatedAt, &campaign.UpdatedAt)
	if err != nil {
		return fmt.Errorf("erro ao inserir campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) Update(ctx context.Context, campaign *domain.Campaign) error {
	query, args, err := squirrel.
		Update(campaignsTable).
		Set("name", campaign.Name).
		Set("artist_name", campaign.ArtistName).
		Set("platform", campaign.Platform).
		Set("goal", campaign.Goal).
		Set("start_date", campaign.StartDate).
		Set("end_date", campaign.EndDate).
		Set("status", campaign.Status).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": campaign.ID}).
		Suffix("RETURNING updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&campaign.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err
		}
		return fmt.Errorf("erro ao atualizar campanha: %w", err)
	}

	return nil
}

func (r *campaignRepository) GetByID(ctx context.Context, id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := scanCampaign(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) List(ctx context.Context, filters domain.CampaignFilters) ([]*domain.Campaign, error) {
	queryBuilder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		OrderBy("created_at DESC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(filters.Statuses) > 0 {
		statuses := make([]string, len(filters.Statuses))
		for i, s := range filters.Statuses {
			statuses[i] = string(s)
		}
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": statuses})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar campanhas: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row scanner) (*domain.Campaign, error) {
	var (
		campaign  domain.Campaign
		startDate sql.NullTime
		endDate   sql.NullTime
	)

	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.ArtistName,
		&campaign.Platform,
		&campaign.Goal,
		&campaign.GoalMetric,
		&startDate,
		&endDate,
		&campaign.Status,
		&campaign.CreatedAt,
		&campaign.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.StartDate = nullTimePtr(startDate)
	campaign.EndDate = nullTimePtr(endDate)

	return &campaign, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
