package repository

//go:generate mockgen -source=source_metric.go -destination=mocks/mock_source_metric.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-pacing-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

const campaignSourcesTable = "campaign_sources"

type SourceMetricRepository interface {
	Upsert(ctx context.Context, metric *domain.SourceMetric) error
	ListByCampaignID(ctx context.Context, campaignID string) ([]domain.SourceMetric, error)
}

type sourceMetricRepository struct {
	conn *postgres.Connection
}

func NewSourceMetricRepository(conn *postgres.Connection) SourceMetricRepository {
	return &sourceMetricRepository{
		conn: conn,
	}
}

// Upsert grava as janelas de uma fonte; a chave é (campaign_id, source_name)
func (r *sourceMetricRepository) Upsert(ctx context.Context, metric *domain.SourceMetric) error {
	query, args, err := squirrel.
		Insert(campaignSourcesTable).
		Columns("id", "campaign_id", "source_name", "category", "last_24h", "last_7d", "last_12m").
		Values(
			metric.ID,
			metric.CampaignID,
			metric.SourceName,
			metric.Category,
			metric.Last24h,
			metric.Last7d,
			metric.Last12m,
		).
		Suffix(`
			ON CONFLICT (campaign_id, source_name) DO UPDATE SET
				category = EXCLUDED.category,
				last_24h = EXCLUDED.last_24h,
				last_7d = EXCLUDED.last_7d,
				last_12m = EXCLUDED.last_12m,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&metric.ID, &metric.UpdatedAt); err != nil {
		return fmt.Errorf("erro ao gravar fonte da campanha: %w", err)
	}

	return nil
}

func (r *sourceMetricRepository) ListByCampaignID(ctx context.Context, campaignID string) ([]domain.SourceMetric, error) {
	query, args, err := squirrel.
		Select("id", "campaign_id", "source_name", "category", "last_24h", "last_7d", "last_12m", "updated_at").
		From(campaignSourcesTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		OrderBy("last_12m DESC", "source_name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fontes da campanha: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.SourceMetric, 0)
	for rows.Next() {
		var m domain.SourceMetric
		if err := rows.Scan(
			&m.ID,
			&m.CampaignID,
			&m.SourceName,
			&m.Category,
			&m.Last24h,
			&m.Last7d,
			&m.Last12m,
			&m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear fonte: %w", err)
		}
		metrics = append(metrics, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
