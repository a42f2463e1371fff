package repository

//go:generate mockgen -source=pacing_snapshot.go -destination=mocks/mock_pacing_snapshot.go -package=mocks

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

const pacingSnapshotsTable = "pacing_snapshots"

var pacingSnapshotColumns = []string{
	"id",
	"campaign_id",
	"campaign_name",
	"date",
	"status",
	"goal",
	"streams_delivered",
	"daily_rate",
	"required_daily_rate",
	"projected_at_end",
	"progress_percent",
	"goal_intersection_day",
	"attainment",
	"position",
	"position_change",
	"previous_position",
	"created_at",
	"updated_at",
}

type PacingSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshots []*domain.PacingSnapshot) error
	GetByDate(ctx context.Context, date time.Time) ([]*domain.PacingSnapshot, error)
	GetLatestDate(ctx context.Context) (*time.Time, error)
	GetByCampaignAndDateRange(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.PacingSnapshot, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type pacingSnapshotRepository struct {
	conn *postgres.Connection
}

func NewPacingSnapshotRepository(conn *postgres.Connection) PacingSnapshotRepository {
	return &pacingSnapshotRepository{
		conn: conn,
	}
}

// SaveOrUpdate grava os snapshots em lote; a chave é (campaign_id, date)
func (r *pacingSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshots []*domain.PacingSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(pacingSnapshotsTable).
		Columns(
			"campaign_id",
			"campaign_name",
			"date",
			"status",
			"goal",
			"streams_delivered",
			"daily_rate",
			"required_daily_rate",
			"projected_at_end",
			"progress_percent",
			"goal_intersection_day",
			"attainment",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, s := range snapshots {
		query = query.Values(
			s.CampaignID,
			s.CampaignName,
			s.Date,
			s.Status,
			s.Goal,
			s.StreamsDelivered,
			s.DailyRate,
			s.RequiredDailyRate,
			s.ProjectedAtEnd,
			s.ProgressPercent,
			s.GoalIntersectionDay,
			s.Attainment,
			s.Position,
			s.PositionChange,
			s.PreviousPosition,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (campaign_id, date) DO UPDATE SET
			campaign_name = EXCLUDED.campaign_name,
			status = EXCLUDED.status,
			goal = EXCLUDED.goal,
			streams_delivered = EXCLUDED.streams_delivered,
			daily_rate = EXCLUDED.daily_rate,
			required_daily_rate = EXCLUDED.required_daily_rate,
			projected_at_end = EXCLUDED.projected_at_end,
			progress_percent = EXCLUDED.progress_percent,
			goal_intersection_day = EXCLUDED.goal_intersection_day,
			attainment = EXCLUDED.attainment,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *pacingSnapshotRepository) GetByDate(ctx context.Context, date time.Time) ([]*domain.PacingSnapshot, error) {
	query, args, err := squirrel.
		Select(pacingSnapshotColumns...).
		From(pacingSnapshotsTable).
		Where(squirrel.Eq{"date": date}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

// GetLatestDate retorna nil quando não há snapshots
func (r *pacingSnapshotRepository) GetLatestDate(ctx context.Context) (*time.Time, error) {
	var latest sql.NullTime
	err := r.conn.QueryRowContext(ctx, "SELECT MAX(date) FROM "+pacingSnapshotsTable).Scan(&latest)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar data do último snapshot: %w", err)
	}

	return nullTimePtr(latest), nil
}

func (r *pacingSnapshotRepository) GetByCampaignAndDateRange(ctx context.Context, campaignID string, startDate, endDate time.Time) ([]*domain.PacingSnapshot, error) {
	query, args, err := squirrel.
		Select(pacingSnapshotColumns...).
		From(pacingSnapshotsTable).
		Where(squirrel.Eq{"campaign_id": campaignID}).
		Where(squirrel.GtOrEq{"date": startDate}).
		Where(squirrel.LtOrEq{"date": endDate}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.query(ctx, query, args...)
}

func (r *pacingSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(pacingSnapshotsTable).
		Where(squirrel.Lt{"date": cutoff}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover snapshots antigos: %w", err)
	}

	return result.RowsAffected()
}

func (r *pacingSnapshotRepository) query(ctx context.Context, query string, args ...any) ([]*domain.PacingSnapshot, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.PacingSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanPacingSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func scanPacingSnapshot(row scanner) (*domain.PacingSnapshot, error) {
	var (
		s            domain.PacingSnapshot
		intersection sql.NullInt64
	)

	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.CampaignName,
		&s.Date,
		&s.Status,
		&s.Goal,
		&s.StreamsDelivered,
		&s.DailyRate,
		&s.RequiredDailyRate,
		&s.ProjectedAtEnd,
		&s.ProgressPercent,
		&intersection,
		&s.Attainment,
		&s.Position,
		&s.PositionChange,
		&s.PreviousPosition,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if intersection.Valid {
		day := int(intersection.Int64)
		s.GoalIntersectionDay = &day
	}

	return &s, nil
}
