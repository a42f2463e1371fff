package ranking

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/campaign-pacing-api/infrastructure/repository"
	"github.com/vfg2006/campaign-pacing-api/internal/domain"
)

type RankingService interface {
	GetPacingRanking(ctx context.Context, date *time.Time) (*domain.PacingRankingResponse, error)
}

type PacingRankingService struct {
	snapshotRepo repository.PacingSnapshotRepository
}

func NewPacingRankingService(snapshotRepo repository.PacingSnapshotRepository) RankingService {
	return &PacingRankingService{
		snapshotRepo: snapshotRepo,
	}
}

// GetPacingRanking devolve o ranking do dia informado ou, sem data, do último snapshot gravado
func (s *PacingRankingService) GetPacingRanking(ctx context.Context, date *time.Time) (*domain.PacingRankingResponse, error) {
	if date == nil {
		latest, err := s.snapshotRepo.GetLatestDate(ctx)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar data do ranking: %w", err)
		}

		if latest == nil {
			return &domain.PacingRankingResponse{
				Ranking:    []*domain.PacingSnapshot{},
				LastUpdate: time.Now(),
			}, nil
		}
		date = latest
	}

	snapshots, err := s.snapshotRepo.GetByDate(ctx, *date)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar ranking de pacing: %w", err)
	}

	var lastUpdate time.Time
	for _, snapshot := range snapshots {
		if snapshot.UpdatedAt.After(lastUpdate) {
			lastUpdate = snapshot.UpdatedAt
		}
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.PacingRankingResponse{
		Date:       date.Format(time.DateOnly),
		Ranking:    snapshots,
		LastUpdate: lastUpdate,
	}, nil
}
