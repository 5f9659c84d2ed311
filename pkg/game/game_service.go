package game

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/rules"
	"context"
	"fmt"
	"time"
)

type (
	GameService interface {
		GetGamePlays(ctx context.Context, req domain.GamePlayQueryRequest) ([]*domain.GamePlayRow, int64, error)
		GetStatistics(ctx context.Context) (*domain.GameStatistics, error)
	}

	gameService struct {
		gameRepository GameRepository
		ruleTables     *rules.Tables
	}
)

func NewGameService(gameRepository GameRepository, ruleTables *rules.Tables) GameService {
	return &gameService{
		gameRepository: gameRepository,
		ruleTables:     ruleTables,
	}
}

func (s *gameService) GetGamePlays(ctx context.Context, req domain.GamePlayQueryRequest) ([]*domain.GamePlayRow, int64, error) {
	plays, count, err := s.gameRepository.GetGamePlays(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.GamePlayRow, 0, len(plays))
	for _, p := range plays {
		result = append(result, s.toRow(p))
	}

	return result, count, nil
}

func (s *gameService) toRow(p *entities.GamePlay) *domain.GamePlayRow {
	row := &domain.GamePlayRow{
		ID:               p.ID.String(),
		Level:            p.Level,
		MonsterCount:     p.MonsterCount,
		SpeedMultiplier:  p.SpeedMultiplier,
		Result:           p.Result,
		PointsReward:     p.PointsReward,
		ExperienceReward: p.ExperienceReward,
		StartedAt:        p.StartedAt,
		EndedAt:          p.EndedAt,
	}
	if p.User != nil {
		row.OwnerName = p.User.DisplayName
	}
	if p.Pet != nil {
		row.PetName = p.Pet.Name
	}
	if p.EndedAt != nil {
		seconds := p.EndedAt.Sub(p.StartedAt).Seconds()
		row.DurationSeconds = &seconds
	}
	// Rounds recorded before a difficulty change keep their stored values;
	// the table only fills gaps from legacy rows.
	if row.MonsterCount == 0 {
		if gd, ok := s.ruleTables.Difficulty(p.Level); ok {
			row.MonsterCount = gd.MonsterCount
			row.SpeedMultiplier = gd.SpeedMultiplier
		}
	}
	return row
}

func (s *gameService) GetStatistics(ctx context.Context) (*domain.GameStatistics, error) {
	stats, err := s.gameRepository.GetStatistics(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return stats, nil
}
