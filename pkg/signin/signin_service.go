package signin

import (
	"Petopia-Admin/domain"
	"context"
	"fmt"
	"time"
)

type (
	SignInService interface {
		GetSignIns(ctx context.Context, req domain.SignInQueryRequest) ([]*domain.SignInRow, int64, error)
		GetStatistics(ctx context.Context) (*domain.SignInStatistics, error)
	}

	signInService struct {
		signInRepository SignInRepository
	}
)

func NewSignInService(signInRepository SignInRepository) SignInService {
	return &signInService{signInRepository: signInRepository}
}

func (s *signInService) GetSignIns(ctx context.Context, req domain.SignInQueryRequest) ([]*domain.SignInRow, int64, error) {
	records, count, err := s.signInRepository.GetSignIns(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.SignInRow, 0, len(records))
	for _, rec := range records {
		row := &domain.SignInRow{
			ID:               rec.ID.String(),
			SignedAt:         rec.SignedAt,
			PointsGained:     rec.PointsGained,
			ExperienceGained: rec.ExperienceGained,
			CouponCode:       rec.CouponCode,
		}
		if rec.User != nil {
			row.OwnerName = rec.User.DisplayName
		}
		result = append(result, row)
	}

	return result, count, nil
}

func (s *signInService) GetStatistics(ctx context.Context) (*domain.SignInStatistics, error) {
	stats, err := s.signInRepository.GetStatistics(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return stats, nil
}
