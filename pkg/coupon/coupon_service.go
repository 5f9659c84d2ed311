package coupon

import (
	"Petopia-Admin/domain"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CouponService interface {
		GetCoupons(ctx context.Context, req domain.CouponQueryRequest) ([]*domain.CouponRow, int64, error)
		GrantCoupons(ctx context.Context, req domain.GrantCouponsRequest) (*domain.GrantCouponsResponse, error)
		RevokeCoupon(ctx context.Context, code string) error
	}

	couponService struct {
		couponRepository CouponRepository
	}
)

func NewCouponService(couponRepository CouponRepository) CouponService {
	return &couponService{couponRepository: couponRepository}
}

func (s *couponService) GetCoupons(ctx context.Context, req domain.CouponQueryRequest) ([]*domain.CouponRow, int64, error) {
	coupons, count, err := s.couponRepository.GetCoupons(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.CouponRow, 0, len(coupons))
	for _, c := range coupons {
		row := &domain.CouponRow{
			ID:         c.ID.String(),
			Code:       c.Code,
			Used:       c.Used,
			AcquiredAt: c.AcquiredAt,
		}
		if c.User != nil {
			row.OwnerName = c.User.DisplayName
			row.OwnerEmail = c.User.Email
		}
		if c.CouponType != nil {
			row.TypeName = c.CouponType.Name
		}
		result = append(result, row)
	}

	return result, count, nil
}

func (s *couponService) GrantCoupons(ctx context.Context, req domain.GrantCouponsRequest) (*domain.GrantCouponsResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	typeUUID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.couponRepository.GetCouponTypeByID(ctx, typeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, domain.ErrCouponTypeNotFound)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	coupons, err := s.couponRepository.GrantCoupons(ctx, userUUID, typeUUID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	codes := make([]string, 0, len(coupons))
	for _, c := range coupons {
		codes = append(codes, c.Code)
	}
	return &domain.GrantCouponsResponse{Codes: codes}, nil
}

func (s *couponService) RevokeCoupon(ctx context.Context, code string) error {
	coupon, err := s.couponRepository.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %v", domain.ErrNotFound, domain.ErrCouponNotFound)
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if coupon.Used {
		return fmt.Errorf("%w: %v", domain.ErrValidation, domain.ErrCouponAlreadyUsed)
	}

	if err := s.couponRepository.DeleteCoupon(ctx, coupon.ID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	return nil
}
