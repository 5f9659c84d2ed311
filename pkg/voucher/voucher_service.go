package voucher

import (
	"Petopia-Admin/domain"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	VoucherService interface {
		GetVouchers(ctx context.Context, req domain.VoucherQueryRequest) ([]*domain.VoucherRow, int64, error)
		GrantVouchers(ctx context.Context, req domain.GrantVouchersRequest) (*domain.GrantVouchersResponse, error)
		RevokeVoucher(ctx context.Context, code string) error
	}

	voucherService struct {
		voucherRepository VoucherRepository
	}
)

func NewVoucherService(voucherRepository VoucherRepository) VoucherService {
	return &voucherService{voucherRepository: voucherRepository}
}

func (s *voucherService) GetVouchers(ctx context.Context, req domain.VoucherQueryRequest) ([]*domain.VoucherRow, int64, error) {
	vouchers, count, err := s.voucherRepository.GetVouchers(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.VoucherRow, 0, len(vouchers))
	for _, v := range vouchers {
		row := &domain.VoucherRow{
			ID:        v.ID.String(),
			Code:      v.Code,
			Used:      v.Used,
			CreatedAt: v.CreatedAt,
		}
		if v.User != nil {
			row.OwnerName = v.User.DisplayName
			row.OwnerEmail = v.User.Email
		}
		if v.VoucherType != nil {
			row.TypeName = v.VoucherType.Name
			// Derived at projection time, never stored.
			row.ValidityDays = int(v.VoucherType.ValidTo.Sub(v.VoucherType.ValidFrom).Hours() / 24)
		}
		result = append(result, row)
	}

	return result, count, nil
}

func (s *voucherService) GrantVouchers(ctx context.Context, req domain.GrantVouchersRequest) (*domain.GrantVouchersResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	typeUUID, err := uuid.Parse(req.TypeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.voucherRepository.GetVoucherTypeByID(ctx, typeUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, domain.ErrVoucherTypeNotFound)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	vouchers, err := s.voucherRepository.GrantVouchers(ctx, userUUID, typeUUID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	codes := make([]string, 0, len(vouchers))
	for _, v := range vouchers {
		codes = append(codes, v.Code)
	}
	return &domain.GrantVouchersResponse{Codes: codes}, nil
}

func (s *voucherService) RevokeVoucher(ctx context.Context, code string) error {
	voucher, err := s.voucherRepository.GetVoucherByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %v", domain.ErrNotFound, domain.ErrVoucherNotFound)
		}
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if voucher.Used {
		return fmt.Errorf("%w: %v", domain.ErrValidation, domain.ErrVoucherAlreadyUsed)
	}

	if err := s.voucherRepository.DeleteVoucher(ctx, voucher.ID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}
	return nil
}
