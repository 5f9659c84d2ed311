package wallet

import (
	"Petopia-Admin/domain"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WalletService interface {
		GetWallets(ctx context.Context, req domain.WalletQueryRequest) ([]*domain.WalletRow, int64, error)
		GetWalletHistory(ctx context.Context, userID string, req domain.WalletHistoryQueryRequest) ([]*domain.WalletHistoryRow, int64, error)
		GrantPoints(ctx context.Context, req domain.GrantPointsRequest) (*domain.GrantPointsResponse, error)
		OverrideBalance(ctx context.Context, req domain.OverrideBalanceRequest) (*domain.GrantPointsResponse, error)
	}

	walletService struct {
		walletRepository WalletRepository
	}
)

func NewWalletService(walletRepository WalletRepository) WalletService {
	return &walletService{walletRepository: walletRepository}
}

func (s *walletService) GetWallets(ctx context.Context, req domain.WalletQueryRequest) ([]*domain.WalletRow, int64, error) {
	wallets, count, err := s.walletRepository.GetWallets(ctx, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.WalletRow, 0, len(wallets))
	for _, w := range wallets {
		row := &domain.WalletRow{
			UserID:    w.UserID.String(),
			Balance:   w.Balance,
			UpdatedAt: w.UpdatedAt,
		}
		if w.User != nil {
			row.OwnerName = w.User.DisplayName
			row.OwnerEmail = w.User.Email
		}
		result = append(result, row)
	}

	return result, count, nil
}

func (s *walletService) GetWalletHistory(ctx context.Context, userID string, req domain.WalletHistoryQueryRequest) ([]*domain.WalletHistoryRow, int64, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	entries, count, err := s.walletRepository.GetWalletHistory(ctx, userUUID, req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}

	result := make([]*domain.WalletHistoryRow, 0, len(entries))
	for _, e := range entries {
		result = append(result, &domain.WalletHistoryRow{
			ID:           e.ID.String(),
			Type:         e.Type,
			Amount:       e.Amount,
			BalanceFrom:  e.BalanceFrom,
			BalanceTo:    e.BalanceTo,
			Description:  e.Description,
			RelatedCode:  e.RelatedCode,
			TransactedAt: e.TransactedAt,
		})
	}

	return result, count, nil
}

func (s *walletService) GrantPoints(ctx context.Context, req domain.GrantPointsRequest) (*domain.GrantPointsResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entry, err := s.walletRepository.GrantPoints(ctx, userUUID, req.Amount, domain.HistoryTypeAdminGrant, req.Reason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wallet for user %s", domain.ErrNotFound, req.UserID)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	return &domain.GrantPointsResponse{
		UserID:      req.UserID,
		BalanceFrom: entry.BalanceFrom,
		BalanceTo:   entry.BalanceTo,
	}, nil
}

func (s *walletService) OverrideBalance(ctx context.Context, req domain.OverrideBalanceRequest) (*domain.GrantPointsResponse, error) {
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	entry, err := s.walletRepository.OverrideBalance(ctx, userUUID, req.Balance, req.Reason)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: wallet for user %s", domain.ErrNotFound, req.UserID)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	return &domain.GrantPointsResponse{
		UserID:      req.UserID,
		BalanceFrom: entry.BalanceFrom,
		BalanceTo:   entry.BalanceTo,
	}, nil
}
