package wallet

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/paging"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WalletRepository interface {
		GetWalletByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
		GetWallets(ctx context.Context, req domain.WalletQueryRequest) ([]*entities.Wallet, int64, error)
		GetWalletHistory(ctx context.Context, userID uuid.UUID, req domain.WalletHistoryQueryRequest) ([]*entities.WalletHistory, int64, error)

		// Mutations run as one transaction: the balance change and its
		// history entry commit together or not at all.
		GrantPoints(ctx context.Context, userID uuid.UUID, amount int64, historyType, description string) (*entities.WalletHistory, error)
		OverrideBalance(ctx context.Context, userID uuid.UUID, balance int64, description string) (*entities.WalletHistory, error)
	}

	walletRepository struct {
		db *gorm.DB
	}
)

var walletSort = paging.SortSpec{
	Columns: map[string][]string{
		"balance":    {"wallets.balance"},
		"updated_at": {"wallets.updated_at"},
	},
	Default:  "balance",
	TieBreak: "wallets.id ASC",
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) GetWalletByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error) {
	var wallet entities.Wallet
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&wallet).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *walletRepository) GetWallets(ctx context.Context, req domain.WalletQueryRequest) ([]*entities.Wallet, int64, error) {
	var wallets []*entities.Wallet
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Wallet{}).
		Select("wallets.*").
		Joins("JOIN users ON users.id = wallets.user_id").
		Scopes(paging.Int64Range("wallets.balance", req.MinBalance, req.MaxBalance))

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		// LOWER on both sides keeps the match case-insensitive across
		// dialects; plain LIKE is case-sensitive on Postgres.
		query = query.Where("LOWER(users.display_name) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?)", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Preload("User").
		Order(walletSort.OrderBy(req.SortBy, req.SortAsc)).
		Scopes(paging.Paginate(page)).
		Find(&wallets).Error; err != nil {
		return nil, 0, err
	}

	return wallets, count, nil
}

func (r *walletRepository) GetWalletHistory(ctx context.Context, userID uuid.UUID, req domain.WalletHistoryQueryRequest) ([]*entities.WalletHistory, int64, error) {
	var entries []*entities.WalletHistory
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.WalletHistory{}).
		Where("user_id = ?", userID).
		Scopes(paging.DateRange("transacted_at", req.DateFrom, req.DateTo))

	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Order("transacted_at DESC, id ASC").
		Scopes(paging.Paginate(page)).
		Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, count, nil
}

func (r *walletRepository) GrantPoints(ctx context.Context, userID uuid.UUID, amount int64, historyType, description string) (*entities.WalletHistory, error) {
	var entry *entities.WalletHistory

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// gorm.Expr makes the increment atomic; two concurrent grants to
		// the same wallet serialize on the row and neither delta is lost.
		result := tx.Model(&entities.Wallet{}).
			Where("user_id = ?", userID).
			Update("balance", gorm.Expr("balance + ?", amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		var wallet entities.Wallet
		if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return err
		}

		now := time.Now()
		entry = &entities.WalletHistory{
			ID:           uuid.New(),
			UserID:       userID,
			Type:         historyType,
			Amount:       amount,
			BalanceFrom:  wallet.Balance - amount,
			BalanceTo:    wallet.Balance,
			Description:  description,
			TransactedAt: now,
			Timestamp:    entities.Timestamp{CreatedAt: now, UpdatedAt: now},
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *walletRepository) OverrideBalance(ctx context.Context, userID uuid.UUID, balance int64, description string) (*entities.WalletHistory, error) {
	var entry *entities.WalletHistory

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wallet entities.Wallet
		if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
			return err
		}

		before := wallet.Balance
		result := tx.Model(&entities.Wallet{}).
			Where("user_id = ?", userID).
			Update("balance", balance)
		if result.Error != nil {
			return result.Error
		}

		now := time.Now()
		entry = &entities.WalletHistory{
			ID:           uuid.New(),
			UserID:       userID,
			Type:         domain.HistoryTypeAdminOverride,
			Amount:       balance - before,
			BalanceFrom:  before,
			BalanceTo:    balance,
			Description:  description,
			TransactedAt: now,
			Timestamp:    entities.Timestamp{CreatedAt: now, UpdatedAt: now},
		}
		return tx.Create(entry).Error
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}
