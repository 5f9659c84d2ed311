package voucher

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/pkg/paging"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxCodeAttempts = 3

type (
	VoucherRepository interface {
		GetVoucherTypeByID(ctx context.Context, id uuid.UUID) (*entities.VoucherType, error)
		GetVoucherByCode(ctx context.Context, code string) (*entities.Voucher, error)
		GetVouchers(ctx context.Context, req domain.VoucherQueryRequest) ([]*entities.Voucher, int64, error)
		GrantVouchers(ctx context.Context, userID, typeID uuid.UUID, quantity int) ([]*entities.Voucher, error)
		DeleteVoucher(ctx context.Context, id uuid.UUID) error
	}

	voucherRepository struct {
		db      *gorm.DB
		newCode func(now time.Time) string
	}
)

var voucherSort = paging.SortSpec{
	Columns: map[string][]string{
		"created_at": {"vouchers.created_at"},
		"code":       {"vouchers.code"},
	},
	Default:  "created_at",
	TieBreak: "vouchers.id ASC",
}

func NewVoucherRepository(db *gorm.DB) VoucherRepository {
	return &voucherRepository{db: db, newCode: voucherCode}
}

func voucherCode(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("EV-%s-%s", now.Format("200601"), strings.ToUpper(hex.EncodeToString(id[:4])))
}

func (r *voucherRepository) GetVoucherTypeByID(ctx context.Context, id uuid.UUID) (*entities.VoucherType, error) {
	var voucherType entities.VoucherType
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&voucherType).Error; err != nil {
		return nil, err
	}
	return &voucherType, nil
}

func (r *voucherRepository) GetVoucherByCode(ctx context.Context, code string) (*entities.Voucher, error) {
	var voucher entities.Voucher
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&voucher).Error; err != nil {
		return nil, err
	}
	return &voucher, nil
}

func (r *voucherRepository) GetVouchers(ctx context.Context, req domain.VoucherQueryRequest) ([]*entities.Voucher, int64, error) {
	var vouchers []*entities.Voucher
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Voucher{}).
		Select("vouchers.*").
		Joins("JOIN users ON users.id = vouchers.user_id").
		Joins("JOIN voucher_types ON voucher_types.id = vouchers.voucher_type_id").
		Scopes(paging.DateRange("vouchers.created_at", req.DateFrom, req.DateTo))

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		query = query.Where(
			"LOWER(users.display_name) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?) OR LOWER(voucher_types.name) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if req.UserID != "" {
		query = query.Where("vouchers.user_id = ?", req.UserID)
	}
	if req.TypeID != "" {
		query = query.Where("vouchers.voucher_type_id = ?", req.TypeID)
	}
	if req.Used != nil {
		query = query.Where("vouchers.used = ?", *req.Used)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Preload("User").
		Preload("VoucherType").
		Order(voucherSort.OrderBy(req.SortBy, req.SortAsc)).
		Scopes(paging.Paginate(page)).
		Find(&vouchers).Error; err != nil {
		return nil, 0, err
	}

	return vouchers, count, nil
}

func (r *voucherRepository) GrantVouchers(ctx context.Context, userID, typeID uuid.UUID, quantity int) ([]*entities.Voucher, error) {
	var lastErr error

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		now := time.Now()
		vouchers := make([]*entities.Voucher, 0, quantity)
		for i := 0; i < quantity; i++ {
			vouchers = append(vouchers, &entities.Voucher{
				ID:            uuid.New(),
				UserID:        userID,
				VoucherTypeID: typeID,
				Code:          r.newCode(now),
				Used:          false,
				Timestamp:     entities.Timestamp{CreatedAt: now, UpdatedAt: now},
			})
		}

		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&vouchers).Error
		})
		if err == nil {
			return vouchers, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("voucher codes collided after %d attempts: %w", maxCodeAttempts, lastErr)
}

func (r *voucherRepository) DeleteVoucher(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Voucher{}, "id = ?", id).Error
}
