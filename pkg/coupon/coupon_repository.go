package coupon

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

// Codes are random identifiers; the unique index on the code column plus a
// bounded regenerate-and-retry turns the small collision chance into a hard
// guarantee.
const maxCodeAttempts = 3

type (
	CouponRepository interface {
		GetCouponTypeByID(ctx context.Context, id uuid.UUID) (*entities.CouponType, error)
		GetCouponByCode(ctx context.Context, code string) (*entities.Coupon, error)
		GetCoupons(ctx context.Context, req domain.CouponQueryRequest) ([]*entities.Coupon, int64, error)

		// GrantCoupons inserts all quantity rows in one transaction; either
		// every coupon exists afterwards or none do.
		GrantCoupons(ctx context.Context, userID, typeID uuid.UUID, quantity int) ([]*entities.Coupon, error)
		DeleteCoupon(ctx context.Context, id uuid.UUID) error
	}

	couponRepository struct {
		db      *gorm.DB
		newCode func(now time.Time) string
	}
)

var couponSort = paging.SortSpec{
	Columns: map[string][]string{
		"acquired_at": {"coupons.acquired_at"},
		"code":        {"coupons.code"},
	},
	Default:  "acquired_at",
	TieBreak: "coupons.id ASC",
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{db: db, newCode: couponCode}
}

func couponCode(now time.Time) string {
	id := uuid.New()
	return fmt.Sprintf("CPN-%s-%s", now.Format("200601"), strings.ToUpper(hex.EncodeToString(id[:3])))
}

func (r *couponRepository) GetCouponTypeByID(ctx context.Context, id uuid.UUID) (*entities.CouponType, error) {
	var couponType entities.CouponType
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&couponType).Error; err != nil {
		return nil, err
	}
	return &couponType, nil
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	var coupon entities.Coupon
	if err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) GetCoupons(ctx context.Context, req domain.CouponQueryRequest) ([]*entities.Coupon, int64, error) {
	var coupons []*entities.Coupon
	var count int64

	query := r.db.WithContext(ctx).Model(&entities.Coupon{}).
		Select("coupons.*").
		Joins("JOIN users ON users.id = coupons.user_id").
		Joins("JOIN coupon_types ON coupon_types.id = coupons.coupon_type_id").
		Scopes(paging.DateRange("coupons.acquired_at", req.DateFrom, req.DateTo))

	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		query = query.Where(
			"LOWER(users.display_name) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?) OR LOWER(coupon_types.name) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if req.UserID != "" {
		query = query.Where("coupons.user_id = ?", req.UserID)
	}
	if req.TypeID != "" {
		query = query.Where("coupons.coupon_type_id = ?", req.TypeID)
	}
	if req.Used != nil {
		query = query.Where("coupons.used = ?", *req.Used)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	page := paging.Params{Page: req.Page, PageSize: req.PageSize}.Normalize()
	if err := query.
		Preload("User").
		Preload("CouponType").
		Order(couponSort.OrderBy(req.SortBy, req.SortAsc)).
		Scopes(paging.Paginate(page)).
		Find(&coupons).Error; err != nil {
		return nil, 0, err
	}

	return coupons, count, nil
}

func (r *couponRepository) GrantCoupons(ctx context.Context, userID, typeID uuid.UUID, quantity int) ([]*entities.Coupon, error) {
	var lastErr error

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		now := time.Now()
		coupons := make([]*entities.Coupon, 0, quantity)
		for i := 0; i < quantity; i++ {
			coupons = append(coupons, &entities.Coupon{
				ID:           uuid.New(),
				UserID:       userID,
				CouponTypeID: typeID,
				Code:         r.newCode(now),
				Used:         false,
				AcquiredAt:   now,
				Timestamp:    entities.Timestamp{CreatedAt: now, UpdatedAt: now},
			})
		}

		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Create(&coupons).Error
		})
		if err == nil {
			return coupons, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("coupon codes collided after %d attempts: %w", maxCodeAttempts, lastErr)
}

func (r *couponRepository) DeleteCoupon(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Coupon{}, "id = ?", id).Error
}
