package coupon

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/entities"
	"Petopia-Admin/internal/testdb"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var codePattern = regexp.MustCompile(`^CPN-\d{6}-[0-9A-F]{6}$`)

func newCouponType(t *testing.T, db *gorm.DB, name string, active bool) *entities.CouponType {
	t.Helper()

	now := time.Now()
	couponType := &entities.CouponType{
		ID:        uuid.New(),
		Name:      name,
		ValidFrom: now,
		ValidTo:   now.AddDate(0, 1, 0),
		IsActive:  active,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, db.Create(couponType).Error)
	return couponType
}

func TestGrantCoupons(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Alice", "alice@example.com")
	couponType := newCouponType(t, db, "Free Snack", true)

	resp, err := service.GrantCoupons(ctx, domain.GrantCouponsRequest{
		UserID:   user.ID.String(),
		TypeID:   couponType.ID.String(),
		Quantity: 5,
	})
	require.NoError(t, err)
	require.Len(t, resp.Codes, 5)

	seen := map[string]bool{}
	for _, code := range resp.Codes {
		assert.Regexp(t, codePattern, code)
		assert.False(t, seen[code], "code %s issued twice", code)
		seen[code] = true
	}

	var count int64
	require.NoError(t, db.Model(&entities.Coupon{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestGrantCouponsTypeNotFound(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))

	user := testdb.NewUser(t, db, "Bob", "bob@example.com")

	_, err := service.GrantCoupons(context.Background(), domain.GrantCouponsRequest{
		UserID:   user.ID.String(),
		TypeID:   uuid.NewString(),
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGrantCouponsInactiveType(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))

	user := testdb.NewUser(t, db, "Carol", "carol@example.com")
	couponType := newCouponType(t, db, "Retired", false)

	_, err := service.GrantCoupons(context.Background(), domain.GrantCouponsRequest{
		UserID:   user.ID.String(),
		TypeID:   couponType.ID.String(),
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGrantCouponsAllOrNothingOnCollision(t *testing.T) {
	db := testdb.Open(t)
	repo := NewCouponRepository(db).(*couponRepository)
	// every generated code collides, so all retries exhaust
	repo.newCode = func(time.Time) string { return "CPN-202609-AAAAAA" }
	service := NewCouponService(repo)
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Dave", "dave@example.com")
	couponType := newCouponType(t, db, "Free Snack", true)

	_, err := service.GrantCoupons(ctx, domain.GrantCouponsRequest{
		UserID:   user.ID.String(),
		TypeID:   couponType.ID.String(),
		Quantity: 3,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)

	var count int64
	require.NoError(t, db.Model(&entities.Coupon{}).Count(&count).Error)
	assert.Zero(t, count, "failed batch must leave no coupons behind")
}

func TestGetCouponsPagination(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Eve", "eve@example.com")
	couponType := newCouponType(t, db, "Free Snack", true)

	for i := 0; i < 25; i++ {
		_, err := service.GrantCoupons(ctx, domain.GrantCouponsRequest{
			UserID:   user.ID.String(),
			TypeID:   couponType.ID.String(),
			Quantity: 1,
		})
		require.NoError(t, err)
	}

	rows, count, err := service.GetCoupons(ctx, domain.CouponQueryRequest{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), count)
	assert.Len(t, rows, 10)
	assert.Equal(t, "Eve", rows[0].OwnerName)
	assert.Equal(t, "Free Snack", rows[0].TypeName)
}

func TestGetCouponsFilterConjunction(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))
	ctx := context.Background()

	alice := testdb.NewUser(t, db, "Alice", "alice@example.com")
	bob := testdb.NewUser(t, db, "Bob", "bob@example.com")
	couponType := newCouponType(t, db, "Free Snack", true)

	for _, u := range []*entities.User{alice, bob} {
		_, err := service.GrantCoupons(ctx, domain.GrantCouponsRequest{
			UserID:   u.ID.String(),
			TypeID:   couponType.ID.String(),
			Quantity: 2,
		})
		require.NoError(t, err)
	}
	require.NoError(t, db.Model(&entities.Coupon{}).
		Where("user_id = ?", alice.ID).
		Limit(1).
		Update("used", true).Error)

	used := true
	rows, count, err := service.GetCoupons(ctx, domain.CouponQueryRequest{
		UserID:   alice.ID.String(),
		Used:     &used,
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Used)
	assert.Equal(t, "Alice", rows[0].OwnerName)
}

func TestRevokeCoupon(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Frank", "frank@example.com")
	couponType := newCouponType(t, db, "Free Snack", true)

	resp, err := service.GrantCoupons(ctx, domain.GrantCouponsRequest{
		UserID:   user.ID.String(),
		TypeID:   couponType.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.RevokeCoupon(ctx, resp.Codes[0]))

	var count int64
	require.NoError(t, db.Model(&entities.Coupon{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRevokeCouponUsedOrMissing(t *testing.T) {
	db := testdb.Open(t)
	service := NewCouponService(NewCouponRepository(db))
	ctx := context.Background()

	user := testdb.NewUser(t, db, "Grace", "grace@example.com")
	couponType := newCouponType(t, db, "Free Snack", true)

	resp, err := service.GrantCoupons(ctx, domain.GrantCouponsRequest{
		UserID:   user.ID.String(),
		TypeID:   couponType.ID.String(),
		Quantity: 1,
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&entities.Coupon{}).
		Where("code = ?", resp.Codes[0]).
		Update("used", true).Error)

	assert.ErrorIs(t, service.RevokeCoupon(ctx, resp.Codes[0]), domain.ErrValidation)
	assert.ErrorIs(t, service.RevokeCoupon(ctx, "CPN-000000-FFFFFF"), domain.ErrNotFound)
}
