package testdb

import (
	"Petopia-Admin/entities"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Open returns an isolated in-memory database migrated with every entity.
// TranslateError is on so duplicate-key checks behave like production.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Wallet{},
		&entities.WalletHistory{},
		&entities.CouponType{},
		&entities.Coupon{},
		&entities.VoucherType{},
		&entities.Voucher{},
		&entities.SignInRecord{},
		&entities.Pet{},
		&entities.GamePlay{},
	)
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func NewUser(t *testing.T, db *gorm.DB, name, email string) *entities.User {
	t.Helper()

	now := time.Now()
	user := &entities.User{
		ID:          uuid.New(),
		DisplayName: name,
		Email:       email,
		Timestamp:   entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func NewWallet(t *testing.T, db *gorm.DB, user *entities.User, balance int64) *entities.Wallet {
	t.Helper()

	now := time.Now()
	wallet := &entities.Wallet{
		ID:        uuid.New(),
		UserID:    user.ID,
		Balance:   balance,
		Timestamp: entities.Timestamp{CreatedAt: now, UpdatedAt: now},
	}
	if err := db.Create(wallet).Error; err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	return wallet
}
