package migration

import (
	"Petopia-Admin/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	models := []any{
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
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating %T: %v", model, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}
