package config

import (
	"Petopia-Admin/internal/api/handlers"
	"Petopia-Admin/internal/api/routes"
	"Petopia-Admin/internal/middleware"
	"Petopia-Admin/internal/utils"
	"Petopia-Admin/pkg/coupon"
	"Petopia-Admin/pkg/game"
	"Petopia-Admin/pkg/jwt"
	"Petopia-Admin/pkg/pet"
	"Petopia-Admin/pkg/rules"
	"Petopia-Admin/pkg/signin"
	"Petopia-Admin/pkg/voucher"
	"Petopia-Admin/pkg/wallet"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// rule tables (sign-in rewards, pet levels, game difficulty)
	rulesFile := utils.GetConfig("RULES_FILE")
	if rulesFile == "" {
		rulesFile = "rules.yaml"
	}
	ruleTables, err := rules.Load(rulesFile)
	if err != nil {
		log.Fatalf("error loading rule tables: %v", err)
	}

	// Repository
	walletRepository := wallet.NewWalletRepository(db)
	couponRepository := coupon.NewCouponRepository(db)
	voucherRepository := voucher.NewVoucherRepository(db)
	signInRepository := signin.NewSignInRepository(db)
	petRepository := pet.NewPetRepository(db)
	gameRepository := game.NewGameRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	walletService := wallet.NewWalletService(walletRepository)
	couponService := coupon.NewCouponService(couponRepository)
	voucherService := voucher.NewVoucherService(voucherRepository)
	signInService := signin.NewSignInService(signInRepository)
	petService := pet.NewPetService(petRepository, ruleTables)
	gameService := game.NewGameService(gameRepository, ruleTables)

	// Handler
	walletHandler := handlers.NewWalletHandler(walletService, validator)
	couponHandler := handlers.NewCouponHandler(couponService, validator)
	voucherHandler := handlers.NewVoucherHandler(voucherService, validator)
	signInHandler := handlers.NewSignInHandler(signInService, validator)
	petHandler := handlers.NewPetHandler(petService, validator)
	gameHandler := handlers.NewGameHandler(gameService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		WalletHandler:  walletHandler,
		CouponHandler:  couponHandler,
		VoucherHandler: voucherHandler,
		SignInHandler:  signInHandler,
		PetHandler:     petHandler,
		GameHandler:    gameHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
