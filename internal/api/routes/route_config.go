package routes

import (
	"Petopia-Admin/internal/api/handlers"
	"Petopia-Admin/internal/middleware"
	"Petopia-Admin/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	WalletHandler  handlers.WalletHandler
	CouponHandler  handlers.CouponHandler
	VoucherHandler handlers.VoucherHandler
	SignInHandler  handlers.SignInHandler
	PetHandler     handlers.PetHandler
	GameHandler    handlers.GameHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Wallets()
	c.Coupons()
	c.Vouchers()
	c.SignIns()
	c.Pets()
	c.GamePlays()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Wallets() {
	wallets := c.App.Group("/api/v1/admin/wallets", c.Middleware.AuthMiddleware(c.JWTService))
	{
		wallets.Get("", c.WalletHandler.GetWallets)
		wallets.Get("/:user_id/history", c.WalletHandler.GetWalletHistory)
		wallets.Post("/grant", c.WalletHandler.GrantPoints)
		wallets.Post("/override", c.WalletHandler.OverrideBalance)
	}
}

func (c *Config) Coupons() {
	coupons := c.App.Group("/api/v1/admin/coupons", c.Middleware.AuthMiddleware(c.JWTService))
	{
		coupons.Get("", c.CouponHandler.GetCoupons)
		coupons.Post("/grant", c.CouponHandler.GrantCoupons)
		coupons.Delete("/:code", c.CouponHandler.RevokeCoupon)
	}
}

func (c *Config) Vouchers() {
	vouchers := c.App.Group("/api/v1/admin/vouchers", c.Middleware.AuthMiddleware(c.JWTService))
	{
		vouchers.Get("", c.VoucherHandler.GetVouchers)
		vouchers.Post("/grant", c.VoucherHandler.GrantVouchers)
		vouchers.Delete("/:code", c.VoucherHandler.RevokeVoucher)
	}
}

func (c *Config) SignIns() {
	signIns := c.App.Group("/api/v1/admin/sign-ins", c.Middleware.AuthMiddleware(c.JWTService))
	{
		signIns.Get("", c.SignInHandler.GetSignIns)
		signIns.Get("/statistics", c.SignInHandler.GetStatistics)
	}
}

func (c *Config) Pets() {
	pets := c.App.Group("/api/v1/admin/pets", c.Middleware.AuthMiddleware(c.JWTService))
	{
		pets.Get("", c.PetHandler.GetPets)
		pets.Patch("/:id", c.PetHandler.OverridePetStats)
	}
}

func (c *Config) GamePlays() {
	gamePlays := c.App.Group("/api/v1/admin/game-plays", c.Middleware.AuthMiddleware(c.JWTService))
	{
		gamePlays.Get("", c.GameHandler.GetGamePlays)
		gamePlays.Get("/statistics", c.GameHandler.GetStatistics)
	}
}
