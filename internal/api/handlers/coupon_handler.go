package handlers

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/internal/api/presenters"
	"Petopia-Admin/pkg/coupon"
	"Petopia-Admin/pkg/paging"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CouponHandler interface {
		GetCoupons(c *fiber.Ctx) error
		GrantCoupons(c *fiber.Ctx) error
		RevokeCoupon(c *fiber.Ctx) error
	}

	couponHandler struct {
		couponService coupon.CouponService
		validator     *validator.Validate
	}
)

func NewCouponHandler(couponService coupon.CouponService, validator *validator.Validate) CouponHandler {
	return &couponHandler{
		couponService: couponService,
		validator:     validator,
	}
}

func (h *couponHandler) GetCoupons(c *fiber.Ctx) error {
	req := new(domain.CouponQueryRequest)
	if err := c.QueryParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQueryRequest, err)
	}
	// Absent query params parse as zero; defaults go in before validation
	// so an explicit negative page or oversized page size still fails.
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = paging.DefaultPageSize
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCoupons, err)
	}

	coupons, count, err := h.couponService.GetCoupons(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetCoupons, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"coupons":    coupons,
		"pagination": presenters.NewPagination(req.Page, req.PageSize, count),
	}, fiber.StatusOK, domain.MessageSuccessGetCoupons)
}

func (h *couponHandler) GrantCoupons(c *fiber.Ctx) error {
	req := new(domain.GrantCouponsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGrantCoupons, err)
	}

	resp, err := h.couponService.GrantCoupons(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGrantCoupons, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGrantCoupons)
}

func (h *couponHandler) RevokeCoupon(c *fiber.Ctx) error {
	code := c.Params("code")

	if err := h.couponService.RevokeCoupon(c.Context(), code); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedRevokeCoupon, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRevokeCoupon)
}
