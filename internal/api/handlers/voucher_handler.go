package handlers

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/internal/api/presenters"
	"Petopia-Admin/pkg/paging"
	"Petopia-Admin/pkg/voucher"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	VoucherHandler interface {
		GetVouchers(c *fiber.Ctx) error
		GrantVouchers(c *fiber.Ctx) error
		RevokeVoucher(c *fiber.Ctx) error
	}

	voucherHandler struct {
		voucherService voucher.VoucherService
		validator      *validator.Validate
	}
)

func NewVoucherHandler(voucherService voucher.VoucherService, validator *validator.Validate) VoucherHandler {
	return &voucherHandler{
		voucherService: voucherService,
		validator:      validator,
	}
}

func (h *voucherHandler) GetVouchers(c *fiber.Ctx) error {
	req := new(domain.VoucherQueryRequest)
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
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetVouchers, err)
	}

	vouchers, count, err := h.voucherService.GetVouchers(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetVouchers, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"vouchers":   vouchers,
		"pagination": presenters.NewPagination(req.Page, req.PageSize, count),
	}, fiber.StatusOK, domain.MessageSuccessGetVouchers)
}

func (h *voucherHandler) GrantVouchers(c *fiber.Ctx) error {
	req := new(domain.GrantVouchersRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGrantVouchers, err)
	}

	resp, err := h.voucherService.GrantVouchers(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGrantVouchers, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGrantVouchers)
}

func (h *voucherHandler) RevokeVoucher(c *fiber.Ctx) error {
	code := c.Params("code")

	if err := h.voucherService.RevokeVoucher(c.Context(), code); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedRevokeVoucher, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRevokeVoucher)
}
