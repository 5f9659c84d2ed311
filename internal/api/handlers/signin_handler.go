package handlers

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/internal/api/presenters"
	"Petopia-Admin/pkg/paging"
	"Petopia-Admin/pkg/signin"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SignInHandler interface {
		GetSignIns(c *fiber.Ctx) error
		GetStatistics(c *fiber.Ctx) error
	}

	signInHandler struct {
		signInService signin.SignInService
		validator     *validator.Validate
	}
)

func NewSignInHandler(signInService signin.SignInService, validator *validator.Validate) SignInHandler {
	return &signInHandler{
		signInService: signInService,
		validator:     validator,
	}
}

func (h *signInHandler) GetSignIns(c *fiber.Ctx) error {
	req := new(domain.SignInQueryRequest)
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
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSignIns, err)
	}

	records, count, err := h.signInService.GetSignIns(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetSignIns, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"sign_ins":   records,
		"pagination": presenters.NewPagination(req.Page, req.PageSize, count),
	}, fiber.StatusOK, domain.MessageSuccessGetSignIns)
}

func (h *signInHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.signInService.GetStatistics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetSignInStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetSignInStats)
}
