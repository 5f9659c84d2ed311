package handlers

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/internal/api/presenters"
	"Petopia-Admin/pkg/paging"
	"Petopia-Admin/pkg/pet"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PetHandler interface {
		GetPets(c *fiber.Ctx) error
		OverridePetStats(c *fiber.Ctx) error
	}

	petHandler struct {
		petService pet.PetService
		validator  *validator.Validate
	}
)

func NewPetHandler(petService pet.PetService, validator *validator.Validate) PetHandler {
	return &petHandler{
		petService: petService,
		validator:  validator,
	}
}

func (h *petHandler) GetPets(c *fiber.Ctx) error {
	req := new(domain.PetQueryRequest)
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
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPets, err)
	}

	pets, count, err := h.petService.GetPets(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetPets, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"pets":       pets,
		"pagination": presenters.NewPagination(req.Page, req.PageSize, count),
	}, fiber.StatusOK, domain.MessageSuccessGetPets)
}

func (h *petHandler) OverridePetStats(c *fiber.Ctx) error {
	req := new(domain.OverridePetStatsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.PetID = c.Params("id")
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedOverridePetStats, err)
	}

	row, err := h.petService.OverridePetStats(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedOverridePetStats, err)
	}

	return presenters.SuccessResponse(c, row, fiber.StatusOK, domain.MessageSuccessOverridePetStats)
}
