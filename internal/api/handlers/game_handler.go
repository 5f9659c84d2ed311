package handlers

import (
	"Petopia-Admin/domain"
	"Petopia-Admin/internal/api/presenters"
	"Petopia-Admin/pkg/game"
	"Petopia-Admin/pkg/paging"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GameHandler interface {
		GetGamePlays(c *fiber.Ctx) error
		GetStatistics(c *fiber.Ctx) error
	}

	gameHandler struct {
		gameService game.GameService
		validator   *validator.Validate
	}
)

func NewGameHandler(gameService game.GameService, validator *validator.Validate) GameHandler {
	return &gameHandler{
		gameService: gameService,
		validator:   validator,
	}
}

func (h *gameHandler) GetGamePlays(c *fiber.Ctx) error {
	req := new(domain.GamePlayQueryRequest)
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
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetGamePlays, err)
	}

	plays, count, err := h.gameService.GetGamePlays(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetGamePlays, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"game_plays": plays,
		"pagination": presenters.NewPagination(req.Page, req.PageSize, count),
	}, fiber.StatusOK, domain.MessageSuccessGetGamePlays)
}

func (h *gameHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.gameService.GetStatistics(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusForError(err), domain.MessageFailedGetGameStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetGameStats)
}
