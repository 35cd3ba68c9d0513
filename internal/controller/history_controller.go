package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/service"
)

type IHistoryController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
}

type historyController struct {
	service service.IHistoryService
}

func NewHistoryController(service service.IHistoryService) IHistoryController {
	return &historyController{service: service}
}

func (c *historyController) RegisterRoutes(r fiber.Router) {
	r.Post("/history", c.History)
}

func (c *historyController) History(ctx *fiber.Ctx) error {
	var req dto.HistoryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	switch req.Domain {
	case dto.HistoryDomainSessionChat:
		res, err := c.service.SessionChat(ctx.Context(), &req)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.DataResponse(res))

	case dto.HistoryDomainListSession:
		res, err := c.service.ListSessions(ctx.Context(), &req)
		if err != nil {
			return err
		}
		return ctx.JSON(serverutils.DataResponse(res))

	default:
		return serverutils.BadRequest("Invalid domain")
	}
}
