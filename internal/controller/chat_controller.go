package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/service"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Send(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}
