package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/service"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
}

type feedbackController struct {
	service service.IFeedbackService
}

func NewFeedbackController(service service.IFeedbackService) IFeedbackController {
	return &feedbackController{service: service}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	r.Post("/feedback", c.Submit)
}

func (c *feedbackController) Submit(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.DataResponse(res))
}
