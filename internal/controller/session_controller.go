package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Manage(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Post("/session", c.Create)
	r.Post("/session/manage", c.Manage)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(res)
}

func (c *sessionController) Manage(ctx *fiber.Ctx) error {
	var req dto.ManageSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	switch req.Domain {
	case dto.SessionDomainRename:
		if err := c.service.Rename(ctx.Context(), req.UserEmail, req.SessionId, req.SessionName); err != nil {
			return err
		}
	case dto.SessionDomainDelete:
		if err := c.service.Delete(ctx.Context(), req.UserEmail, req.SessionId); err != nil {
			return err
		}
	default:
		return serverutils.BadRequest("Invalid domain")
	}

	return ctx.JSON(fiber.Map{"status_code": 200})
}
