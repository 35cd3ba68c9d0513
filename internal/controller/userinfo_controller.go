package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/manish-1011/KisanSaathi/internal/dto"
	"github.com/manish-1011/KisanSaathi/internal/pkg/serverutils"
	"github.com/manish-1011/KisanSaathi/internal/service"
)

type IUserInfoController interface {
	RegisterRoutes(r fiber.Router)
	Get(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type userInfoController struct {
	service service.IUserInfoService
}

func NewUserInfoController(service service.IUserInfoService) IUserInfoController {
	return &userInfoController{service: service}
}

func (c *userInfoController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user-info")
	h.Post("/get", c.Get)
	h.Post("/update", c.Update)
}

func (c *userInfoController) Get(ctx *fiber.Ctx) error {
	var req dto.GetUserInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Get(ctx.Context(), req.UserEmail)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.DataResponse(res))
}

func (c *userInfoController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateUserInfoRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.BadRequest("invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	changed, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if !changed {
		return ctx.JSON(serverutils.SuccessResponse[any]("Nothing to update.", nil))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("User information updated.", nil))
}
