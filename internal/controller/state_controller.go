package controller

import (
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStateController interface {
	RegisterRoutes(r fiber.Router)
	Preferences(ctx *fiber.Ctx) error
	SetTheme(ctx *fiber.Ctx) error
	SetUser(ctx *fiber.Ctx) error
	ClearUser(ctx *fiber.Ctx) error
}

type stateController struct {
	stateService service.IStateService
}

func NewStateController(stateService service.IStateService) IStateController {
	return &stateController{
		stateService: stateService,
	}
}

func (c *stateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/state/v1")
	h.Get("preferences", c.Preferences)
	h.Put("theme", c.SetTheme)
	h.Put("user", c.SetUser)
	h.Delete("user", c.ClearUser)
}

func (c *stateController) Preferences(ctx *fiber.Ctx) error {
	res := c.stateService.Preferences(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get preferences", res))
}

func (c *stateController) SetTheme(ctx *fiber.Ctx) error {
	var req dto.SetThemeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.stateService.SetTheme(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update theme", nil))
}

func (c *stateController) SetUser(ctx *fiber.Ctx) error {
	var req dto.SetUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}
	if err := c.stateService.SetUser(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update user profile", nil))
}

func (c *stateController) ClearUser(ctx *fiber.Ctx) error {
	if err := c.stateService.ClearUser(ctx.Context()); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear user profile", nil))
}
