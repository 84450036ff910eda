package controller

import (
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	Analyze(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type summaryController struct {
	summaryService service.ISummaryService
}

func NewSummaryController(summaryService service.ISummaryService) ISummaryController {
	return &summaryController{
		summaryService: summaryService,
	}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summary/v1")
	h.Post("analyze", c.Analyze)
	h.Get("", c.List)
	h.Get("status", c.Status)
	h.Delete(":id", c.Delete)
}

func (c *summaryController) Analyze(ctx *fiber.Ctx) error {
	doc, err := formDocument(ctx, "file")
	if err != nil {
		return err
	}

	res, err := c.summaryService.Analyze(ctx.Context(), *doc)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success analyze document", res))
}

func (c *summaryController) List(ctx *fiber.Ctx) error {
	res := c.summaryService.List(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get summaries", res))
}

func (c *summaryController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := c.summaryService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete summary", nil))
}

func (c *summaryController) Status(ctx *fiber.Ctx) error {
	stage, running := c.summaryService.Status()
	return ctx.JSON(serverutils.SuccessResponse("Success get status", fiber.Map{
		"running": running,
		"stage":   stage,
	}))
}
