package controller

import (
	"strconv"

	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMCQController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
}

type mcqController struct {
	mcqService service.IMCQService
}

func NewMCQController(mcqService service.IMCQService) IMCQController {
	return &mcqController{
		mcqService: mcqService,
	}
}

func (c *mcqController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/mcq/v1")
	h.Post("generate", c.Generate)
	h.Get("", c.List)
	h.Get("status", c.Status)
	h.Get(":id/export", c.Export)
	h.Delete(":id", c.Delete)
}

func (c *mcqController) Generate(ctx *fiber.Ctx) error {
	doc, err := formDocument(ctx, "file")
	if err != nil {
		return err
	}

	count := 0
	if v := ctx.FormValue("count"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid count")
		}
	}

	res, err := c.mcqService.Generate(ctx.Context(), *doc, count)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate quiz", res))
}

func (c *mcqController) List(ctx *fiber.Ctx) error {
	res := c.mcqService.List(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get quizzes", res))
}

func (c *mcqController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := c.mcqService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete quiz", nil))
}

func (c *mcqController) Export(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	filename, pdfBytes, err := c.mcqService.Export(ctx.Context(), id)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(pdfBytes)
}

func (c *mcqController) Status(ctx *fiber.Ctx) error {
	stage, running := c.mcqService.Status()
	return ctx.JSON(serverutils.SuccessResponse("Success get status", fiber.Map{
		"running": running,
		"stage":   stage,
	}))
}
