package controller

import (
	"strconv"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"
	"study-assistant-be/pkg/extract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IFlashcardController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type flashcardController struct {
	flashcardService service.IFlashcardService
}

func NewFlashcardController(flashcardService service.IFlashcardService) IFlashcardController {
	return &flashcardController{
		flashcardService: flashcardService,
	}
}

func (c *flashcardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/flashcard/v1")
	h.Post("generate", c.Generate)
	h.Get("", c.List)
	h.Delete(":id", c.Delete)
}

// Generate accepts multipart (title/prompt/count fields plus an optional
// source document) as well as plain JSON when no file is attached.
func (c *flashcardController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateFlashcardsRequest
	var source *extract.Document

	if form, err := ctx.MultipartForm(); err == nil && form != nil {
		req.Title = ctx.FormValue("title")
		req.Prompt = ctx.FormValue("prompt")
		if v := ctx.FormValue("count"); v != "" {
			count, err := strconv.Atoi(v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid count")
			}
			req.Count = count
		}
		if _, err := ctx.FormFile("file"); err == nil {
			source, err = formDocument(ctx, "file")
			if err != nil {
				return err
			}
		}
	} else if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.flashcardService.Generate(ctx.Context(), &req, source)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate flashcards", res))
}

func (c *flashcardController) List(ctx *fiber.Ctx) error {
	res := c.flashcardService.List(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Success get flashcard sets", res))
}

func (c *flashcardController) Delete(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	if err := c.flashcardService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete flashcard set", nil))
}
