package controller

import (
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IImageController interface {
	RegisterRoutes(r fiber.Router)
	Generate(ctx *fiber.Ctx) error
}

type imageController struct {
	imageService service.IImageService
}

func NewImageController(imageService service.IImageService) IImageController {
	return &imageController{
		imageService: imageService,
	}
}

func (c *imageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/image/v1")
	h.Post("generate", c.Generate)
}

func (c *imageController) Generate(ctx *fiber.Ctx) error {
	var req dto.GenerateImageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.imageService.Generate(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success generate image", res))
}
