package serverutils

import (
	"errors"

	"study-assistant-be/internal/pkg/flight"
	"study-assistant-be/internal/service"
	"study-assistant-be/pkg/extract"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts service-layer errors into one JSON error
// shape. Known kinds keep their message; anything unknown becomes a generic
// 500 so internal diagnostics never reach the client.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
		case errors.Is(err, extract.ErrEmptyFile),
			errors.Is(err, extract.ErrUnsupportedType),
			errors.Is(err, service.ErrInvalidInput):
			status = fiber.StatusBadRequest
			message = err.Error()
		case errors.Is(err, extract.ErrCorruptPDF):
			status = fiber.StatusUnprocessableEntity
			message = err.Error()
		case errors.Is(err, flight.ErrInFlight):
			status = fiber.StatusConflict
			message = err.Error()
		case errors.Is(err, service.ErrNotFound):
			status = fiber.StatusNotFound
			message = err.Error()
		case errors.Is(err, service.ErrGeneration):
			status = fiber.StatusBadGateway
			message = err.Error()
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}
