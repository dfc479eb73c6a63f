package serverutils

import (
	"github.com/gofiber/fiber/v2"

	"logfiber-be/internal/apperror"
)

// ErrorHandlerMiddleware maps the service error classes to HTTP statuses:
// InputError 400, NotFoundError 404, anything else 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		switch {
		case apperror.IsInput(err):
			status = fiber.StatusBadRequest
		case apperror.IsNotFound(err):
			status = fiber.StatusNotFound
		}

		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}

		return ctx.Status(status).JSON(ErrorResponse(err.Error()))
	}
}
