package helper

import (
	"errors"

	"edupolo_backend/internals/logger"

	"github.com/gofiber/fiber/v2"
)

// FiberErrorHandler renders any error that reaches Fiber with the JSON error envelope.
// *fiber.Error keeps its code and message; anything else becomes a 500.
func FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	logger.WithRequest(c).WithError(err).Error("[ErrorHandler] unhandled error")
	return JsonError(c, fiber.StatusInternalServerError, "")
}
