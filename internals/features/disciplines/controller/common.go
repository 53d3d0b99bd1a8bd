// file: internals/features/disciplines/controller/common.go
package controller

import (
	"errors"
	"strings"

	"edupolo_backend/internals/features/disciplines/service"
	helper "edupolo_backend/internals/helpers"
	"edupolo_backend/internals/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// bindBody parses, normalizes and validates req. When ok is false the
// error response has already been written and err is what the handler returns.
func bindBody(c *fiber.Ctx, req any, normalize func(), extra func() map[string][]string) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if normalize != nil {
		normalize()
	}
	fieldErrs := helper.ValidateStruct(req)
	if extra != nil {
		fieldErrs = helper.MergeFieldErrors(fieldErrs, extra())
	}
	if len(fieldErrs) > 0 {
		return false, helper.JsonValidationError(c, fieldErrs)
	}
	return true, nil
}

// writeServiceError maps service sentinels and postgres codes to responses.
func writeServiceError(c *fiber.Ctx, tag string, err error) error {
	switch {
	case errors.Is(err, service.ErrDisciplineNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "discipline not found")
	case errors.Is(err, service.ErrVideoNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "video not found")
	case errors.Is(err, service.ErrEbookNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "ebook not found")
	case errors.Is(err, service.ErrQuestionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "question not found")
	case errors.Is(err, service.ErrVideoLimitReached):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	if status, _ := helper.MapPGError(err); status >= fiber.StatusInternalServerError {
		logger.WithRequest(c).WithError(err).Errorf("[%s] failed", tag)
	}
	return helper.WritePGError(c, err)
}
