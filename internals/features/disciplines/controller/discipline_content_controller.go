// file: internals/features/disciplines/controller/discipline_content_controller.go
package controller

import (
	"edupolo_backend/internals/features/disciplines/service"
	helper "edupolo_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type DisciplineContentController struct {
	Svc *service.Service
}

func NewDisciplineContentController(svc *service.Service) *DisciplineContentController {
	return &DisciplineContentController{Svc: svc}
}

// GET /api/u/disciplines/:id/content
func (ctrl *DisciplineContentController) Summary(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	out, err := ctrl.Svc.Summary(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, "ContentSummary", err)
	}
	return helper.JsonOK(c, "ok", out)
}

// GET /api/{a,u}/disciplines/:id/completeness
func (ctrl *DisciplineContentController) Completeness(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res, err := ctrl.Svc.Completeness(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, "ContentCompleteness", err)
	}
	return helper.JsonOK(c, "ok", res)
}
