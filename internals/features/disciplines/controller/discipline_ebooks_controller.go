// file: internals/features/disciplines/controller/discipline_ebooks_controller.go
package controller

import (
	"strings"

	"edupolo_backend/internals/features/disciplines/dto"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/service"
	helper "edupolo_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type DisciplineEbooksController struct {
	Svc *service.Service
}

func NewDisciplineEbooksController(svc *service.Service) *DisciplineEbooksController {
	return &DisciplineEbooksController{Svc: svc}
}

// PUT /api/a/disciplines/:id/ebooks/static
func (ctrl *DisciplineEbooksController) UpsertStatic(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpsertStaticEbookRequest
	if ok, err := bindBody(c, &req, req.Normalize, nil); !ok {
		return err
	}
	out, err := ctrl.Svc.UpsertEbook(c.UserContext(), req.ToModel(disciplineID))
	if err != nil {
		return writeServiceError(c, "EbookUpsertStatic", err)
	}
	return helper.JsonUpdated(c, "static ebook saved", dto.FromEbookModel(*out))
}

// PUT /api/a/disciplines/:id/ebooks/interactive
func (ctrl *DisciplineEbooksController) UpsertInteractive(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpsertInteractiveEbookRequest
	if ok, err := bindBody(c, &req, req.Normalize, nil); !ok {
		return err
	}
	out, err := ctrl.Svc.UpsertEbook(c.UserContext(), req.ToModel(disciplineID))
	if err != nil {
		return writeServiceError(c, "EbookUpsertInteractive", err)
	}
	return helper.JsonUpdated(c, "interactive ebook saved", dto.FromEbookModel(*out))
}

// DELETE /api/a/disciplines/:id/ebooks/:kind
func (ctrl *DisciplineEbooksController) Delete(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	kind := model.EbookKind(strings.ToLower(strings.TrimSpace(c.Params("kind"))))
	if !kind.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "kind must be static or interactive")
	}
	if err := ctrl.Svc.DeleteEbook(c.UserContext(), disciplineID, kind); err != nil {
		return writeServiceError(c, "EbookDelete", err)
	}
	return helper.JsonDeleted(c, "ebook deleted", fiber.Map{"discipline_ebook_kind": kind})
}
