// file: internals/features/disciplines/controller/disciplines_controller.go
package controller

import (
	"strings"

	"edupolo_backend/internals/features/disciplines/dto"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/service"
	helper "edupolo_backend/internals/helpers"
	"edupolo_backend/internals/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DisciplinesController struct {
	DB  *gorm.DB
	Svc *service.Service
}

func NewDisciplinesController(db *gorm.DB, svc *service.Service) *DisciplinesController {
	return &DisciplinesController{DB: db, Svc: svc}
}

var disciplineSlugOpts = helper.SlugOptions{
	Table:            "disciplines",
	SlugColumn:       "discipline_slug",
	SoftDeleteColumn: "discipline_deleted_at",
	MaxLen:           160,
	DefaultBase:      "discipline",
}

/* =========================================================
   CREATE  POST /api/a/disciplines
========================================================= */

func (ctrl *DisciplinesController) Create(c *fiber.Ctx) error {
	var req dto.CreateDisciplineRequest
	if ok, err := bindBody(c, &req, req.Normalize, nil); !ok {
		return err
	}

	base := req.DisciplineName
	if req.DisciplineSlug != nil {
		base = *req.DisciplineSlug
	}
	slug, err := helper.GenerateUniqueSlug(c.UserContext(), ctrl.DB, disciplineSlugOpts, base)
	if err != nil {
		return writeServiceError(c, "DisciplineCreate", err)
	}

	m := req.ToModel(slug)
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "discipline code already exists")
		}
		return writeServiceError(c, "DisciplineCreate", err)
	}

	logger.WithRequest(c).WithField("discipline_id", m.DisciplineID).Info("[DisciplineCreate] created")
	return helper.JsonCreated(c, "discipline created", dto.FromDisciplineModel(m))
}

/* =========================================================
   LIST  GET /api/a/disciplines?q=&tag=&active=&page=&per_page=
========================================================= */

func (ctrl *DisciplinesController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.DisciplineModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(discipline_name) LIKE ? OR LOWER(discipline_code) LIKE ?)", like, like)
	}
	if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
		q = q.Where("? = ANY(discipline_tags)", tag)
	}
	switch strings.ToLower(strings.TrimSpace(c.Query("active"))) {
	case "true", "1":
		q = q.Where("discipline_is_active = TRUE")
	case "false", "0":
		q = q.Where("discipline_is_active = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return writeServiceError(c, "DisciplineList", err)
	}

	var rows []model.DisciplineModel
	if err := q.Order("discipline_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return writeServiceError(c, "DisciplineList", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.DisciplineID)
	}
	results, err := ctrl.Svc.EvaluateMany(c.UserContext(), ids)
	if err != nil {
		return writeServiceError(c, "DisciplineList", err)
	}

	out := make([]dto.DisciplineResponse, 0, len(rows))
	for _, r := range rows {
		item := dto.FromDisciplineModel(r)
		res := results[r.DisciplineID]
		item.Completeness = &res
		out = append(out, item)
	}

	return helper.JsonList(c, "ok", out, helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out)))
}

/* =========================================================
   GET  /api/a/disciplines/:id
========================================================= */

func (ctrl *DisciplinesController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := ctrl.Svc.GetDiscipline(c.UserContext(), nil, id)
	if err != nil {
		return writeServiceError(c, "DisciplineGet", err)
	}
	results, err := ctrl.Svc.EvaluateMany(c.UserContext(), []uuid.UUID{id})
	if err != nil {
		return writeServiceError(c, "DisciplineGet", err)
	}
	res := results[id]
	out := dto.FromDisciplineModel(*m)
	out.Completeness = &res
	return helper.JsonOK(c, "ok", out)
}

/* =========================================================
   PATCH  /api/a/disciplines/:id
========================================================= */

func (ctrl *DisciplinesController) Update(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateDisciplineRequest
	if ok, err := bindBody(c, &req, req.Normalize, nil); !ok {
		return err
	}

	m, err := ctrl.Svc.GetDiscipline(c.UserContext(), nil, id)
	if err != nil {
		return writeServiceError(c, "DisciplineUpdate", err)
	}
	nameChanged := req.DisciplineName != nil && *req.DisciplineName != m.DisciplineName
	req.Apply(m)

	if nameChanged {
		slug, err := helper.GenerateUniqueSlug(c.UserContext(), ctrl.DB, disciplineSlugOpts, m.DisciplineName)
		if err != nil {
			return writeServiceError(c, "DisciplineUpdate", err)
		}
		m.DisciplineSlug = &slug
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Save(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "discipline code already exists")
		}
		return writeServiceError(c, "DisciplineUpdate", err)
	}
	return helper.JsonUpdated(c, "discipline updated", dto.FromDisciplineModel(*m))
}

/* =========================================================
   DELETE  /api/a/disciplines/:id  (soft)
========================================================= */

func (ctrl *DisciplinesController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := ctrl.DB.WithContext(c.UserContext()).
		Where("discipline_id = ?", id).
		Delete(&model.DisciplineModel{})
	if res.Error != nil {
		return writeServiceError(c, "DisciplineDelete", res.Error)
	}
	if res.RowsAffected == 0 {
		return writeServiceError(c, "DisciplineDelete", service.ErrDisciplineNotFound)
	}
	return helper.JsonDeleted(c, "discipline deleted", fiber.Map{"discipline_id": id})
}
