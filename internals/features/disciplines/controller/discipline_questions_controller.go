// file: internals/features/disciplines/controller/discipline_questions_controller.go
package controller

import (
	"strings"

	"edupolo_backend/internals/features/disciplines/dto"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/service"
	helper "edupolo_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type DisciplineQuestionsController struct {
	Svc *service.Service
}

func NewDisciplineQuestionsController(svc *service.Service) *DisciplineQuestionsController {
	return &DisciplineQuestionsController{Svc: svc}
}

// POST /api/a/disciplines/:id/questions
func (ctrl *DisciplineQuestionsController) Create(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateQuestionRequest
	if ok, err := bindBody(c, &req, req.Normalize, nil); !ok {
		return err
	}
	m, fieldErrs := req.ToModel(disciplineID)
	if len(fieldErrs) > 0 {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if err := ctrl.Svc.AddQuestion(c.UserContext(), &m); err != nil {
		return writeServiceError(c, "QuestionCreate", err)
	}
	return helper.JsonCreated(c, "question created", dto.FromQuestionModel(m))
}

// GET /api/a/disciplines/:id/questions?exam_kind=simulado|avaliacao_final
func (ctrl *DisciplineQuestionsController) List(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	kind := model.ExamKind(strings.ToLower(strings.TrimSpace(c.Query("exam_kind"))))
	if kind != "" && !kind.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam_kind must be simulado or avaliacao_final")
	}
	if _, err := ctrl.Svc.GetDiscipline(c.UserContext(), nil, disciplineID); err != nil {
		return writeServiceError(c, "QuestionList", err)
	}
	list, err := ctrl.Svc.ListQuestions(c.UserContext(), disciplineID, kind)
	if err != nil {
		return writeServiceError(c, "QuestionList", err)
	}
	return helper.JsonOK(c, "ok", dto.FromQuestionModels(list))
}

// DELETE /api/a/disciplines/:id/questions/:question_id
func (ctrl *DisciplineQuestionsController) Delete(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	questionID, err := parseUUIDParam(c, "question_id")
	if err != nil {
		return err
	}
	if err := ctrl.Svc.DeleteQuestion(c.UserContext(), disciplineID, questionID); err != nil {
		return writeServiceError(c, "QuestionDelete", err)
	}
	return helper.JsonDeleted(c, "question deleted", fiber.Map{"discipline_question_id": questionID})
}
