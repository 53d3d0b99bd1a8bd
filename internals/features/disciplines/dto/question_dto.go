// file: internals/features/disciplines/dto/question_dto.go
package dto

import (
	"strings"
	"time"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"

	"github.com/google/uuid"
)

type CreateQuestionRequest struct {
	DisciplineQuestionExamKind           string   `json:"discipline_question_exam_kind" validate:"required,oneof=simulado avaliacao_final"`
	DisciplineQuestionStatement          string   `json:"discipline_question_statement" validate:"required"`
	DisciplineQuestionOptions            []string `json:"discipline_question_options" validate:"required,min=2,max=10,dive,required"`
	DisciplineQuestionCorrectOptionIndex *int     `json:"discipline_question_correct_option_index" validate:"required,min=0"`
	DisciplineQuestionOrder              *int     `json:"discipline_question_order,omitempty" validate:"omitempty,min=0"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.DisciplineQuestionExamKind = strings.ToLower(strings.TrimSpace(r.DisciplineQuestionExamKind))
	r.DisciplineQuestionStatement = strings.TrimSpace(r.DisciplineQuestionStatement)
	for i := range r.DisciplineQuestionOptions {
		r.DisciplineQuestionOptions[i] = strings.TrimSpace(r.DisciplineQuestionOptions[i])
	}
}

// ToModel builds the row; option/index consistency errors come back as field errors.
func (r *CreateQuestionRequest) ToModel(disciplineID uuid.UUID) (model.DisciplineQuestionModel, map[string][]string) {
	m := model.DisciplineQuestionModel{
		DisciplineQuestionDisciplineID: disciplineID,
		DisciplineQuestionExamKind:     model.ExamKind(r.DisciplineQuestionExamKind),
		DisciplineQuestionStatement:    r.DisciplineQuestionStatement,
	}
	if r.DisciplineQuestionOrder != nil {
		m.DisciplineQuestionOrder = *r.DisciplineQuestionOrder
	}
	correct := 0
	if r.DisciplineQuestionCorrectOptionIndex != nil {
		correct = *r.DisciplineQuestionCorrectOptionIndex
	}
	if err := m.SetOptions(r.DisciplineQuestionOptions, correct); err != nil {
		return m, map[string][]string{"discipline_question_options": {err.Error()}}
	}
	return m, nil
}

type QuestionResponse struct {
	DisciplineQuestionID                 uuid.UUID      `json:"discipline_question_id"`
	DisciplineQuestionDisciplineID       uuid.UUID      `json:"discipline_question_discipline_id"`
	DisciplineQuestionExamKind           model.ExamKind `json:"discipline_question_exam_kind"`
	DisciplineQuestionStatement          string         `json:"discipline_question_statement"`
	DisciplineQuestionOptions            []string       `json:"discipline_question_options"`
	DisciplineQuestionCorrectOptionIndex int            `json:"discipline_question_correct_option_index"`
	DisciplineQuestionOrder              int            `json:"discipline_question_order"`
	DisciplineQuestionCreatedAt          time.Time      `json:"discipline_question_created_at"`
}

func FromQuestionModel(m model.DisciplineQuestionModel) QuestionResponse {
	opts := m.Options()
	if opts == nil {
		opts = []string{}
	}
	return QuestionResponse{
		DisciplineQuestionID:                 m.DisciplineQuestionID,
		DisciplineQuestionDisciplineID:       m.DisciplineQuestionDisciplineID,
		DisciplineQuestionExamKind:           m.DisciplineQuestionExamKind,
		DisciplineQuestionStatement:          m.DisciplineQuestionStatement,
		DisciplineQuestionOptions:            opts,
		DisciplineQuestionCorrectOptionIndex: m.DisciplineQuestionCorrectIndex,
		DisciplineQuestionOrder:              m.DisciplineQuestionOrder,
		DisciplineQuestionCreatedAt:          m.DisciplineQuestionCreatedAt,
	}
}

func FromQuestionModels(list []model.DisciplineQuestionModel) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromQuestionModel(m))
	}
	return out
}

func ToQuestion(m model.DisciplineQuestionModel) completeness.Question {
	return completeness.Question{
		Statement:          m.DisciplineQuestionStatement,
		Options:            m.Options(),
		CorrectOptionIndex: m.DisciplineQuestionCorrectIndex,
	}
}
