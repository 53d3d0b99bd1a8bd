// file: internals/features/disciplines/model/discipline_question_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ExamKind string

const (
	ExamKindSimulado       ExamKind = "simulado"
	ExamKindAvaliacaoFinal ExamKind = "avaliacao_final"
)

func (k ExamKind) Valid() bool {
	return k == ExamKindSimulado || k == ExamKindAvaliacaoFinal
}

const MinQuestionOptions = 2

type DisciplineQuestionModel struct {
	DisciplineQuestionID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:discipline_question_id" json:"discipline_question_id"`
	DisciplineQuestionDisciplineID uuid.UUID `gorm:"type:uuid;not null;index;column:discipline_question_discipline_id" json:"discipline_question_discipline_id"`
	DisciplineQuestionExamKind     ExamKind  `gorm:"type:varchar(16);not null;column:discipline_question_exam_kind" json:"discipline_question_exam_kind"`

	DisciplineQuestionStatement    string         `gorm:"type:text;not null;column:discipline_question_statement" json:"discipline_question_statement"`
	DisciplineQuestionOptions      datatypes.JSON `gorm:"type:jsonb;not null;column:discipline_question_options" json:"discipline_question_options"`
	DisciplineQuestionCorrectIndex int            `gorm:"not null;column:discipline_question_correct_option_index" json:"discipline_question_correct_option_index"`
	DisciplineQuestionOrder        int            `gorm:"not null;default:0;column:discipline_question_order" json:"discipline_question_order"`

	DisciplineQuestionCreatedAt time.Time      `gorm:"type:timestamptz;not null;autoCreateTime;column:discipline_question_created_at" json:"discipline_question_created_at"`
	DisciplineQuestionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;autoUpdateTime;column:discipline_question_updated_at" json:"discipline_question_updated_at"`
	DisciplineQuestionDeletedAt gorm.DeletedAt `gorm:"column:discipline_question_deleted_at;index" json:"discipline_question_deleted_at,omitempty"`
}

func (DisciplineQuestionModel) TableName() string { return "discipline_questions" }

// SetOptions stores options as a JSON array and checks the correct index.
func (m *DisciplineQuestionModel) SetOptions(options []string, correct int) error {
	clean := make([]string, 0, len(options))
	for _, o := range options {
		o = strings.TrimSpace(o)
		if o == "" {
			return errors.New("option text must not be empty")
		}
		clean = append(clean, o)
	}
	if len(clean) < MinQuestionOptions {
		return errors.New("at least 2 options are required")
	}
	if correct < 0 || correct >= len(clean) {
		return errors.New("correct_option_index out of range")
	}
	b, err := json.Marshal(clean)
	if err != nil {
		return err
	}
	m.DisciplineQuestionOptions = datatypes.JSON(b)
	m.DisciplineQuestionCorrectIndex = correct
	return nil
}

// Options decodes the stored options; a broken column yields nil.
func (m *DisciplineQuestionModel) Options() []string {
	if len(m.DisciplineQuestionOptions) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(m.DisciplineQuestionOptions, &out); err != nil {
		return nil
	}
	return out
}
