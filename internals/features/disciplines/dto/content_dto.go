// file: internals/features/disciplines/dto/content_dto.go
package dto

import (
	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/videourl"
)

// ContentSnapshot is every live row attached to one discipline.
type ContentSnapshot struct {
	Discipline       model.DisciplineModel
	Videos           []model.DisciplineVideoModel
	StaticEbook      *model.DisciplineEbookModel
	InteractiveEbook *model.DisciplineEbookModel
	Simulado         []model.DisciplineQuestionModel
	FinalExam        []model.DisciplineQuestionModel
}

func (s ContentSnapshot) State() completeness.State {
	st := completeness.State{
		Videos:                 make([]completeness.VideoRef, 0, len(s.Videos)),
		StaticEbook:            ToStaticEbook(s.StaticEbook),
		InteractiveEbook:       ToInteractiveEbook(s.InteractiveEbook),
		SimulatedExamQuestions: make([]completeness.Question, 0, len(s.Simulado)),
		FinalExamQuestions:     make([]completeness.Question, 0, len(s.FinalExam)),
	}
	for _, v := range s.Videos {
		st.Videos = append(st.Videos, ToVideoRef(v))
	}
	for _, q := range s.Simulado {
		st.SimulatedExamQuestions = append(st.SimulatedExamQuestions, ToQuestion(q))
	}
	for _, q := range s.FinalExam {
		st.FinalExamQuestions = append(st.FinalExamQuestions, ToQuestion(q))
	}
	return st
}

// ContentSummaryResponse is the student-facing view; questions are counted, never listed.
type ContentSummaryResponse struct {
	Discipline             DisciplineResponse  `json:"discipline"`
	Videos                 []VideoResponse     `json:"videos"`
	StaticEbook            *EbookResponse      `json:"static_ebook,omitempty"`
	InteractiveEbook       *EbookResponse      `json:"interactive_ebook,omitempty"`
	SimuladoQuestionCount  int                 `json:"simulado_question_count"`
	FinalExamQuestionCount int                 `json:"avaliacao_final_question_count"`
	Completeness           completeness.Result `json:"completeness"`
}

func FromContentSnapshot(s ContentSnapshot, n *videourl.Normalizer, p completeness.Policy) ContentSummaryResponse {
	res := p.Evaluate(s.State())
	d := FromDisciplineModel(s.Discipline)
	d.Completeness = &res
	return ContentSummaryResponse{
		Discipline:             d,
		Videos:                 FromVideoModels(s.Videos, n),
		StaticEbook:            FromEbookModelPtr(s.StaticEbook),
		InteractiveEbook:       FromEbookModelPtr(s.InteractiveEbook),
		SimuladoQuestionCount:  len(s.Simulado),
		FinalExamQuestionCount: len(s.FinalExam),
		Completeness:           res,
	}
}
