// file: internals/features/disciplines/dto/ebook_dto.go
package dto

import (
	"strings"
	"time"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"

	"github.com/google/uuid"
)

type UpsertStaticEbookRequest struct {
	DisciplineEbookURL   string  `json:"discipline_ebook_url" validate:"required,url,max=2048"`
	DisciplineEbookTitle *string `json:"discipline_ebook_title,omitempty" validate:"omitempty,max=200"`
}

// Interactive e-books always carry a title; description is optional.
type UpsertInteractiveEbookRequest struct {
	DisciplineEbookURL         string  `json:"discipline_ebook_url" validate:"required,url,max=2048"`
	DisciplineEbookTitle       string  `json:"discipline_ebook_title" validate:"required,max=200"`
	DisciplineEbookDescription *string `json:"discipline_ebook_description,omitempty"`
}

func (r *UpsertStaticEbookRequest) Normalize() {
	r.DisciplineEbookURL = strings.TrimSpace(r.DisciplineEbookURL)
	r.DisciplineEbookTitle = trimPtr(r.DisciplineEbookTitle)
}

func (r *UpsertInteractiveEbookRequest) Normalize() {
	r.DisciplineEbookURL = strings.TrimSpace(r.DisciplineEbookURL)
	r.DisciplineEbookTitle = strings.TrimSpace(r.DisciplineEbookTitle)
	r.DisciplineEbookDescription = trimPtr(r.DisciplineEbookDescription)
}

func (r *UpsertStaticEbookRequest) ToModel(disciplineID uuid.UUID) model.DisciplineEbookModel {
	return model.DisciplineEbookModel{
		DisciplineEbookDisciplineID: disciplineID,
		DisciplineEbookKind:         model.EbookKindStatic,
		DisciplineEbookURL:          r.DisciplineEbookURL,
		DisciplineEbookTitle:        r.DisciplineEbookTitle,
	}
}

func (r *UpsertInteractiveEbookRequest) ToModel(disciplineID uuid.UUID) model.DisciplineEbookModel {
	title := r.DisciplineEbookTitle
	return model.DisciplineEbookModel{
		DisciplineEbookDisciplineID: disciplineID,
		DisciplineEbookKind:         model.EbookKindInteractive,
		DisciplineEbookURL:          r.DisciplineEbookURL,
		DisciplineEbookTitle:        &title,
		DisciplineEbookDescription:  r.DisciplineEbookDescription,
	}
}

type EbookResponse struct {
	DisciplineEbookID           uuid.UUID       `json:"discipline_ebook_id"`
	DisciplineEbookDisciplineID uuid.UUID       `json:"discipline_ebook_discipline_id"`
	DisciplineEbookKind         model.EbookKind `json:"discipline_ebook_kind"`
	DisciplineEbookURL          string          `json:"discipline_ebook_url"`
	DisciplineEbookTitle        *string         `json:"discipline_ebook_title,omitempty"`
	DisciplineEbookDescription  *string         `json:"discipline_ebook_description,omitempty"`
	DisciplineEbookUpdatedAt    time.Time       `json:"discipline_ebook_updated_at"`
}

func FromEbookModel(m model.DisciplineEbookModel) EbookResponse {
	return EbookResponse{
		DisciplineEbookID:           m.DisciplineEbookID,
		DisciplineEbookDisciplineID: m.DisciplineEbookDisciplineID,
		DisciplineEbookKind:         m.DisciplineEbookKind,
		DisciplineEbookURL:          m.DisciplineEbookURL,
		DisciplineEbookTitle:        m.DisciplineEbookTitle,
		DisciplineEbookDescription:  m.DisciplineEbookDescription,
		DisciplineEbookUpdatedAt:    m.DisciplineEbookUpdatedAt,
	}
}

func FromEbookModelPtr(m *model.DisciplineEbookModel) *EbookResponse {
	if m == nil {
		return nil
	}
	r := FromEbookModel(*m)
	return &r
}

func ToStaticEbook(m *model.DisciplineEbookModel) *completeness.StaticEbook {
	if m == nil {
		return nil
	}
	return &completeness.StaticEbook{URL: m.DisciplineEbookURL}
}

func ToInteractiveEbook(m *model.DisciplineEbookModel) *completeness.InteractiveEbook {
	if m == nil {
		return nil
	}
	return &completeness.InteractiveEbook{
		URL:         m.DisciplineEbookURL,
		Title:       deref(m.DisciplineEbookTitle),
		Description: deref(m.DisciplineEbookDescription),
	}
}
