// file: internals/features/disciplines/dto/discipline_dto.go
package dto

import (
	"strings"
	"time"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =========================================================
   Request DTOs
========================================================= */

type CreateDisciplineRequest struct {
	DisciplineCode          string   `json:"discipline_code" validate:"required,max=40"`
	DisciplineName          string   `json:"discipline_name" validate:"required,max=160"`
	DisciplineSlug          *string  `json:"discipline_slug,omitempty" validate:"omitempty,max=160"`
	DisciplineDescription   *string  `json:"discipline_description,omitempty"`
	DisciplineTags          []string `json:"discipline_tags,omitempty" validate:"omitempty,max=20,dive,required,max=40"`
	DisciplineWorkloadHours *int     `json:"discipline_workload_hours,omitempty" validate:"omitempty,min=1,max=2000"`
	DisciplineIsActive      *bool    `json:"discipline_is_active,omitempty"`
}

// Partial update; nil means "keep".
type UpdateDisciplineRequest struct {
	DisciplineCode          *string   `json:"discipline_code,omitempty" validate:"omitempty,min=1,max=40"`
	DisciplineName          *string   `json:"discipline_name,omitempty" validate:"omitempty,min=1,max=160"`
	DisciplineDescription   *string   `json:"discipline_description,omitempty"`
	DisciplineTags          *[]string `json:"discipline_tags,omitempty" validate:"omitempty,max=20,dive,required,max=40"`
	DisciplineWorkloadHours *int      `json:"discipline_workload_hours,omitempty" validate:"omitempty,min=1,max=2000"`
	DisciplineIsActive      *bool     `json:"discipline_is_active,omitempty"`
}

// Normalize trims strings and drops blank optionals.
func (r *CreateDisciplineRequest) Normalize() {
	r.DisciplineCode = strings.ToUpper(strings.TrimSpace(r.DisciplineCode))
	r.DisciplineName = strings.TrimSpace(r.DisciplineName)
	r.DisciplineSlug = trimPtr(r.DisciplineSlug)
	r.DisciplineDescription = trimPtr(r.DisciplineDescription)
	r.DisciplineTags = normalizeTags(r.DisciplineTags)
}

func (r *UpdateDisciplineRequest) Normalize() {
	if r.DisciplineCode != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.DisciplineCode))
		r.DisciplineCode = &v
	}
	if r.DisciplineName != nil {
		v := strings.TrimSpace(*r.DisciplineName)
		r.DisciplineName = &v
	}
	if r.DisciplineTags != nil {
		v := normalizeTags(*r.DisciplineTags)
		r.DisciplineTags = &v
	}
}

func (r *CreateDisciplineRequest) ToModel(slug string) model.DisciplineModel {
	m := model.DisciplineModel{
		DisciplineCode:        r.DisciplineCode,
		DisciplineName:        r.DisciplineName,
		DisciplineDescription: r.DisciplineDescription,
		DisciplineTags:        pq.StringArray(r.DisciplineTags),
		DisciplineWorkloadHrs: r.DisciplineWorkloadHours,
		DisciplineIsActive:    true,
	}
	if slug != "" {
		m.DisciplineSlug = &slug
	}
	if r.DisciplineIsActive != nil {
		m.DisciplineIsActive = *r.DisciplineIsActive
	}
	if m.DisciplineTags == nil {
		m.DisciplineTags = pq.StringArray{}
	}
	return m
}

func (r *UpdateDisciplineRequest) Apply(m *model.DisciplineModel) {
	if r.DisciplineCode != nil {
		m.DisciplineCode = *r.DisciplineCode
	}
	if r.DisciplineName != nil {
		m.DisciplineName = *r.DisciplineName
	}
	if r.DisciplineDescription != nil {
		m.DisciplineDescription = trimPtr(r.DisciplineDescription)
	}
	if r.DisciplineTags != nil {
		m.DisciplineTags = pq.StringArray(*r.DisciplineTags)
	}
	if r.DisciplineWorkloadHours != nil {
		m.DisciplineWorkloadHrs = r.DisciplineWorkloadHours
	}
	if r.DisciplineIsActive != nil {
		m.DisciplineIsActive = *r.DisciplineIsActive
	}
}

/* =========================================================
   Response DTO
========================================================= */

type DisciplineResponse struct {
	DisciplineID            uuid.UUID            `json:"discipline_id"`
	DisciplineCode          string               `json:"discipline_code"`
	DisciplineName          string               `json:"discipline_name"`
	DisciplineSlug          *string              `json:"discipline_slug,omitempty"`
	DisciplineDescription   *string              `json:"discipline_description,omitempty"`
	DisciplineTags          []string             `json:"discipline_tags"`
	DisciplineWorkloadHours *int                 `json:"discipline_workload_hours,omitempty"`
	DisciplineIsActive      bool                 `json:"discipline_is_active"`
	DisciplineCreatedAt     time.Time            `json:"discipline_created_at"`
	DisciplineUpdatedAt     time.Time            `json:"discipline_updated_at"`
	Completeness            *completeness.Result `json:"completeness,omitempty"`
}

func FromDisciplineModel(m model.DisciplineModel) DisciplineResponse {
	tags := []string(m.DisciplineTags)
	if tags == nil {
		tags = []string{}
	}
	return DisciplineResponse{
		DisciplineID:            m.DisciplineID,
		DisciplineCode:          m.DisciplineCode,
		DisciplineName:          m.DisciplineName,
		DisciplineSlug:          m.DisciplineSlug,
		DisciplineDescription:   m.DisciplineDescription,
		DisciplineTags:          tags,
		DisciplineWorkloadHours: m.DisciplineWorkloadHrs,
		DisciplineIsActive:      m.DisciplineIsActive,
		DisciplineCreatedAt:     m.DisciplineCreatedAt,
		DisciplineUpdatedAt:     m.DisciplineUpdatedAt,
	}
}

/* =========================================================
   small helpers
========================================================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func normalizeTags(in []string) []string {
	if len(in) == 0 {
		return in
	}
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
