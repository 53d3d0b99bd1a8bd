// file: internals/features/disciplines/dto/video_dto.go
package dto

import (
	"strings"
	"time"

	"edupolo_backend/internals/features/disciplines/completeness"
	"edupolo_backend/internals/features/disciplines/model"
	"edupolo_backend/internals/features/disciplines/videourl"

	"github.com/google/uuid"
)

/* =========================================================
   Request DTOs
========================================================= */

type CreateVideoRequest struct {
	DisciplineVideoTitle     *string `json:"discipline_video_title,omitempty" validate:"omitempty,max=200"`
	DisciplineVideoURL       string  `json:"discipline_video_url" validate:"required,url,max=2048"`
	DisciplineVideoSource    *string `json:"discipline_video_source,omitempty" validate:"omitempty,oneof=youtube vimeo onedrive google_drive upload"`
	DisciplineVideoStartTime *string `json:"discipline_video_start_time,omitempty"`
	DisciplineVideoOrder     *int    `json:"discipline_video_order,omitempty" validate:"omitempty,min=1"`
}

type UpdateVideoRequest struct {
	DisciplineVideoTitle     *string `json:"discipline_video_title,omitempty" validate:"omitempty,max=200"`
	DisciplineVideoURL       *string `json:"discipline_video_url,omitempty" validate:"omitempty,url,max=2048"`
	DisciplineVideoSource    *string `json:"discipline_video_source,omitempty" validate:"omitempty,oneof=youtube vimeo onedrive google_drive upload"`
	DisciplineVideoStartTime *string `json:"discipline_video_start_time,omitempty"`
	DisciplineVideoOrder     *int    `json:"discipline_video_order,omitempty" validate:"omitempty,min=1"`
}

// VideoPreviewRequest is what the admin form sends while the URL is typed.
// The URL is not validated: the normalizer degrades gracefully.
type VideoPreviewRequest struct {
	URL       string  `json:"url" validate:"required,max=2048"`
	Source    *string `json:"source,omitempty" validate:"omitempty,oneof=youtube vimeo onedrive google_drive upload"`
	StartTime *string `json:"startTime,omitempty"`
}

func (r *CreateVideoRequest) Normalize() {
	r.DisciplineVideoURL = strings.TrimSpace(r.DisciplineVideoURL)
	r.DisciplineVideoTitle = trimPtr(r.DisciplineVideoTitle)
	r.DisciplineVideoSource = lowerPtr(r.DisciplineVideoSource)
	r.DisciplineVideoStartTime = trimPtr(r.DisciplineVideoStartTime)
}

func (r *UpdateVideoRequest) Normalize() {
	if r.DisciplineVideoURL != nil {
		v := strings.TrimSpace(*r.DisciplineVideoURL)
		r.DisciplineVideoURL = &v
	}
	// "" clears the declared source back to auto-detect
	if r.DisciplineVideoSource != nil {
		v := strings.ToLower(strings.TrimSpace(*r.DisciplineVideoSource))
		r.DisciplineVideoSource = &v
	}
}

func (r *VideoPreviewRequest) Normalize() {
	r.URL = strings.TrimSpace(r.URL)
	r.Source = lowerPtr(r.Source)
	r.StartTime = trimPtr(r.StartTime)
}

// FieldErrors checks what struct tags cannot express.
func (r *CreateVideoRequest) FieldErrors() map[string][]string {
	return startTimeErrors("discipline_video_start_time", r.DisciplineVideoStartTime)
}

func (r *UpdateVideoRequest) FieldErrors() map[string][]string {
	// "" clears the start time
	if r.DisciplineVideoStartTime != nil && strings.TrimSpace(*r.DisciplineVideoStartTime) == "" {
		return nil
	}
	return startTimeErrors("discipline_video_start_time", r.DisciplineVideoStartTime)
}

func (r *VideoPreviewRequest) FieldErrors() map[string][]string {
	return startTimeErrors("startTime", r.StartTime)
}

func startTimeErrors(field string, v *string) map[string][]string {
	if v == nil {
		return nil
	}
	if _, ok := videourl.TimeToSeconds(*v); !ok {
		return map[string][]string{field: {field + " must be mm:ss"}}
	}
	return nil
}

func (r *CreateVideoRequest) ToModel(disciplineID uuid.UUID) model.DisciplineVideoModel {
	m := model.DisciplineVideoModel{
		DisciplineVideoDisciplineID: disciplineID,
		DisciplineVideoTitle:        r.DisciplineVideoTitle,
		DisciplineVideoURL:          r.DisciplineVideoURL,
		DisciplineVideoSource:       r.DisciplineVideoSource,
		DisciplineVideoStartTime:    r.DisciplineVideoStartTime,
	}
	if r.DisciplineVideoOrder != nil {
		m.DisciplineVideoOrder = *r.DisciplineVideoOrder
	}
	return m
}

func (r *UpdateVideoRequest) Apply(m *model.DisciplineVideoModel) {
	if r.DisciplineVideoTitle != nil {
		m.DisciplineVideoTitle = trimPtr(r.DisciplineVideoTitle)
	}
	if r.DisciplineVideoURL != nil {
		m.DisciplineVideoURL = *r.DisciplineVideoURL
	}
	if r.DisciplineVideoSource != nil {
		m.DisciplineVideoSource = trimPtr(r.DisciplineVideoSource)
	}
	if r.DisciplineVideoStartTime != nil {
		m.DisciplineVideoStartTime = trimPtr(r.DisciplineVideoStartTime)
	}
	if r.DisciplineVideoOrder != nil {
		m.DisciplineVideoOrder = *r.DisciplineVideoOrder
	}
}

/* =========================================================
   Response DTO
========================================================= */

type VideoResponse struct {
	DisciplineVideoID           uuid.UUID          `json:"discipline_video_id"`
	DisciplineVideoDisciplineID uuid.UUID          `json:"discipline_video_discipline_id"`
	DisciplineVideoTitle        *string            `json:"discipline_video_title,omitempty"`
	DisciplineVideoStartTime    *string            `json:"discipline_video_start_time,omitempty"`
	DisciplineVideoOrder        int                `json:"discipline_video_order"`
	DisciplineVideoCreatedAt    time.Time          `json:"discipline_video_created_at"`
	DisciplineVideoUpdatedAt    time.Time          `json:"discipline_video_updated_at"`
	Video                       videourl.VideoInfo `json:"video"`
}

// FromVideoModel normalizes the stored URL on every read; nothing derived is persisted.
func FromVideoModel(m model.DisciplineVideoModel, n *videourl.Normalizer) VideoResponse {
	return VideoResponse{
		DisciplineVideoID:           m.DisciplineVideoID,
		DisciplineVideoDisciplineID: m.DisciplineVideoDisciplineID,
		DisciplineVideoTitle:        m.DisciplineVideoTitle,
		DisciplineVideoStartTime:    m.DisciplineVideoStartTime,
		DisciplineVideoOrder:        m.DisciplineVideoOrder,
		DisciplineVideoCreatedAt:    m.DisciplineVideoCreatedAt,
		DisciplineVideoUpdatedAt:    m.DisciplineVideoUpdatedAt,
		Video:                       n.Process(m.DisciplineVideoURL, declaredSource(m.DisciplineVideoSource), deref(m.DisciplineVideoStartTime)),
	}
}

func FromVideoModels(list []model.DisciplineVideoModel, n *videourl.Normalizer) []VideoResponse {
	out := make([]VideoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromVideoModel(m, n))
	}
	return out
}

func ToVideoRef(m model.DisciplineVideoModel) completeness.VideoRef {
	return completeness.VideoRef{
		URL:            m.DisciplineVideoURL,
		DeclaredSource: deref(m.DisciplineVideoSource),
		StartTime:      deref(m.DisciplineVideoStartTime),
	}
}

// PreviewVideo runs the normalizer over a preview request.
func PreviewVideo(r VideoPreviewRequest, n *videourl.Normalizer) videourl.VideoInfo {
	return n.Process(r.URL, declaredSource(r.Source), deref(r.StartTime))
}

func declaredSource(s *string) videourl.Source {
	if s == nil {
		return ""
	}
	src, ok := videourl.ParseSource(*s)
	if !ok {
		return ""
	}
	return src
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func lowerPtr(s *string) *string {
	s = trimPtr(s)
	if s == nil {
		return nil
	}
	v := strings.ToLower(*s)
	return &v
}
