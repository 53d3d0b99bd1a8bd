// file: internals/features/disciplines/controller/discipline_videos_controller.go
package controller

import (
	"edupolo_backend/internals/features/disciplines/dto"
	"edupolo_backend/internals/features/disciplines/service"
	helper "edupolo_backend/internals/helpers"
	"edupolo_backend/internals/logger"

	"github.com/gofiber/fiber/v2"
)

type DisciplineVideosController struct {
	Svc *service.Service
}

func NewDisciplineVideosController(svc *service.Service) *DisciplineVideosController {
	return &DisciplineVideosController{Svc: svc}
}

// POST /api/a/disciplines/:id/videos
func (ctrl *DisciplineVideosController) Create(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.CreateVideoRequest
	if ok, err := bindBody(c, &req, req.Normalize, req.FieldErrors); !ok {
		return err
	}

	m := req.ToModel(disciplineID)
	if err := ctrl.Svc.AddVideo(c.UserContext(), &m); err != nil {
		return writeServiceError(c, "VideoCreate", err)
	}

	logger.WithRequest(c).
		WithField("discipline_id", disciplineID).
		WithField("video_id", m.DisciplineVideoID).
		Info("[VideoCreate] created")
	return helper.JsonCreated(c, "video created", dto.FromVideoModel(m, ctrl.Svc.Videos))
}

// GET /api/{a,u}/disciplines/:id/videos
func (ctrl *DisciplineVideosController) List(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	if _, err := ctrl.Svc.GetDiscipline(c.UserContext(), nil, disciplineID); err != nil {
		return writeServiceError(c, "VideoList", err)
	}
	list, err := ctrl.Svc.ListVideos(c.UserContext(), disciplineID)
	if err != nil {
		return writeServiceError(c, "VideoList", err)
	}
	return helper.JsonOK(c, "ok", dto.FromVideoModels(list, ctrl.Svc.Videos))
}

// PATCH /api/a/disciplines/:id/videos/:video_id
func (ctrl *DisciplineVideosController) Update(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	videoID, err := parseUUIDParam(c, "video_id")
	if err != nil {
		return err
	}
	var req dto.UpdateVideoRequest
	if ok, err := bindBody(c, &req, req.Normalize, req.FieldErrors); !ok {
		return err
	}

	m, err := ctrl.Svc.GetVideo(c.UserContext(), disciplineID, videoID)
	if err != nil {
		return writeServiceError(c, "VideoUpdate", err)
	}
	req.Apply(m)
	if err := ctrl.Svc.SaveVideo(c.UserContext(), m); err != nil {
		return writeServiceError(c, "VideoUpdate", err)
	}
	return helper.JsonUpdated(c, "video updated", dto.FromVideoModel(*m, ctrl.Svc.Videos))
}

// DELETE /api/a/disciplines/:id/videos/:video_id
func (ctrl *DisciplineVideosController) Delete(c *fiber.Ctx) error {
	disciplineID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	videoID, err := parseUUIDParam(c, "video_id")
	if err != nil {
		return err
	}
	if err := ctrl.Svc.DeleteVideo(c.UserContext(), disciplineID, videoID); err != nil {
		return writeServiceError(c, "VideoDelete", err)
	}
	return helper.JsonDeleted(c, "video deleted", fiber.Map{"discipline_video_id": videoID})
}

// POST /api/a/videos/preview
// Normalizes a URL without touching the database.
func (ctrl *DisciplineVideosController) Preview(c *fiber.Ctx) error {
	var req dto.VideoPreviewRequest
	if ok, err := bindBody(c, &req, req.Normalize, req.FieldErrors); !ok {
		return err
	}
	return helper.JsonOK(c, "ok", dto.PreviewVideo(req, ctrl.Svc.Videos))
}
