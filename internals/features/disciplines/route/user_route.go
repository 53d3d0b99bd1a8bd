// file: internals/features/disciplines/route/user_route.go
package route

import (
	dCtrl "edupolo_backend/internals/features/disciplines/controller"
	"edupolo_backend/internals/features/disciplines/service"

	"github.com/gofiber/fiber/v2"
)

// DisciplineUserRoutes mounts under /api/u for every authenticated role.
func DisciplineUserRoutes(r fiber.Router, svc *service.Service) {
	videos := dCtrl.NewDisciplineVideosController(svc)
	content := dCtrl.NewDisciplineContentController(svc)

	g := r.Group("/disciplines")
	g.Get("/:id/content", content.Summary)
	g.Get("/:id/completeness", content.Completeness)
	g.Get("/:id/videos", videos.List)
}
