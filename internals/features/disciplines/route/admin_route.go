// file: internals/features/disciplines/route/admin_route.go
package route

import (
	dCtrl "edupolo_backend/internals/features/disciplines/controller"
	"edupolo_backend/internals/features/disciplines/service"
	"edupolo_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DisciplineAdminRoutes mounts under /api/a (JWT + admin guard already applied).
func DisciplineAdminRoutes(r fiber.Router, db *gorm.DB, svc *service.Service) {
	disc := dCtrl.NewDisciplinesController(db, svc)
	videos := dCtrl.NewDisciplineVideosController(svc)
	ebooks := dCtrl.NewDisciplineEbooksController(svc)
	questions := dCtrl.NewDisciplineQuestionsController(svc)
	content := dCtrl.NewDisciplineContentController(svc)

	// =====================
	// Disciplines
	// =====================
	g := r.Group("/disciplines")
	g.Post("/", disc.Create)
	g.Get("/", disc.List)
	g.Get("/:id", disc.GetByID)
	g.Patch("/:id", disc.Update)
	g.Delete("/:id", disc.Delete) // soft delete

	g.Get("/:id/content", content.Summary)
	g.Get("/:id/completeness", content.Completeness)

	// =====================
	// Videos (max 10 per discipline)
	// =====================
	g.Get("/:id/videos", videos.List)
	g.Post("/:id/videos", videos.Create)
	g.Patch("/:id/videos/:video_id", videos.Update)
	g.Delete("/:id/videos/:video_id", videos.Delete)

	// =====================
	// E-books (static / interactive)
	// =====================
	g.Put("/:id/ebooks/static", ebooks.UpsertStatic)
	g.Put("/:id/ebooks/interactive", ebooks.UpsertInteractive)
	g.Delete("/:id/ebooks/:kind", ebooks.Delete)

	// =====================
	// Questions (simulado / avaliacao_final)
	// =====================
	g.Post("/:id/questions", questions.Create)
	g.Get("/:id/questions", questions.List) // ?exam_kind=
	g.Delete("/:id/questions/:question_id", questions.Delete)

	// form helper
	r.Post("/videos/preview", middlewares.PreviewRateLimiter(), videos.Preview)
}
