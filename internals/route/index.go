// file: internals/route/index.go
package routes

import (
	"time"

	"edupolo_backend/internals/configs"
	"edupolo_backend/internals/constants"
	"edupolo_backend/internals/features/disciplines/completeness"
	disciplineRoute "edupolo_backend/internals/features/disciplines/route"
	disciplineService "edupolo_backend/internals/features/disciplines/service"
	"edupolo_backend/internals/features/disciplines/videourl"
	"edupolo_backend/internals/logger"
	authMiddleware "edupolo_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// NewDisciplineService wires the content service from config.
func NewDisciplineService(db *gorm.DB, cfg configs.AppConfig) *disciplineService.Service {
	policy := completeness.Policy{
		MinSimuladoQuestions:  cfg.MinSimuladoQuestions,
		MinFinalExamQuestions: cfg.MinFinalExamQuestions,
	}
	return disciplineService.New(db, policy, videourl.New(logger.GetAppLogger()), cfg.MaxVideosPerDiscipline)
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.AppConfig, ping Pinger) {
	startTime = time.Now()
	log := logger.GetAppLogger()

	BaseRoutes(app, ping)

	svc := NewDisciplineService(db, cfg)
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              cfg.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== PRIVATE (USER) =====================
	log.Info("[INFO] Setting up PRIVATE group...")
	user := app.Group("/api/u",
		jwt,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorMember("discipline content"), constants.AllRoles),
	)
	disciplineRoute.DisciplineUserRoutes(user, svc)

	// ===================== ADMIN =====================
	log.Info("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		jwt,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("discipline management"), constants.AdminOnly),
	)
	disciplineRoute.DisciplineAdminRoutes(admin, db, svc)

	log.Info("[INFO] Routes ready")
}
