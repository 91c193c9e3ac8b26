package handlers

import (
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/middleware"
	"github.com/campuscore/college_erp_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the staff application routes. The gateway webhook is
// not registered here; it lives on its own listener, see RegisterWebhookRoutes.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerStudentRoutes(v1, services.Student)
	registerFeeRoutes(v1, services.Fee)
	registerHostelRoutes(v1, services.Hostel)
	registerExamRoutes(v1, services.Exam)
	registerDashboardRoutes(v1, services.Student, services.Fee)
	registerAdminRoutes(v1, services.User, services.Backup)
}
