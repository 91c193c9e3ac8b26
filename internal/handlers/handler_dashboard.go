package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the headline counters.
type dashboardHandler struct {
	studentService portssvc.StudentSvcFacade
	feeService     portssvc.FeeSvcFacade
}

func newDashboardHandler(ss portssvc.StudentSvcFacade, fs portssvc.FeeSvcFacade) *dashboardHandler {
	return &dashboardHandler{studentService: ss, feeService: fs}
}

// registerDashboardRoutes registers the dashboard route on the authenticated group.
func registerDashboardRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade, feeService portssvc.FeeSvcFacade) {
	h := newDashboardHandler(studentService, feeService)
	rg.GET("/dashboard", h.dashboard)
}

func (h *dashboardHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	total, err := h.studentService.CountStudents(c.Request.Context())
	if err != nil {
		logger.Error("Failed to count students", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}
	collected, err := h.feeService.TotalCollected(c.Request.Context())
	if err != nil {
		logger.Error("Failed to total fees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.DashboardResponse{
		TotalStudents:      total,
		TotalFeesCollected: collected,
	})
}
