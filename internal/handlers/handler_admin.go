package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// adminHandler handles user provisioning and backup export. All routes in
// this group require the admin role.
type adminHandler struct {
	userService   portssvc.UserSvcFacade
	backupService portssvc.BackupSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade, bs portssvc.BackupSvcFacade) *adminHandler {
	return &adminHandler{userService: us, backupService: bs}
}

// registerAdminRoutes registers admin-only routes on the authenticated group.
func registerAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, backupService portssvc.BackupSvcFacade) {
	h := newAdminHandler(userService, backupService)

	admin := rg.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/users", h.createUser)
		admin.POST("/backup", h.exportBackup)
	}
}

func (h *adminHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		default:
			logger.Error("Failed to create user", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *adminHandler) exportBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	files, err := h.backupService.ExportAll(c.Request.Context())
	if err != nil {
		logger.Error("Backup export failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Backup export failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}
