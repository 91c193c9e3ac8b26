package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// examHandler handles marks entry requests.
type examHandler struct {
	examService portssvc.ExamSvcFacade
}

func newExamHandler(es portssvc.ExamSvcFacade) *examHandler {
	return &examHandler{examService: es}
}

// registerExamRoutes registers exam routes on the authenticated group.
func registerExamRoutes(rg *gin.RouterGroup, examService portssvc.ExamSvcFacade) {
	h := newExamHandler(examService)

	exams := rg.Group("/exams")
	{
		exams.POST("", h.saveMarks)
		exams.GET("/recent", h.listRecentExams)
	}
}

func (h *examHandler) saveMarks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveMarksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	exam, err := h.examService.SaveMarks(c.Request.Context(), req, middleware.GetUsernameFromCtx(c.Request.Context()))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to save marks", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save marks"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExamResponse(exam))
}

func (h *examHandler) listRecentExams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))

	exams, err := h.examService.ListRecentExams(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list exams", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"exams": dto.ToExamResponseSlice(exams)})
}
