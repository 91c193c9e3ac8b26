package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// studentHandler handles admission and student lookup requests.
type studentHandler struct {
	studentService portssvc.StudentSvcFacade
}

func newStudentHandler(ss portssvc.StudentSvcFacade) *studentHandler {
	return &studentHandler{studentService: ss}
}

// registerStudentRoutes registers student routes on the authenticated group.
func registerStudentRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade) {
	h := newStudentHandler(studentService)

	students := rg.Group("/students")
	{
		students.POST("", h.registerStudent)
		students.GET("", h.searchStudents)
		students.GET("/:ref", h.getStudent)
	}
}

func (h *studentHandler) registerStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	student, admission, err := h.studentService.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Could not assign unique identifiers, retry the admission"})
		default:
			logger.Error("Failed to register student", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register student"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterStudentResponse{
		Student:     dto.ToStudentResponse(student),
		AdmissionID: admission.AdmissionID,
		Status:      string(admission.Status),
	})
}

func (h *studentHandler) getStudent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("ref")

	student, err := h.studentService.GetStudentByRef(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		logger.Error("Failed to fetch student", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch student"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

func (h *studentHandler) searchStudents(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	query := c.Query("q")

	students, err := h.studentService.SearchStudents(c.Request.Context(), query)
	if err != nil {
		logger.Error("Student search failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search students"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": dto.ToStudentResponseSlice(students)})
}
