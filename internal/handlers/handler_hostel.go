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

// hostelHandler handles hostel allocation requests.
type hostelHandler struct {
	hostelService portssvc.HostelSvcFacade
}

func newHostelHandler(hs portssvc.HostelSvcFacade) *hostelHandler {
	return &hostelHandler{hostelService: hs}
}

// registerHostelRoutes registers hostel routes on the authenticated group.
func registerHostelRoutes(rg *gin.RouterGroup, hostelService portssvc.HostelSvcFacade) {
	h := newHostelHandler(hostelService)

	hostel := rg.Group("/hostel")
	{
		hostel.POST("/allocations", h.allocate)
		hostel.GET("/allocations", h.listAllocations)
	}
}

func (h *hostelHandler) allocate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AllocateHostelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	alloc, err := h.hostelService.AllocateHostel(c.Request.Context(), req, middleware.GetUsernameFromCtx(c.Request.Context()))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to allocate hostel", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to allocate hostel"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToHostelAllocationResponse(alloc))
}

func (h *hostelHandler) listAllocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	allocations, err := h.hostelService.ListAllocations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list allocations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list allocations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allocations": dto.ToHostelAllocationResponseSlice(allocations)})
}
