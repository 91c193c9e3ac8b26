package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// feeHandler handles fee ledger and receipt requests.
type feeHandler struct {
	feeService portssvc.FeeSvcFacade
}

func newFeeHandler(fs portssvc.FeeSvcFacade) *feeHandler {
	return &feeHandler{feeService: fs}
}

// registerFeeRoutes registers fee routes on the authenticated group.
func registerFeeRoutes(rg *gin.RouterGroup, feeService portssvc.FeeSvcFacade) {
	h := newFeeHandler(feeService)

	fees := rg.Group("/fees")
	{
		fees.POST("", h.recordPayment)
		fees.GET("/recent", h.listRecentFees)
		fees.GET("/:receiptID", h.getFee)
		fees.POST("/:receiptID/receipt", h.regenerateReceipt)
	}
	rg.GET("/students/:ref/fees", h.listStudentFees)
}

func (h *feeHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fee, err := h.feeService.RecordPayment(c.Request.Context(), dto.RecordPaymentInput{
		StudentRef:    req.StudentRef,
		Amount:        req.Amount,
		PaymentMode:   domain.PaymentMode(req.PaymentMode),
		Purpose:       req.Purpose,
		TransactionID: req.TransactionID,
		Notes:         req.Notes,
		RecordedBy:    middleware.GetUsernameFromCtx(c.Request.Context()),
		RenderReceipt: true,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, gin.H{"error": "Could not assign a unique receipt ID, retry the payment"})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	resp := dto.RecordPaymentResponse{Fee: dto.ToFeeResponse(fee)}
	if fee.InvoicePath == nil {
		resp.ReceiptWarning = "Payment recorded but the receipt document could not be generated; use the regenerate endpoint."
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *feeHandler) getFee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	fee, err := h.feeService.GetFeeByReceiptID(c.Request.Context(), receiptID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
			return
		}
		logger.Error("Failed to fetch fee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch fee"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeResponse(fee))
}

func (h *feeHandler) regenerateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptID := c.Param("receiptID")

	fee, err := h.feeService.RegenerateReceipt(c.Request.Context(), receiptID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		case errors.Is(err, apperrors.ErrRenderFailure):
			logger.Error("Receipt regeneration failed", slog.String("receipt_id", receiptID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt document"})
		default:
			logger.Error("Receipt regeneration failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to regenerate receipt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFeeResponse(fee))
}

func (h *feeHandler) listRecentFees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	fees, err := h.feeService.ListRecentFees(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list fees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list fees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fees": dto.ToFeeResponseSlice(fees)})
}

func (h *feeHandler) listStudentFees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("ref")

	fees, err := h.feeService.ListFeesByStudent(c.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Student not found"})
			return
		}
		logger.Error("Failed to list student fees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list student fees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"fees": dto.ToFeeResponseSlice(fees)})
}
