package handlers

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"
	"github.com/campuscore/college_erp_app/internal/platform/config"
	"github.com/campuscore/college_erp_app/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// gatewayRecordedBy marks ledger rows written by the payment gateway
// receiver rather than a staff session.
const gatewayRecordedBy = "gateway"

// webhookHandler ingests payment gateway notifications. It runs on its own
// listener, shares nothing with the staff session flow, and authenticates
// with the shared gateway secret instead of a JWT.
type webhookHandler struct {
	cfg        *config.Config
	feeService portssvc.FeeSvcFacade
}

func newWebhookHandler(cfg *config.Config, fs portssvc.FeeSvcFacade) *webhookHandler {
	return &webhookHandler{cfg: cfg, feeService: fs}
}

// RegisterWebhookRoutes registers the gateway notification route. Rate
// limited per IP since the endpoint is unauthenticated beyond the secret.
func RegisterWebhookRoutes(r *gin.Engine, cfg *config.Config, feeService portssvc.FeeSvcFacade) {
	h := newWebhookHandler(cfg, feeService)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.POST("/webhook", middleware.NewRateLimiter("60-M"), h.notify)
}

func (h *webhookHandler) notify(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed notification body"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(h.cfg.WebhookSecret)) != 1 {
		logger.Warn("Webhook secret mismatch")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid secret"})
		return
	}

	if req.StudentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student_id is required"})
		return
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = utils.GenGenericID("TXN")
	}

	fee, err := h.feeService.RecordPayment(c.Request.Context(), dto.RecordPaymentInput{
		StudentRef:    req.StudentID,
		Amount:        decimal.NewFromFloat(float64(req.Amount)),
		PaymentMode:   domain.ModeGateway,
		Purpose:       req.Purpose,
		TransactionID: transactionID,
		RecordedBy:    gatewayRecordedBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Webhook for unknown student", slog.String("student_id", req.StudentID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Unknown student_id"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record gateway payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Gateway payment recorded",
		slog.String("receipt_id", fee.ReceiptID),
		slog.String("transaction_id", fee.TransactionID))
	c.JSON(http.StatusOK, dto.WebhookResponse{Status: "ok", ReceiptID: fee.ReceiptID})
}
