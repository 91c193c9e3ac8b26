package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/dto"
	"github.com/campuscore/college_erp_app/internal/middleware"
	"github.com/campuscore/college_erp_app/internal/platform/config"
	"github.com/campuscore/college_erp_app/internal/utils"

	"github.com/gin-gonic/gin"
)

// authHandler handles login requests.
type authHandler struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

func newAuthHandler(cfg *config.Config, us portssvc.UserSvcFacade) *authHandler {
	return &authHandler{cfg: cfg, userService: us}
}

// registerAuthRoutes registers the public login route. Login is rate limited
// per IP to slow credential stuffing.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, userService portssvc.UserSvcFacade) {
	h := newAuthHandler(cfg, userService)
	r.POST("/auth/login", middleware.NewRateLimiter("10-M"), h.login)
}

func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		logger.Error("Login error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to authenticate"})
		return
	}

	token, err := utils.GenerateSessionToken(user.Username, string(user.Role), user.DisplayName,
		h.cfg.JWTSecret, h.cfg.JWTIssuer, h.cfg.JWTExpiryDuration)
	if err != nil {
		logger.Error("Token generation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	logger.Info("Login succeeded", slog.String("username", user.Username), slog.String("role", string(user.Role)))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:       token,
		Username:    user.Username,
		Role:        string(user.Role),
		DisplayName: user.DisplayName,
	})
}
