package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/middleware"
	"github.com/fieldcollect/field_collections_app/internal/utils"
	"github.com/fieldcollect/field_collections_app/pkg/config"

	"github.com/gin-gonic/gin"
)

// authHandler handles caseworker and device authentication.
type authHandler struct {
	caseworkerService portssvc.CaseworkerSvcFacade
	userService       portssvc.UserSvcFacade
	seedService       portssvc.SeedSvcFacade
	jwtSecret         string
	jwtDuration       time.Duration
	jwtIssuer         string
}

func newAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *authHandler {
	return &authHandler{
		caseworkerService: services.Caseworker,
		userService:       services.User,
		seedService:       services.Seed,
		jwtSecret:         cfg.JWTSecret,
		jwtDuration:       cfg.JWTExpiryDuration,
		jwtIssuer:         cfg.JWTIssuer,
	}
}

// registerAuthRoutes sets up the public authentication routes, rate limited
// per IP.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services, cfg)

	rate, _ := limiter.NewRateFromFormatted(cfg.AuthRateLimit)
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := middleware.RateLimit(ipLimiter)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/device", limitMiddleware, h.deviceLogin)
	}
}

// login authenticates a caseworker by organization, email and password and
// returns a signed JWT.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CaseworkerLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	cw, err := h.caseworkerService.Authenticate(c.Request.Context(), req.OrgID, req.Email, req.Password)
	if err != nil {
		// Always the same answer for bad email and bad password.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(cw.CaseworkerID, h.jwtSecret, h.jwtDuration, h.jwtIssuer)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:      token,
		Caseworker: dto.ToCaseworkerResponse(cw),
	})
}

// deviceLogin resolves a free-tier user by device ID and optional PIN. Default
// work types are seeded on every successful login; the call is idempotent.
func (h *authHandler) deviceLogin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DeviceLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.DeviceLogin(c.Request.Context(), req.DeviceID, req.PIN)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid device or PIN"})
		return
	}

	if err := h.ensureDefaults(c, user.UserID, user.OrgID); err != nil {
		// Seeding failure should not block the login itself.
		logger.Warn("Failed to seed default work types", slog.String("user_id", user.UserID), slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *authHandler) ensureDefaults(c *gin.Context, userID string, orgID *string) error {
	if orgID != nil {
		return h.seedService.EnsureDefaultWorkTypes(c.Request.Context(), nil, orgID)
	}
	return h.seedService.EnsureDefaultWorkTypes(c.Request.Context(), &userID, nil)
}
