package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to end users.
type userHandler struct {
	userService portssvc.UserSvcFacade
	seedService portssvc.SeedSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade, ss portssvc.SeedSvcFacade) *userHandler {
	return &userHandler{userService: us, seedService: ss}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, seedService portssvc.SeedSvcFacade) {
	h := newUserHandler(userService, seedService)

	users := rg.Group("/users")
	{
		users.POST("", h.createUser)
		users.GET("", h.listUsers)
		users.GET("/:userID", h.getUser)
		users.PATCH("/:userID", h.updateUser)
	}
}

// createUser creates an end user and seeds its default work types so a fresh
// user can start collecting immediately.
func (h *userHandler) createUser(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create user", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	seedErr := func() error {
		if user.OrgID != nil {
			return h.seedService.EnsureDefaultWorkTypes(c.Request.Context(), nil, user.OrgID)
		}
		return h.seedService.EnsureDefaultWorkTypes(c.Request.Context(), &user.UserID, nil)
	}()
	if seedErr != nil {
		logger.Warn("Failed to seed default work types", slog.String("user_id", user.UserID), slog.String("error", seedErr.Error()))
	}

	logger.Info("User created", slog.String("user_id", user.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("userID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) listUsers(c *gin.Context) {
	users, err := h.userService.ListUsersByScope(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = dto.ToUserResponse(&users[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("userID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
