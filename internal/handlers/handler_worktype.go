package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// workTypeHandler handles HTTP requests related to work types.
type workTypeHandler struct {
	workTypeService portssvc.WorkTypeSvcFacade
}

func newWorkTypeHandler(ws portssvc.WorkTypeSvcFacade) *workTypeHandler {
	return &workTypeHandler{workTypeService: ws}
}

// registerWorkTypeRoutes registers all work type routes.
func registerWorkTypeRoutes(rg *gin.RouterGroup, workTypeService portssvc.WorkTypeSvcFacade) {
	h := newWorkTypeHandler(workTypeService)

	workTypes := rg.Group("/worktypes")
	{
		workTypes.POST("", h.createWorkType)
		workTypes.GET("", h.listWorkTypes)
		workTypes.GET("/:workTypeID", h.getWorkType)
		workTypes.PATCH("/:workTypeID", h.updateWorkType)
		workTypes.DELETE("/:workTypeID", h.deleteWorkType)
	}
}

func (h *workTypeHandler) createWorkType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateWorkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wt, err := h.workTypeService.CreateWorkType(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create work type", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkTypeResponse(wt))
}

// getWorkType returns the work type even when it has been soft-deleted, so
// historical transactions can still resolve their category.
func (h *workTypeHandler) getWorkType(c *gin.Context) {
	wt, err := h.workTypeService.GetWorkTypeByID(c.Request.Context(), c.Param("workTypeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkTypeResponse(wt))
}

// listWorkTypes returns active work types in the requested scope, in display
// order.
func (h *workTypeHandler) listWorkTypes(c *gin.Context) {
	wts, err := h.workTypeService.ListWorkTypesByScope(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkTypeResponse(wts))
}

func (h *workTypeHandler) updateWorkType(c *gin.Context) {
	var req dto.UpdateWorkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	wt, err := h.workTypeService.UpdateWorkType(c.Request.Context(), c.Param("workTypeID"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkTypeResponse(wt))
}

func (h *workTypeHandler) deleteWorkType(c *gin.Context) {
	if err := h.workTypeService.DeleteWorkType(c.Request.Context(), c.Param("workTypeID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
