package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// caseworkerHandler handles HTTP requests related to caseworkers.
type caseworkerHandler struct {
	caseworkerService portssvc.CaseworkerSvcFacade
}

func newCaseworkerHandler(cs portssvc.CaseworkerSvcFacade) *caseworkerHandler {
	return &caseworkerHandler{caseworkerService: cs}
}

// registerCaseworkerRoutes registers caseworker management routes. All of
// them require an authenticated caseworker.
func registerCaseworkerRoutes(rg *gin.RouterGroup, caseworkerService portssvc.CaseworkerSvcFacade) {
	h := newCaseworkerHandler(caseworkerService)

	caseworkers := rg.Group("/caseworkers")
	{
		caseworkers.POST("", h.createCaseworker)
		caseworkers.GET("/:caseworkerID", h.getCaseworker)
	}
	rg.GET("/organizations/:orgID/caseworkers", h.listCaseworkersByOrg)
}

func (h *caseworkerHandler) createCaseworker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCaseworkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorID, _ := middleware.GetCaseworkerIDFromContext(c)
	logger = logger.With(slog.String("creator_caseworker_id", creatorID))

	cw, err := h.caseworkerService.CreateCaseworker(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create caseworker", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Caseworker created", slog.String("caseworker_id", cw.CaseworkerID))
	c.JSON(http.StatusCreated, dto.ToCaseworkerResponse(cw))
}

func (h *caseworkerHandler) getCaseworker(c *gin.Context) {
	cw, err := h.caseworkerService.GetCaseworkerByID(c.Request.Context(), c.Param("caseworkerID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCaseworkerResponse(cw))
}

func (h *caseworkerHandler) listCaseworkersByOrg(c *gin.Context) {
	cws, err := h.caseworkerService.ListCaseworkersByOrg(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.CaseworkerResponse, len(cws))
	for i := range cws {
		out[i] = dto.ToCaseworkerResponse(&cws[i])
	}
	c.JSON(http.StatusOK, out)
}
