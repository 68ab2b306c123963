package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// organizationHandler handles HTTP requests related to organizations.
type organizationHandler struct {
	orgService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{orgService: os}
}

// registerOrganizationRoutes registers organization onboarding on the public
// group and management on the authenticated group.
func registerOrganizationRoutes(public, admin *gin.RouterGroup, orgService portssvc.OrganizationSvcFacade) {
	h := newOrganizationHandler(orgService)

	public.POST("/organizations", h.createOrganization)
	// White-label lookup for device bootstrapping. Lives outside the
	// /organizations tree so the static segment cannot collide with :orgID.
	public.GET("/subdomains/:subdomain", h.getOrganizationBySubdomain)

	orgs := admin.Group("/organizations")
	{
		orgs.GET("", h.listOrganizations)
		orgs.GET("/:orgID", h.getOrganization)
		orgs.PATCH("/:orgID", h.updateOrganization)
		orgs.DELETE("/:orgID", h.deactivateOrganization)
	}
}

func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	org, err := h.orgService.CreateOrganization(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create organization", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	logger.Info("Organization created", slog.String("org_id", org.OrgID))
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *organizationHandler) getOrganization(c *gin.Context) {
	org, err := h.orgService.GetOrganizationByID(c.Request.Context(), c.Param("orgID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *organizationHandler) getOrganizationBySubdomain(c *gin.Context) {
	org, err := h.orgService.GetOrganizationBySubdomain(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *organizationHandler) listOrganizations(c *gin.Context) {
	orgs, err := h.orgService.ListOrganizations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.OrganizationResponse, len(orgs))
	for i := range orgs {
		out[i] = dto.ToOrganizationResponse(&orgs[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *organizationHandler) updateOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	org, err := h.orgService.UpdateOrganization(c.Request.Context(), c.Param("orgID"), req)
	if err != nil {
		logger.Error("Failed to update organization", slog.String("org_id", c.Param("orgID")), slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

func (h *organizationHandler) deactivateOrganization(c *gin.Context) {
	if err := h.orgService.DeactivateOrganization(c.Request.Context(), c.Param("orgID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
