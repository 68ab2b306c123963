package handlers

import (
	"net/http"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"

	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for monetary aggregation.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the aggregation routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/total", h.getTotal)
		reports.GET("/summary", h.getSummary)
	}
}

// getTotal returns the collected total for a scope within a timeframe.
// Unrecognized timeframe values fall back to all-time.
func (h *reportingHandler) getTotal(c *gin.Context) {
	timeframe := domain.Timeframe(c.DefaultQuery("timeframe", string(domain.TimeframeAllTime)))

	total, err := h.reportingService.TotalCollected(c.Request.Context(), scopeFromQuery(c), timeframe)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TotalResponse{
		Timeframe: string(timeframe),
		Total:     total,
	})
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	summary, err := h.reportingService.CollectionSummary(c.Request.Context(), scopeFromQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
