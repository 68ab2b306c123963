package handlers

import (
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/middleware"
	"github.com/fieldcollect/field_collections_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
//
// Collection routes (work types, sessions, transactions, reports, users) are
// public so free-tier devices can use them without an account. Organization
// and caseworker management sits behind the caseworker JWT middleware.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", GetHome)

	registerAuthRoutes(r, cfg, services)

	v1 := r.Group("/api/v1")
	admin := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerOrganizationRoutes(v1, admin, services.Organization)
	registerCaseworkerRoutes(admin, services.Caseworker)
	registerUserRoutes(v1, services.User, services.Seed)
	registerWorkTypeRoutes(v1, services.WorkType)
	registerSessionRoutes(v1, services.Session)
	registerTransactionRoutes(v1, services.Transaction)
	registerReportingRoutes(v1, services.Reporting)
}
