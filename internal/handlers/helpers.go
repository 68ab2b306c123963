package handlers

import (
	"errors"
	"net/http"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// scopeFromQuery builds the tenant scope filter from the userId/orgId query
// parameters. An absent parameter leaves the dimension unfiltered; a present
// but empty value, or the literal "null", is the free-tier sentinel.
func scopeFromQuery(c *gin.Context) domain.Scope {
	scope := domain.Scope{}
	if raw, ok := c.GetQuery("userId"); ok {
		if raw == "" || raw == "null" {
			scope.User = domain.DimFreeTier()
		} else {
			scope.User = domain.DimID(raw)
		}
	}
	if raw, ok := c.GetQuery("orgId"); ok {
		if raw == "" || raw == "null" {
			scope.Org = domain.DimFreeTier()
		} else {
			scope.Org = domain.DimID(raw)
		}
	}
	return scope
}

// respondError translates engine errors into HTTP responses. Expected
// conditions map to 4xx; anything else is a 500.
func respondError(c *gin.Context, err error) {
	var fieldErr *apperrors.FieldError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &fieldErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Reason, "field": fieldErr.Field})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &appErr):
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
