package dto

import (
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// CreateWorkTypeRequest defines the data needed to create a work type.
// Exactly one of UserID/OrgID should be set; the service rejects neither/both.
type CreateWorkTypeRequest struct {
	UserID    *string `json:"userID"`
	OrgID     *string `json:"orgID"`
	Name      string  `json:"name" binding:"required"`
	Icon      *string `json:"icon"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sortOrder"`
}

// UpdateWorkTypeRequest defines the data allowed for updating a work type.
type UpdateWorkTypeRequest struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	Color     *string `json:"color"`
	SortOrder *int    `json:"sortOrder"`
}

// WorkTypeResponse is the API representation of a work type.
type WorkTypeResponse struct {
	WorkTypeID string    `json:"workTypeID"`
	UserID     *string   `json:"userID"`
	OrgID      *string   `json:"orgID"`
	Name       string    `json:"name"`
	Icon       *string   `json:"icon"`
	Color      *string   `json:"color"`
	IsDefault  bool      `json:"isDefault"`
	SortOrder  int       `json:"sortOrder"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToWorkTypeResponse converts a domain.WorkType to its response DTO.
func ToWorkTypeResponse(wt *domain.WorkType) WorkTypeResponse {
	return WorkTypeResponse{
		WorkTypeID: wt.WorkTypeID,
		UserID:     wt.UserID,
		OrgID:      wt.OrgID,
		Name:       wt.Name,
		Icon:       wt.Icon,
		Color:      wt.Color,
		IsDefault:  wt.IsDefault,
		SortOrder:  wt.SortOrder,
		IsActive:   wt.IsActive,
		CreatedAt:  wt.CreatedAt,
	}
}

// ToListWorkTypeResponse converts a slice of domain.WorkType to response DTOs.
func ToListWorkTypeResponse(wts []domain.WorkType) []WorkTypeResponse {
	out := make([]WorkTypeResponse, len(wts))
	for i := range wts {
		out[i] = ToWorkTypeResponse(&wts[i])
	}
	return out
}
