package dto

import (
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// CreateCaseworkerRequest defines the data needed to create a caseworker.
type CreateCaseworkerRequest struct {
	OrgID    string `json:"orgID" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,cwrole"`
}

// CaseworkerLoginRequest defines the caseworker credential payload.
type CaseworkerLoginRequest struct {
	OrgID    string `json:"orgID" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CaseworkerResponse is the API representation of a caseworker. The password
// hash is never exposed.
type CaseworkerResponse struct {
	CaseworkerID string    `json:"caseworkerID"`
	OrgID        string    `json:"orgID"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCaseworkerResponse converts a domain.Caseworker to its response DTO.
func ToCaseworkerResponse(cw *domain.Caseworker) CaseworkerResponse {
	return CaseworkerResponse{
		CaseworkerID: cw.CaseworkerID,
		OrgID:        cw.OrgID,
		Email:        cw.Email,
		Name:         cw.Name,
		Role:         string(cw.Role),
		IsActive:     cw.IsActive,
		CreatedAt:    cw.CreatedAt,
	}
}

// LoginResponse carries the issued token and the authenticated caseworker.
type LoginResponse struct {
	Token      string             `json:"token"`
	Caseworker CaseworkerResponse `json:"caseworker"`
}
