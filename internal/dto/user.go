package dto

import (
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to create an end user. OrgID nil
// means a free-tier user; PIN and DeviceID support free-tier device auth.
type CreateUserRequest struct {
	OrgID        *string `json:"orgID"`
	CaseworkerID *string `json:"caseworkerID"`
	Name         string  `json:"name"`
	PIN          *string `json:"pin" binding:"omitempty,len=4,numeric"`
	DeviceID     *string `json:"deviceID"`
}

// UpdateUserRequest defines the data allowed for updating a user.
type UpdateUserRequest struct {
	Name         *string `json:"name"`
	CaseworkerID *string `json:"caseworkerID"`
}

// DeviceLoginRequest identifies a free-tier device user.
type DeviceLoginRequest struct {
	DeviceID string  `json:"deviceID" binding:"required"`
	PIN      *string `json:"pin"`
}

// UserResponse is the API representation of a user. The PIN hash is never
// exposed.
type UserResponse struct {
	UserID       string    `json:"userID"`
	OrgID        *string   `json:"orgID"`
	CaseworkerID *string   `json:"caseworkerID"`
	Name         string    `json:"name"`
	DeviceID     *string   `json:"deviceID"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to its response DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		OrgID:        user.OrgID,
		CaseworkerID: user.CaseworkerID,
		Name:         user.Name,
		DeviceID:     user.DeviceID,
		CreatedAt:    user.CreatedAt,
	}
}
