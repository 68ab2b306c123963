package dto

import (
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// StartSessionRequest defines the data needed to start a collection session.
// StartTime, EndTime and the active flag are server-owned.
type StartSessionRequest struct {
	UserID     *string `json:"userID"`
	OrgID      *string `json:"orgID"`
	WorkTypeID *string `json:"workTypeID"`
	Location   string  `json:"location" binding:"required"`
	IsTest     bool    `json:"isTest"`
}

// SessionResponse is the API representation of a session.
type SessionResponse struct {
	SessionID  string     `json:"sessionID"`
	UserID     *string    `json:"userID"`
	OrgID      *string    `json:"orgID"`
	WorkTypeID *string    `json:"workTypeID"`
	Location   string     `json:"location"`
	StartTime  time.Time  `json:"startTime"`
	EndTime    *time.Time `json:"endTime"`
	IsTest     bool       `json:"isTest"`
	IsActive   bool       `json:"isActive"`
}

// ToSessionResponse converts a domain.Session to its response DTO.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		SessionID:  s.SessionID,
		UserID:     s.UserID,
		OrgID:      s.OrgID,
		WorkTypeID: s.WorkTypeID,
		Location:   s.Location,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
		IsTest:     s.IsTest,
		IsActive:   s.IsActive,
	}
}

// ToListSessionResponse converts a slice of domain.Session to response DTOs.
func ToListSessionResponse(sessions []domain.Session) []SessionResponse {
	out := make([]SessionResponse, len(sessions))
	for i := range sessions {
		out[i] = ToSessionResponse(&sessions[i])
	}
	return out
}
