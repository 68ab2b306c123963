package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/utils"
	"github.com/google/uuid"
)

// caseworkerService implements the caseworker facade.
type caseworkerService struct {
	BaseService
	caseworkerRepo portsrepo.CaseworkerRepository
	orgRepo        portsrepo.OrganizationReader
}

// NewCaseworkerService creates a new caseworker service.
func NewCaseworkerService(repo portsrepo.CaseworkerRepository, orgRepo portsrepo.OrganizationReader) portssvc.CaseworkerSvcFacade {
	return &caseworkerService{caseworkerRepo: repo, orgRepo: orgRepo}
}

var _ portssvc.CaseworkerSvcFacade = (*caseworkerService)(nil)

func (s *caseworkerService) CreateCaseworker(ctx context.Context, req dto.CreateCaseworkerRequest) (*domain.Caseworker, error) {
	if req.OrgID == "" {
		return nil, apperrors.NewFieldError("orgID", "must not be empty")
	}
	role := domain.CaseworkerRole(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewFieldError("role", "unknown caseworker role")
	}

	// The owning organization must exist; a caseworker cannot stand alone.
	if _, err := s.orgRepo.FindOrganizationByID(ctx, req.OrgID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("orgID", "unknown organization")
		}
		return nil, fmt.Errorf("failed to verify organization: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.caseworkerRepo.FindCaseworkerByEmail(ctx, req.OrgID, email); err == nil && existing != nil {
		return nil, fmt.Errorf("caseworker email already registered: %w", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	cw := domain.Caseworker{
		CaseworkerID: uuid.NewString(),
		OrgID:        req.OrgID,
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	if err := s.caseworkerRepo.SaveCaseworker(ctx, cw); err != nil {
		s.LogError(ctx, err, "Failed to save caseworker", slog.String("org_id", req.OrgID))
		return nil, fmt.Errorf("failed to create caseworker: %w", err)
	}

	s.LogInfo(ctx, "Caseworker created", slog.String("caseworker_id", cw.CaseworkerID), slog.String("org_id", cw.OrgID))
	return &cw, nil
}

func (s *caseworkerService) GetCaseworkerByID(ctx context.Context, caseworkerID string) (*domain.Caseworker, error) {
	return s.caseworkerRepo.FindCaseworkerByID(ctx, caseworkerID)
}

func (s *caseworkerService) ListCaseworkersByOrg(ctx context.Context, orgID string) ([]domain.Caseworker, error) {
	return s.caseworkerRepo.ListCaseworkersByOrg(ctx, orgID)
}

func (s *caseworkerService) Authenticate(ctx context.Context, orgID, email, password string) (*domain.Caseworker, error) {
	cw, err := s.caseworkerRepo.FindCaseworkerByEmail(ctx, orgID, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	if !cw.IsActive || !utils.CheckPasswordHash(password, cw.PasswordHash) {
		// Same error as unknown email so credentials cannot be enumerated.
		return nil, apperrors.ErrNotFound
	}
	return cw, nil
}
