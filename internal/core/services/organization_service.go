package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/google/uuid"
)

// organizationService implements the organization facade.
type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepository
}

// NewOrganizationService creates a new organization service.
func NewOrganizationService(repo portsrepo.OrganizationRepository) portssvc.OrganizationSvcFacade {
	return &organizationService{orgRepo: repo}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest) (*domain.Organization, error) {
	if req.Name == "" {
		return nil, apperrors.NewFieldError("name", "must not be empty")
	}
	tier := domain.OrganizationTier(req.Tier)
	if !tier.Valid() {
		return nil, apperrors.NewFieldError("tier", "unknown organization tier")
	}

	if req.Subdomain != nil {
		existing, err := s.orgRepo.FindOrganizationBySubdomain(ctx, *req.Subdomain)
		if err == nil && existing != nil {
			return nil, fmt.Errorf("subdomain %q already claimed: %w", *req.Subdomain, apperrors.ErrDuplicate)
		}
	}

	org := domain.Organization{
		OrgID:     uuid.NewString(),
		Name:      req.Name,
		Tier:      tier,
		Features:  req.Features,
		Subdomain: req.Subdomain,
		Branding:  req.Branding,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	if org.Features == nil {
		org.Features = map[string]bool{}
	}
	if org.Branding == nil {
		org.Branding = map[string]string{}
	}

	if err := s.orgRepo.SaveOrganization(ctx, org); err != nil {
		s.LogError(ctx, err, "Failed to save organization", slog.String("org_id", org.OrgID))
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.LogInfo(ctx, "Organization onboarded", slog.String("org_id", org.OrgID), slog.String("tier", string(org.Tier)))
	return &org, nil
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	return s.orgRepo.FindOrganizationByID(ctx, orgID)
}

func (s *organizationService) GetOrganizationBySubdomain(ctx context.Context, subdomain string) (*domain.Organization, error) {
	return s.orgRepo.FindOrganizationBySubdomain(ctx, subdomain)
}

func (s *organizationService) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	return s.orgRepo.ListOrganizations(ctx)
}

func (s *organizationService) UpdateOrganization(ctx context.Context, orgID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error) {
	org, err := s.orgRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewFieldError("name", "must not be empty")
		}
		org.Name = *req.Name
	}
	if req.Tier != nil {
		tier := domain.OrganizationTier(*req.Tier)
		if !tier.Valid() {
			return nil, apperrors.NewFieldError("tier", "unknown organization tier")
		}
		org.Tier = tier
	}
	if req.Features != nil {
		org.Features = *req.Features
	}
	if req.Subdomain != nil {
		org.Subdomain = req.Subdomain
	}
	if req.Branding != nil {
		org.Branding = *req.Branding
	}

	if err := s.orgRepo.SaveOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to update organization", slog.String("org_id", orgID))
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) DeactivateOrganization(ctx context.Context, orgID string) error {
	org, err := s.orgRepo.FindOrganizationByID(ctx, orgID)
	if err != nil {
		return err
	}

	org.IsActive = false
	if err := s.orgRepo.SaveOrganization(ctx, *org); err != nil {
		s.LogError(ctx, err, "Failed to deactivate organization", slog.String("org_id", orgID))
		return fmt.Errorf("failed to deactivate organization: %w", err)
	}

	s.LogInfo(ctx, "Organization deactivated", slog.String("org_id", orgID))
	return nil
}
