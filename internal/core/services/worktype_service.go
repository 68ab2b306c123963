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

// workTypeService implements the work type facade.
type workTypeService struct {
	BaseService
	workTypeRepo portsrepo.WorkTypeRepository
}

// NewWorkTypeService creates a new work type service.
func NewWorkTypeService(repo portsrepo.WorkTypeRepository) portssvc.WorkTypeSvcFacade {
	return &workTypeService{workTypeRepo: repo}
}

var _ portssvc.WorkTypeSvcFacade = (*workTypeService)(nil)

func (s *workTypeService) CreateWorkType(ctx context.Context, req dto.CreateWorkTypeRequest) (*domain.WorkType, error) {
	if req.Name == "" {
		return nil, apperrors.NewFieldError("name", "must not be empty")
	}
	// Exactly one owner scope: a work type belongs to a user or to an org.
	if (req.UserID == nil) == (req.OrgID == nil) {
		return nil, apperrors.NewFieldError("userID", "exactly one of userID and orgID must be set")
	}

	wt := domain.WorkType{
		WorkTypeID: uuid.NewString(),
		UserID:     req.UserID,
		OrgID:      req.OrgID,
		Name:       req.Name,
		Icon:       req.Icon,
		Color:      req.Color,
		IsDefault:  false,
		SortOrder:  0,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if req.SortOrder != nil {
		wt.SortOrder = *req.SortOrder
	}

	if err := s.workTypeRepo.SaveWorkType(ctx, wt); err != nil {
		s.LogError(ctx, err, "Failed to save work type")
		return nil, fmt.Errorf("failed to create work type: %w", err)
	}

	s.LogInfo(ctx, "Work type created", slog.String("work_type_id", wt.WorkTypeID), slog.String("name", wt.Name))
	return &wt, nil
}

func (s *workTypeService) GetWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error) {
	return s.workTypeRepo.FindWorkTypeByID(ctx, workTypeID)
}

func (s *workTypeService) ListWorkTypesByScope(ctx context.Context, scope domain.Scope) ([]domain.WorkType, error) {
	return s.workTypeRepo.ListWorkTypesByScope(ctx, scope)
}

func (s *workTypeService) UpdateWorkType(ctx context.Context, workTypeID string, req dto.UpdateWorkTypeRequest) (*domain.WorkType, error) {
	wt, err := s.workTypeRepo.FindWorkTypeByID(ctx, workTypeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperrors.NewFieldError("name", "must not be empty")
		}
		wt.Name = *req.Name
	}
	if req.Icon != nil {
		wt.Icon = req.Icon
	}
	if req.Color != nil {
		wt.Color = req.Color
	}
	if req.SortOrder != nil {
		wt.SortOrder = *req.SortOrder
	}

	if err := s.workTypeRepo.SaveWorkType(ctx, *wt); err != nil {
		s.LogError(ctx, err, "Failed to update work type", slog.String("work_type_id", workTypeID))
		return nil, fmt.Errorf("failed to update work type: %w", err)
	}
	return wt, nil
}

func (s *workTypeService) DeleteWorkType(ctx context.Context, workTypeID string) error {
	if err := s.workTypeRepo.MarkWorkTypeInactive(ctx, workTypeID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Work type soft-deleted", slog.String("work_type_id", workTypeID))
	return nil
}
