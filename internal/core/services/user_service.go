package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/utils"
	"github.com/google/uuid"
)

// userService implements the user facade.
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	orgRepo  portsrepo.OrganizationReader
}

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepository, orgRepo portsrepo.OrganizationReader) portssvc.UserSvcFacade {
	return &userService{userRepo: repo, orgRepo: orgRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	if req.OrgID != nil {
		if _, err := s.orgRepo.FindOrganizationByID(ctx, *req.OrgID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewFieldError("orgID", "unknown organization")
			}
			return nil, fmt.Errorf("failed to verify organization: %w", err)
		}
	}

	if req.DeviceID != nil {
		if existing, err := s.userRepo.FindUserByDeviceID(ctx, *req.DeviceID); err == nil && existing != nil {
			return nil, fmt.Errorf("device already registered: %w", apperrors.ErrDuplicate)
		}
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		OrgID:        req.OrgID,
		CaseworkerID: req.CaseworkerID,
		Name:         req.Name,
		DeviceID:     req.DeviceID,
		CreatedAt:    time.Now(),
	}

	if req.PIN != nil {
		hash, err := utils.HashPIN(*req.PIN)
		if err != nil {
			return nil, fmt.Errorf("failed to hash PIN: %w", err)
		}
		user.PINHash = &hash
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user")
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.CaseworkerID != nil {
		user.CaseworkerID = req.CaseworkerID
	}

	if err := s.userRepo.SaveUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsersByScope(ctx context.Context, scope domain.Scope) ([]domain.User, error) {
	return s.userRepo.ListUsersByScope(ctx, scope)
}

func (s *userService) DeviceLogin(ctx context.Context, deviceID string, pin *string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByDeviceID(ctx, deviceID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}

	if user.PINHash != nil {
		if pin == nil || !utils.CheckPINHash(*pin, *user.PINHash) {
			// Same error as an unknown device so PINs cannot be probed.
			return nil, apperrors.ErrNotFound
		}
	}

	return user, nil
}
