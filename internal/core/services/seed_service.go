package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// workTypeTemplate is one default work type tuple.
type workTypeTemplate struct {
	name      string
	icon      string
	color     string
	sortOrder int
}

// defaultWorkTypes is the fixed ordered template list seeded for every
// first-time scope.
var defaultWorkTypes = []workTypeTemplate{
	{name: "Donations", icon: "hand-coins", color: "#2E7D32", sortOrder: 0},
	{name: "Sales", icon: "shopping-bag", color: "#1565C0", sortOrder: 1},
	{name: "Tips", icon: "piggy-bank", color: "#F9A825", sortOrder: 2},
	{name: "Other", icon: "circle-dots", color: "#6D4C41", sortOrder: 3},
}

// seedService implements the default work type seeding utility. It layers on
// top of the work type repository and is safe to call on every login.
type seedService struct {
	BaseService
	workTypeRepo portsrepo.WorkTypeRepository
}

// NewSeedService creates a new seed service.
func NewSeedService(repo portsrepo.WorkTypeRepository) portssvc.SeedSvcFacade {
	return &seedService{workTypeRepo: repo}
}

var _ portssvc.SeedSvcFacade = (*seedService)(nil)

func (s *seedService) EnsureDefaultWorkTypes(ctx context.Context, userID, orgID *string) error {
	scope := domain.ScopeForOwner(userID, orgID)

	existing, err := s.workTypeRepo.ListWorkTypesByScope(ctx, scope)
	if err != nil {
		return fmt.Errorf("failed to check existing work types: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, tmpl := range defaultWorkTypes {
		icon := tmpl.icon
		color := tmpl.color
		wt := domain.WorkType{
			WorkTypeID: uuid.NewString(),
			UserID:     userID,
			OrgID:      orgID,
			Name:       tmpl.name,
			Icon:       &icon,
			Color:      &color,
			IsDefault:  true,
			SortOrder:  tmpl.sortOrder,
			IsActive:   true,
			CreatedAt:  time.Now(),
		}
		if err := s.workTypeRepo.SaveWorkType(ctx, wt); err != nil {
			return fmt.Errorf("failed to seed work type %q: %w", tmpl.name, err)
		}
	}

	s.LogInfo(ctx, "Seeded default work types", slog.Int("count", len(defaultWorkTypes)))
	return nil
}
