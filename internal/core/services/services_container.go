package services

import (
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
)

// NewServiceContainer creates a service container wired to the given
// repository provider. The container is constructed once at process start and
// injected into the route layer; there is no module-level singleton, so tests
// can build isolated instances.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Organization = NewOrganizationService(repos.OrganizationRepo)
	container.Caseworker = NewCaseworkerService(repos.CaseworkerRepo, repos.OrganizationRepo)
	container.User = NewUserService(repos.UserRepo, repos.OrganizationRepo)
	container.WorkType = NewWorkTypeService(repos.WorkTypeRepo)
	container.Session = NewSessionService(repos.SessionRepo, repos.WorkTypeRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.SessionRepo)
	container.Reporting = NewReportingService(repos.SessionRepo, repos.TransactionRepo)
	container.Seed = NewSeedService(repos.WorkTypeRepo)

	return container
}
