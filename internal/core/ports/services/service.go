package services

// ServiceContainer holds all the services used by the application.
type ServiceContainer struct {
	Organization OrganizationSvcFacade
	Caseworker   CaseworkerSvcFacade
	User         UserSvcFacade
	WorkType     WorkTypeSvcFacade
	Session      SessionSvcFacade
	Transaction  TransactionSvcFacade
	Reporting    ReportingSvcFacade
	Seed         SeedSvcFacade
}
