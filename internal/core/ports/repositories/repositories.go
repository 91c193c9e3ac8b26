package repositories

// RepositoryProvider bundles the concrete repositories for service wiring.
type RepositoryProvider struct {
	StudentRepo StudentRepositoryFacade
	FeeRepo     FeeRepositoryFacade
	HostelRepo  HostelRepositoryFacade
	ExamRepo    ExamRepositoryFacade
	UserRepo    UserRepositoryFacade
}
