package services

// ServiceContainer bundles the service facades for handler wiring.
type ServiceContainer struct {
	Student StudentSvcFacade
	Fee     FeeSvcFacade
	Hostel  HostelSvcFacade
	Exam    ExamSvcFacade
	User    UserSvcFacade
	Backup  BackupSvcFacade
}
