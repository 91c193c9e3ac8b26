package services

import (
	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/export"
	"github.com/campuscore/college_erp_app/internal/platform/config"
	"github.com/campuscore/college_erp_app/internal/receipts"
)

// NewServiceContainer wires the repositories, receipt renderer and backup
// writer into the service facades the handlers consume.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	renderer := receipts.NewRenderer(cfg.ReceiptsDir, cfg.InstitutionName)
	backupWriter := export.NewWriter(cfg.BackupsDir)

	container := &portssvc.ServiceContainer{}
	container.Student = NewStudentService(repos.StudentRepo)
	container.Fee = NewFeeService(repos.FeeRepo, repos.StudentRepo, renderer)
	container.Hostel = NewHostelService(repos.HostelRepo, repos.StudentRepo)
	container.Exam = NewExamService(repos.ExamRepo, repos.StudentRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Backup = NewBackupService(repos.StudentRepo, repos.FeeRepo, repos.HostelRepo, repos.ExamRepo, backupWriter)
	return container
}
