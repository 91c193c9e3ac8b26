package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/campuscore/college_erp_app/internal/core/ports/repositories"
	portssvc "github.com/campuscore/college_erp_app/internal/core/ports/services"
	"github.com/campuscore/college_erp_app/internal/export"
	"github.com/campuscore/college_erp_app/internal/middleware"
)

type backupService struct {
	studentRepo portsrepo.StudentReader
	feeRepo     portsrepo.FeeReader
	hostelRepo  portsrepo.HostelReader
	examRepo    portsrepo.ExamReader
	writer      *export.Writer
}

// NewBackupService creates a backup service snapshotting every record table
// through the given export writer.
func NewBackupService(
	studentRepo portsrepo.StudentReader,
	feeRepo portsrepo.FeeReader,
	hostelRepo portsrepo.HostelReader,
	examRepo portsrepo.ExamReader,
	writer *export.Writer,
) portssvc.BackupSvcFacade {
	return &backupService{
		studentRepo: studentRepo,
		feeRepo:     feeRepo,
		hostelRepo:  hostelRepo,
		examRepo:    examRepo,
		writer:      writer,
	}
}

var _ portssvc.BackupSvcFacade = (*backupService)(nil)

// ExportAll snapshots every record table to a timestamped file. All tables in
// one export share the same timestamp so a run groups together on disk.
// User accounts are deliberately excluded; password hashes never leave the
// database.
func (s *backupService) ExportAll(ctx context.Context) (map[string]string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	ts := time.Now().UTC()
	out := make(map[string]string, 5)

	students, err := s.studentRepo.ListAllStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading students: %w", err)
	}
	studentRows := make([][]any, len(students))
	for i, st := range students {
		studentRows[i] = []any{
			st.StudentID, st.Name, st.DOB, st.Gender, st.Email, st.Mobile,
			st.Program, st.Year, st.Department, st.Address,
			st.GuardianName, st.GuardianContact, st.PhotoPath,
			st.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	path, err := s.writer.WriteTable("students", ts,
		[]string{"student_id", "name", "dob", "gender", "email", "mobile",
			"program", "year", "department", "address",
			"guardian_name", "guardian_contact", "photo_path", "created_at"},
		studentRows)
	if err != nil {
		return nil, err
	}
	out["students"] = path

	admissions, err := s.studentRepo.ListAllAdmissions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading admissions: %w", err)
	}
	admissionRows := make([][]any, len(admissions))
	for i, a := range admissions {
		admissionRows[i] = []any{
			a.AdmissionID, a.StudentRefID, a.SubmittedAt.UTC().Format(time.RFC3339),
			a.Source, a.Documents, string(a.Status), a.Remarks,
		}
	}
	path, err = s.writer.WriteTable("admissions", ts,
		[]string{"admission_id", "student_ref_id", "submitted_at", "source",
			"documents", "status", "remarks"},
		admissionRows)
	if err != nil {
		return nil, err
	}
	out["admissions"] = path

	fees, err := s.feeRepo.ListAllFees(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading fees: %w", err)
	}
	feeRows := make([][]any, len(fees))
	for i, f := range fees {
		invoicePath := ""
		if f.InvoicePath != nil {
			invoicePath = *f.InvoicePath
		}
		feeRows[i] = []any{
			f.ReceiptID, f.RecordedAt.UTC().Format(time.RFC3339), f.StudentID,
			f.StudentName, f.Amount.StringFixed(2), string(f.PaymentMode),
			f.TransactionID, invoicePath, f.BalanceAfter.StringFixed(2),
			f.Purpose, f.Notes, f.RecordedBy,
		}
	}
	path, err = s.writer.WriteTable("fees", ts,
		[]string{"receipt_id", "recorded_at", "student_id", "student_name",
			"amount", "payment_mode", "transaction_id", "invoice_path",
			"balance_after", "purpose", "notes", "recorded_by"},
		feeRows)
	if err != nil {
		return nil, err
	}
	out["fees"] = path

	allocations, err := s.hostelRepo.ListAllocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading hostel allocations: %w", err)
	}
	hostelRows := make([][]any, len(allocations))
	for i, h := range allocations {
		moveOut := ""
		if h.MoveOut != nil {
			moveOut = *h.MoveOut
		}
		hostelRows[i] = []any{
			h.AllocationID, h.StudentName, h.Block, h.RoomNo, h.BedNo,
			h.MoveIn, moveOut, string(h.Status),
			h.RequestedAt.UTC().Format(time.RFC3339), h.AllocatedBy, h.Notes,
		}
	}
	path, err = s.writer.WriteTable("hostel_allocations", ts,
		[]string{"allocation_id", "student_name", "block", "room_no", "bed_no",
			"move_in", "move_out", "status", "requested_at", "allocated_by", "notes"},
		hostelRows)
	if err != nil {
		return nil, err
	}
	out["hostel_allocations"] = path

	exams, err := s.examRepo.ListAllExams(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading exams: %w", err)
	}
	examRows := make([][]any, len(exams))
	for i, e := range exams {
		examRows[i] = []any{
			e.ExamID, e.StudentName, e.SubjectCode, e.SubjectName, e.Marks,
			string(e.Status), e.GradedAt.UTC().Format(time.RFC3339),
			e.GradedBy, e.Notes,
		}
	}
	path, err = s.writer.WriteTable("exams", ts,
		[]string{"exam_id", "student_name", "subject_code", "subject_name",
			"marks", "status", "graded_at", "graded_by", "notes"},
		examRows)
	if err != nil {
		return nil, err
	}
	out["exams"] = path

	logger.Info("Backup export finished",
		slog.Int("tables", len(out)),
		slog.Time("timestamp", ts))
	return out, nil
}
