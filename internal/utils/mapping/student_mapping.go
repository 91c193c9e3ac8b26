package mapping

import (
	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/models"
)

// ToModelStudent converts a domain Student to its persistence model.
func ToModelStudent(d domain.Student) models.Student {
	return models.Student{
		ID:              d.ID,
		StudentID:       d.StudentID,
		Name:            d.Name,
		DOB:             d.DOB,
		Gender:          d.Gender,
		Email:           d.Email,
		Mobile:          d.Mobile,
		Program:         d.Program,
		Year:            d.Year,
		Department:      d.Department,
		Address:         d.Address,
		GuardianName:    d.GuardianName,
		GuardianContact: d.GuardianContact,
		PhotoPath:       d.PhotoPath,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainStudent converts a persistence Student to the domain type.
func ToDomainStudent(m models.Student) domain.Student {
	return domain.Student{
		ID:              m.ID,
		StudentID:       m.StudentID,
		Name:            m.Name,
		DOB:             m.DOB,
		Gender:          m.Gender,
		Email:           m.Email,
		Mobile:          m.Mobile,
		Program:         m.Program,
		Year:            m.Year,
		Department:      m.Department,
		Address:         m.Address,
		GuardianName:    m.GuardianName,
		GuardianContact: m.GuardianContact,
		PhotoPath:       m.PhotoPath,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainStudentSlice converts a slice of persistence Students.
func ToDomainStudentSlice(ms []models.Student) []domain.Student {
	ds := make([]domain.Student, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStudent(m)
	}
	return ds
}

// ToModelAdmission converts a domain Admission to its persistence model.
func ToModelAdmission(d domain.Admission) models.Admission {
	return models.Admission{
		ID:           d.ID,
		AdmissionID:  d.AdmissionID,
		StudentRefID: d.StudentRefID,
		SubmittedAt:  d.SubmittedAt,
		Source:       d.Source,
		Documents:    d.Documents,
		Status:       string(d.Status),
		Remarks:      d.Remarks,
	}
}

// ToDomainAdmission converts a persistence Admission to the domain type.
func ToDomainAdmission(m models.Admission) domain.Admission {
	return domain.Admission{
		ID:           m.ID,
		AdmissionID:  m.AdmissionID,
		StudentRefID: m.StudentRefID,
		SubmittedAt:  m.SubmittedAt,
		Source:       m.Source,
		Documents:    m.Documents,
		Status:       domain.AdmissionStatus(m.Status),
		Remarks:      m.Remarks,
	}
}
