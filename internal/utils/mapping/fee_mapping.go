package mapping

import (
	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/models"
)

// ToModelFee converts a domain Fee to its persistence model.
func ToModelFee(d domain.Fee) models.Fee {
	return models.Fee{
		ID:            d.ID,
		ReceiptID:     d.ReceiptID,
		RecordedAt:    d.RecordedAt,
		StudentRefID:  d.StudentRefID,
		StudentName:   d.StudentName,
		StudentID:     d.StudentID,
		Amount:        d.Amount,
		PaymentMode:   string(d.PaymentMode),
		TransactionID: d.TransactionID,
		InvoicePath:   d.InvoicePath,
		BalanceAfter:  d.BalanceAfter,
		Purpose:       d.Purpose,
		Notes:         d.Notes,
		RecordedBy:    d.RecordedBy,
	}
}

// ToDomainFee converts a persistence Fee to the domain type.
func ToDomainFee(m models.Fee) domain.Fee {
	return domain.Fee{
		ID:            m.ID,
		ReceiptID:     m.ReceiptID,
		RecordedAt:    m.RecordedAt,
		StudentRefID:  m.StudentRefID,
		StudentName:   m.StudentName,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		TransactionID: m.TransactionID,
		InvoicePath:   m.InvoicePath,
		BalanceAfter:  m.BalanceAfter,
		Purpose:       m.Purpose,
		Notes:         m.Notes,
		RecordedBy:    m.RecordedBy,
	}
}

// ToDomainFeeSlice converts a slice of persistence Fees.
func ToDomainFeeSlice(ms []models.Fee) []domain.Fee {
	ds := make([]domain.Fee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFee(m)
	}
	return ds
}
