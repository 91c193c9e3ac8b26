package services

import "github.com/campuscore/college_erp_app/internal/core/domain"

// ReceiptRenderer converts a completed fee row into a persisted document.
// Implemented by the PDF renderer; mocked in service tests.
type ReceiptRenderer interface {
	// Render writes the receipt document and returns its path. The path is
	// a pure function of the receipt identifier.
	Render(fee domain.Fee) (string, error)

	// Path returns the document location for a receipt identifier without
	// rendering.
	Path(receiptID string) string
}
