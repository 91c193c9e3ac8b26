package receipts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/campuscore/college_erp_app/internal/apperrors"
	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/go-pdf/fpdf"
)

// Renderer produces one-page PDF proof-of-payment documents. The output path
// is a pure function of the receipt identifier, so re-rendering the same
// receipt overwrites the previous document.
type Renderer struct {
	outDir      string
	institution string
}

// NewRenderer creates a Renderer writing into outDir with the institution
// name printed on every document.
func NewRenderer(outDir, institution string) *Renderer {
	return &Renderer{outDir: outDir, institution: institution}
}

// Path returns the document location for a receipt identifier.
func (r *Renderer) Path(receiptID string) string {
	return filepath.Join(r.outDir, receiptID+".pdf")
}

// Render writes the receipt document for a fee row and returns its path.
// Any generation or filesystem error wraps apperrors.ErrRenderFailure; the
// caller decides whether that is fatal.
func (r *Renderer) Render(fee domain.Fee) (string, error) {
	if err := os.MkdirAll(r.outDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create receipts dir: %v", apperrors.ErrRenderFailure, err)
	}
	path := r.Path(fee.ReceiptID)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, r.institution, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	line := func(s string) {
		pdf.CellFormat(0, 8, s, "", 1, "L", false, 0, "")
	}
	line("Receipt ID: " + fee.ReceiptID)
	line("Date: " + fee.RecordedAt.Format("2006-01-02 15:04:05"))
	pdf.Ln(4)
	line(fmt.Sprintf("Student: %s (%s)", fee.StudentName, fee.StudentID))
	line("Amount Paid: INR " + fee.Amount.StringFixed(2))
	line("Purpose: " + fee.Purpose)
	line("Payment Mode: " + string(fee.PaymentMode))
	line("Transaction ID: " + fee.TransactionID)
	pdf.Ln(6)
	pdf.MultiCell(0, 8, "Notes: "+fee.Notes, "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", apperrors.ErrRenderFailure, path, err)
	}
	return path, nil
}
