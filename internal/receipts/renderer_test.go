package receipts_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/campuscore/college_erp_app/internal/core/domain"
	"github.com/campuscore/college_erp_app/internal/receipts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFee() domain.Fee {
	return domain.Fee{
		ReceiptID:     "REC-1700000000000-1234",
		RecordedAt:    time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC),
		StudentName:   "Asha Verma",
		StudentID:     "COLG24S12345",
		Amount:        decimal.NewFromFloat(1000),
		PaymentMode:   domain.ModeCash,
		TransactionID: "REC-1700000000000-1234",
		Purpose:       "Tuition",
		Notes:         "first installment",
	}
}

func TestRender_WritesDocumentAtDeterministicPath(t *testing.T) {
	dir := t.TempDir()
	r := receipts.NewRenderer(dir, "Test College")

	fee := sampleFee()
	path, err := r.Render(fee)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, fee.ReceiptID+".pdf"), path)
	assert.Equal(t, path, r.Path(fee.ReceiptID))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRender_SameReceiptOverwrites(t *testing.T) {
	dir := t.TempDir()
	r := receipts.NewRenderer(dir, "Test College")

	fee := sampleFee()
	first, err := r.Render(fee)
	require.NoError(t, err)

	fee.Notes = "reissued"
	second, err := r.Render(fee)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRender_CreatesMissingOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "receipts")
	r := receipts.NewRenderer(dir, "Test College")

	_, err := r.Render(sampleFee())
	require.NoError(t, err)
}
