package export_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/campuscore/college_erp_app/internal/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTable_TimestampedFilename(t *testing.T) {
	dir := t.TempDir()
	w := export.NewWriter(dir)
	ts := time.Date(2024, 6, 1, 10, 30, 5, 0, time.UTC)

	path, err := w.WriteTable("students", ts, []string{"student_id", "name"}, [][]any{
		{"COLG24S12345", "Asha Verma"},
		{"COLG24S54321", "Rohan Iyer"},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "students_20240601_103005.xlsx"), path)
}

func TestWriteTable_ContentRoundTrips(t *testing.T) {
	dir := t.TempDir()
	w := export.NewWriter(dir)

	path, err := w.WriteTable("fees", time.Now(), []string{"receipt_id", "amount"}, [][]any{
		{"REC-1-1000", "1000.00"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("fees")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"receipt_id", "amount"}, rows[0])
	assert.Equal(t, []string{"REC-1-1000", "1000.00"}, rows[1])
}
