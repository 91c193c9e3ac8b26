package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// Writer snapshots record tables to timestamped tabular files under a backup
// directory. Filenames embed the table name and a YYYYMMDD_HHMMSS timestamp,
// so repeated exports never clobber each other.
type Writer struct {
	dir string
}

// NewWriter creates a snapshot Writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteTable writes one sheet named after the table, a header row, and one
// row per record. Returns the file path.
func (w *Writer) WriteTable(table string, ts time.Time, headers []string, rows [][]any) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(w.dir, fmt.Sprintf("%s_%s.xlsx", table, ts.UTC().Format("20060102_150405")))

	f := excelize.NewFile()
	defer f.Close()
	sheet := table
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return "", fmt.Errorf("rename sheet for %s: %w", table, err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return "", fmt.Errorf("write header for %s: %w", table, err)
		}
	}
	for rowIdx, row := range rows {
		for colIdx, v := range row {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return "", fmt.Errorf("write row %d for %s: %w", rowIdx, table, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return path, nil
}
