package convert

import (
	"encoding/csv"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// SheetsToCSV writes one CSV file per sheet of the workbook at path into
// outDir, named <sheet>.csv. It returns the paths written.
func SheetsToCSV(path, outDir string) ([]string, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	written := make([]string, 0, len(sheets))
	for _, sheet := range sheets {
		rows, err := wb.GetRows(sheet)
		if err != nil {
			return nil, errors.Wrapf(err, "read sheet %q", sheet)
		}
		out := filepath.Join(outDir, sheet+".csv")
		if err := writeCSV(out, rows); err != nil {
			return nil, errors.Wrapf(err, "write sheet %q", sheet)
		}
		written = append(written, out)
	}
	return written, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
