package convert

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", "Devices"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	cells := map[string]string{
		"A1": "Sl.no", "B1": "Team", "C1": "Device model",
		"A2": "1", "B2": "QA", "C2": "Router",
	}
	for ref, val := range cells {
		if err := f.SetCellValue("Devices", ref, val); err != nil {
			t.Fatalf("set cell %s: %v", ref, err)
		}
	}
	if _, err := f.NewSheet("Spares"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetCellValue("Spares", "A1", "Switch"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestSheetsToCSVWritesOneFilePerSheet(t *testing.T) {
	dir := t.TempDir()
	wbPath := filepath.Join(dir, "inventory.xlsx")
	writeWorkbook(t, wbPath)

	files, err := SheetsToCSV(wbPath, dir)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 csv files, got %v", files)
	}

	f, err := os.Open(filepath.Join(dir, "Devices.csv"))
	if err != nil {
		t.Fatalf("open converted csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read converted csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1][2] != "Router" {
		t.Fatalf("unexpected cell value %q", rows[1][2])
	}
}

func TestSheetsToCSVRejectsMissingFile(t *testing.T) {
	if _, err := SheetsToCSV(filepath.Join(t.TempDir(), "absent.xlsx"), t.TempDir()); err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
