package inventory

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// maxColumns is the fixed width of the inventory schema.
const maxColumns = 8

// Clean parses raw delimited text into normalized records.
// Blank rows are dropped, every cell is whitespace-normalized, rows are
// clamped to the first 8 cells and the first surviving row is consumed as
// the header. Cleaning is all-or-nothing: a CSV syntax error fails the batch.
func Clean(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}

	rows := make([][]string, 0, len(raw))
	for _, row := range raw {
		if !hasContent(row) {
			continue
		}
		if len(row) > maxColumns {
			row = row[:maxColumns]
		}
		cleaned := make([]string, len(row))
		for i, cell := range row {
			cleaned[i] = collapseSpace(cell)
		}
		rows = append(rows, cleaned)
	}
	if len(rows) == 0 {
		return nil, errors.New("no usable rows in input")
	}

	records := []Record{}
	for _, row := range rows[1:] {
		rec := fromCells(row)
		if rec.Empty() {
			// guards against schema mismatches; cannot happen for
			// rows that passed the blank filter
			continue
		}
		records = append(records, applyDefaults(rec))
	}
	return records, nil
}

// WriteRecords emits the cleaned CSV, header included.
func WriteRecords(w io.Writer, records []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Columns); err != nil {
		return errors.Wrap(err, "write header")
	}
	for _, rec := range records {
		if err := writer.Write(rec.fields()); err != nil {
			return errors.Wrap(err, "write record")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "flush cleaned csv")
}

func hasContent(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return true
		}
	}
	return false
}

// collapseSpace trims ends and squeezes internal whitespace runs to one space.
func collapseSpace(cell string) string {
	return strings.Join(strings.Fields(cell), " ")
}

func fromCells(cells []string) Record {
	padded := make([]string, maxColumns)
	copy(padded, cells)
	return Record{
		SequenceNo:   padded[0],
		Team:         padded[1],
		DeviceModel:  padded[2],
		SerialNumber: padded[3],
		MACAddress:   padded[4],
		Condition:    padded[5],
		AssignedTo:   padded[6],
		Owner:        padded[7],
	}
}

func applyDefaults(rec Record) Record {
	if rec.SequenceNo == "" {
		rec.SequenceNo = "0"
	}
	if rec.DeviceModel == "" {
		rec.DeviceModel = "Unknown Device"
	}
	if rec.SerialNumber == "" {
		rec.SerialNumber = Unknown
	}
	if rec.MACAddress == "" {
		rec.MACAddress = Unknown
	}
	if rec.Owner == "" {
		rec.Owner = "Unassigned"
	}
	if rec.Team == "" {
		rec.Team = "Inventory"
	}
	if rec.Condition == "" {
		rec.Condition = "Unknown"
	}
	if rec.AssignedTo == "" {
		rec.AssignedTo = "Unassigned"
	}
	return rec
}
