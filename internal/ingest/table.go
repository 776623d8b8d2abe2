package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/anusua-sen/smart-budget-app/internal/core"
)

// Table is a raw tabular batch: a header row plus data rows, exactly as
// they arrived. Column lookup and validation happen later, in Validate.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadTable parses CSV input into a Table. The first record is the
// header. Rows may be ragged; missing trailing cells read as empty.
func ReadTable(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return Table{}, fmt.Errorf("%w: empty input", core.ErrSchema)
	}
	if err != nil {
		return Table{}, fmt.Errorf("%w: read header row: %v", core.ErrSchema, err)
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("%w: read row %d: %v", core.ErrValidation, len(rows)+2, err)
		}
		rows = append(rows, record)
	}

	return Table{Columns: header, Rows: rows}, nil
}

// column returns the index of the named column, or -1.
func (t Table) column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// cell returns the row's value for a column index, tolerating short rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
