package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyWorkbook indicates an XLSX file without sheets or data rows.
var ErrEmptyWorkbook = errors.New("ingest: workbook has no data")

// ParseCSV reads a CSV table: header row, then source,target,weight rows.
// Extra columns are ignored; ragged rows are allowed.
func ParseCSV(r io.Reader) (Report, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return Report{}, fmt.Errorf("ParseCSV: %w", err)
	}

	return parseRows("ParseCSV", rows)
}

// ParseXLSX reads the first sheet of a workbook with the same row rules as ParseCSV.
func ParseXLSX(r io.Reader) (Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("ParseXLSX: open: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Report{}, fmt.Errorf("ParseXLSX: %w", ErrEmptyWorkbook)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Report{}, fmt.Errorf("ParseXLSX: sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return Report{}, fmt.Errorf("ParseXLSX: sheet %q: %w", sheets[0], ErrEmptyWorkbook)
	}

	return parseRows("ParseXLSX", rows)
}

// parseRows applies the table rules; row numbers in Issues are 1-based
// including the header.
func parseRows(method string, rows [][]string) (Report, error) {
	c := newCollector()
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		text := strings.Join(row, ",")
		if blankRow(row) {
			continue
		}
		if len(row) < minFields {
			c.skip(i+1, text, fmt.Errorf("%s: row %d: %w", method, i+1, ErrFormat))
			continue
		}
		e, err := parseFields(row[:minFields])
		if err != nil {
			c.skip(i+1, text, err)
			continue
		}
		c.add(i+1, text, e)
	}

	return c.result(method)
}

func blankRow(row []string) bool {
	for i := 0; i < len(row) && i < minFields; i++ {
		if strings.TrimSpace(row[i]) != "" {
			return false
		}
	}

	return true
}
