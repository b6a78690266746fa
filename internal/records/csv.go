// Package records provides the CSV codec for a loaded RecordSet, the
// inspectable long-format view of the budget.
package records

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lascontrol/lascontrol/internal/model"
)

// Header is the CSV header for exported records.
const Header = "year,month,type,group,category,value"

const (
	numFields   = 6
	colYear     = 0
	colMonth    = 1
	colType     = 2
	colGroup    = 3
	colCategory = 4
	colValue    = 5
)

// Write writes records as CSV (including header).
func Write(w io.Writer, records model.RecordSet) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range records {
		if err := cw.Write(Marshal(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// Read reads all records from a CSV reader.
func Read(r io.Reader) (model.RecordSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading records CSV: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Skip header row.
	var records model.RecordSet
	for i, row := range rows[1:] {
		rec, err := Unmarshal(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Marshal converts a Record to a CSV row ([]string).
func Marshal(rec model.Record) []string {
	row := make([]string, numFields)
	row[colYear] = strconv.Itoa(rec.Year)
	row[colMonth] = strconv.Itoa(rec.Month)
	row[colType] = string(rec.Type)
	row[colGroup] = rec.Group
	row[colCategory] = rec.Category
	row[colValue] = rec.Value.StringFixed(2)
	return row
}

// Unmarshal converts a CSV row to a Record.
func Unmarshal(row []string) (model.Record, error) {
	if len(row) != numFields {
		return model.Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	year, err := strconv.Atoi(row[colYear])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing year %q: %w", row[colYear], err)
	}

	month, err := strconv.Atoi(row[colMonth])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing month %q: %w", row[colMonth], err)
	}
	if month < 1 || month > 12 {
		return model.Record{}, fmt.Errorf("month %d out of range", month)
	}

	typ := model.RecordType(row[colType])
	if !typ.Valid() {
		return model.Record{}, fmt.Errorf("unknown record type %q", row[colType])
	}

	value, err := decimal.NewFromString(row[colValue])
	if err != nil {
		return model.Record{}, fmt.Errorf("parsing value %q: %w", row[colValue], err)
	}

	return model.Record{
		Year:     year,
		Month:    month,
		Type:     typ,
		Group:    row[colGroup],
		Category: row[colCategory],
		Value:    value,
	}, nil
}
