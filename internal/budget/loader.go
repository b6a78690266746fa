// Package budget loads a budget spreadsheet (categories x months matrix)
// into a normalized RecordSet.
//
// The sheet layout is semi-structured: a header row carries the twelve
// Portuguese month abbreviations, group-header rows switch the current
// group and transaction type, and category rows carry one numeric cell per
// month. Rows that do not match any of these shapes (banners, totals,
// blanks) are skipped silently; tolerance of irregular rows is intended
// behavior, not an error.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/lascontrol/lascontrol/internal/model"
)

// SheetName is the fixed sheet the budget lives in.
const SheetName = "ORÇAMENTO PESSOAL"

// ErrSheetNotFound is returned when the workbook has no budget sheet.
var ErrSheetNotFound = errors.New("budget sheet not found")

// Load reads the budget sheet from the workbook at path and returns one
// Record per (month, category, value) cell, tagged with year. The workbook
// handle is closed before returning on every path.
func Load(path string, year int) (model.RecordSet, error) {
	return LoadSheet(path, SheetName, year)
}

// LoadSheet is Load with an explicit sheet name.
func LoadSheet(path, sheet string, year int) (model.RecordSet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %q: %w", sheet, err)
	}
	if idx < 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, ErrSheetNotFound)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	return Parse(rows, year), nil
}

// Parse converts a 2D grid of cell values into a RecordSet. It is a pure
// function of its input: the same grid always yields the same records, in
// row-major scan order.
//
// Scanning is stateful: the first row containing month abbreviations fixes
// the column-to-month mapping, and each group-header row sets the group (and
// type) for the category rows below it. Category rows seen before a month
// header or group header are skipped, as are empty, non-numeric and zero
// cells. A missing month is omitted, not recorded as zero.
func Parse(rows [][]string, year int) model.RecordSet {
	records := model.RecordSet{}
	var monthCols []monthColumn
	group := ""

	for _, row := range rows {
		if monthCols == nil {
			monthCols = monthColumns(row)
			if monthCols != nil {
				continue
			}
		}

		label := rowLabel(row)
		if label == "" || model.SkipLabels[label] {
			continue
		}
		if model.Groups[label] {
			group = label
			continue
		}
		if monthCols == nil || group == "" {
			continue
		}

		// Category row: one record per populated month cell.
		for _, mc := range monthCols {
			if mc.col >= len(row) {
				continue
			}
			value, ok := parseValue(row[mc.col])
			if !ok || value.IsZero() {
				continue
			}
			records = append(records, model.Record{
				Year:     year,
				Month:    mc.month,
				Type:     model.TypeForGroup(group),
				Group:    group,
				Category: label,
				Value:    value,
			})
		}
	}
	return records
}

// monthColumn ties a sheet column to its month number.
type monthColumn struct {
	col   int
	month int
}

// monthColumns maps columns to month numbers if row is the month header, or
// returns nil if it is not. A header must name at least one month. Columns
// are kept in left-to-right order so records come out in scan order.
func monthColumns(row []string) []monthColumn {
	var cols []monthColumn
	for i, cell := range row {
		if m, ok := model.Months[strings.ToUpper(strings.TrimSpace(cell))]; ok {
			cols = append(cols, monthColumn{col: i, month: m})
		}
	}
	return cols
}

// rowLabel returns the trimmed first cell of a row.
func rowLabel(row []string) string {
	if len(row) == 0 {
		return ""
	}
	return strings.TrimSpace(row[0])
}

// parseValue parses a monetary cell. Cells may carry a currency prefix and
// Brazilian grouping ("R$ 1.234,56") or plain machine formatting ("1234.56").
func parseValue(cell string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
