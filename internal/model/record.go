package model

import (
	"github.com/shopspring/decimal"
)

// RecordType classifies a budget record by transaction type.
type RecordType string

const (
	TypeIncome       RecordType = "income"
	TypeExpense      RecordType = "expense"
	TypeContribution RecordType = "contribution"
)

// Valid reports whether t is one of the known record types.
func (t RecordType) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeContribution:
		return true
	}
	return false
}

// Record is one normalized budget entry: a single (month, category, value)
// cell lifted out of the spreadsheet matrix.
type Record struct {
	Year     int
	Month    int // 1-12
	Type     RecordType
	Group    string // spreadsheet group label, e.g. "TRANSPORTE"
	Category string
	Value    decimal.Decimal // negative values allowed (adjustments)
}

// RecordSet is the result of one load: records in spreadsheet scan order.
// It is never mutated after the load that produced it.
type RecordSet []Record

// ForYear returns the records matching year, preserving order.
func (rs RecordSet) ForYear(year int) RecordSet {
	var out RecordSet
	for _, r := range rs {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}
