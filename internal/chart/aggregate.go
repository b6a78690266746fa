package chart

import (
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/shopspring/decimal"

	"github.com/lascontrol/lascontrol/internal/model"
)

// Totals holds per-month sums for one year, indexed 0..11 for months 1..12.
// Months with no records sum to zero.
type Totals struct {
	Income       [12]decimal.Decimal
	Expense      [12]decimal.Decimal
	Contribution [12]decimal.Decimal
}

// Aggregate filters records to year and sums values by (month, type).
func Aggregate(records model.RecordSet, year int) Totals {
	var t Totals
	for _, rec := range records.ForYear(year) {
		if rec.Month < 1 || rec.Month > 12 {
			continue
		}
		i := rec.Month - 1
		switch rec.Type {
		case model.TypeIncome:
			t.Income[i] = t.Income[i].Add(rec.Value)
		case model.TypeExpense:
			t.Expense[i] = t.Expense[i].Add(rec.Value)
		case model.TypeContribution:
			t.Contribution[i] = t.Contribution[i].Add(rec.Value)
		}
	}
	return t
}

// Balance returns income - expense + contribution for month (1-12).
func (t Totals) Balance(month int) decimal.Decimal {
	i := month - 1
	return t.Income[i].Sub(t.Expense[i]).Add(t.Contribution[i])
}

// Balances returns the twelve monthly balances in calendar order.
func (t Totals) Balances() [12]decimal.Decimal {
	var out [12]decimal.Decimal
	for m := 1; m <= 12; m++ {
		out[m-1] = t.Balance(m)
	}
	return out
}

func lineData(values [12]decimal.Decimal) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v.InexactFloat64()}
	}
	return data
}

func barData(values [12]decimal.Decimal) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v.InexactFloat64()}
	}
	return data
}
