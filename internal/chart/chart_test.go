package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lascontrol/lascontrol/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleRecords() model.RecordSet {
	return model.RecordSet{
		{Year: 2025, Month: 1, Type: model.TypeIncome, Group: "RECEITA", Category: "Salário", Value: dec("5000")},
		{Year: 2025, Month: 1, Type: model.TypeIncome, Group: "RECEITA", Category: "Freelance", Value: dec("1200")},
		{Year: 2025, Month: 1, Type: model.TypeExpense, Group: "Cotidiano", Category: "Alimentação", Value: dec("800")},
		{Year: 2025, Month: 2, Type: model.TypeExpense, Group: "TRANSPORTE", Category: "Combustível", Value: dec("300")},
		{Year: 2025, Month: 2, Type: model.TypeContribution, Group: "APORTES", Category: "Tesouro Direto", Value: dec("1000")},
		{Year: 2024, Month: 1, Type: model.TypeIncome, Group: "RECEITA", Category: "Salário", Value: dec("4000")},
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"line", "bar", "balance"} {
		kind, err := ParseKind(s)
		require.NoError(t, err)
		assert.Equal(t, Kind(s), kind)
	}

	for _, s := range []string{"pie", "saldo", "", "LINE"} {
		_, err := ParseKind(s)
		require.Error(t, err, "kind %q", s)
		assert.ErrorIs(t, err, ErrUnknownKind)
	}
}

func TestAggregate_SumsAcrossCategories(t *testing.T) {
	totals := Aggregate(sampleRecords(), 2025)

	assert.Equal(t, "6200", totals.Income[0].String())
	assert.Equal(t, "800", totals.Expense[0].String())
	assert.Equal(t, "300", totals.Expense[1].String())
	assert.Equal(t, "1000", totals.Contribution[1].String())
}

func TestAggregate_FiltersYear(t *testing.T) {
	totals := Aggregate(sampleRecords(), 2024)

	assert.Equal(t, "4000", totals.Income[0].String())
	for m := 1; m <= 12; m++ {
		assert.True(t, totals.Expense[m-1].IsZero())
		assert.True(t, totals.Contribution[m-1].IsZero())
	}
}

func TestAggregate_ZeroFillsEmptyMonths(t *testing.T) {
	totals := Aggregate(sampleRecords(), 2025)

	// Months 3-12 have no records and must aggregate to zero.
	for m := 3; m <= 12; m++ {
		assert.True(t, totals.Income[m-1].IsZero(), "income month %d", m)
		assert.True(t, totals.Expense[m-1].IsZero(), "expense month %d", m)
	}
}

func TestBalance(t *testing.T) {
	records := model.RecordSet{
		{Year: 2025, Month: 1, Type: model.TypeIncome, Value: dec("1000")},
		{Year: 2025, Month: 1, Type: model.TypeExpense, Value: dec("400")},
	}
	totals := Aggregate(records, 2025)

	assert.Equal(t, "1000", totals.Income[0].String())
	assert.Equal(t, "400", totals.Expense[0].String())
	assert.Equal(t, "600", totals.Balance(1).String())
}

func TestBalance_IncludesContributions(t *testing.T) {
	totals := Aggregate(sampleRecords(), 2025)

	// February: no income, 300 expense, 1000 contribution.
	assert.Equal(t, "700", totals.Balance(2).String())
}

func TestBalanceIdentity(t *testing.T) {
	records := sampleRecords()
	totals := Aggregate(records, 2025)

	var fromChart decimal.Decimal
	for _, b := range totals.Balances() {
		fromChart = fromChart.Add(b)
	}

	var independent decimal.Decimal
	for _, rec := range records.ForYear(2025) {
		switch rec.Type {
		case model.TypeIncome, model.TypeContribution:
			independent = independent.Add(rec.Value)
		case model.TypeExpense:
			independent = independent.Sub(rec.Value)
		}
	}

	assert.True(t, fromChart.Equal(independent), "got %s, want %s", fromChart, independent)
}

func TestRender_Kinds(t *testing.T) {
	tests := []struct {
		kind   Kind
		series string
	}{
		{KindLine, "Receitas"},
		{KindBar, "Despesas"},
		{KindBalance, "Saldo"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		err := Render(&buf, sampleRecords(), 2025, tt.kind)
		require.NoError(t, err, "kind %s", tt.kind)
		assert.Contains(t, buf.String(), "echarts")
		assert.Contains(t, buf.String(), tt.series)
	}
}

func TestRender_UnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, sampleRecords(), 2025, Kind("pie"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Zero(t, buf.Len(), "no figure should be produced")
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saldo.html")
	err := RenderFile(path, sampleRecords(), 2025, KindBalance)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Saldo Mensal - 2025")
}

func TestRenderFile_UnknownKindCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pie.html")
	err := RenderFile(path, sampleRecords(), 2025, Kind("pie"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file should not be created")
}
