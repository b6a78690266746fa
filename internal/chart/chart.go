// Package chart renders figures from a loaded RecordSet. Figures are
// self-contained HTML documents drawn by go-echarts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lascontrol/lascontrol/internal/model"
)

// Kind selects one of the chart views.
type Kind string

const (
	// KindLine draws income and expense as lines across the year.
	KindLine Kind = "line"
	// KindBar draws income and expense as side-by-side monthly bars.
	KindBar Kind = "bar"
	// KindBalance draws the signed monthly balance as bars.
	KindBalance Kind = "balance"
)

// ErrUnknownKind is returned for a chart kind outside line/bar/balance.
var ErrUnknownKind = errors.New("unknown chart kind")

// ParseKind validates a chart kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLine, KindBar, KindBalance:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%q: %w (use line, bar or balance)", s, ErrUnknownKind)
}

const (
	colorPositive = "#2e7d32"
	colorNegative = "#c62828"
)

// Render aggregates records for year and writes the figure for kind to w.
// Nothing is written when kind is not recognized.
func Render(w io.Writer, records model.RecordSet, year int, kind Kind) error {
	totals := Aggregate(records, year)

	switch kind {
	case KindLine:
		return renderLine(w, totals, year)
	case KindBar:
		return renderBar(w, totals, year)
	case KindBalance:
		return renderBalance(w, totals, year)
	}
	return fmt.Errorf("%q: %w", kind, ErrUnknownKind)
}

// RenderFile renders to a file at path, creating or truncating it. The kind
// is checked before the file is touched.
func RenderFile(path string, records model.RecordSet, year int, kind Kind) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := Render(f, records, year, kind); err != nil {
		return fmt.Errorf("rendering %s chart: %w", kind, err)
	}
	return f.Close()
}

func renderLine(w io.Writer, totals Totals, year int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Receitas x Despesas - %d", year)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Mês"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Valor (R$)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(model.MonthLabels).
		AddSeries("Receitas", lineData(totals.Income)).
		AddSeries("Despesas", lineData(totals.Expense)).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	return line.Render(w)
}

func renderBar(w io.Writer, totals Totals, year int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Receitas x Despesas - %d", year)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Mês"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Valor (R$)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis(model.MonthLabels).
		AddSeries("Receitas", barData(totals.Income)).
		AddSeries("Despesas", barData(totals.Expense))

	return bar.Render(w)
}

func renderBalance(w io.Writer, totals Totals, year int) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Saldo Mensal - %d", year)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Mês"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Saldo (R$)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	balances := totals.Balances()
	data := make([]opts.BarData, len(balances))
	for i, b := range balances {
		color := colorPositive
		if b.IsNegative() {
			color = colorNegative
		}
		data[i] = opts.BarData{
			Value:     b.InexactFloat64(),
			ItemStyle: &opts.ItemStyle{Color: color},
		}
	}

	bar.SetXAxis(model.MonthLabels).AddSeries("Saldo", data)

	return bar.Render(w)
}
