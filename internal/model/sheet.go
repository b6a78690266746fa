package model

// Months maps the sheet's Portuguese month abbreviations to month numbers.
// The sheet uses MAIO rather than the three-letter MAI.
var Months = map[string]int{
	"JAN": 1, "FEV": 2, "MAR": 3, "ABR": 4, "MAIO": 5, "JUN": 6,
	"JUL": 7, "AGO": 8, "SET": 9, "OUT": 10, "NOV": 11, "DEZ": 12,
}

// MonthLabels holds the twelve abbreviations in calendar order, for axis
// labeling.
var MonthLabels = []string{
	"JAN", "FEV", "MAR", "ABR", "MAIO", "JUN",
	"JUL", "AGO", "SET", "OUT", "NOV", "DEZ",
}

// Groups lists the group-header labels the sheet uses. A row starting with
// one of these switches the current group (and transaction type) for the
// category rows that follow.
var Groups = map[string]bool{
	"RECEITA":                true,
	"DOMÉSTICAS":             true,
	"Cotidiano":              true,
	"TRANSPORTE":             true,
	"ENTRETENIMENTO":         true,
	"SAÚDE":                  true,
	"FÉRIAS":                 true,
	"LAZER":                  true,
	"MENSALIDADES":           true,
	"PESSOAIS":               true,
	"OBRIGAÇÕES FINANCEIRAS": true,
	"APORTES":                true,
}

// SkipLabels lists row labels that are neither groups nor categories:
// section banners and total/summary rows.
var SkipLabels = map[string]bool{
	"DESPESAS":           true,
	"Total":              true,
	"TOTAIS":             true,
	"Despesas totais":    true,
	"Diferença de caixa": true,
}

const (
	groupIncome        = "RECEITA"
	groupContributions = "APORTES"
)

// TypeForGroup derives the transaction type from a group label: RECEITA is
// income, APORTES are contributions, everything else is an expense group.
func TypeForGroup(group string) RecordType {
	switch group {
	case groupIncome:
		return TypeIncome
	case groupContributions:
		return TypeContribution
	default:
		return TypeExpense
	}
}
