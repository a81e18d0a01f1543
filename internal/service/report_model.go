package service

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CategoryAmount is one row of a per-category breakdown.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CashflowPoint is one calendar month of a cashflow series.
type CashflowPoint struct {
	Period   string
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// BudgetLine compares a category's budget for a period against what was
// actually spent. Utilization is Spent/Budget, zero when no budget is set.
type BudgetLine struct {
	CategoryID  int64
	Category    string
	Budget      decimal.Decimal
	Spent       decimal.Decimal
	Utilization decimal.Decimal
}

// PeriodLabel renders the zero-padded "YYYY-MM" form of a month.
func PeriodLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
