package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRow is a transaction joined with its account and category
// names for display. Unmatched ids yield blank names rather than dropping
// the row.
type TransactionRow struct {
	ID       int64
	Date     time.Time
	Account  string
	Category string
	Type     string
	Amount   decimal.Decimal
	Note     string
}

// TransactionFilter narrows a transaction listing. Zero Start/End leave the
// range open on that side; an empty Types set means all types; Search
// matches case-insensitively against note, account name, and category name.
type TransactionFilter struct {
	Start  time.Time
	End    time.Time
	Types  []string
	Search string
}

// Totals are income/expense sums over a set of transactions, with
// Net = Income − Expenses. Savings-type rows count toward neither sum.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}
