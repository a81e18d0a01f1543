package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

// ReportService derives summary views from current store snapshots. All
// operations are stateless reads; every call re-reads the full tables, so
// results always reflect the latest persisted state.
type ReportService struct {
	storage *storage.Storage
}

// NewReportService creates a new ReportService.
func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

// MonthBounds returns the first and last calendar day of the given month,
// accounting for leap years and variable month lengths.
func MonthBounds(year, month int) (time.Time, time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %d: must be 1-12", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// TotalsForPeriod sums income and expense transactions dated within
// [start, end] inclusive. Savings-type rows are excluded from both sums.
func (s *ReportService) TotalsForPeriod(ctx context.Context, start, end time.Time) (Totals, error) {
	transactions, err := s.storage.Transactions.Load(ctx)
	if err != nil {
		return Totals{}, err
	}

	totals := Totals{}
	for _, tx := range transactions {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		switch tx.Type {
		case transaction.TypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case transaction.TypeExpense:
			totals.Expenses = totals.Expenses.Add(tx.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expenses)
	return totals, nil
}

// CurrentSavings is all-time income minus all-time expenses plus every
// account's starting balance, irrespective of date range. Savings-type
// transactions do not enter the formula.
func (s *ReportService) CurrentSavings(ctx context.Context) (decimal.Decimal, error) {
	transactions, err := s.storage.Transactions.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	savings := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case transaction.TypeIncome:
			savings = savings.Add(tx.Amount)
		case transaction.TypeExpense:
			savings = savings.Sub(tx.Amount)
		}
	}

	accounts, err := s.storage.Accounts.Load(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	for _, a := range accounts {
		savings = savings.Add(a.StartingBalance)
	}

	return savings, nil
}

// ExpensesByCategory groups expense transactions within [start, end] by
// category name, summing amounts. Rows whose category id matches nothing
// keep a blank label. Sorted by amount descending, ties broken by ascending
// name.
func (s *ReportService) ExpensesByCategory(ctx context.Context, start, end time.Time) ([]CategoryAmount, error) {
	return s.breakdownByCategory(ctx, transaction.TypeExpense, start, end)
}

// IncomeByCategory is the income-side counterpart of ExpensesByCategory.
func (s *ReportService) IncomeByCategory(ctx context.Context, start, end time.Time) ([]CategoryAmount, error) {
	return s.breakdownByCategory(ctx, transaction.TypeIncome, start, end)
}

func (s *ReportService) breakdownByCategory(ctx context.Context, txType string, start, end time.Time) ([]CategoryAmount, error) {
	transactions, err := s.storage.Transactions.Load(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.storage.Categories.Load(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	sums := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != txType || tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		name := names[tx.CategoryID]
		sums[name] = sums[name].Add(tx.Amount)
	}

	breakdown := make([]CategoryAmount, 0, len(sums))
	for name, amount := range sums {
		breakdown = append(breakdown, CategoryAmount{Category: name, Amount: amount})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if cmp := breakdown[i].Amount.Cmp(breakdown[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown, nil
}

// MonthlyCashflow computes totals for `months` consecutive calendar months
// ending at (referenceYear, referenceMonth) inclusive, oldest first.
// Walking back past January rolls into December of the previous year.
func (s *ReportService) MonthlyCashflow(ctx context.Context, referenceYear, referenceMonth, months int) ([]CashflowPoint, error) {
	if referenceMonth < 1 || referenceMonth > 12 {
		return nil, fmt.Errorf("invalid month %d: must be 1-12", referenceMonth)
	}
	if months < 1 {
		return nil, fmt.Errorf("invalid months %d: must be at least 1", months)
	}

	type window struct {
		year  int
		month int
	}
	windows := make([]window, months)
	y, m := referenceYear, referenceMonth
	for i := months - 1; i >= 0; i-- {
		windows[i] = window{year: y, month: m}
		m--
		if m == 0 {
			m = 12
			y--
		}
	}

	points := make([]CashflowPoint, len(windows))
	for i, w := range windows {
		start, end, err := MonthBounds(w.year, w.month)
		if err != nil {
			return nil, err
		}
		totals, err := s.TotalsForPeriod(ctx, start, end)
		if err != nil {
			return nil, err
		}
		points[i] = CashflowPoint{
			Period:   PeriodLabel(w.year, w.month),
			Income:   totals.Income,
			Expenses: totals.Expenses,
			Net:      totals.Net,
		}
	}
	return points, nil
}

// BudgetVsActual compares each expense category's budget for the month
// against its actual spend, ordered by category name. Categories without a
// budget row report a zero budget and zero utilization.
func (s *ReportService) BudgetVsActual(ctx context.Context, year, month int) ([]BudgetLine, error) {
	start, end, err := MonthBounds(year, month)
	if err != nil {
		return nil, err
	}
	period := PeriodLabel(year, month)

	categories, err := s.storage.Categories.Load(ctx)
	if err != nil {
		return nil, err
	}
	budgets, err := s.storage.Budgets.Load(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.storage.Transactions.Load(ctx)
	if err != nil {
		return nil, err
	}

	budgeted := make(map[int64]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		if b.Period == period {
			budgeted[b.CategoryID] = b.Amount
		}
	}

	spent := make(map[int64]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Type != transaction.TypeExpense || tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}
		spent[tx.CategoryID] = spent[tx.CategoryID].Add(tx.Amount)
	}

	var lines []BudgetLine
	for _, c := range categories {
		if c.Kind != category.KindExpense {
			continue
		}
		line := BudgetLine{
			CategoryID: c.ID,
			Category:   c.Name,
			Budget:     budgeted[c.ID],
			Spent:      spent[c.ID],
		}
		if !line.Budget.IsZero() {
			line.Utilization = line.Spent.DivRound(line.Budget, 4)
		}
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Category < lines[j].Category
	})
	return lines, nil
}
