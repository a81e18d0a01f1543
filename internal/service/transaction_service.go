package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

// TransactionService handles transaction read paths.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns filtered transactions joined with account and
// category names, sorted by date descending then id descending, together
// with the income/expense/net totals of the listed rows.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter) ([]TransactionRow, Totals, error) {
	transactions, err := s.storage.Transactions.Load(ctx)
	if err != nil {
		return nil, Totals{}, err
	}
	accounts, err := s.storage.Accounts.Load(ctx)
	if err != nil {
		return nil, Totals{}, err
	}
	categories, err := s.storage.Categories.Load(ctx)
	if err != nil {
		return nil, Totals{}, err
	}

	accountNames := make(map[int64]string, len(accounts))
	for _, a := range accounts {
		accountNames[a.ID] = a.Name
	}
	categoryNames := make(map[int64]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	types := make(map[string]bool, len(filter.Types))
	for _, t := range filter.Types {
		types[t] = true
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var rows []TransactionRow
	for _, tx := range transactions {
		if !withinRange(tx.Date, filter.Start, filter.End) {
			continue
		}
		if len(types) > 0 && !types[tx.Type] {
			continue
		}

		row := TransactionRow{
			ID:       tx.ID,
			Date:     tx.Date,
			Account:  accountNames[tx.AccountID],
			Category: categoryNames[tx.CategoryID],
			Type:     tx.Type,
			Amount:   tx.Amount,
			Note:     tx.Note,
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(row.Note), search) &&
			!strings.Contains(strings.ToLower(row.Account), search) &&
			!strings.Contains(strings.ToLower(row.Category), search) {
			continue
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.After(rows[j].Date)
		}
		return rows[i].ID > rows[j].ID
	})

	totals := Totals{}
	for _, row := range rows {
		switch row.Type {
		case transaction.TypeIncome:
			totals.Income = totals.Income.Add(row.Amount)
		case transaction.TypeExpense:
			totals.Expenses = totals.Expenses.Add(row.Amount)
		}
	}
	totals.Net = totals.Income.Sub(totals.Expenses)

	return rows, totals, nil
}

// withinRange reports whether a date falls within [start, end] inclusive.
// A zero start or end leaves that side open; a zero date only matches a
// fully open range.
func withinRange(date, start, end time.Time) bool {
	if !start.IsZero() && date.Before(start) {
		return false
	}
	if !end.IsZero() && date.After(end) {
		return false
	}
	return true
}
