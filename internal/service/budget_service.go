package service

import (
	"context"
	"sort"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/budget"
)

// BudgetService handles budget read paths.
type BudgetService struct {
	storage *storage.Storage
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Storage) *BudgetService {
	return &BudgetService{storage: store}
}

// ListBudgets returns budgets sorted by period then category id, optionally
// filtered to one period.
func (s *BudgetService) ListBudgets(ctx context.Context, period string) ([]budget.Budget, error) {
	budgets, err := s.storage.Budgets.Load(ctx)
	if err != nil {
		return nil, err
	}

	if period != "" {
		filtered := budgets[:0]
		for _, b := range budgets {
			if b.Period == period {
				filtered = append(filtered, b)
			}
		}
		budgets = filtered
	}

	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Period != budgets[j].Period {
			return budgets[i].Period < budgets[j].Period
		}
		return budgets[i].CategoryID < budgets[j].CategoryID
	})
	return budgets, nil
}
