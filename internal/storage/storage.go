package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/flowfox-labs/finance-server/internal/config"
	"github.com/flowfox-labs/finance-server/internal/storage/account"
	"github.com/flowfox-labs/finance-server/internal/storage/budget"
	"github.com/flowfox-labs/finance-server/internal/storage/category"
	"github.com/flowfox-labs/finance-server/internal/storage/transaction"
)

// Storage owns the four CSV-backed collections. Callers only ever hold
// transient in-memory snapshots; the on-disk representation belongs to the
// store alone.
type Storage struct {
	Dir          string
	Accounts     account.ITable
	Categories   category.ITable
	Transactions transaction.ITable
	Budgets      budget.ITable
}

// NewStorage resolves the data directory from config, creating it when
// absent, and wires up the collection tables.
func NewStorage(env *config.Config) (*Storage, error) {
	if err := os.MkdirAll(env.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", env.DataDir, err)
	}

	return &Storage{
		Dir:          env.DataDir,
		Accounts:     account.NewTable(env.DataDir),
		Categories:   category.NewTable(env.DataDir),
		Transactions: transaction.NewTable(env.DataDir),
		Budgets:      budget.NewTable(env.DataDir),
	}, nil
}

// DeleteCategoryOutcome reports what happened to a delete-by-name request.
// Guard conditions are result codes, not errors, so callers can pick the
// user-facing message per condition.
type DeleteCategoryOutcome string

const (
	DeleteCategoryDeleted  DeleteCategoryOutcome = "deleted"
	DeleteCategoryNotFound DeleteCategoryOutcome = "not-found"
	DeleteCategoryDefault  DeleteCategoryOutcome = "default"
	DeleteCategoryInUse    DeleteCategoryOutcome = "in-use"
)

// DeleteCategoryByName removes the category with the given name. The checks
// run in a fixed order: existence, then the default-protection flag, then
// transaction usage. A category that is both default and in use reports
// "default" because that check runs first.
func (s *Storage) DeleteCategoryByName(ctx context.Context, name string) (DeleteCategoryOutcome, error) {
	categories, err := s.Categories.Load(ctx)
	if err != nil {
		return "", err
	}

	var match *category.Category
	for i := range categories {
		if categories[i].Name == name {
			match = &categories[i]
			break
		}
	}
	if match == nil {
		return DeleteCategoryNotFound, nil
	}
	if match.IsDefault {
		return DeleteCategoryDefault, nil
	}

	transactions, err := s.Transactions.Load(ctx)
	if err != nil {
		return "", err
	}
	for _, tx := range transactions {
		if tx.CategoryID == match.ID {
			return DeleteCategoryInUse, nil
		}
	}

	kept := categories[:0]
	for _, c := range categories {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	if err := s.Categories.Save(ctx, kept); err != nil {
		return "", err
	}
	return DeleteCategoryDeleted, nil
}

// WipeAll truncates every collection to its header row, keeping schemas in
// place so a later seed re-fires.
func (s *Storage) WipeAll(ctx context.Context) error {
	if err := s.Transactions.Save(ctx, nil); err != nil {
		return err
	}
	if err := s.Budgets.Save(ctx, nil); err != nil {
		return err
	}
	if err := s.Accounts.Save(ctx, nil); err != nil {
		return err
	}
	return s.Categories.Save(ctx, nil)
}
