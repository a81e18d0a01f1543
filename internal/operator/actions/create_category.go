package actions

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

// CreateCategory appends a new category, deduplicating on exact name.
type CreateCategory struct {
	Name      string
	Kind      string
	IsDefault bool
	IAction
}

func (a *CreateCategory) Perform(ctx context.Context, store *storage.Storage) error {
	return store.Categories.Add(ctx, a.Name, a.Kind, a.IsDefault)
}
