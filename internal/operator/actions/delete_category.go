package actions

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

// DeleteCategory removes the named category, subject to the store's guard
// precedence. The outcome is written back onto the action so the caller can
// read it after Process returns.
type DeleteCategory struct {
	Name    string
	Outcome storage.DeleteCategoryOutcome
	IAction
}

func (a *DeleteCategory) Perform(ctx context.Context, store *storage.Storage) error {
	outcome, err := store.DeleteCategoryByName(ctx, a.Name)
	if err != nil {
		return err
	}
	a.Outcome = outcome
	return nil
}
