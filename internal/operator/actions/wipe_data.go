package actions

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

// WipeData empties every collection, keeping the schema headers so the
// files stay well-formed and a later seed re-fires.
type WipeData struct {
	IAction
}

func (a *WipeData) Perform(ctx context.Context, store *storage.Storage) error {
	return store.WipeAll(ctx)
}
