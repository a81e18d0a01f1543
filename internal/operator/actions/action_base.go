package actions

import (
	"context"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

type IAction interface {
	Perform(ctx context.Context, store *storage.Storage) error
}
