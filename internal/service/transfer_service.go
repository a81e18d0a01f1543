package service

import (
	"context"
	"fmt"

	"github.com/flowfox-labs/finance-server/internal/storage"
)

// Collection names accepted by the export interface.
var exportCollections = []string{"accounts", "categories", "transactions", "budgets"}

// TransferService handles CSV export of store contents.
type TransferService struct {
	storage *storage.Storage
}

// NewTransferService creates a new TransferService.
func NewTransferService(store *storage.Storage) *TransferService {
	return &TransferService{storage: store}
}

// ExportCollection renders one collection as a CSV payload suitable for
// direct download: schema column order, all rows, verbatim.
func (s *TransferService) ExportCollection(ctx context.Context, name string) ([]byte, error) {
	switch name {
	case "accounts":
		return s.storage.Accounts.Export(ctx)
	case "categories":
		return s.storage.Categories.Export(ctx)
	case "transactions":
		return s.storage.Transactions.Export(ctx)
	case "budgets":
		return s.storage.Budgets.Export(ctx)
	default:
		return nil, fmt.Errorf("unknown collection %q: must be one of %v", name, exportCollections)
	}
}

// ExportAll renders every collection, keyed by collection name.
func (s *TransferService) ExportAll(ctx context.Context) (map[string][]byte, error) {
	payloads := make(map[string][]byte, len(exportCollections))
	for _, name := range exportCollections {
		data, err := s.ExportCollection(ctx, name)
		if err != nil {
			return nil, err
		}
		payloads[name] = data
	}
	return payloads, nil
}
