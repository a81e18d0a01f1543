package service

import (
	"github.com/flowfox-labs/finance-server/internal/storage"
)

// Service holds all business logic services. Services are read paths over
// fresh store snapshots; mutations go through the operator.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
	Budget      *BudgetService
	Report      *ReportService
	Transfer    *TransferService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Account:     NewAccountService(store),
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store),
		Budget:      NewBudgetService(store),
		Report:      NewReportService(store),
		Transfer:    NewTransferService(store),
	}
}
