package service

import (
	"context"
	"sort"

	"github.com/flowfox-labs/finance-server/internal/storage"
	"github.com/flowfox-labs/finance-server/internal/storage/account"
)

// AccountService handles account read paths.
type AccountService struct {
	storage *storage.Storage
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage) *AccountService {
	return &AccountService{storage: store}
}

// ListAccounts returns all accounts sorted by name.
func (s *AccountService) ListAccounts(ctx context.Context) ([]account.Account, error) {
	accounts, err := s.storage.Accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Name < accounts[j].Name
	})
	return accounts, nil
}
