package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExportCollection_Accounts(t *testing.T) {
	store := newTestStorage(t)
	svc := NewTransferService(store)
	ctx := context.Background()

	assert.NoError(t, store.Accounts.Add(ctx, "Checking", "bank", decimal.RequireFromString("2000")))

	data, err := svc.ExportCollection(ctx, "accounts")
	assert.NoError(t, err)
	assert.Contains(t, string(data), "id,name,type,starting_balance,created_at\n")
	assert.Contains(t, string(data), "1,Checking,bank,2000,")
}

func TestExportCollection_EmptyIsHeaderOnly(t *testing.T) {
	svc := NewTransferService(newTestStorage(t))

	data, err := svc.ExportCollection(context.Background(), "budgets")
	assert.NoError(t, err)
	assert.Equal(t, "id,category_id,period,amount\n", string(data))
}

func TestExportCollection_UnknownName(t *testing.T) {
	svc := NewTransferService(newTestStorage(t))

	_, err := svc.ExportCollection(context.Background(), "ledgers")
	assert.Error(t, err)
}

func TestExportAll(t *testing.T) {
	svc := NewTransferService(newTestStorage(t))

	payloads, err := svc.ExportAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, payloads, 4)
	for _, name := range []string{"accounts", "categories", "transactions", "budgets"} {
		assert.NotEmpty(t, payloads[name])
	}
}
