package account

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAdd_AssignsSequentialIDs(t *testing.T) {
	table := NewTable(t.TempDir())
	ctx := context.Background()

	assert.NoError(t, table.Add(ctx, "Chase Checking", TypeBank, decimal.RequireFromString("2000")))
	assert.NoError(t, table.Add(ctx, "Cash", TypeWallet, decimal.Zero))

	accounts, err := table.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, int64(1), accounts[0].ID)
	assert.Equal(t, int64(2), accounts[1].ID)
	assert.True(t, accounts[0].StartingBalance.Equal(decimal.RequireFromString("2000")))
	assert.False(t, accounts[0].CreatedAt.IsZero())
}

func TestAdd_DuplicateNameIsNoOp(t *testing.T) {
	table := NewTable(t.TempDir())
	ctx := context.Background()

	assert.NoError(t, table.Add(ctx, "Cash", TypeWallet, decimal.Zero))
	assert.NoError(t, table.Add(ctx, "Cash", TypeBank, decimal.RequireFromString("500")))

	accounts, err := table.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, TypeWallet, accounts[0].Type)
	assert.True(t, accounts[0].StartingBalance.Equal(decimal.Zero))
}

func TestAdd_NameMatchIsCaseSensitive(t *testing.T) {
	table := NewTable(t.TempDir())
	ctx := context.Background()

	assert.NoError(t, table.Add(ctx, "Cash", TypeWallet, decimal.Zero))
	assert.NoError(t, table.Add(ctx, "cash", TypeWallet, decimal.Zero))

	accounts, err := table.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestAdd_ReusesGapFreeMaxID(t *testing.T) {
	table := NewTable(t.TempDir())
	ctx := context.Background()

	assert.NoError(t, table.Save(ctx, []Account{{ID: 7, Name: "High"}}))
	assert.NoError(t, table.Add(ctx, "Next", TypeBank, decimal.Zero))

	accounts, err := table.Load(ctx)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, int64(8), accounts[1].ID)
}
