package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Account represents an account record.
type Account struct {
	ID              int64
	Name            string
	Type            string
	StartingBalance decimal.Decimal
	CreatedAt       time.Time
}

// Account types. Stored as plain text cells; unknown values load unchanged.
const (
	TypeBank   = "bank"
	TypeWallet = "wallet"
	TypeCard   = "card"
)

// Schema is the persisted column set for the accounts collection.
var Schema = csvtable.Schema{
	Name: "accounts",
	Columns: []csvtable.Column{
		{Name: "id", Kind: csvtable.Numeric},
		{Name: "name", Kind: csvtable.Text},
		{Name: "type", Kind: csvtable.Text},
		{Name: "starting_balance", Kind: csvtable.Numeric},
		{Name: "created_at", Kind: csvtable.Text},
	},
}

// ITable defines the storage operations for accounts.
// The abstraction lets tests swap in a mock without touching callers.
type ITable interface {
	Load(ctx context.Context) ([]Account, error)
	Save(ctx context.Context, accounts []Account) error
	Replace(ctx context.Context, transform func([]Account) ([]Account, error)) error
	Add(ctx context.Context, name, accountType string, startingBalance decimal.Decimal) error
	Export(ctx context.Context) ([]byte, error)
}

func decode(record csvtable.Record) Account {
	return Account{
		ID:              csvtable.ParseInt(record["id"]),
		Name:            record["name"],
		Type:            record["type"],
		StartingBalance: csvtable.ParseDecimal(record["starting_balance"]),
		CreatedAt:       csvtable.ParseTimestamp(record["created_at"]),
	}
}

func encode(a Account) csvtable.Record {
	return csvtable.Record{
		"id":               csvtable.FormatID(a.ID),
		"name":             a.Name,
		"type":             a.Type,
		"starting_balance": a.StartingBalance.String(),
		"created_at":       csvtable.FormatTimestamp(a.CreatedAt),
	}
}
