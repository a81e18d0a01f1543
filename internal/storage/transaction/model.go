package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Transaction represents a transaction record. Amount is a non-negative
// magnitude; direction comes from Type, never from the sign.
type Transaction struct {
	ID         int64
	AccountID  int64
	CategoryID int64
	Amount     decimal.Decimal
	Type       string
	Date       time.Time
	Note       string
	CreatedAt  time.Time
}

// Transaction flow directions.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
	TypeSavings = "savings"
)

// Schema is the persisted column set for the transactions collection.
var Schema = csvtable.Schema{
	Name: "transactions",
	Columns: []csvtable.Column{
		{Name: "id", Kind: csvtable.Numeric},
		{Name: "account_id", Kind: csvtable.Numeric},
		{Name: "category_id", Kind: csvtable.Numeric},
		{Name: "amount", Kind: csvtable.Numeric},
		{Name: "type", Kind: csvtable.Text},
		{Name: "date", Kind: csvtable.Text},
		{Name: "note", Kind: csvtable.Text},
		{Name: "created_at", Kind: csvtable.Text},
	},
}

// ITable defines the storage operations for transactions.
type ITable interface {
	Load(ctx context.Context) ([]Transaction, error)
	Save(ctx context.Context, transactions []Transaction) error
	Replace(ctx context.Context, transform func([]Transaction) ([]Transaction, error)) error
	Add(ctx context.Context, create Create) error
	Export(ctx context.Context) ([]byte, error)
}

// Create is the input for appending a transaction. Referential targets are
// not verified at insert time; the category delete guard is the only
// integrity check the store applies.
type Create struct {
	AccountID  int64
	CategoryID int64
	Amount     decimal.Decimal
	Type       string
	Date       time.Time
	Note       string
}

func decode(record csvtable.Record) Transaction {
	return Transaction{
		ID:         csvtable.ParseInt(record["id"]),
		AccountID:  csvtable.ParseInt(record["account_id"]),
		CategoryID: csvtable.ParseInt(record["category_id"]),
		Amount:     csvtable.ParseDecimal(record["amount"]),
		Type:       record["type"],
		Date:       csvtable.ParseDate(record["date"]),
		Note:       record["note"],
		CreatedAt:  csvtable.ParseTimestamp(record["created_at"]),
	}
}

func encode(tx Transaction) csvtable.Record {
	return csvtable.Record{
		"id":          csvtable.FormatID(tx.ID),
		"account_id":  csvtable.FormatID(tx.AccountID),
		"category_id": csvtable.FormatID(tx.CategoryID),
		"amount":      tx.Amount.String(),
		"type":        tx.Type,
		"date":        csvtable.FormatDate(tx.Date),
		"note":        tx.Note,
		"created_at":  csvtable.FormatTimestamp(tx.CreatedAt),
	}
}
