package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Budget represents a monthly budget record, unique on (CategoryID, Period).
type Budget struct {
	ID         int64
	CategoryID int64
	Period     string
	Amount     decimal.Decimal
}

// Schema is the persisted column set for the budgets collection.
var Schema = csvtable.Schema{
	Name: "budgets",
	Columns: []csvtable.Column{
		{Name: "id", Kind: csvtable.Numeric},
		{Name: "category_id", Kind: csvtable.Numeric},
		{Name: "period", Kind: csvtable.Text},
		{Name: "amount", Kind: csvtable.Numeric},
	},
}

// ITable defines the storage operations for budgets.
type ITable interface {
	Load(ctx context.Context) ([]Budget, error)
	Save(ctx context.Context, budgets []Budget) error
	Replace(ctx context.Context, transform func([]Budget) ([]Budget, error)) error
	Upsert(ctx context.Context, categoryID int64, period string, amount decimal.Decimal) error
	Export(ctx context.Context) ([]byte, error)
}

func decode(record csvtable.Record) Budget {
	return Budget{
		ID:         csvtable.ParseInt(record["id"]),
		CategoryID: csvtable.ParseInt(record["category_id"]),
		Period:     record["period"],
		Amount:     csvtable.ParseDecimal(record["amount"]),
	}
}

func encode(b Budget) csvtable.Record {
	return csvtable.Record{
		"id":          csvtable.FormatID(b.ID),
		"category_id": csvtable.FormatID(b.CategoryID),
		"period":      b.Period,
		"amount":      b.Amount.String(),
	}
}
