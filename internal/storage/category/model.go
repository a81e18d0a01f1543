package category

import (
	"context"
	"time"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Category represents a category record.
type Category struct {
	ID        int64
	Name      string
	Kind      string
	IsDefault bool
	CreatedAt time.Time
}

// Category kinds.
const (
	KindExpense = "expense"
	KindIncome  = "income"
	KindSavings = "savings"
)

// Schema is the persisted column set for the categories collection.
var Schema = csvtable.Schema{
	Name: "categories",
	Columns: []csvtable.Column{
		{Name: "id", Kind: csvtable.Numeric},
		{Name: "name", Kind: csvtable.Text},
		{Name: "kind", Kind: csvtable.Text},
		{Name: "is_default", Kind: csvtable.Numeric},
		{Name: "created_at", Kind: csvtable.Text},
	},
}

// ITable defines the storage operations for categories.
type ITable interface {
	Load(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, categories []Category) error
	Replace(ctx context.Context, transform func([]Category) ([]Category, error)) error
	Add(ctx context.Context, name, kind string, isDefault bool) error
	Export(ctx context.Context) ([]byte, error)
}

func decode(record csvtable.Record) Category {
	return Category{
		ID:        csvtable.ParseInt(record["id"]),
		Name:      record["name"],
		Kind:      record["kind"],
		IsDefault: csvtable.ParseBool(record["is_default"]),
		CreatedAt: csvtable.ParseTimestamp(record["created_at"]),
	}
}

func encode(c Category) csvtable.Record {
	return csvtable.Record{
		"id":         csvtable.FormatID(c.ID),
		"name":       c.Name,
		"kind":       c.Kind,
		"is_default": csvtable.FormatBool(c.IsDefault),
		"created_at": csvtable.FormatTimestamp(c.CreatedAt),
	}
}
