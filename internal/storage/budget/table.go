package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Table is the CSV-backed budgets collection.
type Table struct {
	dir string
}

// NewTable creates a Table rooted at the given data directory.
func NewTable(dir string) *Table {
	return &Table{dir: dir}
}

// Load returns the full current contents of the collection.
func (t *Table) Load(ctx context.Context) ([]Budget, error) {
	records, err := csvtable.Load(t.dir, Schema)
	if err != nil {
		return nil, err
	}

	budgets := make([]Budget, len(records))
	for i, record := range records {
		budgets[i] = decode(record)
	}
	return budgets, nil
}

// Save atomically replaces the collection with the given rows.
func (t *Table) Save(ctx context.Context, budgets []Budget) error {
	records := make([]csvtable.Record, len(budgets))
	for i, b := range budgets {
		records[i] = encode(b)
	}
	return csvtable.Save(t.dir, Schema, records)
}

// Replace runs one load → transform → save cycle.
func (t *Table) Replace(ctx context.Context, transform func([]Budget) ([]Budget, error)) error {
	budgets, err := t.Load(ctx)
	if err != nil {
		return err
	}
	budgets, err = transform(budgets)
	if err != nil {
		return err
	}
	return t.Save(ctx, budgets)
}

// Upsert overwrites the amount of the row matching (categoryID, period) in
// place, or appends a new row when no match exists.
func (t *Table) Upsert(ctx context.Context, categoryID int64, period string, amount decimal.Decimal) error {
	return t.Replace(ctx, func(budgets []Budget) ([]Budget, error) {
		for i, b := range budgets {
			if b.CategoryID == categoryID && b.Period == period {
				budgets[i].Amount = amount
				return budgets, nil
			}
		}
		return append(budgets, Budget{
			ID:         nextID(budgets),
			CategoryID: categoryID,
			Period:     period,
			Amount:     amount,
		}), nil
	})
}

// Export renders the collection verbatim as a CSV payload.
func (t *Table) Export(ctx context.Context) ([]byte, error) {
	budgets, err := t.Load(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]csvtable.Record, len(budgets))
	for i, b := range budgets {
		records[i] = encode(b)
	}
	return csvtable.Encode(Schema, records)
}

func nextID(budgets []Budget) int64 {
	var max int64
	for _, b := range budgets {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}
