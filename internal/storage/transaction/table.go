package transaction

import (
	"context"
	"time"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Table is the CSV-backed transactions collection.
type Table struct {
	dir string
}

// NewTable creates a Table rooted at the given data directory.
func NewTable(dir string) *Table {
	return &Table{dir: dir}
}

// Load returns the full current contents of the collection.
func (t *Table) Load(ctx context.Context) ([]Transaction, error) {
	records, err := csvtable.Load(t.dir, Schema)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(records))
	for i, record := range records {
		transactions[i] = decode(record)
	}
	return transactions, nil
}

// Save atomically replaces the collection with the given rows.
func (t *Table) Save(ctx context.Context, transactions []Transaction) error {
	records := make([]csvtable.Record, len(transactions))
	for i, tx := range transactions {
		records[i] = encode(tx)
	}
	return csvtable.Save(t.dir, Schema, records)
}

// Replace runs one load → transform → save cycle.
func (t *Table) Replace(ctx context.Context, transform func([]Transaction) ([]Transaction, error)) error {
	transactions, err := t.Load(ctx)
	if err != nil {
		return err
	}
	transactions, err = transform(transactions)
	if err != nil {
		return err
	}
	return t.Save(ctx, transactions)
}

// Add appends unconditionally, assigning id and timestamp. Unlike accounts
// and categories there is no dedupe.
func (t *Table) Add(ctx context.Context, create Create) error {
	return t.Replace(ctx, func(transactions []Transaction) ([]Transaction, error) {
		return append(transactions, Transaction{
			ID:         nextID(transactions),
			AccountID:  create.AccountID,
			CategoryID: create.CategoryID,
			Amount:     create.Amount,
			Type:       create.Type,
			Date:       create.Date,
			Note:       create.Note,
			CreatedAt:  time.Now().UTC(),
		}), nil
	})
}

// Export renders the collection verbatim as a CSV payload.
func (t *Table) Export(ctx context.Context) ([]byte, error) {
	transactions, err := t.Load(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]csvtable.Record, len(transactions))
	for i, tx := range transactions {
		records[i] = encode(tx)
	}
	return csvtable.Encode(Schema, records)
}

func nextID(transactions []Transaction) int64 {
	var max int64
	for _, tx := range transactions {
		if tx.ID > max {
			max = tx.ID
		}
	}
	return max + 1
}
