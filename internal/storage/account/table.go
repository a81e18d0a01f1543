package account

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Table is the CSV-backed accounts collection.
type Table struct {
	dir string
}

// NewTable creates a Table rooted at the given data directory.
func NewTable(dir string) *Table {
	return &Table{dir: dir}
}

// Load returns the full current contents of the collection.
func (t *Table) Load(ctx context.Context) ([]Account, error) {
	records, err := csvtable.Load(t.dir, Schema)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, len(records))
	for i, record := range records {
		accounts[i] = decode(record)
	}
	return accounts, nil
}

// Save atomically replaces the collection with the given rows.
func (t *Table) Save(ctx context.Context, accounts []Account) error {
	records := make([]csvtable.Record, len(accounts))
	for i, a := range accounts {
		records[i] = encode(a)
	}
	return csvtable.Save(t.dir, Schema, records)
}

// Replace runs one load → transform → save cycle. It is the single
// read-modify-write primitive; with writes serialized by the operator the
// cycle cannot interleave with another mutation.
func (t *Table) Replace(ctx context.Context, transform func([]Account) ([]Account, error)) error {
	accounts, err := t.Load(ctx)
	if err != nil {
		return err
	}
	accounts, err = transform(accounts)
	if err != nil {
		return err
	}
	return t.Save(ctx, accounts)
}

// Add appends a new account with a freshly assigned id and timestamp. An
// account with the exact same name already existing makes this a silent
// no-op, not an error.
func (t *Table) Add(ctx context.Context, name, accountType string, startingBalance decimal.Decimal) error {
	return t.Replace(ctx, func(accounts []Account) ([]Account, error) {
		for _, a := range accounts {
			if a.Name == name {
				return accounts, nil
			}
		}
		return append(accounts, Account{
			ID:              nextID(accounts),
			Name:            name,
			Type:            accountType,
			StartingBalance: startingBalance,
			CreatedAt:       time.Now().UTC(),
		}), nil
	})
}

// Export renders the collection verbatim as a CSV payload.
func (t *Table) Export(ctx context.Context) ([]byte, error) {
	accounts, err := t.Load(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]csvtable.Record, len(accounts))
	for i, a := range accounts {
		records[i] = encode(a)
	}
	return csvtable.Encode(Schema, records)
}

func nextID(accounts []Account) int64 {
	var max int64
	for _, a := range accounts {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}
