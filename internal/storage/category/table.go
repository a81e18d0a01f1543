package category

import (
	"context"
	"time"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Table is the CSV-backed categories collection.
type Table struct {
	dir string
}

// NewTable creates a Table rooted at the given data directory.
func NewTable(dir string) *Table {
	return &Table{dir: dir}
}

// Load returns the full current contents of the collection.
func (t *Table) Load(ctx context.Context) ([]Category, error) {
	records, err := csvtable.Load(t.dir, Schema)
	if err != nil {
		return nil, err
	}

	categories := make([]Category, len(records))
	for i, record := range records {
		categories[i] = decode(record)
	}
	return categories, nil
}

// Save atomically replaces the collection with the given rows.
func (t *Table) Save(ctx context.Context, categories []Category) error {
	records := make([]csvtable.Record, len(categories))
	for i, c := range categories {
		records[i] = encode(c)
	}
	return csvtable.Save(t.dir, Schema, records)
}

// Replace runs one load → transform → save cycle.
func (t *Table) Replace(ctx context.Context, transform func([]Category) ([]Category, error)) error {
	categories, err := t.Load(ctx)
	if err != nil {
		return err
	}
	categories, err = transform(categories)
	if err != nil {
		return err
	}
	return t.Save(ctx, categories)
}

// Add appends a new category with a freshly assigned id and timestamp,
// silently deduplicating on exact name match.
func (t *Table) Add(ctx context.Context, name, kind string, isDefault bool) error {
	return t.Replace(ctx, func(categories []Category) ([]Category, error) {
		for _, c := range categories {
			if c.Name == name {
				return categories, nil
			}
		}
		return append(categories, Category{
			ID:        nextID(categories),
			Name:      name,
			Kind:      kind,
			IsDefault: isDefault,
			CreatedAt: time.Now().UTC(),
		}), nil
	})
}

// Export renders the collection verbatim as a CSV payload.
func (t *Table) Export(ctx context.Context) ([]byte, error) {
	categories, err := t.Load(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]csvtable.Record, len(categories))
	for i, c := range categories {
		records[i] = encode(c)
	}
	return csvtable.Encode(Schema, records)
}

func nextID(categories []Category) int64 {
	var max int64
	for _, c := range categories {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}
