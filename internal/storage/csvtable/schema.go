package csvtable

// Kind classifies a column for default-value purposes: numeric columns pad
// with "0", everything else pads with the empty string.
type Kind int

const (
	Text Kind = iota
	Numeric
)

// Column is a single schema column.
type Column struct {
	Name string
	Kind Kind
}

// Default returns the cell value used when a record is missing this column.
func (c Column) Default() string {
	if c.Kind == Numeric {
		return "0"
	}
	return ""
}

// Schema describes one collection: its name (also the file basename) and the
// exact column set, in persisted order.
type Schema struct {
	Name    string
	Columns []Column
}

// Filename returns the collection's file name within the data directory.
func (s Schema) Filename() string {
	return s.Name + ".csv"
}

// Header returns the column names in schema order.
func (s Schema) Header() []string {
	header := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		header[i] = col.Name
	}
	return header
}
