package csvtable

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Record is one row keyed by column name. Cells hold the raw CSV text;
// collection packages decode them through the lenient parsers.
type Record map[string]string

// Load returns the full current contents of a collection file. When the file
// is absent it is first created empty, header only, so readers always see a
// well-formed table.
func Load(dir string, schema Schema) ([]Record, error) {
	path := filepath.Join(dir, schema.Filename())

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(dir, schema, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", schema.Filename(), err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", schema.Filename(), err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	// Records are keyed by the file's own header so tables with drifted
	// columns still load; decode fills anything the schema expects but the
	// file lacks.
	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}
		records = append(records, record)
	}

	return records, nil
}

// Save validates records against the schema (missing columns pad with
// type-appropriate defaults) and atomically replaces the collection file:
// the new content is written next to it and swapped in with a rename, so a
// reader never observes a partial write. All higher-level mutations funnel
// through here.
func Save(dir string, schema Schema, records []Record) error {
	data, err := Encode(schema, records)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, schema.Filename())
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", schema.Filename(), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", schema.Filename(), err)
	}

	return nil
}

// Encode renders records as CSV bytes in exact schema column order, header
// first. Used by Save and by the export interface.
func Encode(schema Schema, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(schema.Header()); err != nil {
		return nil, fmt.Errorf("encode %s header: %w", schema.Filename(), err)
	}

	row := make([]string, len(schema.Columns))
	for _, record := range records {
		for i, col := range schema.Columns {
			cell, ok := record[col.Name]
			if !ok {
				cell = col.Default()
			}
			row[i] = cell
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("encode %s row: %w", schema.Filename(), err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("encode %s: %w", schema.Filename(), err)
	}
	return buf.Bytes(), nil
}

// NextID assigns the identifier for a new row: max existing id + 1, or 1 for
// an empty table. Monotonic only under single-writer access.
func NextID(records []Record) int64 {
	var max int64
	for _, record := range records {
		if id := ParseInt(record["id"]); id > max {
			max = id
		}
	}
	return max + 1
}

// FormatID renders an integer identifier cell.
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
