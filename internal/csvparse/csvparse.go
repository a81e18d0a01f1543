package csvparse

import (
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowfox-labs/finance-server/internal/storage/csvtable"
)

// Row is one parsed row of a transaction upload. Account and Category are
// names, resolved (or auto-created) at insert time.
type Row struct {
	Date     time.Time
	Account  string
	Category string
	Type     string
	Amount   decimal.Decimal
	Note     string
}

var requiredHeaders = []string{"account", "amount", "category", "date", "type"}

// ParseTransactions parses a transaction-import upload. Headers are matched
// case-insensitively; `note` is optional. A missing required header fails
// the whole upload. Individual bad rows are reported per row and skipped,
// never aborting the rest of the file.
func ParseTransactions(content string) ([]Row, []string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("CSV must include headers: %s", strings.Join(requiredHeaders, ", "))
	}

	// Map lowercased header name to column index.
	cols := make(map[string]int, len(records[0]))
	for i, h := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}

	var missing []string
	for _, h := range requiredHeaders {
		if _, ok := cols[h]; !ok {
			missing = append(missing, h)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, nil, fmt.Errorf("CSV must include columns: %s (missing: %s)",
			strings.Join(requiredHeaders, ", "), strings.Join(missing, ", "))
	}

	cell := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Row
	var rowErrors []string
	for i, record := range records[1:] {
		rowNum := i + 2

		date := csvtable.ParseDate(cell(record, "date"))
		if date.IsZero() {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid date %q", rowNum, cell(record, "date")))
			continue
		}

		amount, err := decimal.NewFromString(cell(record, "amount"))
		if err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: invalid amount %q", rowNum, cell(record, "amount")))
			continue
		}

		accountName := cell(record, "account")
		categoryName := cell(record, "category")
		if accountName == "" || categoryName == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("row %d: account and category are required", rowNum))
			continue
		}

		rows = append(rows, Row{
			Date:     date,
			Account:  accountName,
			Category: categoryName,
			Type:     cell(record, "type"),
			Amount:   amount,
			Note:     cell(record, "note"),
		})
	}

	return rows, rowErrors, nil
}
