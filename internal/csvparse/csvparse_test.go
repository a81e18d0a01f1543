package csvparse

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseTransactions_Valid(t *testing.T) {
	content := "date,account,category,type,amount,note\n" +
		"2024-01-15,Checking,Groceries,expense,45.50,weekly shop\n" +
		"2024-01-01,Checking,Salary,income,3000,\n"

	rows, rowErrors, err := ParseTransactions(content)
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Len(t, rows, 2)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), rows[0].Date)
	assert.Equal(t, "Checking", rows[0].Account)
	assert.Equal(t, "Groceries", rows[0].Category)
	assert.Equal(t, "expense", rows[0].Type)
	assert.True(t, rows[0].Amount.Equal(decimal.RequireFromString("45.50")))
	assert.Equal(t, "weekly shop", rows[0].Note)
}

func TestParseTransactions_HeadersCaseInsensitive(t *testing.T) {
	content := "Date,Account,Category,Type,Amount\n" +
		"2024-01-15,Checking,Groceries,expense,45.50\n"

	rows, rowErrors, err := ParseTransactions(content)
	assert.NoError(t, err)
	assert.Empty(t, rowErrors)
	assert.Len(t, rows, 1)
}

func TestParseTransactions_MissingHeadersFailFast(t *testing.T) {
	content := "date,note\n2024-01-15,something\n"

	rows, rowErrors, err := ParseTransactions(content)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "account")
	assert.Contains(t, err.Error(), "amount")
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "type")
	assert.Nil(t, rows)
	assert.Nil(t, rowErrors)
}

func TestParseTransactions_EmptyUpload(t *testing.T) {
	_, _, err := ParseTransactions("")
	assert.Error(t, err)
}

func TestParseTransactions_BadRowsSkippedNotFatal(t *testing.T) {
	content := "date,account,category,type,amount\n" +
		"not-a-date,Checking,Groceries,expense,10\n" +
		"2024-01-15,Checking,Groceries,expense,abc\n" +
		"2024-01-16,,Groceries,expense,10\n" +
		"2024-01-17,Checking,Groceries,expense,20\n"

	rows, rowErrors, err := ParseTransactions(content)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Len(t, rowErrors, 3)
	assert.Contains(t, rowErrors[0], "row 2")
	assert.Contains(t, rowErrors[1], "row 3")
	assert.Contains(t, rowErrors[2], "row 4")
}
