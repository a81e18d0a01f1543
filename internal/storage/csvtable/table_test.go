package csvtable

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = Schema{
	Name: "widgets",
	Columns: []Column{
		{Name: "id", Kind: Numeric},
		{Name: "name", Kind: Text},
		{Name: "amount", Kind: Numeric},
	},
}

func TestLoad_MissingFile_CreatesHeaderOnly(t *testing.T) {
	dir := t.TempDir()

	records, err := Load(dir, testSchema)
	assert.NoError(t, err)
	assert.Empty(t, records)

	data, err := os.ReadFile(filepath.Join(dir, "widgets.csv"))
	assert.NoError(t, err)
	assert.Equal(t, "id,name,amount\n", string(data))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	in := []Record{
		{"id": "1", "name": "first", "amount": "10.50"},
		{"id": "2", "name": "second", "amount": "0"},
	}
	assert.NoError(t, Save(dir, testSchema, in))

	out, err := Load(dir, testSchema)
	assert.NoError(t, err)
	assert.Equal(t, in, out)

	// A second save of the loaded records must not change the file.
	before, err := os.ReadFile(filepath.Join(dir, "widgets.csv"))
	assert.NoError(t, err)
	assert.NoError(t, Save(dir, testSchema, out))
	after, err := os.ReadFile(filepath.Join(dir, "widgets.csv"))
	assert.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSave_PadsMissingColumns(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, Save(dir, testSchema, []Record{{"id": "1"}}))

	data, err := os.ReadFile(filepath.Join(dir, "widgets.csv"))
	assert.NoError(t, err)
	assert.Equal(t, "id,name,amount\n1,,0\n", string(data))
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, Save(dir, testSchema, []Record{{"id": "1", "name": "x", "amount": "2"}}))

	_, err := os.Stat(filepath.Join(dir, "widgets.csv.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestLoad_KeysByFileHeader(t *testing.T) {
	dir := t.TempDir()

	// Extra column and short row, as a hand-edited file might have.
	content := "id,name,amount,extra\n1,thing,5,x\n2,short\n"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "widgets.csv"), []byte(content), 0o644))

	records, err := Load(dir, testSchema)
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "x", records[0]["extra"])
	assert.Equal(t, "short", records[1]["name"])
	_, hasAmount := records[1]["amount"]
	assert.False(t, hasAmount)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, int64(1), NextID(nil))
	assert.Equal(t, int64(8), NextID([]Record{
		{"id": "3"},
		{"id": "7"},
		{"id": "garbage"},
	}))
}
