package tabular_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// HEADER NORMALIZATION
// =============================================================================

func TestNormalizeHeader_TrimsAndLowercases(t *testing.T) {
	// GIVEN: Headers with mixed case and stray whitespace
	raw := tabular.Table{
		Name:    "dClientes.xlsx",
		Columns: []string{" Codigo_Cliente ", "CLIENTE", "meta_dias"},
		Rows:    [][]string{{"C1", "Acme", "30"}},
	}

	// WHEN: Normalizing
	norm := tabular.NormalizeHeader(raw)

	// THEN: Canonical names, source untouched
	assert.Equal(t, []string{"codigo_cliente", "cliente", "meta_dias"}, norm.Columns)
	assert.Equal(t, " Codigo_Cliente ", raw.Columns[0], "source table must not be mutated")
	assert.Equal(t, "Acme", norm.Cell(0, "cliente"))
}

func TestNormalizeHeader_PreservesRows(t *testing.T) {
	raw := tabular.Table{
		Columns: []string{"A"},
		Rows:    [][]string{{"1"}, {"2"}, {"3"}},
	}
	norm := tabular.NormalizeHeader(raw)
	assert.Equal(t, 3, norm.NumRows())
}

// =============================================================================
// REQUIRED-COLUMN VALIDATION
// =============================================================================

func TestRequire_AllPresent(t *testing.T) {
	table := tabular.Table{Columns: []string{"codigo_cliente", "cliente"}}
	assert.NoError(t, tabular.Require(table, "codigo_cliente", "cliente"))
}

func TestRequire_MissingColumns_NamesThem(t *testing.T) {
	// GIVEN: A table without its join keys
	table := tabular.Table{Name: "fVisitas.xlsx", Columns: []string{"cliente"}}

	// WHEN: Requiring both keys
	err := tabular.Require(table, "codigo_cliente", "cliente", "responsavel")

	// THEN: SchemaError names the table and exactly the missing columns
	require.Error(t, err)
	var schemaErr *tabular.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "fVisitas.xlsx", schemaErr.Table)
	assert.Equal(t, []string{"codigo_cliente", "responsavel"}, schemaErr.Missing)
	assert.True(t, errors.Is(err, tabular.ErrMissingColumns))
	assert.True(t, tabular.IsSchemaError(err))
}

// =============================================================================
// CAPABILITY SET
// =============================================================================

func TestDetect_RecordsPresence(t *testing.T) {
	table := tabular.Table{Columns: []string{"status", "foco"}}
	caps := tabular.Detect(table, "status", "foco", "data_realizada")

	assert.True(t, caps.Has("status"))
	assert.True(t, caps.Has("foco"))
	assert.False(t, caps.Has("data_realizada"))
	assert.True(t, caps.HasAll("status", "foco"))
	assert.False(t, caps.HasAll("status", "data_realizada"))
}

// =============================================================================
// CELL ACCESS
// =============================================================================

func TestCell_RaggedRowsAreHarmless(t *testing.T) {
	table := tabular.Table{
		Columns: []string{"a", "b", "c"},
		Rows:    [][]string{{"1"}, {"1", "2", "3"}},
	}
	assert.Equal(t, "", table.Cell(0, "c"), "short row yields empty cell")
	assert.Equal(t, "3", table.Cell(1, "c"))
	assert.Equal(t, "", table.Cell(5, "a"), "out-of-range row yields empty cell")
	assert.Equal(t, "", table.Cell(0, "nope"), "unknown column yields empty cell")
}
