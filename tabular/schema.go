/*
schema.go - Header normalization and required-column validation

PURPOSE:
  Source spreadsheets arrive with inconsistent header casing and stray
  whitespace ("Codigo_Cliente ", "STATUS"). Everything downstream addresses
  columns by canonical lowercase name, so normalization happens exactly once,
  right after load.

  Validation also happens exactly once: Require reports missing mandatory
  columns as a SchemaError, and Detect records which optional columns are
  present as a capability set. Views consult capabilities instead of
  re-checking column presence inline.

SEE ALSO:
  - errors.go: SchemaError
  - types.go: Table
*/
package tabular

import "strings"

// =============================================================================
// HEADER NORMALIZATION
// =============================================================================

// NormalizeHeader returns a copy of the table with every column name trimmed
// and lowercased. Duplicate names after normalization keep first-wins
// addressing via ColumnIndex.
func NormalizeHeader(t Table) Table {
	out := t.Clone()
	for i, c := range out.Columns {
		out.Columns[i] = strings.ToLower(strings.TrimSpace(c))
	}
	return out
}

// =============================================================================
// REQUIRED-COLUMN VALIDATION
// =============================================================================

// Require returns a SchemaError naming every column from cols absent from
// the table, or nil when all are present. Call after NormalizeHeader.
func Require(t Table, cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Table: t.Name, Missing: missing}
	}
	return nil
}

// =============================================================================
// CAPABILITY SET
// =============================================================================

// Capabilities records which optional columns a table carries. Computed once
// at load time; each downstream view checks the capabilities it needs and
// degrades alone when one is missing.
type Capabilities map[string]bool

// Detect builds the capability set for the given optional columns.
func Detect(t Table, optional ...string) Capabilities {
	caps := make(Capabilities, len(optional))
	for _, c := range optional {
		caps[c] = t.Has(c)
	}
	return caps
}

// Has reports whether the column was present at load time.
func (c Capabilities) Has(col string) bool { return c[col] }

// HasAll reports whether every listed column was present.
func (c Capabilities) HasAll(cols ...string) bool {
	for _, col := range cols {
		if !c[col] {
			return false
		}
	}
	return true
}
