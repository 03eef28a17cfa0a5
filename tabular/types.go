/*
Package tabular provides the core table engine.

PURPOSE:
  This package contains domain-agnostic types and algorithms for working with
  header-addressed tabular data. Whether the rows describe client rosters,
  visit logs, or anything else loaded from a spreadsheet, the same engine
  handles header normalization, schema validation, and null-tolerant cell
  coercion.

KEY CONCEPTS IN THIS FILE (types.go):
  - Table: An immutable-by-convention grid with named columns
  - NullDate / NullNumber: Coerced cell values that may be absent
  - DaysBetween: Whole-day arithmetic on truncated dates

DESIGN PRINCIPLES:
  1. Immutability: Tables are never modified in place; operations copy
  2. Tolerance: Malformed cells degrade to null values, never errors
  3. Precision: Uses decimal.Decimal for numeric cells to avoid float drift

SEE ALSO:
  - schema.go: Header normalization and required-column validation
  - coerce.go: Date and numeric cell coercion
  - errors.go: Error taxonomy
*/
package tabular

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TABLE - Named-column grid of string cells
// =============================================================================

// Table is a grid of raw string cells addressed by column name. Name
// identifies the source (file or sheet) for error messages.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of a column, or -1 when absent.
func (t Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Has reports whether the column exists.
func (t Table) Has(name string) bool { return t.ColumnIndex(name) >= 0 }

// Cell returns the raw value of a column in a row. Out-of-range access and
// missing columns both yield "" so ragged spreadsheet rows stay harmless.
func (t Table) Cell(row int, name string) string {
	i := t.ColumnIndex(name)
	if i < 0 || row < 0 || row >= len(t.Rows) || i >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][i]
}

// NumRows returns the number of data rows (header excluded).
func (t Table) NumRows() int { return len(t.Rows) }

// Clone returns a deep copy. Callers that need to reshape a table work on a
// clone so the loaded source stays read-only for the session.
func (t Table) Clone() Table {
	out := Table{Name: t.Name, Columns: append([]string{}, t.Columns...)}
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append([]string{}, r...)
	}
	return out
}

// =============================================================================
// NULLABLE CELL VALUES
// =============================================================================

// NullDate is a date cell that may be absent or unparseable.
type NullDate struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a valid day-granular date in UTC.
func NewDate(year int, month time.Month, day int) NullDate {
	return NullDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func (d NullDate) Before(other NullDate) bool { return d.Time.Before(other.Time) }
func (d NullDate) After(other NullDate) bool  { return d.Time.After(other.Time) }

// String formats as 2006-01-02, or "" for null.
func (d NullDate) String() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("2006-01-02")
}

// NullNumber is a numeric cell that may be absent or unparseable.
type NullNumber struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewNumber builds a valid numeric value from an int.
func NewNumber(v int) NullNumber {
	return NullNumber{Decimal: decimal.NewFromInt(int64(v)), Valid: true}
}

// String formats the decimal, or "" for null.
func (n NullNumber) String() string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.String()
}

// =============================================================================
// DATE ARITHMETIC
// =============================================================================

// Truncate drops the time-of-day component, keeping the UTC calendar day.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns to minus from in whole days, both truncated to
// day granularity first.
func DaysBetween(from, to time.Time) int {
	return int(Truncate(to).Sub(Truncate(from)).Hours() / 24)
}
