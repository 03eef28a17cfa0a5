/*
errors.go - Centralized error types for the table engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Schema errors - Required columns missing; the dependent operation
     cannot run, but the session survives
  2. Load errors - Source file unreadable or in an unsupported format

Cell-level parse failures are NOT errors: coercion always degrades to a
null value (see coerce.go).

USAGE:
  Callers test with errors.Is/errors.As:

    var schemaErr *tabular.SchemaError
    if errors.As(err, &schemaErr) {
        disableView(schemaErr.Missing)
    }

SEE ALSO:
  - schema.go: Produces SchemaError
  - coerce.go: The null-degradation policy
*/
package tabular

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingColumns is returned when required columns are absent from a
	// table after header normalization.
	ErrMissingColumns = errors.New("required columns missing")

	// ErrEmptySheet is returned when a source has no header row at all.
	ErrEmptySheet = errors.New("sheet has no header row")

	// ErrUnsupportedFormat is returned when a source file extension is not
	// one of the recognized spreadsheet formats.
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// SchemaError names the table and the columns it is missing. It is fatal for
// the operation that needed those columns, never for the whole session.
type SchemaError struct {
	Table   string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q missing required columns: %s",
		e.Table, strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error { return ErrMissingColumns }

// IsSchemaError reports whether err is (or wraps) a schema violation.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingColumns)
}
