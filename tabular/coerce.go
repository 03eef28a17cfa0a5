/*
coerce.go - Null-tolerant cell coercion

PURPOSE:
  Spreadsheet cells are strings of uneven quality: ISO dates, Brazilian
  day-first dates, raw Excel serial numbers, comma decimal separators, or
  plain junk. Coercion never rejects a row — a cell that cannot be parsed
  becomes a null value and the row flows on.

COERCION RULES:
  Dates:   known layouts first, then Excel serials (excelize conversion)
  Numbers: decimal parsing, with "," accepted as the decimal separator

SEE ALSO:
  - types.go: NullDate, NullNumber
*/
package tabular

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// =============================================================================
// DATE COERCION
// =============================================================================

// dateLayouts are tried in order. Brazilian sources use day-first layouts;
// excelize's GetRows renders typed date cells with m-d-yy.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"02/01/2006 15:04",
	"02-01-2006",
	"1-2-06",
	"01-02-06 15:04",
	time.RFC3339,
}

// excelSerialMin guards serial detection: values below ~1900-03-01 are more
// likely stray integers than dates.
const excelSerialMin = 61

// ParseDate coerces a raw cell into a day-granular UTC date. Unparseable
// input yields a null date, never an error.
func ParseDate(raw string) NullDate {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NullDate{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NullDate{Time: Truncate(t), Valid: true}
		}
	}

	// Excel stores dates as serial day counts; untyped cells surface them
	// as bare numbers.
	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial >= excelSerialMin {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return NullDate{Time: Truncate(t), Valid: true}
		}
	}

	return NullDate{}
}

// =============================================================================
// NUMERIC COERCION
// =============================================================================

// ParseNumber coerces a raw cell into a decimal. Accepts "30", "30.5" and
// the Brazilian "30,5". Junk yields a null number, never an error.
func ParseNumber(raw string) NullNumber {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NullNumber{}
	}
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return NullNumber{}
	}
	return NullNumber{Decimal: d, Valid: true}
}
