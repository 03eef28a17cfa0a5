/*
filter.go - The filter evaluator

PURPOSE:
  Translates user-selected criteria (client, responsible, multi-agent set,
  date range) into a single predicate over the reconciled table. Filters are
  pure: the source table is never mutated, identical criteria always produce
  identical output, and all criteria compose by logical AND.

SEMANTICS:
  - Absent criterion = identity (no restriction)
  - Responsibles: nil slice = absent; non-nil empty slice = match nothing
  - Date range: row kept iff actual OR planned date falls in [Start, End],
    end-of-day inclusive; a row with both dates null never matches

SEE ALSO:
  - reconcile.go: Produces the table being filtered
*/
package reconcile

import (
	"time"

	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// CRITERIA
// =============================================================================

// DateRange is a closed interval of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// contains reports whether d falls within the range. The end bound is
// widened by one day so a truncated timestamp on the last day still counts.
func (r DateRange) contains(d tabular.NullDate) bool {
	if !d.Valid {
		return false
	}
	start := tabular.Truncate(r.Start)
	endExclusive := tabular.Truncate(r.End).AddDate(0, 0, 1)
	return !d.Time.Before(start) && d.Time.Before(endExclusive)
}

// Criteria is the full set of user-selected filters. Zero values mean "no
// restriction", except Responsibles where an empty non-nil set matches
// nothing (an explicit empty multi-select).
type Criteria struct {
	ClientCode      string
	ResponsibleCode string
	Responsibles    []string // matched against responsible name
	DateRange       *DateRange
}

// =============================================================================
// PREDICATE APPLICATION
// =============================================================================

// Apply returns the rows of t matching every criterion, preserving order.
// The source table is untouched.
func Apply(t ReconciledTable, c Criteria) ReconciledTable {
	var nameSet map[string]bool
	if c.Responsibles != nil {
		nameSet = make(map[string]bool, len(c.Responsibles))
		for _, n := range c.Responsibles {
			nameSet[n] = true
		}
	}

	out := make(ReconciledTable, 0, len(t))
	for _, rec := range t {
		if c.ClientCode != "" && rec.ClientCode != c.ClientCode {
			continue
		}
		if c.ResponsibleCode != "" && rec.ResponsibleCode != c.ResponsibleCode {
			continue
		}
		if nameSet != nil && !nameSet[rec.ResponsibleName] {
			continue
		}
		if c.DateRange != nil &&
			!c.DateRange.contains(rec.ActualDate) &&
			!c.DateRange.contains(rec.PlannedDate) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
