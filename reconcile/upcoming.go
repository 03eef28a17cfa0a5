/*
upcoming.go - Planned visits inside the scheduling window
*/
package reconcile

import (
	"time"

	"github.com/nwb/visit-engine/tabular"
)

// DefaultUpcomingWindowDays is the default scheduling horizon: planned
// visits within the next 15 days. Configurable via the dashboard
// configuration.
const DefaultUpcomingWindowDays = 15

// PlannedUpcoming returns visits with status "Planejado" whose planned date
// falls in [asOf, asOf+windowDays], both ends inclusive, in input order.
func PlannedUpcoming(t ReconciledTable, asOf time.Time, windowDays int) ReconciledTable {
	window := DateRange{Start: asOf, End: tabular.Truncate(asOf).AddDate(0, 0, windowDays)}
	out := make(ReconciledTable, 0)
	for _, rec := range t {
		if rec.Status == StatusPlanned && window.contains(rec.PlannedDate) {
			out = append(out, rec)
		}
	}
	return out
}
