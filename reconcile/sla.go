/*
sla.go - Visit recency and SLA classification

PURPOSE:
  Each client record may carry a target interval (meta_dias): the maximum
  allowed days between visits. This file computes, per client, the days since
  the last qualifying visit and classifies the gap against the target.

POLICY:
  An unknown target never classifies as overdue. Clients with no qualifying
  visit at all are absent from DaysSince output (not zero-filled) — they are
  the missing-clients view's concern, see missing.go.

SEE ALSO:
  - missing.go: Clients with no visit record at all
  - upcoming.go: Planned visits inside the scheduling window
*/
package reconcile

import (
	"sort"
	"time"

	"github.com/nwb/visit-engine/tabular"
	"github.com/shopspring/decimal"
)

// =============================================================================
// DAYS SINCE LAST VISIT
// =============================================================================

// DaysSince returns, per client name, the whole days between the reference
// date and the most recent actual date among rows with the given status.
// Clients with no qualifying visit are excluded.
func DaysSince(t ReconciledTable, reference time.Time, status string) map[string]int {
	latest := make(map[string]tabular.NullDate)
	for _, rec := range t {
		if rec.Status != status || !rec.ActualDate.Valid {
			continue
		}
		if cur, ok := latest[rec.ClientName]; !ok || rec.ActualDate.After(cur) {
			latest[rec.ClientName] = rec.ActualDate
		}
	}

	out := make(map[string]int, len(latest))
	for client, d := range latest {
		out[client] = tabular.DaysBetween(d.Time, reference)
	}
	return out
}

// =============================================================================
// SLA CLASSIFICATION
// =============================================================================

// SLAStatus classifies a day gap against a target interval. Overdue iff the
// target is known and the gap exceeds it; an unknown target is always on
// schedule.
func SLAStatus(daysSince int, target tabular.NullNumber) string {
	if target.Valid && decimal.NewFromInt(int64(daysSince)).GreaterThan(target.Decimal) {
		return SLAOverdue
	}
	return SLAOnSchedule
}

// BreachRow is one line of the SLA gap view.
type BreachRow struct {
	Client     string
	TargetDays tabular.NullNumber
	DaysSince  int
	Status     string
}

// SLABreachTable computes the per-client SLA gap view as of a date:
// days since the last realized visit against the client's target. Only
// clients with at least one realized visit appear. Sorted worst-first.
func SLABreachTable(t ReconciledTable, asOf time.Time) []BreachRow {
	gaps := DaysSince(t, asOf, StatusRealized)

	// First matched row per client supplies the target.
	targets := make(map[string]tabular.NullNumber)
	for _, rec := range t {
		if rec.Matched {
			if _, seen := targets[rec.ClientName]; !seen {
				targets[rec.ClientName] = rec.TargetDays
			}
		}
	}

	out := make([]BreachRow, 0, len(gaps))
	for client, days := range gaps {
		target := targets[client]
		out = append(out, BreachRow{
			Client:     client,
			TargetDays: target,
			DaysSince:  days,
			Status:     SLAStatus(days, target),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DaysSince != out[j].DaysSince {
			return out[i].DaysSince > out[j].DaysSince
		}
		return out[i].Client < out[j].Client
	})
	return out
}
