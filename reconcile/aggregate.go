/*
aggregate.go - Groupby views over the reconciled table

PURPOSE:
  Every chart and summary table on the dashboard is a counting aggregation
  over the (filtered) reconciled table: visits by status, by focus, by
  responsible, status pivot per client, realized visits per month, top
  responsibles. All of them recompute from scratch on each call and return
  empty results for empty input — never an error.

SEE ALSO:
  - bucket.go: Minor-category bucketing applied on top of AggregateBy output
  - sla.go: Day-gap and SLA views
*/
package reconcile

import (
	"sort"
)

// =============================================================================
// GENERIC COUNTING AGGREGATION
// =============================================================================

// AggregateBy counts rows per distinct value of the given group field.
// Supported fields: status, foco, responsavel, cliente, codigo_responsavel,
// codigo_cliente. Anything else is ErrUnknownGroupField.
func AggregateBy(t ReconciledTable, field string) (map[string]int, error) {
	get, ok := fieldAccessor(field)
	if !ok {
		return nil, ErrUnknownGroupField
	}
	counts := make(map[string]int)
	for _, rec := range t {
		counts[get(rec)]++
	}
	return counts, nil
}

func fieldAccessor(field string) (func(ReconciledRecord) string, bool) {
	switch field {
	case ColStatus:
		return func(r ReconciledRecord) string { return r.Status }, true
	case ColFocus:
		return func(r ReconciledRecord) string { return r.Focus }, true
	case ColResponsibleName:
		return func(r ReconciledRecord) string { return r.ResponsibleName }, true
	case ColResponsibleCode:
		return func(r ReconciledRecord) string { return r.ResponsibleCode }, true
	case ColClientName:
		return func(r ReconciledRecord) string { return r.ClientName }, true
	case ColClientCode:
		return func(r ReconciledRecord) string { return r.ClientCode }, true
	default:
		return nil, false
	}
}

// =============================================================================
// STATUS PIVOT
// =============================================================================

// PivotStatusByClient counts visits per client per status.
func PivotStatusByClient(t ReconciledTable) map[string]map[string]int {
	pivot := make(map[string]map[string]int)
	for _, rec := range t {
		byStatus := pivot[rec.ClientName]
		if byStatus == nil {
			byStatus = make(map[string]int)
			pivot[rec.ClientName] = byStatus
		}
		byStatus[rec.Status]++
	}
	return pivot
}

// =============================================================================
// TIME-BUCKETED SERIES
// =============================================================================

// MonthCount is one point of a monthly series.
type MonthCount struct {
	Month string // "2006-01"
	Count int
}

// MonthlySeries counts visits with the given status per calendar month of
// the actual date, in chronological order. Rows with a null actual date are
// skipped.
func MonthlySeries(t ReconciledTable, status string) []MonthCount {
	counts := make(map[string]int)
	for _, rec := range t {
		if rec.Status != status || !rec.ActualDate.Valid {
			continue
		}
		counts[rec.ActualDate.Time.Format("2006-01")]++
	}

	out := make([]MonthCount, 0, len(counts))
	for m, c := range counts {
		out = append(out, MonthCount{Month: m, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// =============================================================================
// RANKED VIEWS
// =============================================================================

// FieldCount is one row of a ranked counting view.
type FieldCount struct {
	Value string
	Count int
}

// TopResponsibles ranks responsible agents by visit count, descending, ties
// broken by name for determinism, truncated to n. n <= 0 means no limit.
func TopResponsibles(t ReconciledTable, n int) []FieldCount {
	counts, _ := AggregateBy(t, ColResponsibleName)
	return rank(counts, n)
}

func rank(counts map[string]int, n int) []FieldCount {
	out := make([]FieldCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, FieldCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// UniqueClients counts distinct client names in the table.
func UniqueClients(t ReconciledTable) int {
	seen := make(map[string]bool)
	for _, rec := range t {
		seen[rec.ClientName] = true
	}
	return len(seen)
}
