/*
Package dashboard adapts engine output for presentation: KPI view models,
text rendering, and CSV/XLSX export.

PARTIAL DEGRADATION:
  Each view declares the optional columns it needs and checks the session's
  capability set. A missing column disables that one view with an explicit
  message; it never takes down the report. Empty results render an explicit
  "no data" line, never a blank section.
*/
package dashboard

import (
	"time"

	"github.com/nwb/visit-engine/config"
	"github.com/nwb/visit-engine/ingest"
	"github.com/nwb/visit-engine/reconcile"
	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// KPI VIEW
// =============================================================================

// KPIs are the headline numbers of the filtered table.
type KPIs struct {
	TotalVisits   int
	Realized      int
	Planned       int
	UniqueClients int

	// StatusKnown is false when the status column is absent; Realized and
	// Planned are zero and should render as unavailable, not as zero counts.
	StatusKnown bool
}

// ComputeKPIs derives the headline numbers from a (filtered) table.
func ComputeKPIs(t reconcile.ReconciledTable, caps tabular.Capabilities) KPIs {
	k := KPIs{
		TotalVisits:   len(t),
		UniqueClients: reconcile.UniqueClients(t),
		StatusKnown:   caps.Has(reconcile.ColStatus),
	}
	if !k.StatusKnown {
		return k
	}
	for _, rec := range t {
		switch rec.Status {
		case reconcile.StatusRealized:
			k.Realized++
		case reconcile.StatusPlanned:
			k.Planned++
		}
	}
	return k
}

// =============================================================================
// FULL REPORT VIEW MODEL
// =============================================================================

// Section is one renderable block of the report. Disabled carries the
// missing-capability message when the view cannot be produced.
type Section struct {
	Title    string
	Disabled string
	Rows     [][]string
}

// Report is the whole dashboard as renderable sections.
type Report struct {
	AsOf     time.Time
	KPIs     KPIs
	Sections []Section
}

// BuildReport assembles every view from the session, the filter criteria and
// the policy configuration. Views missing their columns come back disabled;
// views with no rows come back empty (the renderer prints the no-data line).
func BuildReport(s *ingest.Session, criteria reconcile.Criteria, cfg config.Config, asOf time.Time) Report {
	filtered := reconcile.Apply(s.Reconciled, criteria)

	r := Report{
		AsOf: asOf,
		KPIs: ComputeKPIs(filtered, s.Caps),
	}
	r.Sections = append(r.Sections,
		statusSection(filtered, s.Caps),
		topResponsiblesSection(filtered, cfg.TopResponsibles),
		monthlySection(filtered, s.Caps),
		focusSection(filtered, s.Caps, cfg.BucketThreshold),
		slaSection(filtered, s.Caps, asOf),
		missingSection(s, criteria.ResponsibleCode, cfg),
		upcomingSection(filtered, s.Caps, asOf, cfg.UpcomingWindowDays),
	)
	return r
}

func disabled(title string, cols ...string) Section {
	msg := "unavailable: missing column(s)"
	for i, c := range cols {
		if i == 0 {
			msg = "unavailable: missing column " + c
		} else {
			msg += ", " + c
		}
	}
	return Section{Title: title, Disabled: msg}
}

func statusSection(t reconcile.ReconciledTable, caps tabular.Capabilities) Section {
	title := "Visits by Status"
	if !caps.Has(reconcile.ColStatus) {
		return disabled(title, reconcile.ColStatus)
	}
	counts, _ := reconcile.AggregateBy(t, reconcile.ColStatus)
	sec := Section{Title: title}
	for _, fc := range rankCounts(counts) {
		sec.Rows = append(sec.Rows, []string{fc.Value, itoa(fc.Count)})
	}
	return sec
}

func topResponsiblesSection(t reconcile.ReconciledTable, n int) Section {
	sec := Section{Title: "Top Responsibles"}
	for _, fc := range reconcile.TopResponsibles(t, n) {
		sec.Rows = append(sec.Rows, []string{fc.Value, itoa(fc.Count)})
	}
	return sec
}

func monthlySection(t reconcile.ReconciledTable, caps tabular.Capabilities) Section {
	title := "Realized Visits per Month"
	if !caps.HasAll(reconcile.ColStatus, reconcile.ColActualDate) {
		return disabled(title, reconcile.ColStatus, reconcile.ColActualDate)
	}
	sec := Section{Title: title}
	for _, mc := range reconcile.MonthlySeries(t, reconcile.StatusRealized) {
		sec.Rows = append(sec.Rows, []string{mc.Month, itoa(mc.Count)})
	}
	return sec
}

func focusSection(t reconcile.ReconciledTable, caps tabular.Capabilities, threshold float64) Section {
	title := "Focus Distribution"
	if !caps.Has(reconcile.ColFocus) {
		return disabled(title, reconcile.ColFocus)
	}
	counts, _ := reconcile.AggregateBy(t, reconcile.ColFocus)
	bucketed := reconcile.BucketMinorCategories(counts, threshold)
	sec := Section{Title: title}
	for _, fc := range rankCounts(bucketed) {
		sec.Rows = append(sec.Rows, []string{fc.Value, itoa(fc.Count)})
	}
	return sec
}

func slaSection(t reconcile.ReconciledTable, caps tabular.Capabilities, asOf time.Time) Section {
	title := "SLA Gaps"
	if !caps.HasAll(reconcile.ColStatus, reconcile.ColActualDate) {
		return disabled(title, reconcile.ColStatus, reconcile.ColActualDate)
	}
	sec := Section{Title: title}
	for _, row := range reconcile.SLABreachTable(t, asOf) {
		target := row.TargetDays.String()
		if target == "" {
			target = "-"
		}
		sec.Rows = append(sec.Rows, []string{row.Client, target, itoa(row.DaysSince), row.Status})
	}
	return sec
}

func missingSection(s *ingest.Session, responsibleCode string, cfg config.Config) Section {
	title := "Clients Without Visits"
	semantic := reconcile.MissingSemantic(cfg.MissingSemantic)
	if semantic == reconcile.NeverCompleted && !s.Caps.Has(reconcile.ColStatus) {
		return disabled(title, reconcile.ColStatus)
	}
	sec := Section{Title: title}
	for _, name := range reconcile.MissingClients(s.Clients, s.Visits, responsibleCode, semantic) {
		sec.Rows = append(sec.Rows, []string{name})
	}
	return sec
}

func upcomingSection(t reconcile.ReconciledTable, caps tabular.Capabilities, asOf time.Time, windowDays int) Section {
	title := "Planned Visits (next " + itoa(windowDays) + " days)"
	if !caps.HasAll(reconcile.ColStatus, reconcile.ColPlannedDate) {
		return disabled(title, reconcile.ColStatus, reconcile.ColPlannedDate)
	}
	sec := Section{Title: title}
	for _, rec := range reconcile.PlannedUpcoming(t, asOf, windowDays) {
		sec.Rows = append(sec.Rows, []string{
			rec.PlannedDate.String(), rec.ClientName, rec.ResponsibleName, rec.Focus,
		})
	}
	return sec
}
