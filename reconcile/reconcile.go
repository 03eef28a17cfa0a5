/*
reconcile.go - Table-to-record conversion and the reconciliation join

PURPOSE:
  Converts normalized raw tables into typed records (date and numeric
  derivation happens here, null-tolerantly) and performs the left outer join
  of visits onto clients by the four-field composite key.

INVARIANTS:
  - len(Reconcile(visits, clients)) == len(visits), always
  - Output order matches input visit order
  - TargetDays is valid only when a matching client row exists and carries
    a coercible meta_dias value
  - A malformed date or numeric cell nulls that field, never drops the row

SEE ALSO:
  - types.go: Record shapes and column names
  - filter.go: Predicate application on the reconciled table
*/
package reconcile

import (
	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// TABLE -> RECORD CONVERSION
// =============================================================================

// ClientsFromTable builds the typed roster from a normalized table. The four
// join keys are mandatory; meta_dias is coerced when present.
func ClientsFromTable(t tabular.Table) (ClientTable, error) {
	if err := tabular.Require(t, JoinKeys()...); err != nil {
		return nil, err
	}

	out := make(ClientTable, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		out = append(out, ClientRecord{
			Key:        keyFromRow(t, i),
			TargetDays: tabular.ParseNumber(t.Cell(i, ColTargetDays)),
		})
	}
	return out, nil
}

// VisitsFromTable builds the typed visit log from a normalized table. The
// four join keys are mandatory; dates and day counts derive to typed fields
// with nulls for anything unparseable.
func VisitsFromTable(t tabular.Table) (VisitTable, error) {
	if err := tabular.Require(t, JoinKeys()...); err != nil {
		return nil, err
	}

	out := make(VisitTable, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		out = append(out, VisitRecord{
			Key:         keyFromRow(t, i),
			PlannedDate: tabular.ParseDate(t.Cell(i, ColPlannedDate)),
			ActualDate:  tabular.ParseDate(t.Cell(i, ColActualDate)),
			Status:      t.Cell(i, ColStatus),
			Focus:       t.Cell(i, ColFocus),
			DaysSince:   tabular.ParseNumber(t.Cell(i, ColDaysSince)),
		})
	}
	return out, nil
}

func keyFromRow(t tabular.Table, row int) Key {
	return Key{
		ResponsibleCode: t.Cell(row, ColResponsibleCode),
		ResponsibleName: t.Cell(row, ColResponsibleName),
		ClientCode:      t.Cell(row, ColClientCode),
		ClientName:      t.Cell(row, ColClientName),
	}
}

// =============================================================================
// RECONCILIATION JOIN
// =============================================================================

// Reconcile left-joins visits onto clients on the composite key. Every visit
// row survives, in input order; visits with no roster match carry a null
// target and Matched=false. Duplicate roster keys resolve first-wins.
func Reconcile(visits VisitTable, clients ClientTable) ReconciledTable {
	targets := make(map[Key]tabular.NullNumber, len(clients))
	for _, c := range clients {
		if _, seen := targets[c.Key]; !seen {
			targets[c.Key] = c.TargetDays
		}
	}

	out := make(ReconciledTable, 0, len(visits))
	for _, v := range visits {
		rec := ReconciledRecord{VisitRecord: v}
		if target, ok := targets[v.Key]; ok {
			rec.TargetDays = target
			rec.Matched = true
		}
		out = append(out, rec)
	}
	return out
}
