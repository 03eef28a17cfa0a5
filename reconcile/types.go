// Package reconcile implements the visit-client reconciliation engine.
// It joins field-visit records onto the client roster, derives typed date and
// numeric fields, and produces the filtered and aggregated views the
// dashboard renders.
package reconcile

import (
	"errors"

	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// CANONICAL COLUMN NAMES (post-normalization)
// =============================================================================

const (
	ColResponsibleCode = "codigo_responsavel"
	ColResponsibleName = "responsavel"
	ColClientCode      = "codigo_cliente"
	ColClientName      = "cliente"
	ColPlannedDate     = "data_planejada"
	ColActualDate      = "data_realizada"
	ColStatus          = "status"
	ColFocus           = "foco"
	ColTargetDays      = "meta_dias"
	ColDaysSince       = "dias_sem"
)

// JoinKeys returns the composite natural key shared by both tables.
func JoinKeys() []string {
	return []string{ColResponsibleCode, ColResponsibleName, ColClientCode, ColClientName}
}

// OptionalColumns are the analysis columns views depend on individually.
func OptionalColumns() []string {
	return []string{ColStatus, ColFocus, ColPlannedDate, ColActualDate, ColTargetDays, ColDaysSince}
}

// =============================================================================
// STATUS AND SLA LABELS
// =============================================================================

// Visit status values as they appear in the source data. Anything else is
// free text and flows through aggregations untouched.
const (
	StatusRealized = "Realizado"
	StatusPlanned  = "Planejado"
)

// SLA classification labels.
const (
	SLAOverdue    = "Atrasado"
	SLAOnSchedule = "Dentro do Prazo"
)

// OtherBucket collects minor categories in BucketMinorCategories.
const OtherBucket = "Outros"

// =============================================================================
// RECORDS
// =============================================================================

// Key is the four-field composite natural key joining visits to clients.
type Key struct {
	ResponsibleCode string
	ResponsibleName string
	ClientCode      string
	ClientName      string
}

// ClientRecord is one row of the client roster. Uniqueness of the composite
// key is assumed, not enforced; duplicates resolve first-wins at join time.
type ClientRecord struct {
	Key
	TargetDays tabular.NullNumber // SLA: max allowed days between visits
}

// VisitRecord is one row of the visit log.
type VisitRecord struct {
	Key
	PlannedDate tabular.NullDate
	ActualDate  tabular.NullDate
	Status      string
	Focus       string
	DaysSince   tabular.NullNumber // source-supplied, not derived
}

// ReconciledRecord is a visit enriched with its matched client's SLA target.
// Matched distinguishes a genuine null target from an unmatched client.
type ReconciledRecord struct {
	VisitRecord
	TargetDays tabular.NullNumber
	Matched    bool
}

// ClientTable, VisitTable and ReconciledTable are loaded once per session and
// treated as read-only; every view derives a fresh value from them.
type (
	ClientTable     []ClientRecord
	VisitTable      []VisitRecord
	ReconciledTable []ReconciledRecord
)

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrUnknownGroupField is returned by AggregateBy for a field it cannot
	// group on.
	ErrUnknownGroupField = errors.New("unknown group field")
)
