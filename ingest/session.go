/*
session.go - Load, normalize, validate, join: one pass

PURPOSE:
  Everything the dashboard needs for a session comes out of one load pass:
  both raw tables normalized and schema-checked, the typed record tables, the
  reconciled join, and the capability set for the optional analysis columns.
  The base tables are read-only from here on; every view recomputes from
  them.

FAILURE:
  A missing join key in either table is a tabular.SchemaError and the join
  does not run. Missing OPTIONAL columns are not errors — they only turn off
  the capabilities that depend on them.
*/
package ingest

import (
	"github.com/nwb/visit-engine/reconcile"
	"github.com/nwb/visit-engine/tabular"
)

// Session holds the loaded, reconciled state for one upload session.
type Session struct {
	Reconciled reconcile.ReconciledTable
	Visits     reconcile.VisitTable
	Clients    reconcile.ClientTable

	// Caps records which optional analysis columns were present at load
	// time; views consult it instead of re-checking columns inline.
	// meta_dias reflects the clients table, where the SLA target lives.
	Caps tabular.Capabilities
}

// LoadAndReconcile loads both source files and produces the session state.
func LoadAndReconcile(visitsPath, clientsPath string) (*Session, error) {
	visitsRaw, err := LoadFile(visitsPath)
	if err != nil {
		return nil, err
	}
	clientsRaw, err := LoadFile(clientsPath)
	if err != nil {
		return nil, err
	}
	return Reconcile(visitsRaw, clientsRaw)
}

// Reconcile normalizes, validates and joins two already-loaded raw tables.
func Reconcile(visitsRaw, clientsRaw tabular.Table) (*Session, error) {
	visitsRaw = tabular.NormalizeHeader(visitsRaw)
	clientsRaw = tabular.NormalizeHeader(clientsRaw)

	// Join keys are validated for BOTH tables before converting either, so
	// the error names every missing column up front.
	if err := tabular.Require(visitsRaw, reconcile.JoinKeys()...); err != nil {
		return nil, err
	}
	if err := tabular.Require(clientsRaw, reconcile.JoinKeys()...); err != nil {
		return nil, err
	}

	visits, err := reconcile.VisitsFromTable(visitsRaw)
	if err != nil {
		return nil, err
	}
	clients, err := reconcile.ClientsFromTable(clientsRaw)
	if err != nil {
		return nil, err
	}

	caps := tabular.Detect(visitsRaw, reconcile.OptionalColumns()...)
	caps[reconcile.ColTargetDays] = clientsRaw.Has(reconcile.ColTargetDays)

	return &Session{
		Reconciled: reconcile.Reconcile(visits, clients),
		Visits:     visits,
		Clients:    clients,
		Caps:       caps,
	}, nil
}
