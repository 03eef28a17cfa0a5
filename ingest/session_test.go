package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwb/visit-engine/ingest"
	"github.com/nwb/visit-engine/reconcile"
	"github.com/nwb/visit-engine/tabular"
)

// =============================================================================
// FULL LOAD PIPELINE
// =============================================================================

func TestLoadAndReconcile_EndToEnd(t *testing.T) {
	// GIVEN: Two CSV sources with messy headers
	visitsPath := writeTemp(t, "fVisitas.csv", visitsCSV)
	clientsPath := writeTemp(t, "dClientes.csv", clientsCSV)

	// WHEN: Loading and reconciling
	session, err := ingest.LoadAndReconcile(visitsPath, clientsPath)
	require.NoError(t, err)

	// THEN: One reconciled row per visit, SLA targets joined in
	require.Len(t, session.Reconciled, 2)
	assert.True(t, session.Reconciled[0].Matched)
	assert.Equal(t, "30", session.Reconciled[0].TargetDays.Decimal.String())
	assert.Equal(t, "45", session.Reconciled[1].TargetDays.Decimal.String())

	// THEN: Capabilities reflect the loaded columns
	assert.True(t, session.Caps.Has(reconcile.ColStatus))
	assert.True(t, session.Caps.Has(reconcile.ColActualDate))
	assert.True(t, session.Caps.Has(reconcile.ColTargetDays))
	assert.False(t, session.Caps.Has(reconcile.ColPlannedDate))
	assert.False(t, session.Caps.Has(reconcile.ColDaysSince))
}

func TestReconcile_MissingJoinKey_FailsBeforeJoin(t *testing.T) {
	visits := tabular.Table{
		Name:    "fVisitas.csv",
		Columns: []string{"codigo_responsavel", "responsavel", "codigo_cliente", "cliente"},
	}
	clients := tabular.Table{
		Name:    "dClientes.csv",
		Columns: []string{"codigo_responsavel", "cliente"},
	}

	_, err := ingest.Reconcile(visits, clients)
	require.Error(t, err)

	var schemaErr *tabular.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "dClientes.csv", schemaErr.Table)
	assert.ElementsMatch(t, []string{"responsavel", "codigo_cliente"}, schemaErr.Missing)
}

func TestReconcile_EmptyVisitRows_EmptyViewsNoError(t *testing.T) {
	// GIVEN: A visit table with headers but zero rows
	visits := tabular.Table{
		Name:    "fVisitas.csv",
		Columns: []string{"codigo_responsavel", "responsavel", "codigo_cliente", "cliente", "status"},
	}
	clients := tabular.Table{
		Name:    "dClientes.csv",
		Columns: []string{"codigo_responsavel", "responsavel", "codigo_cliente", "cliente"},
		Rows:    [][]string{{"R1", "Alice", "C1", "Acme"}},
	}

	// WHEN: Reconciling
	session, err := ingest.Reconcile(visits, clients)
	require.NoError(t, err)

	// THEN: Zero reconciled rows and empty (not failing) aggregate views
	assert.Len(t, session.Reconciled, 0)
	counts, err := reconcile.AggregateBy(session.Reconciled, reconcile.ColStatus)
	require.NoError(t, err)
	assert.Empty(t, counts)
	assert.Empty(t, reconcile.PivotStatusByClient(session.Reconciled))
}
