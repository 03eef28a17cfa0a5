package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nwb/visit-engine/ingest"
)

func TestCache_HitOnIdenticalContent(t *testing.T) {
	// GIVEN: The same bytes loaded twice, under different names
	cache := ingest.NewCache()

	first, err := cache.Load([]byte(visitsCSV), "fVisitas.csv")
	require.NoError(t, err)
	second, err := cache.Load([]byte(visitsCSV), "upload-2.csv")
	require.NoError(t, err)

	// THEN: One cache entry; content identity, not file identity, is the key
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, first.Rows, second.Rows)
}

func TestCache_MissOnEditedContent(t *testing.T) {
	cache := ingest.NewCache()

	_, err := cache.Load([]byte(visitsCSV), "fVisitas.csv")
	require.NoError(t, err)
	_, err = cache.Load([]byte(visitsCSV+"R2,Bob,C3,Gamma,,Planejado,Plantio\n"), "fVisitas.csv")
	require.NoError(t, err)

	assert.Equal(t, 2, cache.Len())
}

func TestCache_HitReturnsClone(t *testing.T) {
	cache := ingest.NewCache()

	first, err := cache.Load([]byte(visitsCSV), "fVisitas.csv")
	require.NoError(t, err)
	first.Rows[0][0] = "tampered"

	second, err := cache.Load([]byte(visitsCSV), "fVisitas.csv")
	require.NoError(t, err)
	assert.Equal(t, "R1", second.Rows[0][0], "cached table must be isolated from callers")
}

func TestCache_Invalidate(t *testing.T) {
	cache := ingest.NewCache()
	_, err := cache.Load([]byte(visitsCSV), "fVisitas.csv")
	require.NoError(t, err)

	cache.Invalidate()
	assert.Equal(t, 0, cache.Len())
}
