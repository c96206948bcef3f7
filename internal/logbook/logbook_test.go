package logbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRecent(t *testing.T) {
	book, err := Open("")
	require.NoError(t, err)
	defer book.Close()

	first := Entry{
		AircraftID:       "ph-dha",
		Callsign:         "PH-DHA",
		TotalMassKg:      735.64,
		TotalMomentKgM:   330.03,
		CGMeters:         0.4487,
		WithinLimits:     true,
		LandingMassKg:    723.4,
		LandingMomentKgM: 326.05,
	}
	id, err := book.Save(first)
	require.NoError(t, err)
	assert.Positive(t, id)

	second := first
	second.TotalMassKg = 750.0
	second.WithinLimits = false
	_, err = book.Save(second)
	require.NoError(t, err)

	entries, err := book.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, 750.0, entries[0].TotalMassKg)
	assert.False(t, entries[0].WithinLimits)
	assert.Equal(t, "PH-DHA", entries[1].Callsign)
	assert.True(t, entries[1].WithinLimits)
	assert.InDelta(t, 0.4487, entries[1].CGMeters, 1e-9)
	assert.False(t, entries[1].CreatedAt.IsZero())
}

func TestRecent_HonorsLimit(t *testing.T) {
	book, err := Open("")
	require.NoError(t, err)
	defer book.Close()

	for i := 0; i < 5; i++ {
		_, err := book.Save(Entry{AircraftID: "ph-dha", Callsign: "PH-DHA"})
		require.NoError(t, err)
	}

	entries, err := book.Recent(3)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestOpen_FileBackedPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logbook.db")

	book, err := Open(path)
	require.NoError(t, err)

	_, err = book.Save(Entry{
		CreatedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		AircraftID: "ph-svt",
		Callsign:   "PH-SVT",
	})
	require.NoError(t, err)
	require.NoError(t, book.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.Recent(1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ph-svt", entries[0].AircraftID)
	assert.Equal(t, 2026, entries[0].CreatedAt.Year())
}
