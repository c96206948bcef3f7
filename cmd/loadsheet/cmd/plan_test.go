package cmd

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lserrors "github.com/flightprep/loadsheet/internal/errors"
)

func TestPlanCmd_WithinLimits(t *testing.T) {
	out, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80", "-m", "passenger=89", "-m", "baggage=5",
		"--fuel", "62")
	require.NoError(t, err)

	assert.Contains(t, out, "PH-DHA")
	assert.Contains(t, out, "WITHIN LIMITS")
	assert.Contains(t, out, "landing")
}

func TestPlanCmd_OutsideLimitsExitsNonAirworthy(t *testing.T) {
	out, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=95", "-m", "passenger=89", "-m", "baggage=5",
		"--fuel", "62")

	assert.ErrorIs(t, err, errOutsideLimits)
	assert.Contains(t, out, "OUTSIDE LIMITS")
}

func TestPlanCmd_MaxFuelSolver(t *testing.T) {
	out, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80", "-m", "passenger=89", "-m", "baggage=5")
	require.NoError(t, err)

	// The solver fills up to MTOW; the result must still be compliant.
	assert.Contains(t, out, "WITHIN LIMITS")
}

func TestPlanCmd_MaxFuelSolverSecondPreset(t *testing.T) {
	out, err := runCommand(t, "plan", "ph-svt",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80", "-m", "passenger=89", "-m", "baggage=5")
	require.NoError(t, err)

	assert.Contains(t, out, "PH-SVT")
	assert.Contains(t, out, "WITHIN LIMITS")
}

func TestPlanCmd_JSONFormat(t *testing.T) {
	out, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80", "-m", "passenger=89", "-m", "baggage=5",
		"--fuel", "62", "--format", "json")
	require.NoError(t, err)

	var rep struct {
		Callsign     string `json:"callsign"`
		WithinLimits bool   `json:"within_limits"`
		Moments      []struct {
			Name string `json:"name"`
		} `json:"moments"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "PH-DHA", rep.Callsign)
	assert.True(t, rep.WithinLimits)
	assert.Len(t, rep.Moments, 5)
}

func TestPlanCmd_UnknownAircraft(t *testing.T) {
	_, err := runCommand(t, "plan", "ph-xxx",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80")

	assert.ErrorIs(t, err, lserrors.New(lserrors.CodePresetNotFound, "", nil))
}

func TestPlanCmd_BadLoadFlag(t *testing.T) {
	_, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=heavy")

	assert.ErrorIs(t, err, lserrors.New(lserrors.CodeBadLoad, "", nil))
}

func TestPlanCmd_MissingStation(t *testing.T) {
	_, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80")

	assert.ErrorIs(t, err, lserrors.New(lserrors.CodeBadLoad, "", nil))
}

func TestPlanCmd_SaveAndLogbook(t *testing.T) {
	logbookPath := filepath.Join(t.TempDir(), "logbook.db")

	out, err := runCommand(t, "plan", "ph-dha",
		"--presets", hermeticPresets(t),
		"-m", "pilot=80", "-m", "passenger=89", "-m", "baggage=5",
		"--fuel", "62", "--save", "--logbook-path", logbookPath)
	require.NoError(t, err)
	assert.Contains(t, out, "saved to logbook")

	out, err = runCommand(t, "logbook", "--logbook-path", logbookPath)
	require.NoError(t, err)
	assert.Contains(t, out, "PH-DHA")
	assert.Contains(t, out, "within limits")
}
