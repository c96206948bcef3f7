package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAircraftList(t *testing.T) {
	out, err := runCommand(t, "aircraft", "list", "--presets", hermeticPresets(t))
	require.NoError(t, err)

	assert.Contains(t, out, "ph-dha")
	assert.Contains(t, out, "PH-DHA")
	assert.Contains(t, out, "ph-svt")
	assert.Contains(t, out, "avgas")
	assert.Contains(t, out, "mogas")
}

func TestAircraftList_UserOverlay(t *testing.T) {
	userPath := filepath.Join(t.TempDir(), "aircraft.yaml")
	require.NoError(t, os.WriteFile(userPath, []byte(`
aircraft:
  - id: ph-abc
    callsign: PH-ABC
    fuel: avgas
    fuel_unit: liter
    tank_capacity: 100
    trip_fuel: 15
    stations:
      - name: empty
        arm: 0.4
        mass: 500
      - name: pilot
        arm: 0.5
      - name: fuel
        arm: 0.3
        fuel: true
    limits:
      minimum_weight: 550
      mtow: 750
      forward_cg: 420
      rearward_cg: 520
`), 0o644))

	out, err := runCommand(t, "aircraft", "list", "--presets", userPath)
	require.NoError(t, err)
	assert.Contains(t, out, "ph-abc")
	assert.Contains(t, out, "ph-dha")
}

func TestAircraftValidate_EmbeddedPresetsValid(t *testing.T) {
	out, err := runCommand(t, "aircraft", "validate", "--presets", hermeticPresets(t))
	require.NoError(t, err)
	assert.Contains(t, out, "aircraft presets valid")
}

func TestAircraftValidate_ReportsBrokenPreset(t *testing.T) {
	userPath := filepath.Join(t.TempDir(), "aircraft.yaml")
	require.NoError(t, os.WriteFile(userPath, []byte(`
aircraft:
  - id: ph-bad
    callsign: PH-BAD
    fuel: kerosene
    tank_capacity: 100
    trip_fuel: 15
    stations:
      - name: fuel
        arm: 0.3
        fuel: true
    limits:
      minimum_weight: 550
      mtow: 750
      forward_cg: 420
      rearward_cg: 520
`), 0o644))

	out, err := runCommand(t, "aircraft", "validate", "--presets", userPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 aircraft presets invalid")
	assert.Contains(t, out, "kerosene")
}
