package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightprep/loadsheet/internal/wb"
)

func reportAirplane(pilotKg float64) *wb.Airplane {
	return wb.NewAirplane(
		"PH-DHA",
		[]wb.Moment{
			wb.NewMoment("empty", wb.ArmMeters(0.4294), wb.Kilos(517.0)),
			wb.NewMoment("pilot", wb.ArmMeters(0.515), wb.Kilos(pilotKg)),
			wb.NewMoment("passenger", wb.ArmMeters(0.515), wb.Kilos(89.0)),
			wb.NewMoment("baggage", wb.ArmMeters(1.3), wb.Kilos(5.0)),
			wb.NewMoment("fuel", wb.ArmMeters(0.325), wb.Fuel(wb.Avgas, wb.Liters(62.0))),
		},
		wb.NewLimits(wb.Kilos(558.0), wb.Kilos(750.0), wb.CGMillimeters(427.0), wb.CGMillimeters(523.0)),
		wb.Liters(17.0),
	)
}

func TestText_BreakdownAndVerdict(t *testing.T) {
	out := Text(reportAirplane(80.0), PlainStyles())

	assert.Contains(t, out, "PH-DHA")
	assert.Contains(t, out, "pilot")
	assert.Contains(t, out, "62.00L")
	assert.Contains(t, out, "0.72kg/L")
	assert.Contains(t, out, "landing")
	assert.Contains(t, out, "WITHIN LIMITS")

	out = Text(reportAirplane(95.0), PlainStyles())
	assert.Contains(t, out, "OUTSIDE LIMITS")
}

func TestText_SkipsLandingWhenFuelNotLast(t *testing.T) {
	plane := reportAirplane(80.0)
	plane.AddMoment(wb.NewMoment("charts", wb.ArmMeters(0.6), wb.Kilos(2.0)))

	out := Text(plane, PlainStyles())
	assert.NotContains(t, out, "landing")
}

func TestJSON_MirrorsAccessors(t *testing.T) {
	plane := reportAirplane(80.0)

	data, err := JSON(plane)
	require.NoError(t, err)

	var rep struct {
		Callsign string `json:"callsign"`
		Moments  []struct {
			Name     string   `json:"name"`
			MassKg   float64  `json:"mass_kg"`
			FuelType string   `json:"fuel_type"`
			Volume   *float64 `json:"volume"`
		} `json:"moments"`
		TotalMassKg   float64  `json:"total_mass_kg"`
		WithinLimits  bool     `json:"within_limits"`
		CGM           *float64 `json:"cg_m"`
		LandingMassKg *float64 `json:"landing_mass_kg"`
	}
	require.NoError(t, json.Unmarshal(data, &rep))

	assert.Equal(t, "PH-DHA", rep.Callsign)
	require.Len(t, rep.Moments, 5)
	assert.Equal(t, "avgas", rep.Moments[4].FuelType)
	require.NotNil(t, rep.Moments[4].Volume)
	assert.InDelta(t, 62.0, *rep.Moments[4].Volume, 1e-9)
	assert.InDelta(t, plane.TotalMass().Kilo(), rep.TotalMassKg, 1e-9)
	assert.True(t, rep.WithinLimits)
	require.NotNil(t, rep.CGM)
	require.NotNil(t, rep.LandingMassKg)

	landing, err := plane.TotalMassLanding()
	require.NoError(t, err)
	assert.InDelta(t, landing.Kilo(), *rep.LandingMassKg, 1e-9)
}
