package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flightprep/loadsheet/internal/wb"
)

func chartAirplane(pilotKg float64) *wb.Airplane {
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

func TestRender_ContainsEnvelopeAndPoints(t *testing.T) {
	svg, err := Render(chartAirplane(80.0), Options{})
	require.NoError(t, err)

	out := string(svg)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "PH-DHA")
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "<title>takeoff</title>")
	assert.Contains(t, out, "<title>landing</title>")
	assert.Contains(t, out, "Mass Moment [kg m]")
	assert.Contains(t, out, "Mass [kg]")
}

func TestRender_ColorsTakeoffPointByCompliance(t *testing.T) {
	svg, err := Render(chartAirplane(80.0), Options{})
	require.NoError(t, err)
	assert.Contains(t, string(svg), `fill="green"><title>takeoff</title>`)

	svg, err = Render(chartAirplane(95.0), Options{})
	require.NoError(t, err)
	assert.Contains(t, string(svg), `fill="red"><title>takeoff</title>`)
}

func TestRender_HonorsDimensions(t *testing.T) {
	svg, err := Render(chartAirplane(80.0), Options{Width: 400, Height: 300})
	require.NoError(t, err)
	assert.Contains(t, string(svg), `width="400" height="300"`)
}

func TestRender_DerivesUnsetAxisBoundsIndependently(t *testing.T) {
	svg, err := Render(chartAirplane(80.0), Options{YMax: 800})
	require.NoError(t, err)

	out := string(svg)
	// The overridden bound appears as the top mass tick.
	assert.Contains(t, out, ">800<")
	// The other bounds still come from the envelope: mass axis floor
	// 558 - 15% of the 192 kg span, moment axis floor 0.427*558 - 15%
	// of the span.
	assert.Contains(t, out, ">529<")
	assert.Contains(t, out, ">215<")
}

func TestRender_RequiresFuelLastForLandingPoint(t *testing.T) {
	plane := chartAirplane(80.0)
	plane.AddMoment(wb.NewMoment("charts", wb.ArmMeters(0.6), wb.Kilos(2.0)))

	_, err := Render(plane, Options{})
	assert.ErrorIs(t, err, wb.ErrLastMomentNotFuel)
}
