// Package report renders a fully built airplane for the terminal: the
// load breakdown, totals, CG, landing totals, and the compliance verdict.
// Like internal/chart it is a read-only consumer of wb.Airplane.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/flightprep/loadsheet/internal/wb"
)

// Styles holds the lipgloss styles for report rendering.
type Styles struct {
	Header lipgloss.Style
	Name   lipgloss.Style
	Number lipgloss.Style
	Good   lipgloss.Style
	Bad    lipgloss.Style
	Dim    lipgloss.Style
}

// DefaultStyles returns the styled palette for TTY output.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true),
		Name:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Number: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Good:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34")),
		Bad:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// PlainStyles returns unstyled output for pipes and NO_COLOR.
func PlainStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle(),
		Name:   lipgloss.NewStyle(),
		Number: lipgloss.NewStyle(),
		Good:   lipgloss.NewStyle(),
		Bad:    lipgloss.NewStyle(),
		Dim:    lipgloss.NewStyle(),
	}
}

// AutoStyles picks styled or plain output: plain when NO_COLOR is set or
// stdout is not a terminal.
func AutoStyles() Styles {
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		return PlainStyles()
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return PlainStyles()
	}
	return DefaultStyles()
}

// Text renders the load breakdown table and verdict.
func Text(plane *wb.Airplane, styles Styles) string {
	var b strings.Builder

	b.WriteString(styles.Header.Render(plane.Callsign()) + "\n\n")
	fmt.Fprintf(&b, "%-12s %10s %14s %12s %12s\n",
		"station", "arm [m]", "load", "mass [kg]", "moment [kgm]")
	b.WriteString(styles.Dim.Render(strings.Repeat("-", 64)) + "\n")

	for _, m := range plane.Moments() {
		load := m.Mass().String()
		if m.Mass().IsFuel() {
			load = fmt.Sprintf("%s @ %s", m.Mass().String(), m.Mass().Unit())
		}
		fmt.Fprintf(&b, "%-12s %10.4f %14s %12.2f %12.2f\n",
			styles.Name.Render(m.Name()), m.LeverArm().Meter(), load,
			m.Mass().Kilo(), m.Total().KgM())
	}

	b.WriteString(styles.Dim.Render(strings.Repeat("-", 64)) + "\n")
	fmt.Fprintf(&b, "%-12s %10s %14s %12.2f %12.2f\n", "total", "", "",
		plane.TotalMass().Kilo(), plane.TotalMassMoment().KgM())

	if cg, ok := takeoffCG(plane); ok {
		limits := plane.Limits()
		fmt.Fprintf(&b, "%-12s %10.0f mm (limits %.0f..%.0f mm)\n", "cg",
			cg*1000, limits.ForwardCGLimit().Meter()*1000, limits.RearwardCGLimit().Meter()*1000)
	}

	if landingKg, err := plane.TotalMassLanding(); err == nil {
		landingKgM, _ := plane.TotalMassMomentLanding()
		fmt.Fprintf(&b, "%-12s %10s %14s %12.2f %12.2f\n", "landing", "",
			plane.FuelConsumptionTrip().String()+" burned", landingKg.Kilo(), landingKgM.KgM())
	}

	b.WriteString("\n")
	if plane.WithinLimits() {
		b.WriteString(styles.Good.Render("WITHIN LIMITS") + "\n")
	} else {
		b.WriteString(styles.Bad.Render("OUTSIDE LIMITS") + "\n")
	}
	return b.String()
}

// jsonMoment mirrors the read-only accessor contract for one load.
type jsonMoment struct {
	Name      string   `json:"name"`
	ArmMeters float64  `json:"arm_m"`
	MassKg    float64  `json:"mass_kg"`
	MomentKgM float64  `json:"moment_kgm"`
	FuelType  string   `json:"fuel_type,omitempty"`
	Volume    *float64 `json:"volume,omitempty"`
	Unit      string   `json:"volume_unit,omitempty"`
}

type jsonLimits struct {
	MinimumWeightKg float64 `json:"minimum_weight_kg"`
	MTOWKg          float64 `json:"mtow_kg"`
	ForwardCGM      float64 `json:"forward_cg_m"`
	RearwardCGM     float64 `json:"rearward_cg_m"`
}

type jsonReport struct {
	Callsign       string       `json:"callsign"`
	Moments        []jsonMoment `json:"moments"`
	Limits         jsonLimits   `json:"limits"`
	TotalMassKg    float64      `json:"total_mass_kg"`
	TotalMomentKgM float64      `json:"total_moment_kgm"`
	CGM            *float64     `json:"cg_m,omitempty"`
	WithinLimits   bool         `json:"within_limits"`
	LandingMassKg  *float64     `json:"landing_mass_kg,omitempty"`
	LandingKgM     *float64     `json:"landing_moment_kgm,omitempty"`
}

// JSON renders the full accessor surface of the airplane as JSON.
func JSON(plane *wb.Airplane) ([]byte, error) {
	limits := plane.Limits()
	rep := jsonReport{
		Callsign: plane.Callsign(),
		Limits: jsonLimits{
			MinimumWeightKg: limits.MinimumWeight().Kilo(),
			MTOWKg:          limits.MTOW().Kilo(),
			ForwardCGM:      limits.ForwardCGLimit().Meter(),
			RearwardCGM:     limits.RearwardCGLimit().Meter(),
		},
		TotalMassKg:    plane.TotalMass().Kilo(),
		TotalMomentKgM: plane.TotalMassMoment().KgM(),
		WithinLimits:   plane.WithinLimits(),
	}

	for _, m := range plane.Moments() {
		jm := jsonMoment{
			Name:      m.Name(),
			ArmMeters: m.LeverArm().Meter(),
			MassKg:    m.Mass().Kilo(),
			MomentKgM: m.Total().KgM(),
		}
		if ft, ok := m.Mass().FuelType(); ok {
			jm.FuelType = ft.String()
			if v, ok := m.Mass().Volume(); ok {
				value := v.ToLiter()
				unit := "L"
				if v.Unit() == wb.UnitGallon {
					value = v.ToGallon()
					unit = "gal"
				}
				jm.Volume = &value
				jm.Unit = unit
			}
		}
		rep.Moments = append(rep.Moments, jm)
	}

	if cg, ok := takeoffCG(plane); ok {
		rep.CGM = &cg
	}
	if landingKg, err := plane.TotalMassLanding(); err == nil {
		kg := landingKg.Kilo()
		rep.LandingMassKg = &kg
		if landingKgM, err := plane.TotalMassMomentLanding(); err == nil {
			kgm := landingKgM.KgM()
			rep.LandingKgM = &kgm
		}
	}

	return json.MarshalIndent(rep, "", "  ")
}

func takeoffCG(plane *wb.Airplane) (float64, bool) {
	kg := plane.TotalMass().Kilo()
	if kg == 0 {
		return 0, false
	}
	return plane.TotalMassMoment().KgM() / kg, true
}
