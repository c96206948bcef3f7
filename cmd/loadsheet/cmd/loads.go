package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	lserrors "github.com/flightprep/loadsheet/internal/errors"
	"github.com/flightprep/loadsheet/internal/preset"
	"github.com/flightprep/loadsheet/internal/wb"
)

// loadOptions are the per-flight load flags shared by plan and chart.
type loadOptions struct {
	masses     []string // "station=kg"
	fuel       string   // "max" or a volume in the preset's unit
	presetPath string
}

func addLoadFlags(cmd *cobra.Command, opts *loadOptions) {
	cmd.Flags().StringSliceVarP(&opts.masses, "mass", "m", nil, "Station load as name=kg (repeatable)")
	cmd.Flags().StringVar(&opts.fuel, "fuel", "max", "Fuel load: 'max' for the largest permissible load, or a volume in the aircraft's fuel unit")
	cmd.Flags().StringVar(&opts.presetPath, "presets", preset.DefaultUserPath(), "User aircraft preset file overlaying the built-in presets")
}

// parseMasses parses repeated name=kg flags.
func parseMasses(pairs []string) (map[string]float64, error) {
	masses := make(map[string]float64, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, lserrors.Newf(lserrors.CodeBadLoad, nil, "bad load %q, expected name=kg", pair)
		}
		kg, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, lserrors.Newf(lserrors.CodeBadLoad, err, "bad load %q: %q is not a number", pair, value)
		}
		masses[name] = kg
	}
	return masses, nil
}

// buildAirplane resolves the aircraft preset and assembles the fully
// loaded airplane, fuel moment included.
func buildAirplane(id string, opts loadOptions) (*wb.Airplane, preset.Aircraft, error) {
	reg, err := preset.Load(opts.presetPath)
	if err != nil {
		return nil, preset.Aircraft{}, lserrors.Wrap(lserrors.CodePresetInvalid, err)
	}

	ac, ok := reg.Get(id)
	if !ok {
		return nil, preset.Aircraft{}, lserrors.Newf(lserrors.CodePresetNotFound, nil, "unknown aircraft %q", id).
			WithSuggestion("run 'loadsheet aircraft list'")
	}

	masses, err := parseMasses(opts.masses)
	if err != nil {
		return nil, preset.Aircraft{}, err
	}

	plane, err := ac.Build(masses)
	if err != nil {
		return nil, preset.Aircraft{}, lserrors.Wrap(lserrors.CodeBadLoad, err).
			WithSuggestion(fmt.Sprintf("stations for %s: %s", ac.ID, stationSummary(ac)))
	}

	var fuelVolume *float64
	if opts.fuel != "max" {
		v, err := strconv.ParseFloat(opts.fuel, 64)
		if err != nil {
			return nil, preset.Aircraft{}, lserrors.Newf(lserrors.CodeBadFuel, err, "bad fuel %q: expected 'max' or a volume", opts.fuel)
		}
		fuelVolume = &v
	}

	fuelMoment, err := ac.AddFuel(plane, fuelVolume)
	if err != nil {
		return nil, preset.Aircraft{}, fuelError(err)
	}

	slog.Info("airplane_built",
		slog.String("aircraft", ac.ID),
		slog.Float64("total_mass_kg", plane.TotalMass().Kilo()),
		slog.String("fuel", fuelMoment.Mass().String()),
		slog.Bool("within_limits", plane.WithinLimits()))

	return plane, ac, nil
}

// fuelError maps core solver failures onto CLI error codes.
func fuelError(err error) error {
	switch {
	case errors.Is(err, wb.ErrOutsideEnvelope):
		return lserrors.Wrap(lserrors.CodeOutsideEnvelope, err).
			WithSuggestion("the aircraft is over its limits before fueling; reduce station loads")
	case errors.Is(err, wb.ErrNoSolution):
		return lserrors.Wrap(lserrors.CodeNoSolution, err)
	default:
		return lserrors.Wrap(lserrors.CodeBadFuel, err)
	}
}

func stationSummary(ac preset.Aircraft) string {
	var names []string
	for _, s := range ac.Stations {
		if s.Mass == nil && !s.Fuel {
			names = append(names, s.Name)
		}
	}
	return strings.Join(names, ", ")
}
