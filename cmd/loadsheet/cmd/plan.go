package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	lserrors "github.com/flightprep/loadsheet/internal/errors"
	"github.com/flightprep/loadsheet/internal/logbook"
	"github.com/flightprep/loadsheet/internal/output"
	"github.com/flightprep/loadsheet/internal/report"
	"github.com/flightprep/loadsheet/internal/wb"
)

// planOptions holds CLI flags for plan.
type planOptions struct {
	loads       loadOptions
	format      string // "text", "json"
	save        bool
	logbookPath string
}

func newPlanCmd() *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan <aircraft-id>",
		Short: "Compute a loadsheet and check it against the envelope",
		Long: `Compute the weight and balance of an aircraft preset with the given
station loads, solve for the fuel load, and report totals, CG, landing
totals, and whether the result is inside the certified envelope.

Exit code 0 means within limits, 2 means outside limits.

Examples:
  loadsheet plan ph-dha --mass pilot=80 --mass passenger=89 --mass baggage=5
  loadsheet plan ph-dha -m pilot=80 -m passenger=89 -m baggage=5 --fuel 62
  loadsheet plan ph-dha -m pilot=80 -m passenger=89 -m baggage=5 --format json --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], opts)
		},
	}

	addLoadFlags(cmd, &opts.loads)
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Record the result in the logbook")
	cmd.Flags().StringVar(&opts.logbookPath, "logbook-path", logbook.DefaultPath(), "Logbook database path")

	return cmd
}

func runPlan(cmd *cobra.Command, aircraftID string, opts planOptions) error {
	out := output.New(cmd.OutOrStdout())

	plane, ac, err := buildAirplane(aircraftID, opts.loads)
	if err != nil {
		return err
	}

	switch opts.format {
	case "json":
		data, err := report.JSON(plane)
		if err != nil {
			return err
		}
		out.Result(string(data) + "\n")
	case "text":
		out.Result(report.Text(plane, report.AutoStyles()))
	default:
		return lserrors.Newf(lserrors.CodeBadLoad, nil, "unknown format %q", opts.format)
	}

	if opts.save {
		if err := saveEntry(opts.logbookPath, ac.ID, plane); err != nil {
			// A failed save must not change the verdict; surface it and
			// carry on.
			out.Warning("could not update logbook: " + err.Error())
			slog.Warn("logbook_save_failed", slog.String("error", err.Error()))
		} else {
			out.Status("saved to logbook")
		}
	}

	if !plane.WithinLimits() {
		return errOutsideLimits
	}
	return nil
}

func saveEntry(path, aircraftID string, plane *wb.Airplane) error {
	book, err := logbook.Open(path)
	if err != nil {
		return err
	}
	defer book.Close()

	entry := logbook.Entry{
		AircraftID:     aircraftID,
		Callsign:       plane.Callsign(),
		TotalMassKg:    plane.TotalMass().Kilo(),
		TotalMomentKgM: plane.TotalMassMoment().KgM(),
		WithinLimits:   plane.WithinLimits(),
	}
	if kg := entry.TotalMassKg; kg != 0 {
		entry.CGMeters = entry.TotalMomentKgM / kg
	}
	if landing, err := plane.TotalMassLanding(); err == nil {
		entry.LandingMassKg = landing.Kilo()
	}
	if landing, err := plane.TotalMassMomentLanding(); err == nil {
		entry.LandingMomentKgM = landing.KgM()
	}

	_, err = book.Save(entry)
	return err
}
