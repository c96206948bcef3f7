package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flightprep/loadsheet/internal/chart"
	lserrors "github.com/flightprep/loadsheet/internal/errors"
	"github.com/flightprep/loadsheet/internal/output"
)

// chartOptions holds CLI flags for chart.
type chartOptions struct {
	loads  loadOptions
	out    string
	width  int
	height int
}

func newChartCmd() *cobra.Command {
	var opts chartOptions

	cmd := &cobra.Command{
		Use:   "chart <aircraft-id>",
		Short: "Render the loadsheet as an SVG envelope chart",
		Long: `Render the certified envelope in (mass moment, mass) space with the
takeoff and landing points plotted on it, and write it as an SVG file.

Examples:
  loadsheet chart ph-dha -m pilot=80 -m passenger=89 -m baggage=5 -o phdha.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, args[0], opts)
		},
	}

	addLoadFlags(cmd, &opts.loads)
	cmd.Flags().StringVarP(&opts.out, "output", "o", "", "Output file (default <aircraft-id>-wb.svg)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Chart width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "Chart height in pixels")

	return cmd
}

func runChart(cmd *cobra.Command, aircraftID string, opts chartOptions) error {
	out := output.New(cmd.OutOrStdout())

	plane, ac, err := buildAirplane(aircraftID, opts.loads)
	if err != nil {
		return err
	}

	svg, err := chart.Render(plane, chart.Options{Width: opts.width, Height: opts.height})
	if err != nil {
		return err
	}

	path := opts.out
	if path == "" {
		path = fmt.Sprintf("%s-wb.svg", ac.ID)
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return lserrors.Wrap(lserrors.CodeWriteFile, err)
	}

	out.Success("chart written to " + path)
	if !plane.WithinLimits() {
		out.Warning("loading is outside the envelope")
		return errOutsideLimits
	}
	return nil
}
