package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	lserrors "github.com/flightprep/loadsheet/internal/errors"
	"github.com/flightprep/loadsheet/internal/logbook"
)

func newLogbookCmd() *cobra.Command {
	var limit int
	var path string

	cmd := &cobra.Command{
		Use:   "logbook",
		Short: "Show recently computed loadsheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLogbook(cmd, path, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Number of entries to show")
	cmd.Flags().StringVar(&path, "logbook-path", logbook.DefaultPath(), "Logbook database path")

	return cmd
}

func runLogbook(cmd *cobra.Command, path string, limit int) error {
	book, err := logbook.Open(path)
	if err != nil {
		return lserrors.Wrap(lserrors.CodeLogbook, err)
	}
	defer book.Close()

	entries, err := book.Recent(limit)
	if err != nil {
		return lserrors.Wrap(lserrors.CodeLogbook, err)
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(w, "logbook is empty; compute one with 'loadsheet plan --save'")
		return nil
	}

	fmt.Fprintf(w, "%-17s %-10s %10s %10s %8s %s\n",
		"when", "callsign", "mass [kg]", "cg [mm]", "landing", "verdict")
	for _, e := range entries {
		verdict := "within limits"
		if !e.WithinLimits {
			verdict = "OUTSIDE LIMITS"
		}
		fmt.Fprintf(w, "%-17s %-10s %10.1f %10.0f %8.1f %s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Callsign,
			e.TotalMassKg, e.CGMeters*1000, e.LandingMassKg, verdict)
	}
	return nil
}
