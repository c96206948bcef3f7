package cmd

import (
	"github.com/spf13/cobra"

	"github.com/flightprep/loadsheet/pkg/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(version.Info().String())
		},
	}
}
