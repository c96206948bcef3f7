// Package cmd provides the CLI commands for loadsheet.
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	lserrors "github.com/flightprep/loadsheet/internal/errors"
	"github.com/flightprep/loadsheet/internal/logging"
	"github.com/flightprep/loadsheet/pkg/version"
)

// errOutsideLimits marks a successfully computed loadsheet whose result
// is outside the envelope. Execute turns it into exit code 2 so scripts
// can tell "not airworthy" from "could not compute".
var errOutsideLimits = errors.New("outside limits")

// exit codes
const (
	exitOK            = 0
	exitError         = 1
	exitOutsideLimits = 2
)

var (
	debugMode      bool
	loggingCleanup func()
)

// NewRootCmd creates the root command for the loadsheet CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loadsheet",
		Short: "Weight and balance planning for small aircraft",
		Long: `loadsheet computes whether a loaded aircraft's weight and center of
gravity fall inside its certified envelope, and can solve for the
maximum fuel load at a station that keeps the aircraft inside it.

Aircraft are defined by presets; see 'loadsheet aircraft list'.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("loadsheet version {{.Version}}\n")

	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to ~/.loadsheet/logs/")
	cmd.PersistentPreRunE = startLogging
	cmd.PersistentPostRun = stopLogging

	cmd.AddCommand(newPlanCmd())
	cmd.AddCommand(newChartCmd())
	cmd.AddCommand(newAircraftCmd())
	cmd.AddCommand(newLogbookCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func startLogging(_ *cobra.Command, _ []string) error {
	cfg := logging.DefaultConfig()
	if debugMode {
		cfg = logging.DebugConfig()
	}
	cleanup, err := logging.Setup(cfg)
	if err != nil {
		return err
	}
	loggingCleanup = cleanup
	return nil
}

func stopLogging(_ *cobra.Command, _ []string) {
	if loggingCleanup != nil {
		loggingCleanup()
		loggingCleanup = nil
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	err := root.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errOutsideLimits):
		return exitOutsideLimits
	default:
		root.PrintErrln("Error:", lserrors.Display(err))
		return exitError
	}
}
