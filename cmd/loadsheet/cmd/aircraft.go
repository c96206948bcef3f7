package cmd

import (
	"fmt"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/flightprep/loadsheet/internal/output"
	"github.com/flightprep/loadsheet/internal/preset"
)

func newAircraftCmd() *cobra.Command {
	var presetPath string

	cmd := &cobra.Command{
		Use:   "aircraft",
		Short: "Inspect the available aircraft presets",
	}
	cmd.PersistentFlags().StringVar(&presetPath, "presets", preset.DefaultUserPath(), "User aircraft preset file overlaying the built-in presets")

	list := &cobra.Command{
		Use:   "list",
		Short: "List aircraft presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAircraftList(cmd, presetPath)
		},
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate every aircraft preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAircraftValidate(cmd, presetPath)
		},
	}

	cmd.AddCommand(list)
	cmd.AddCommand(validate)
	return cmd
}

func runAircraftList(cmd *cobra.Command, presetPath string) error {
	reg, err := preset.Load(presetPath)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%-10s %-10s %-6s %10s %12s\n", "id", "callsign", "fuel", "mtow [kg]", "tank")
	for _, id := range reg.IDs() {
		ac, _ := reg.Get(id)
		fmt.Fprintf(w, "%-10s %-10s %-6s %10.0f %12s\n",
			ac.ID, ac.Callsign, ac.Fuel, ac.Limits.MTOW, ac.TankVolume())
	}
	return nil
}

func runAircraftValidate(cmd *cobra.Command, presetPath string) error {
	reg, err := preset.Load(presetPath)
	if err != nil {
		return err
	}
	out := output.New(cmd.OutOrStdout())

	var mu sync.Mutex
	problems := make(map[string]error)

	var g errgroup.Group
	for _, id := range reg.IDs() {
		ac, _ := reg.Get(id)
		g.Go(func() error {
			if err := ac.Validate(); err != nil {
				mu.Lock()
				problems[ac.ID] = err
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(problems) == 0 {
		out.Success(fmt.Sprintf("%d aircraft presets valid", len(reg.IDs())))
		return nil
	}

	ids := make([]string, 0, len(problems))
	for id := range problems {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		out.Error(problems[id])
	}
	return fmt.Errorf("%d of %d aircraft presets invalid", len(problems), len(reg.IDs()))
}
