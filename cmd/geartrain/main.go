// Command geartrain solves a YAML-defined gear train and verifies its gears
// against AGMA bending and pitting criteria.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/soypat/geartrain/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "geartrain",
		Short:         "Static gear train solver and AGMA gear verification",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve a train definition and run its verifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.OutOrStdout()}).
				Level(level).
				With().Timestamp().Logger()

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			train, err := cfg.Build()
			if err != nil {
				return err
			}
			train.SetLogger(log)

			statuses := train.Solve()
			for i, g := range train.Gears {
				log.Info().
					Str("gear", g.Name).
					Stringer("status", statuses[i]).
					Msg("solve pass")
			}
			if err := train.Analyze(); err != nil {
				return err
			}
			for _, a := range train.Analyses {
				ev := log.Info().Str("gear", a.Gear.Name)
				if a.Bending != nil {
					ev = ev.
						Float64("sigma_bending_MPa", a.Gear.SigmaBending).
						Float64("bending_SF", a.Gear.BendingSF)
				}
				if a.Pitting != nil {
					ev = ev.
						Float64("sigma_pitting_MPa", a.Gear.SigmaPitting).
						Float64("wear_SF", a.Gear.WearSF)
				}
				ev.Msg("verification")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "train definition YAML file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "narrate solver internals")
	cmd.MarkFlagRequired("config")
	return cmd
}
