package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"eve-navigator/internal/graph"
)

func newJumpsCmd(opts *options) *cobra.Command {
	var (
		radius int
		avoid  []string
	)

	cmd := &cobra.Command{
		Use:   "jumps <origin>",
		Short: "List systems within a jump radius",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			origin, err := a.resolveSystem(args[0])
			if err != nil {
				return err
			}
			avoidIDs, err := a.resolveAvoids(avoid)
			if err != nil {
				return err
			}

			rule := a.routingRule(false, avoidIDs)
			reachable, err := graph.SystemsWithinJumps(a.universe, origin, radius, rule)
			if err != nil {
				return err
			}
			for _, r := range reachable {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-24s %5.2f  %s\n",
					r.Jumps, r.System.Name, r.System.Security, r.System.SecurityClass())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d systems within %d jumps\n", len(reachable), radius)
			return nil
		},
	}

	cmd.Flags().IntVarP(&radius, "jumps", "n", 5, "jump radius")
	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "system to exclude (repeatable)")
	return cmd
}

func newNearCmd(opts *options) *cobra.Command {
	var distance float64

	cmd := &cobra.Command{
		Use:   "near <origin>",
		Short: "List systems within a lightyear radius, connected or not",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			origin, err := a.resolveSystem(args[0])
			if err != nil {
				return err
			}
			s, _ := a.universe.GetSystem(origin)

			near := graph.SystemsWithinRange(a.universe, s.Coordinate, distance, graph.LightYears)
			for _, n := range near {
				d := s.Coordinate.DistanceMeters(n.Coordinate) / graph.MetersPerLightYear
				fmt.Fprintf(cmd.OutOrStdout(), "%6.2f ly  %-24s %5.2f  %s\n",
					d, n.Name, n.Security, n.SecurityClass())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d systems within %.2f ly\n", len(near), distance)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&distance, "distance", "d", 5, "radius in lightyears")
	return cmd
}
