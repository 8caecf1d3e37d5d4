package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eve-navigator/internal/graph"
)

func newRouteCmd(opts *options) *cobra.Command {
	var (
		avoid       []string
		wormholes   []string
		preferSafer bool
	)

	cmd := &cobra.Command{
		Use:   "route <from> <to>",
		Short: "Find the cheapest route between two systems",
		Long: `Route finds the cheapest route between two systems. By default every jump
costs the same, which yields the shortest route; --prefer-safer charges extra
for jumps into lowsec and nullsec using the configured penalty table.

Temporary wormhole connections can be layered on with --wormhole From:To
(repeatable, both directions are added); they exist only for this query.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}

			from, err := a.resolveSystem(args[0])
			if err != nil {
				return err
			}
			to, err := a.resolveSystem(args[1])
			if err != nil {
				return err
			}
			avoidIDs, err := a.resolveAvoids(avoid)
			if err != nil {
				return err
			}

			var view graph.Navigatable = a.universe
			if len(wormholes) > 0 {
				view, err = a.wormholeOverlay(wormholes)
				if err != nil {
					return err
				}
			}

			rule := a.routingRule(preferSafer || a.cfg.PreferSafer, avoidIDs)
			path, err := graph.FindPath(view, from, to, rule)
			if errors.Is(err, graph.ErrNoRoute) {
				return fmt.Errorf("no route from %s to %s under the current rules", args[0], args[1])
			}
			if err != nil {
				return err
			}

			for i, s := range path {
				fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-24s %5.2f  %s\n",
					i, s.Name, s.Security, s.SecurityClass())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d jumps\n", path.Jumps())
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&avoid, "avoid", nil, "system to route around (repeatable)")
	cmd.Flags().StringSliceVar(&wormholes, "wormhole", nil, "temporary connection From:To (repeatable)")
	cmd.Flags().BoolVar(&preferSafer, "prefer-safer", false, "penalize lowsec and nullsec jumps")
	return cmd
}

// wormholeOverlay builds an overlay over the loaded universe with one
// bidirectional connection per From:To pair.
func (a *app) wormholeOverlay(pairs []string) (*graph.ExtendedUniverse, error) {
	x := graph.Extend(a.universe)
	for _, pair := range pairs {
		ends := strings.SplitN(pair, ":", 2)
		if len(ends) != 2 {
			return nil, fmt.Errorf("wormhole %q: want From:To", pair)
		}
		from, err := a.resolveSystem(strings.TrimSpace(ends[0]))
		if err != nil {
			return nil, fmt.Errorf("wormhole %q: %w", pair, err)
		}
		to, err := a.resolveSystem(strings.TrimSpace(ends[1]))
		if err != nil {
			return nil, fmt.Errorf("wormhole %q: %w", pair, err)
		}
		if err := x.AddConnection(graph.WormholeConnection(from, to, nil)); err != nil {
			return nil, err
		}
		if err := x.AddConnection(graph.WormholeConnection(to, from, nil)); err != nil {
			return nil, err
		}
	}
	return x, nil
}
