package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"eve-navigator/internal/graph"
)

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Resolve a partial system name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			results := a.index.Search(args[0])
			if len(results) == 0 {
				return fmt.Errorf("no system matches %q", args[0])
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %d  (%.0f%%)\n", r.Name, r.ID, r.Score*100)
			}
			return nil
		},
	}
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <system>",
		Short: "Show a system's details and connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, opts)
			if err != nil {
				return err
			}
			id, err := a.resolveSystem(args[0])
			if err != nil {
				return err
			}
			s, _ := a.universe.GetSystem(id)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d)\n", s.Name, s.ID)
			fmt.Fprintf(out, "security: %.2f (%s)\n", s.Security, s.SecurityClass())
			fmt.Fprintf(out, "region %d, constellation %d\n", s.RegionID, s.ConstellationID)
			fmt.Fprintln(out, "connections:")
			for _, c := range a.universe.Connections(id) {
				to, ok := a.universe.GetSystem(c.To)
				if !ok {
					continue
				}
				kind := c.Class.String() + " gate"
				if c.Kind == graph.Wormhole {
					kind = "wormhole"
				}
				fmt.Fprintf(out, "  -> %-24s %5.2f  %s\n", to.Name, to.Security, kind)
			}
			return nil
		},
	}
}
