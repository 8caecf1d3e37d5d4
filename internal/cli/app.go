package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"eve-navigator/internal/config"
	"eve-navigator/internal/graph"
	"eve-navigator/internal/search"
	"eve-navigator/internal/source"
)

// app bundles everything a command needs once the universe is loaded.
type app struct {
	cfg      *config.Config
	universe *graph.Universe
	index    *search.Index
}

// loadApp reads the config, loads the universe from the dump and builds the
// name index. Every command starts here; the universe lives for the length
// of one process.
func loadApp(cmd *cobra.Command, opts *options) (*app, error) {
	l := loggerFromContext(cmd.Context())

	cfg, err := config.Load(*opts.configPath)
	if err != nil {
		return nil, err
	}
	if *opts.dumpPath != "" {
		cfg.DumpPath = *opts.dumpPath
	}

	start := time.Now()
	l.Debug("loading universe", "dump", cfg.DumpPath)
	universe, err := source.NewBuilder(cfg.DumpPath).Build(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load universe: %w", err)
	}
	l.Info("universe loaded",
		"systems", universe.SystemCount(),
		"connections", universe.ConnectionCount(),
		"took", time.Since(start).Round(time.Millisecond))

	return &app{
		cfg:      cfg,
		universe: universe,
		index:    search.NewIndex(universe.Systems()),
	}, nil
}

// resolveSystem turns a command argument into a system id. Names resolve
// case-insensitively; bare integers are treated as ids. On a miss the error
// carries the closest name matches as suggestions.
func (a *app) resolveSystem(arg string) (graph.SystemID, error) {
	if id, ok := a.index.Lookup(arg); ok {
		return id, nil
	}
	if n, err := strconv.ParseInt(arg, 10, 32); err == nil {
		id := graph.SystemID(n)
		if _, ok := a.universe.GetSystem(id); ok {
			return id, nil
		}
		return 0, fmt.Errorf("system %d: %w", id, graph.ErrUnknownSystem)
	}

	var names []string
	for _, r := range a.index.Search(arg) {
		names = append(names, r.Name)
		if len(names) == 3 {
			break
		}
	}
	if len(names) > 0 {
		return 0, fmt.Errorf("unknown system %q (did you mean %s?)", arg, strings.Join(names, ", "))
	}
	return 0, fmt.Errorf("unknown system %q", arg)
}

// resolveAvoids maps the configured and flagged avoid names to ids.
func (a *app) resolveAvoids(flagged []string) ([]graph.SystemID, error) {
	var ids []graph.SystemID
	for _, name := range append(append([]string{}, a.cfg.Avoid...), flagged...) {
		id, err := a.resolveSystem(name)
		if err != nil {
			return nil, fmt.Errorf("avoid list: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// routingRule builds the rule a route query runs under: unit or
// security-weighted base cost, wrapped in the avoid list when present.
func (a *app) routingRule(preferSafer bool, avoid []graph.SystemID) graph.Rule {
	var base graph.Rule = graph.UnitCost{}
	if preferSafer {
		base = graph.SecurityWeighted{Penalty: graph.SecurityPenalty{
			Highsec: a.cfg.Penalties.Highsec,
			Lowsec:  a.cfg.Penalties.Lowsec,
			Nullsec: a.cfg.Penalties.Nullsec,
		}}
	}
	if len(avoid) == 0 {
		return base
	}
	return graph.AvoidSystems(base, avoid...)
}
