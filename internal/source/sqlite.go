// Package source loads a navigable universe from a SQLite static dump
// (the fuzzwork conversion of the CCP map export). It only reads the map
// tables; the resulting graph.Universe is immutable and self-contained.
package source

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"eve-navigator/internal/graph"
)

// Builder loads a universe from a SQLite dump file.
type Builder struct {
	path string
}

// NewBuilder returns a Builder reading from the dump at path.
func NewBuilder(path string) *Builder {
	return &Builder{path: path}
}

// Build opens the dump read-only, loads systems and jumps, and constructs
// the universe. The database handle is closed before returning.
func (b *Builder) Build(ctx context.Context) (*graph.Universe, error) {
	db, err := sql.Open("sqlite", "file:"+b.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping dump: %w", err)
	}
	return FromDB(ctx, db)
}

// FromDB loads a universe from an already opened dump database. Useful for
// tests and callers that manage the connection themselves.
func FromDB(ctx context.Context, db *sql.DB) (*graph.Universe, error) {
	var (
		systems     []graph.System
		connections []graph.Connection
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		systems, err = loadSystems(ctx, db)
		return err
	})
	g.Go(func() error {
		var err error
		connections, err = loadJumps(ctx, db)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u, err := graph.NewUniverse(systems, connections)
	if err != nil {
		return nil, fmt.Errorf("build universe: %w", err)
	}
	return u, nil
}

func loadSystems(ctx context.Context, db *sql.DB) ([]graph.System, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT solarSystemID, solarSystemName, regionID, constellationID,
		       x, y, z, security
		FROM mapSolarSystems`)
	if err != nil {
		return nil, fmt.Errorf("query systems: %w", err)
	}
	defer rows.Close()

	var systems []graph.System
	for rows.Next() {
		var s graph.System
		if err := rows.Scan(&s.ID, &s.Name, &s.RegionID, &s.ConstellationID,
			&s.Coordinate.X, &s.Coordinate.Y, &s.Coordinate.Z, &s.Security); err != nil {
			return nil, fmt.Errorf("scan system: %w", err)
		}
		systems = append(systems, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read systems: %w", err)
	}
	return systems, nil
}

func loadJumps(ctx context.Context, db *sql.DB) ([]graph.Connection, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT fromRegionID, fromConstellationID, fromSolarSystemID,
		       toRegionID, toConstellationID, toSolarSystemID
		FROM mapSolarSystemJumps`)
	if err != nil {
		return nil, fmt.Errorf("query jumps: %w", err)
	}
	defer rows.Close()

	var connections []graph.Connection
	for rows.Next() {
		var fromRegion, fromConstellation, toRegion, toConstellation int32
		var from, to graph.SystemID
		if err := rows.Scan(&fromRegion, &fromConstellation, &from,
			&toRegion, &toConstellation, &to); err != nil {
			return nil, fmt.Errorf("scan jump: %w", err)
		}
		class := graph.Local
		if fromRegion != toRegion {
			class = graph.Regional
		} else if fromConstellation != toConstellation {
			class = graph.Constellation
		}
		connections = append(connections, graph.Connection{
			From:  from,
			To:    to,
			Kind:  graph.Stargate,
			Class: class,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read jumps: %w", err)
	}
	return connections, nil
}
