package graph

import "math"

// SystemID identifies a solar system within a universe. IDs come straight
// from the static dump and are never reused.
type SystemID int32

// SecurityClass is the derived classification of a system's continuous
// security status.
type SecurityClass int

const (
	Highsec SecurityClass = iota // security >= 0.5
	Lowsec                       // 0 < security < 0.5
	Nullsec                      // security <= 0
)

func (c SecurityClass) String() string {
	switch c {
	case Highsec:
		return "highsec"
	case Lowsec:
		return "lowsec"
	default:
		return "nullsec"
	}
}

// Coordinate is a system's position in meters, as stored in the static dump.
type Coordinate struct {
	X, Y, Z float64
}

// MetersPerLightYear converts dump coordinates (meters) to lightyears.
const MetersPerLightYear = 9.460731e15

// DistanceMeters returns the straight-line distance to other in meters.
func (c Coordinate) DistanceMeters(other Coordinate) float64 {
	dx := c.X - other.X
	dy := c.Y - other.Y
	dz := c.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// System is a solar system: identity, display name, position and security
// status. Systems are plain values; results that contain them carry no
// reference back into the universe they came from.
type System struct {
	ID              SystemID
	Name            string
	RegionID        int32
	ConstellationID int32
	Coordinate      Coordinate
	Security        float32 // -1.0 (deep null) to 1.0 (highsec)
}

// SecurityClass classifies the system's continuous security status.
// Thresholds follow the in-game convention: >= 0.5 highsec, (0, 0.5) lowsec,
// <= 0 nullsec.
func (s *System) SecurityClass() SecurityClass {
	switch {
	case s.Security >= 0.5:
		return Highsec
	case s.Security > 0:
		return Lowsec
	default:
		return Nullsec
	}
}

// StargateClass distinguishes stargates by how far they reach.
type StargateClass int

const (
	// Local connects two systems in the same constellation.
	Local StargateClass = iota
	// Constellation connects two constellations within one region.
	Constellation
	// Regional connects two regions.
	Regional
)

func (c StargateClass) String() string {
	switch c {
	case Local:
		return "local"
	case Constellation:
		return "constellation"
	default:
		return "regional"
	}
}

// ConnectionKind tags a connection as a stargate of a given class or a
// wormhole.
type ConnectionKind int

const (
	Stargate ConnectionKind = iota
	Wormhole
)

// WormholeAttrs carries the optional restrictions of a wormhole connection.
// Zero values mean "no limit known".
type WormholeAttrs struct {
	MassKg      float64 // total mass budget before collapse
	LifetimeHrs float64 // remaining lifetime estimate
}

// Connection is a directed traversable link between two systems. Stargates
// are logically bidirectional; NewUniverse inserts the reverse direction when
// the input carries only one.
type Connection struct {
	From     SystemID
	To       SystemID
	Kind     ConnectionKind
	Class    StargateClass  // meaningful when Kind == Stargate
	Wormhole *WormholeAttrs // meaningful when Kind == Wormhole, may be nil
}

// reversed returns the same link traversed in the opposite direction.
func (c Connection) reversed() Connection {
	c.From, c.To = c.To, c.From
	return c
}

// StargateConnection builds a stargate connection, deriving the class from
// the endpoints' region and constellation membership the way the static dump
// jump table implies it.
func StargateConnection(from, to *System) Connection {
	class := Local
	if from.RegionID != to.RegionID {
		class = Regional
	} else if from.ConstellationID != to.ConstellationID {
		class = Constellation
	}
	return Connection{From: from.ID, To: to.ID, Kind: Stargate, Class: class}
}

// WormholeConnection builds a one-way wormhole connection. Callers wanting
// both directions add the reverse themselves; wormholes are not canonicalized.
func WormholeConnection(from, to SystemID, attrs *WormholeAttrs) Connection {
	return Connection{From: from, To: to, Kind: Wormhole, Wormhole: attrs}
}

// Path is an ordered walk from source to destination, both inclusive.
type Path []System

// Jumps is the hop count of the path: one less than the number of systems.
func (p Path) Jumps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Navigatable is the read capability Router and the range queries need.
// Universe and ExtendedUniverse both satisfy it; tests can supply their own.
type Navigatable interface {
	// GetSystem returns the system with the given id, or false if unknown.
	GetSystem(id SystemID) (*System, bool)
	// Connections returns the outgoing connections of a system, in a stable
	// order. Unknown ids yield an empty slice.
	Connections(id SystemID) []Connection
	// Systems returns every system in the view, in a stable order.
	Systems() []System
}
