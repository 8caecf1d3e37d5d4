package graph

import "errors"

var (
	// ErrUnknownSystem reports a system id that does not exist in the
	// universe (or base universe, for overlay additions).
	ErrUnknownSystem = errors.New("graph: unknown system")

	// ErrNoRoute reports that no admissible route exists between two known
	// systems. This is an expected outcome, not a fault.
	ErrNoRoute = errors.New("graph: no route")

	// ErrDuplicateSystem reports two input systems sharing one id at
	// construction time.
	ErrDuplicateSystem = errors.New("graph: duplicate system id")

	// ErrDanglingConnection reports a connection endpoint that matches no
	// input system at construction time.
	ErrDanglingConnection = errors.New("graph: connection references unknown system")
)
