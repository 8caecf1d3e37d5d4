package graph

// Rule decides, for one candidate traversal, whether the connection may be
// taken and at what cost. Returning ok=false rejects the traversal; an
// accepted cost must be non-negative and finite or Dijkstra's invariants
// break. Rules are stateless and may be reused across any number of queries.
type Rule interface {
	Apply(from, to *System, conn *Connection) (cost float64, ok bool)
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(from, to *System, conn *Connection) (float64, bool)

func (f RuleFunc) Apply(from, to *System, conn *Connection) (float64, bool) {
	return f(from, to, conn)
}

// UnitCost admits every connection at cost 1, which makes route cost equal
// jump count: the classic "shortest route" preference.
type UnitCost struct{}

func (UnitCost) Apply(from, to *System, conn *Connection) (float64, bool) {
	return 1.0, true
}

// SecurityPenalty is the extra cost SecurityWeighted charges on top of the
// base jump cost, per security class of the destination system.
type SecurityPenalty struct {
	Highsec float64
	Lowsec  float64
	Nullsec float64
}

// DefaultSecurityPenalty makes a lowsec jump as expensive as ten highsec
// jumps and a nullsec jump slightly worse, approximating the in-game
// "prefer safer" autopilot setting.
func DefaultSecurityPenalty() SecurityPenalty {
	return SecurityPenalty{Highsec: 0, Lowsec: 9, Nullsec: 11}
}

// SecurityWeighted admits every connection at cost 1 plus the penalty for
// the destination's security class.
type SecurityWeighted struct {
	Penalty SecurityPenalty
}

// PreferSafer is SecurityWeighted with the default penalty table.
func PreferSafer() SecurityWeighted {
	return SecurityWeighted{Penalty: DefaultSecurityPenalty()}
}

func (r SecurityWeighted) Apply(from, to *System, conn *Connection) (float64, bool) {
	cost := 1.0
	switch to.SecurityClass() {
	case Lowsec:
		cost += r.Penalty.Lowsec
	case Nullsec:
		cost += r.Penalty.Nullsec
	default:
		cost += r.Penalty.Highsec
	}
	return cost, true
}

// Avoid rejects any traversal into a listed system and otherwise delegates
// to Inner. Folding avoidance into the rule, rather than filtering edges in
// a separate pass, means the router never prices a connection it will
// discard.
type Avoid struct {
	Systems map[SystemID]bool
	Inner   Rule
}

// AvoidSystems builds an Avoid rule around inner from the listed ids.
func AvoidSystems(inner Rule, ids ...SystemID) Avoid {
	set := make(map[SystemID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return Avoid{Systems: set, Inner: inner}
}

func (r Avoid) Apply(from, to *System, conn *Connection) (float64, bool) {
	if r.Systems[to.ID] {
		return 0, false
	}
	return r.Inner.Apply(from, to, conn)
}

// Combine says how RuleChain merges the costs of its children.
type Combine int

const (
	// Sum adds the children's costs.
	Sum Combine = iota
	// Max keeps the largest child cost.
	Max
)

// RuleChain rejects a traversal if any child rejects it and otherwise
// combines the children's costs. An empty chain admits everything at cost 0.
type RuleChain struct {
	Rules   []Rule
	Combine Combine
}

// AllOf chains rules with the Sum combinator.
func AllOf(rules ...Rule) RuleChain {
	return RuleChain{Rules: rules, Combine: Sum}
}

func (r RuleChain) Apply(from, to *System, conn *Connection) (float64, bool) {
	total := 0.0
	for _, child := range r.Rules {
		cost, ok := child.Apply(from, to, conn)
		if !ok {
			return 0, false
		}
		switch r.Combine {
		case Max:
			if cost > total {
				total = cost
			}
		default:
			total += cost
		}
	}
	return total, true
}
