package graph

import "testing"

func TestSecurityWeighted_PenaltyTable(t *testing.T) {
	rule := SecurityWeighted{Penalty: SecurityPenalty{Highsec: 0, Lowsec: 4, Nullsec: 9}}
	from := &System{ID: 1, Security: 0.9}
	conn := &Connection{From: 1, To: 2, Kind: Stargate}

	tests := []struct {
		name     string
		security float32
		want     float64
	}{
		{name: "into highsec", security: 0.8, want: 1},
		{name: "into lowsec", security: 0.4, want: 5},
		{name: "into nullsec", security: -0.2, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			to := &System{ID: 2, Security: tt.security}
			cost, ok := rule.Apply(from, to, conn)
			if !ok {
				t.Fatal("SecurityWeighted rejected a connection")
			}
			if cost != tt.want {
				t.Fatalf("cost = %v, want %v", cost, tt.want)
			}
		})
	}
}

func TestAvoid_RejectsListedDestination(t *testing.T) {
	rule := AvoidSystems(UnitCost{}, 2, 7)
	from := &System{ID: 1}
	conn := &Connection{From: 1, To: 2, Kind: Stargate}

	if _, ok := rule.Apply(from, &System{ID: 2}, conn); ok {
		t.Fatal("Avoid admitted a listed system")
	}
	cost, ok := rule.Apply(from, &System{ID: 3}, conn)
	if !ok || cost != 1 {
		t.Fatalf("Avoid on unlisted system = (%v, %v), want (1, true)", cost, ok)
	}
}

func TestRuleChain_Combinators(t *testing.T) {
	two := RuleFunc(func(from, to *System, conn *Connection) (float64, bool) { return 2, true })
	three := RuleFunc(func(from, to *System, conn *Connection) (float64, bool) { return 3, true })
	reject := RuleFunc(func(from, to *System, conn *Connection) (float64, bool) { return 0, false })

	from, to := &System{ID: 1}, &System{ID: 2}
	conn := &Connection{From: 1, To: 2, Kind: Stargate}

	t.Run("sum", func(t *testing.T) {
		cost, ok := AllOf(two, three).Apply(from, to, conn)
		if !ok || cost != 5 {
			t.Fatalf("sum = (%v, %v), want (5, true)", cost, ok)
		}
	})

	t.Run("max", func(t *testing.T) {
		chain := RuleChain{Rules: []Rule{two, three}, Combine: Max}
		cost, ok := chain.Apply(from, to, conn)
		if !ok || cost != 3 {
			t.Fatalf("max = (%v, %v), want (3, true)", cost, ok)
		}
	})

	t.Run("any rejection rejects", func(t *testing.T) {
		if _, ok := AllOf(two, reject, three).Apply(from, to, conn); ok {
			t.Fatal("chain admitted a connection a child rejected")
		}
	})

	t.Run("empty chain admits at zero", func(t *testing.T) {
		cost, ok := AllOf().Apply(from, to, conn)
		if !ok || cost != 0 {
			t.Fatalf("empty chain = (%v, %v), want (0, true)", cost, ok)
		}
	})
}
