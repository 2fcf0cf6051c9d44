// Package boss drives a boss through its health-threshold phases and computes its
// retaliation.
package boss

import (
	"github.com/KirkDiggler/codequest/internal/engine/combat"
	"github.com/KirkDiggler/codequest/internal/entities"
)

// Ratio enrage tiers
const (
	EnrageRatio      = 0.4
	EnrageMultiplier = 1.5
	FrenzyRatio      = 0.1
	FrenzyMultiplier = 2.0
)

// Transition reports what one hp change did to the boss
type Transition struct {
	// Applied is the damage left after phase mitigation
	Applied  int
	Entered  []entities.Phase
	Defeated bool
}

// Messages returns the messages of the phases entered, in order
func (t Transition) Messages() []string {
	out := make([]string, 0, len(t.Entered))
	for _, p := range t.Entered {
		out = append(out, p.Message)
	}
	return out
}

// Machine owns one boss for the length of an encounter. Phases are entered at most
// once and never left. Not safe for concurrent use; encounters serialize turns.
type Machine struct {
	boss    entities.Boss
	entered []bool
	current int
}

// NewMachine starts tracking a freshly instantiated boss. Phases the boss already
// qualifies for at its starting hp are entered immediately.
func NewMachine(b entities.Boss) *Machine {
	b.Phases = append([]entities.Phase(nil), b.Phases...)
	m := &Machine{
		boss:    b,
		entered: make([]bool, len(b.Phases)),
		current: -1,
	}
	m.advance()
	return m
}

// Clone returns an independent copy so a turn can be computed before it is committed
func (m *Machine) Clone() *Machine {
	return &Machine{
		boss:    m.Boss(),
		entered: append([]bool(nil), m.entered...),
		current: m.current,
	}
}

// Boss returns a snapshot of the tracked boss
func (m *Machine) Boss() entities.Boss {
	b := m.boss
	b.Phases = append([]entities.Phase(nil), m.boss.Phases...)
	return b
}

// CurrentPhase returns the deepest phase entered so far
func (m *Machine) CurrentPhase() (entities.Phase, bool) {
	if m.current < 0 {
		return entities.Phase{}, false
	}
	return m.boss.Phases[m.current], true
}

// PhaseIndex returns the index of the current phase, -1 before any phase
func (m *Machine) PhaseIndex() int {
	return m.current
}

// ApplyDamage lowers hp by amount, reduced by the current phase's mitigation, and
// enters every phase whose threshold the new hp percent has reached
func (m *Machine) ApplyDamage(amount int) Transition {
	if amount < 0 {
		amount = 0
	}

	applied := amount
	if p, ok := m.CurrentPhase(); ok && p.Mitigation > 0 {
		applied = combat.Floor(float64(amount) * (1 - p.Mitigation))
	}

	m.boss.HP -= applied
	if m.boss.HP < 0 {
		m.boss.HP = 0
	}

	return Transition{
		Applied:  applied,
		Entered:  m.advance(),
		Defeated: m.boss.IsDefeated(),
	}
}

// advance enters phases in descending threshold order so current ends at the deepest
func (m *Machine) advance() []entities.Phase {
	pct := m.boss.HPPercent()

	var entered []entities.Phase
	for i, p := range m.boss.Phases {
		if m.entered[i] || p.Threshold < pct {
			continue
		}
		m.entered[i] = true
		if i > m.current {
			m.current = i
		}
		entered = append(entered, p)
	}
	return entered
}

// Retaliate computes the boss counter attack using the boss's retaliation model
func (m *Machine) Retaliate() int {
	if m.boss.Retaliation == entities.RetaliationPhase {
		return m.RetaliateByPhase()
	}
	return RetaliateByRatio(m.boss)
}

// RetaliateByPhase scales base damage by the current phase's multiplier, 1x before
// the first phase
func (m *Machine) RetaliateByPhase() int {
	mult := 1.0
	if p, ok := m.CurrentPhase(); ok && p.DamageMult > 0 {
		mult = p.DamageMult
	}
	return combat.Floor(float64(m.boss.Damage) * mult)
}

// RetaliateByRatio scales base damage by the remaining hp ratio alone
func RetaliateByRatio(b entities.Boss) int {
	return combat.Floor(float64(b.Damage) * RatioMultiplier(b))
}

// RatioMultiplier returns 1 at or above 40% hp and 1.5 above 10%. At 10% or less the
// boss frenzies for 2x.
func RatioMultiplier(b entities.Boss) float64 {
	if b.MaxHP <= 0 {
		return 1
	}

	ratio := float64(b.HP) / float64(b.MaxHP)
	switch {
	case ratio >= EnrageRatio:
		return 1
	case ratio > FrenzyRatio:
		return EnrageMultiplier
	default:
		return FrenzyMultiplier
	}
}
