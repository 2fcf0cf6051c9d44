package entities

// RetaliationModel selects how a boss scales its counter attack
type RetaliationModel string

// Retaliation models
const (
	// RetaliationPhase scales by the damage multiplier of the current phase
	RetaliationPhase RetaliationModel = "phase"
	// RetaliationRatio scales by the remaining health ratio (1x, 1.5x below 40%, 2x below 10%)
	RetaliationRatio RetaliationModel = "ratio"
)

// Phase is one threshold-triggered stage of a boss fight
type Phase struct {
	// Threshold is a percent of max hp; the phase is entered once hp% drops to or below it
	Threshold  float64 `json:"threshold" yaml:"threshold"`
	DamageMult float64 `json:"damage_mult" yaml:"damage_mult"`
	// Mitigation is the fraction of incoming player damage absorbed while the phase is current
	Mitigation float64 `json:"mitigation,omitempty" yaml:"mitigation,omitempty"`
	Message    string  `json:"message" yaml:"message"`
}

// Boss is instantiated fresh from the catalog for every encounter
type Boss struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	HP          int              `json:"hp" yaml:"-"`
	MaxHP       int              `json:"max_hp" yaml:"max_hp"`
	Damage      int              `json:"damage" yaml:"damage"`
	XPReward    int              `json:"xp_reward" yaml:"xp_reward"`
	Retaliation RetaliationModel `json:"retaliation" yaml:"retaliation"`
	// Phases are sorted by descending threshold
	Phases []Phase `json:"phases,omitempty" yaml:"phases,omitempty"`
}

// HPPercent returns current hp as a percent of max hp
func (b Boss) HPPercent() float64 {
	if b.MaxHP <= 0 {
		return 0
	}
	return float64(b.HP) / float64(b.MaxHP) * 100
}

// IsDefeated reports whether the boss has no hp left
func (b Boss) IsDefeated() bool {
	return b.HP <= 0
}
