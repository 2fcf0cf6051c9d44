package battle

import "github.com/KirkDiggler/codequest/internal/entities"

// Status is the lifecycle of an encounter
type Status string

// Encounter statuses. Every status but StatusActive is final.
const (
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusLost   Status = "lost"
	StatusFled   Status = "fled"
)

// Encounter is a snapshot of one boss fight
type Encounter struct {
	ID     string          `json:"id"`
	Boss   entities.Boss   `json:"boss"`
	Phase  *entities.Phase `json:"phase,omitempty"`
	Status Status          `json:"status"`
	Turns  int             `json:"turns"`
}

// StartEncounterInput defines the request for starting a boss fight
type StartEncounterInput struct {
	BossID string
}

// StartEncounterOutput defines the response for starting a boss fight
type StartEncounterOutput struct {
	Encounter *Encounter
	Player    *entities.Player
}

// AttackInput defines one code submission against the boss
type AttackInput struct {
	EncounterID string
	Code        string
}

// AttackOutput describes everything that happened during the turn
type AttackOutput struct {
	Encounter *Encounter
	Player    *entities.Player

	Execution entities.ExecutionResult
	Flags     entities.PatternFlags
	Outcome   *entities.CombatOutcome

	// DamageApplied is the damage after phase mitigation
	DamageApplied int
	PhaseMessages []string

	// Retaliation is zero when the boss was defeated or the player fell first
	Retaliation int

	XPGained        int
	LeveledUp       bool
	NewAchievements []entities.Achievement
}

// HealInput defines the battle heal action
type HealInput struct {
	EncounterID string
}

// HealOutput describes the heal turn
type HealOutput struct {
	Encounter   *Encounter
	Player      *entities.Player
	Healed      int
	FocusSpent  int
	Retaliation int
}

// FleeInput defines the request for leaving a fight
type FleeInput struct {
	EncounterID string
}

// FleeOutput defines the response for leaving a fight
type FleeOutput struct {
	Encounter *Encounter
}

// GetEncounterInput defines the request for reading an encounter
type GetEncounterInput struct {
	EncounterID string
}

// GetEncounterOutput defines the response for reading an encounter
type GetEncounterOutput struct {
	Encounter *Encounter
}
