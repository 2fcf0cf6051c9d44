package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/codequest/internal/entities"
)

// ResolveAttackInput contains one executed submission and the fighters' state
type ResolveAttackInput struct {
	Player *entities.Player
	Boss   *entities.Boss
	Code   string
	Result entities.ExecutionResult
}

// ResolveAttackOutput contains the outcome and the patterns that produced it
type ResolveAttackOutput struct {
	Outcome *entities.CombatOutcome
	Flags   entities.PatternFlags
}

// PublishEventInput describes an event to publish
type PublishEventInput struct {
	Type   string
	Source core.Entity
	Target core.Entity
	// Data is copied into the event context
	Data map[string]any
}
