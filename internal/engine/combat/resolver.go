// Package combat converts an executed submission into damage.
package combat

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/codequest/internal/engine/patterns"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

// Tuning constants for attack resolution
const (
	BaseDamage            = 10
	DamagePerSkill        = 2
	BaseCritChance        = 0.10
	CritChancePerSkill    = 0.05
	ListCompCritBonus     = 0.20
	CritMultiplier        = 2.0
	RecursionBonus        = 0.5
	LoopBreakBonus        = 0.3
	TryExceptFlatDamage   = 5
	OptimizedCompilerMult = 1.10
	LoopMasteryBonus      = 0.20
	DebugSuiteFlatDamage  = 5
	WeaknessBonus         = 0.25

	CrashSelfDamage     = 5
	SafetyNetSelfDamage = 1

	// crit rolls are made on a d10000 so chances resolve to 0.01% steps
	critDieSize = 10000
)

// epsilon absorbs float error before flooring, so 15.000000001 and 14.999999999 agree
const epsilon = 1e-9

// Input is everything one attack resolution reads
type Input struct {
	Player entities.Player
	Boss   entities.Boss
	Result entities.ExecutionResult
	Flags  entities.PatternFlags
	Code   string
	// Weaknesses maps boss ids to the pattern that exploits them
	Weaknesses map[string]entities.Pattern
}

// Resolver resolves attacks. It has no state besides the injected roller.
type Resolver struct {
	roller dice.Roller
}

// NewResolver creates a resolver rolling crits on roller
func NewResolver(roller dice.Roller) (*Resolver, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}
	return &Resolver{roller: roller}, nil
}

// Resolve computes the outcome of one attack. Only the crit roll can fail.
func (r *Resolver) Resolve(in *Input) (*entities.CombatOutcome, error) {
	if in == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if !in.Result.Success {
		return resolveFailure(in.Code), nil
	}

	p := in.Player
	weaponDamage, weaponCrit := 0, 0.0
	if p.EquippedWeapon != nil {
		weaponDamage = p.EquippedWeapon.Damage
		weaponCrit = p.EquippedWeapon.CritChance
	}

	base := float64(BaseDamage + p.DamageSkill*DamagePerSkill + weaponDamage)

	critChance := BaseCritChance + float64(p.CritSkill)*CritChancePerSkill + weaponCrit
	if in.Flags.HasListComp {
		critChance += ListCompCritBonus
	}

	isCrit, err := r.rollCrit(critChance)
	if err != nil {
		return nil, err
	}
	critMult := 1.0
	if isCrit {
		critMult = CritMultiplier
	}

	bonus := 1.0
	if in.Flags.HasRecursion {
		bonus += RecursionBonus
	}
	if in.Flags.HasLoopBreak {
		bonus += LoopBreakBonus
	}
	if in.Flags.HasTryExcept {
		base += TryExceptFlatDamage
	}

	if p.HasAdvancedSkill(entities.AdvancedOptimizedCompiler) {
		base *= OptimizedCompilerMult
	}
	if p.HasAdvancedSkill(entities.AdvancedLoopMastery) && patterns.HasLoopConstruct(in.Code) {
		bonus += LoopMasteryBonus
	}
	if p.HasAdvancedSkill(entities.AdvancedDebugSuite) {
		base += DebugSuiteFlatDamage
		if weak, ok := in.Weaknesses[in.Boss.ID]; ok && in.Flags.Has(weak) {
			bonus += WeaknessBonus
		}
	}

	rageMult := 1 + float64(p.Rage)/100

	total := Floor(base * rageMult * critMult * bonus)

	msg := fmt.Sprintf("Your code runs! You deal %d damage.", total)
	if isCrit {
		msg = fmt.Sprintf("CRITICAL HIT! Your code deals %d damage.", total)
	}

	return &entities.CombatOutcome{
		DamageDealt: total,
		IsCrit:      isCrit,
		SelfDamage:  0,
		Message:     msg,
	}, nil
}

func resolveFailure(code string) *entities.CombatOutcome {
	if patterns.HasTrySafetyNet(code) {
		return &entities.CombatOutcome{
			SelfDamage: SafetyNetSelfDamage,
			Message:    fmt.Sprintf("Your code crashed, but try/except softened the blow. You take %d damage.", SafetyNetSelfDamage),
		}
	}
	return &entities.CombatOutcome{
		SelfDamage: CrashSelfDamage,
		Message:    fmt.Sprintf("Your code crashed! You take %d damage.", CrashSelfDamage),
	}
}

// rollCrit succeeds when a d10000 lands at or under the chance scaled to the die
func (r *Resolver) rollCrit(chance float64) (bool, error) {
	if chance <= 0 {
		return false, nil
	}
	if chance >= 1 {
		return true, nil
	}

	roll, err := r.roller.Roll(critDieSize)
	if err != nil {
		return false, errors.Wrap(err, "failed to roll crit")
	}

	return roll <= int(math.Round(chance*critDieSize)), nil
}

// Floor rounds damage arithmetic down to an int after absorbing float error
func Floor(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Floor(v + epsilon))
}
