// Package progression implements the player progression state machine.
//
// Every transition takes a Player snapshot and returns a new one; inputs are never
// mutated. Transitions that cannot apply return the snapshot unchanged and report false.
package progression

import (
	"math"

	"github.com/KirkDiggler/codequest/internal/entities"
)

// Progression constants
const (
	XPGrowth            = 1.5
	MaxHPPerLevel       = 10
	SkillPointsPerLevel = 1
	AdvancedSkillCost   = 2
	MeterMin            = 0
	MeterMax            = 100
)

// GainXP adds experience. Reaching maxXp levels up once: the overflow carries over,
// maxXp grows by half, maxHp grows by ten and the player is fully healed. A gain large
// enough for two levels still only levels once per call.
func GainXP(p entities.Player, amount int) (entities.Player, bool) {
	out := p.Clone()
	if amount < 0 {
		amount = 0
	}

	newXP := out.XP + amount
	if newXP < out.MaxXP {
		out.XP = newXP
		return out, false
	}

	out.Level++
	out.XP = newXP - out.MaxXP
	out.MaxXP = int(math.Floor(float64(out.MaxXP) * XPGrowth))
	out.SkillPoints += SkillPointsPerLevel
	out.MaxHP += MaxHPPerLevel
	out.HP = out.MaxHP
	return out, true
}

// UpdateHP sets hp clamped to [0, maxHp]
func UpdateHP(p entities.Player, hp int) entities.Player {
	out := p.Clone()
	out.HP = clamp(hp, 0, out.MaxHP)
	return out
}

// TakeDamage lowers hp; negative amounts are ignored
func TakeDamage(p entities.Player, amount int) entities.Player {
	if amount < 0 {
		amount = 0
	}
	return UpdateHP(p, p.HP-amount)
}

// Heal raises hp up to maxHp; negative amounts are ignored
func Heal(p entities.Player, amount int) entities.Player {
	if amount < 0 {
		amount = 0
	}
	return UpdateHP(p, p.HP+amount)
}

// MeterUpdate carries the meters to set. Nil meters are left unchanged.
type MeterUpdate struct {
	Rage  *int
	Focus *int
}

// Meters builds an update setting both meters
func Meters(rage, focus int) MeterUpdate {
	return MeterUpdate{Rage: &rage, Focus: &focus}
}

// UpdateMeters sets the provided meters clamped to [0,100]
func UpdateMeters(p entities.Player, u MeterUpdate) entities.Player {
	out := p.Clone()
	if u.Rage != nil {
		out.Rage = clamp(*u.Rage, MeterMin, MeterMax)
	}
	if u.Focus != nil {
		out.Focus = clamp(*u.Focus, MeterMin, MeterMax)
	}
	return out
}

// SpendSkillPoint trades one skill point for one rank of a combat skill
func SpendSkillPoint(p entities.Player, kind entities.SkillKind) (entities.Player, bool) {
	if p.SkillPoints <= 0 {
		return p, false
	}

	out := p.Clone()
	switch kind {
	case entities.SkillDamage:
		out.DamageSkill++
	case entities.SkillCrit:
		out.CritSkill++
	case entities.SkillHeal:
		out.HealSkill++
	default:
		return p, false
	}
	out.SkillPoints--
	return out, true
}

// UnlockAdvancedSkill permanently unlocks a skill for two skill points. Unlocking an
// owned skill is a no-op.
func UnlockAdvancedSkill(p entities.Player, skill entities.AdvancedSkill) (entities.Player, bool) {
	if !IsAdvancedSkill(skill) || p.SkillPoints < AdvancedSkillCost || p.HasAdvancedSkill(skill) {
		return p, false
	}

	out := p.Clone()
	out.SkillPoints -= AdvancedSkillCost
	out.AdvancedSkills[skill] = true
	return out, true
}

// IsAdvancedSkill reports whether id names an advanced skill
func IsAdvancedSkill(skill entities.AdvancedSkill) bool {
	for _, s := range entities.AdvancedSkills {
		if s == skill {
			return true
		}
	}
	return false
}

// EquipWeapon replaces the equipped weapon
func EquipWeapon(p entities.Player, w entities.Weapon) entities.Player {
	out := p.Clone()
	out.EquippedWeapon = &w
	return out
}

// AddItem appends a weapon to the inventory; duplicates are kept
func AddItem(p entities.Player, w entities.Weapon) entities.Player {
	out := p.Clone()
	out.Inventory = append(out.Inventory, w)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
