// Package entities contains the game state records shared by the engine,
// repositories and orchestrators.
package entities

import "time"

// ClassApprentice is the class every new save starts with
const ClassApprentice = "apprentice"

// SkillKind selects which combat stat a skill point is spent on
type SkillKind string

// Skill kinds
const (
	SkillDamage SkillKind = "damage"
	SkillCrit   SkillKind = "crit"
	SkillHeal   SkillKind = "heal"
)

// AdvancedSkill identifies a permanent unlock bought with two skill points
type AdvancedSkill string

// Advanced skills
const (
	AdvancedOptimizedCompiler AdvancedSkill = "optimized_compiler"
	AdvancedLoopMastery       AdvancedSkill = "loop_mastery"
	AdvancedDebugSuite        AdvancedSkill = "debug_suite"
)

// AdvancedSkills lists every advanced skill id
var AdvancedSkills = []AdvancedSkill{
	AdvancedOptimizedCompiler,
	AdvancedLoopMastery,
	AdvancedDebugSuite,
}

// Player is the persistent progression record. Values are treated as snapshots:
// progression transitions return a modified copy and never mutate their input.
type Player struct {
	Level     int    `json:"level"`
	ClassType string `json:"class_type"`

	HP    int `json:"hp"`
	MaxHP int `json:"max_hp"`
	XP    int `json:"xp"`
	MaxXP int `json:"max_xp"`

	DamageSkill int `json:"damage_skill"`
	CritSkill   int `json:"crit_skill"`
	HealSkill   int `json:"heal_skill"`

	// Meters are clamped to [0,100]
	Rage  int `json:"rage"`
	Focus int `json:"focus"`

	SkillPoints int `json:"skill_points"`

	Inventory      []Weapon               `json:"inventory"`
	EquippedWeapon *Weapon                `json:"equipped_weapon,omitempty"`
	AdvancedSkills map[AdvancedSkill]bool `json:"advanced_skills"`
	Stats          map[string]int         `json:"stats"`
	Achievements   []string               `json:"achievements"`

	SavedAt time.Time `json:"saved_at,omitempty"`
}

// HasAdvancedSkill reports whether the skill was unlocked
func (p Player) HasAdvancedSkill(skill AdvancedSkill) bool {
	return p.AdvancedSkills[skill]
}

// HasAchievement reports whether the achievement was recorded
func (p Player) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// OwnsWeapon reports whether a weapon with the id is in the inventory
func (p Player) OwnsWeapon(id string) bool {
	for _, w := range p.Inventory {
		if w.ID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so snapshots never share slices or maps
func (p Player) Clone() Player {
	out := p

	out.Inventory = append([]Weapon(nil), p.Inventory...)
	if p.EquippedWeapon != nil {
		w := *p.EquippedWeapon
		out.EquippedWeapon = &w
	}

	out.AdvancedSkills = make(map[AdvancedSkill]bool, len(p.AdvancedSkills))
	for k, v := range p.AdvancedSkills {
		out.AdvancedSkills[k] = v
	}

	out.Stats = make(map[string]int, len(p.Stats))
	for k, v := range p.Stats {
		out.Stats[k] = v
	}

	out.Achievements = append([]string(nil), p.Achievements...)
	return out
}
