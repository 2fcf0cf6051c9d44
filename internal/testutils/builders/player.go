// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/codequest/internal/entities"
)

// PlayerBuilder provides a fluent interface for building test Player instances
type PlayerBuilder struct {
	player entities.Player
}

// NewPlayerBuilder creates a level 1 player with no skills, weapon or rage
func NewPlayerBuilder() *PlayerBuilder {
	return &PlayerBuilder{
		player: entities.Player{
			Level:     1,
			ClassType: entities.ClassApprentice,
			HP:        100,
			MaxHP:     100,
			MaxXP:     100,
		},
	}
}

// WithLevel sets the level
func (b *PlayerBuilder) WithLevel(level int) *PlayerBuilder {
	b.player.Level = level
	return b
}

// WithHP sets current and maximum hp
func (b *PlayerBuilder) WithHP(hp, maxHP int) *PlayerBuilder {
	b.player.HP = hp
	b.player.MaxHP = maxHP
	return b
}

// WithXP sets current xp and the level threshold
func (b *PlayerBuilder) WithXP(xp, maxXP int) *PlayerBuilder {
	b.player.XP = xp
	b.player.MaxXP = maxXP
	return b
}

// WithSkills sets the three basic skill levels
func (b *PlayerBuilder) WithSkills(damage, crit, heal int) *PlayerBuilder {
	b.player.DamageSkill = damage
	b.player.CritSkill = crit
	b.player.HealSkill = heal
	return b
}

// WithSkillPoints sets unspent skill points
func (b *PlayerBuilder) WithSkillPoints(points int) *PlayerBuilder {
	b.player.SkillPoints = points
	return b
}

// WithMeters sets rage and focus
func (b *PlayerBuilder) WithMeters(rage, focus int) *PlayerBuilder {
	b.player.Rage = rage
	b.player.Focus = focus
	return b
}

// WithWeapon adds the weapon to the inventory and equips it
func (b *PlayerBuilder) WithWeapon(w entities.Weapon) *PlayerBuilder {
	b.player.Inventory = append(b.player.Inventory, w)
	b.player.EquippedWeapon = &w
	return b
}

// WithAdvancedSkill unlocks an advanced skill
func (b *PlayerBuilder) WithAdvancedSkill(skill entities.AdvancedSkill) *PlayerBuilder {
	if b.player.AdvancedSkills == nil {
		b.player.AdvancedSkills = map[entities.AdvancedSkill]bool{}
	}
	b.player.AdvancedSkills[skill] = true
	return b
}

// WithStat sets a lifetime stat counter
func (b *PlayerBuilder) WithStat(stat string, value int) *PlayerBuilder {
	if b.player.Stats == nil {
		b.player.Stats = map[string]int{}
	}
	b.player.Stats[stat] = value
	return b
}

// WithAchievements marks achievements as already earned
func (b *PlayerBuilder) WithAchievements(ids ...string) *PlayerBuilder {
	b.player.Achievements = append(b.player.Achievements, ids...)
	return b
}

// Build returns the player; the builder keeps no reference to mutable fields
func (b *PlayerBuilder) Build() entities.Player {
	return b.player.Clone()
}
