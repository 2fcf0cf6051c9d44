package player

import "github.com/KirkDiggler/codequest/internal/entities"

// MutateFunc computes the next player snapshot. Returning an error leaves the
// current snapshot untouched.
type MutateFunc func(p entities.Player) (entities.Player, error)

// GetPlayerInput defines the request for reading the current save
type GetPlayerInput struct{}

// GetPlayerOutput defines the response for reading the current save
type GetPlayerOutput struct {
	Player *entities.Player
}

// UpdateInput defines a generic mutation used by the battle and dungeon flows
type UpdateInput struct {
	Mutate MutateFunc
}

// UpdateOutput defines the response for a generic mutation
type UpdateOutput struct {
	Player *entities.Player
}

// SpendSkillPointInput defines the request for spending a skill point
type SpendSkillPointInput struct {
	Kind entities.SkillKind
}

// SpendSkillPointOutput defines the response for spending a skill point
type SpendSkillPointOutput struct {
	Player          *entities.Player
	NewAchievements []entities.Achievement
}

// UnlockAdvancedSkillInput defines the request for unlocking an advanced skill
type UnlockAdvancedSkillInput struct {
	Skill entities.AdvancedSkill
}

// UnlockAdvancedSkillOutput defines the response for unlocking an advanced skill.
// Unlocked is false when the skill was already owned.
type UnlockAdvancedSkillOutput struct {
	Player   *entities.Player
	Unlocked bool
}

// EquipWeaponInput defines the request for equipping an owned weapon
type EquipWeaponInput struct {
	WeaponID string
}

// EquipWeaponOutput defines the response for equipping a weapon
type EquipWeaponOutput struct {
	Player *entities.Player
}

// HealInput defines the request for resting. Zero heals to full.
type HealInput struct {
	Amount int
}

// HealOutput defines the response for resting
type HealOutput struct {
	Player *entities.Player
	Healed int
}

// ResetSaveInput defines the request for wiping the save
type ResetSaveInput struct{}

// ResetSaveOutput defines the response for wiping the save
type ResetSaveOutput struct {
	Player *entities.Player
}
