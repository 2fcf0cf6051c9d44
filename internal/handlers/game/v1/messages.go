package v1

import (
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/orchestrators/battle"
	"github.com/KirkDiggler/codequest/internal/orchestrators/dungeon"
)

// GetPlayerRequest reads the current save
type GetPlayerRequest struct{}

// PlayerResponse carries a player snapshot
type PlayerResponse struct {
	Player          *entities.Player       `json:"player"`
	NewAchievements []entities.Achievement `json:"new_achievements,omitempty"`
}

// SpendSkillPointRequest spends one point on damage, crit or heal
type SpendSkillPointRequest struct {
	Kind string `json:"kind"`
}

// UnlockAdvancedSkillRequest unlocks an advanced skill
type UnlockAdvancedSkillRequest struct {
	Skill string `json:"skill"`
}

// UnlockAdvancedSkillResponse reports whether the unlock happened
type UnlockAdvancedSkillResponse struct {
	Player   *entities.Player `json:"player"`
	Unlocked bool             `json:"unlocked"`
}

// EquipWeaponRequest equips an owned weapon
type EquipWeaponRequest struct {
	WeaponID string `json:"weapon_id"`
}

// RestRequest heals outside of battle; zero heals to full
type RestRequest struct {
	Amount int `json:"amount"`
}

// RestResponse reports the healing done
type RestResponse struct {
	Player *entities.Player `json:"player"`
	Healed int              `json:"healed"`
}

// ResetSaveRequest wipes the save
type ResetSaveRequest struct{}

// StartEncounterRequest starts a boss fight
type StartEncounterRequest struct {
	BossID string `json:"boss_id"`
}

// EncounterRequest names an encounter
type EncounterRequest struct {
	EncounterID string `json:"encounter_id"`
}

// EncounterResponse carries an encounter snapshot
type EncounterResponse struct {
	Encounter *battle.Encounter `json:"encounter"`
	Player    *entities.Player  `json:"player,omitempty"`
}

// AttackRequest submits code against the boss
type AttackRequest struct {
	EncounterID string `json:"encounter_id"`
	Code        string `json:"code"`
}

// AttackResponse describes one turn
type AttackResponse struct {
	Encounter       *battle.Encounter        `json:"encounter"`
	Player          *entities.Player         `json:"player"`
	Execution       entities.ExecutionResult `json:"execution"`
	Patterns        []entities.Pattern       `json:"patterns"`
	Outcome         *entities.CombatOutcome  `json:"outcome"`
	DamageApplied   int                      `json:"damage_applied"`
	PhaseMessages   []string                 `json:"phase_messages,omitempty"`
	Retaliation     int                      `json:"retaliation"`
	XPGained        int                      `json:"xp_gained,omitempty"`
	LeveledUp       bool                     `json:"leveled_up,omitempty"`
	NewAchievements []entities.Achievement   `json:"new_achievements,omitempty"`
}

// HealResponse describes a heal turn
type HealResponse struct {
	Encounter   *battle.Encounter `json:"encounter"`
	Player      *entities.Player  `json:"player"`
	Healed      int               `json:"healed"`
	FocusSpent  int               `json:"focus_spent"`
	Retaliation int               `json:"retaliation"`
}

// StartDungeonRequest starts a dungeon run
type StartDungeonRequest struct{}

// DungeonRunRequest names a run
type DungeonRunRequest struct {
	RunID string `json:"run_id"`
}

// DungeonRunResponse carries a run and its current stage
type DungeonRunResponse struct {
	Run    *entities.DungeonRun `json:"run"`
	Stage  *dungeon.StageView   `json:"stage,omitempty"`
	Player *entities.Player     `json:"player,omitempty"`
}

// SubmitStageRequest submits code for the run's current stage
type SubmitStageRequest struct {
	RunID string `json:"run_id"`
	Code  string `json:"code"`
}

// SubmitStageResponse describes one stage attempt
type SubmitStageResponse struct {
	Run             *entities.DungeonRun   `json:"run"`
	Result          *entities.StageResult  `json:"result"`
	Player          *entities.Player       `json:"player"`
	NextStage       *dungeon.StageView     `json:"next_stage,omitempty"`
	Loot            *entities.Weapon       `json:"loot,omitempty"`
	XPGained        int                    `json:"xp_gained,omitempty"`
	LeveledUp       bool                   `json:"leveled_up,omitempty"`
	NewAchievements []entities.Achievement `json:"new_achievements,omitempty"`
}

// ClassifyRequest asks which patterns a snippet uses
type ClassifyRequest struct {
	Code string `json:"code"`
}

// ClassifyResponse lists the detected patterns
type ClassifyResponse struct {
	Flags    entities.PatternFlags `json:"flags"`
	Patterns []entities.Pattern    `json:"patterns"`
}

// NewAttackResponse converts a battle turn
func NewAttackResponse(out *battle.AttackOutput) *AttackResponse {
	return &AttackResponse{
		Encounter:       out.Encounter,
		Player:          out.Player,
		Execution:       out.Execution,
		Patterns:        out.Flags.Detected(),
		Outcome:         out.Outcome,
		DamageApplied:   out.DamageApplied,
		PhaseMessages:   out.PhaseMessages,
		Retaliation:     out.Retaliation,
		XPGained:        out.XPGained,
		LeveledUp:       out.LeveledUp,
		NewAchievements: out.NewAchievements,
	}
}

// NewHealResponse converts a battle heal
func NewHealResponse(out *battle.HealOutput) *HealResponse {
	return &HealResponse{
		Encounter:   out.Encounter,
		Player:      out.Player,
		Healed:      out.Healed,
		FocusSpent:  out.FocusSpent,
		Retaliation: out.Retaliation,
	}
}

// NewSubmitStageResponse converts a stage attempt
func NewSubmitStageResponse(out *dungeon.SubmitStageOutput) *SubmitStageResponse {
	return &SubmitStageResponse{
		Run:             out.Run,
		Result:          out.Result,
		Player:          out.Player,
		NextStage:       out.NextStage,
		Loot:            out.Loot,
		XPGained:        out.XPGained,
		LeveledUp:       out.LeveledUp,
		NewAchievements: out.NewAchievements,
	}
}

// NewClassifyResponse converts classifier flags
func NewClassifyResponse(flags entities.PatternFlags) *ClassifyResponse {
	patterns := flags.Detected()
	if patterns == nil {
		patterns = []entities.Pattern{}
	}
	return &ClassifyResponse{Flags: flags, Patterns: patterns}
}
