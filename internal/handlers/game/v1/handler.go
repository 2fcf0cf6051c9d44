// Package v1 serves the codequest.v1.GameService gRPC API. Messages are plain Go
// structs carried by a JSON codec.
package v1

import (
	"context"

	"github.com/KirkDiggler/codequest/internal/engine"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/orchestrators/battle"
	"github.com/KirkDiggler/codequest/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
)

// HandlerConfig holds dependencies for the game handler
type HandlerConfig struct {
	PlayerService  player.Service
	BattleService  battle.Service
	DungeonService dungeon.Service
	Engine         engine.Engine
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.PlayerService == nil {
		vb.RequiredField("PlayerService")
	}
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.DungeonService == nil {
		vb.RequiredField("DungeonService")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// Handler implements GameServiceServer
type Handler struct {
	players  player.Service
	battles  battle.Service
	dungeons dungeon.Service
	engine   engine.Engine
}

// NewHandler creates a new game handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		players:  cfg.PlayerService,
		battles:  cfg.BattleService,
		dungeons: cfg.DungeonService,
		engine:   cfg.Engine,
	}, nil
}

var _ GameServiceServer = (*Handler)(nil)

// GetPlayer returns the current save
func (h *Handler) GetPlayer(ctx context.Context, _ *GetPlayerRequest) (*PlayerResponse, error) {
	out, err := h.players.GetPlayer(ctx, &player.GetPlayerInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlayerResponse{Player: out.Player}, nil
}

// SpendSkillPoint spends one skill point
func (h *Handler) SpendSkillPoint(ctx context.Context, req *SpendSkillPointRequest) (*PlayerResponse, error) {
	if req.Kind == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("kind is required"))
	}

	out, err := h.players.SpendSkillPoint(ctx, &player.SpendSkillPointInput{
		Kind: entities.SkillKind(req.Kind),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlayerResponse{Player: out.Player, NewAchievements: out.NewAchievements}, nil
}

// UnlockAdvancedSkill unlocks an advanced skill
func (h *Handler) UnlockAdvancedSkill(
	ctx context.Context,
	req *UnlockAdvancedSkillRequest,
) (*UnlockAdvancedSkillResponse, error) {
	if req.Skill == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("skill is required"))
	}

	out, err := h.players.UnlockAdvancedSkill(ctx, &player.UnlockAdvancedSkillInput{
		Skill: entities.AdvancedSkill(req.Skill),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &UnlockAdvancedSkillResponse{Player: out.Player, Unlocked: out.Unlocked}, nil
}

// EquipWeapon equips an owned weapon
func (h *Handler) EquipWeapon(ctx context.Context, req *EquipWeaponRequest) (*PlayerResponse, error) {
	if req.WeaponID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("weapon_id is required"))
	}

	out, err := h.players.EquipWeapon(ctx, &player.EquipWeaponInput{WeaponID: req.WeaponID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlayerResponse{Player: out.Player}, nil
}

// Rest heals outside of battle
func (h *Handler) Rest(ctx context.Context, req *RestRequest) (*RestResponse, error) {
	out, err := h.players.Heal(ctx, &player.HealInput{Amount: req.Amount})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &RestResponse{Player: out.Player, Healed: out.Healed}, nil
}

// ResetSave wipes the save
func (h *Handler) ResetSave(ctx context.Context, _ *ResetSaveRequest) (*PlayerResponse, error) {
	out, err := h.players.ResetSave(ctx, &player.ResetSaveInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &PlayerResponse{Player: out.Player}, nil
}

// StartEncounter starts a boss fight
func (h *Handler) StartEncounter(ctx context.Context, req *StartEncounterRequest) (*EncounterResponse, error) {
	if req.BossID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("boss_id is required"))
	}

	out, err := h.battles.StartEncounter(ctx, &battle.StartEncounterInput{BossID: req.BossID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &EncounterResponse{Encounter: out.Encounter, Player: out.Player}, nil
}

// GetEncounter reads an encounter
func (h *Handler) GetEncounter(ctx context.Context, req *EncounterRequest) (*EncounterResponse, error) {
	if req.EncounterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	out, err := h.battles.GetEncounter(ctx, &battle.GetEncounterInput{EncounterID: req.EncounterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &EncounterResponse{Encounter: out.Encounter}, nil
}

// Attack runs one submission against the boss
func (h *Handler) Attack(ctx context.Context, req *AttackRequest) (*AttackResponse, error) {
	if req.EncounterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	out, err := h.battles.Attack(ctx, &battle.AttackInput{
		EncounterID: req.EncounterID,
		Code:        req.Code,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return NewAttackResponse(out), nil
}

// Heal is the battle heal action
func (h *Handler) Heal(ctx context.Context, req *EncounterRequest) (*HealResponse, error) {
	if req.EncounterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	out, err := h.battles.Heal(ctx, &battle.HealInput{EncounterID: req.EncounterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return NewHealResponse(out), nil
}

// Flee leaves a fight
func (h *Handler) Flee(ctx context.Context, req *EncounterRequest) (*EncounterResponse, error) {
	if req.EncounterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("encounter_id is required"))
	}

	out, err := h.battles.Flee(ctx, &battle.FleeInput{EncounterID: req.EncounterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &EncounterResponse{Encounter: out.Encounter}, nil
}

// StartDungeon starts a dungeon run
func (h *Handler) StartDungeon(ctx context.Context, _ *StartDungeonRequest) (*DungeonRunResponse, error) {
	out, err := h.dungeons.StartRun(ctx, &dungeon.StartRunInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DungeonRunResponse{Run: out.Run, Stage: out.Stage, Player: out.Player}, nil
}

// GetDungeonRun reads a run
func (h *Handler) GetDungeonRun(ctx context.Context, req *DungeonRunRequest) (*DungeonRunResponse, error) {
	if req.RunID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("run_id is required"))
	}

	out, err := h.dungeons.GetRun(ctx, &dungeon.GetRunInput{RunID: req.RunID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &DungeonRunResponse{Run: out.Run, Stage: out.Stage}, nil
}

// SubmitStage submits code for the current stage
func (h *Handler) SubmitStage(ctx context.Context, req *SubmitStageRequest) (*SubmitStageResponse, error) {
	if req.RunID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("run_id is required"))
	}

	out, err := h.dungeons.SubmitStage(ctx, &dungeon.SubmitStageInput{RunID: req.RunID, Code: req.Code})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return NewSubmitStageResponse(out), nil
}

// Classify reports the patterns a snippet uses without running it
func (h *Handler) Classify(_ context.Context, req *ClassifyRequest) (*ClassifyResponse, error) {
	return NewClassifyResponse(h.engine.ClassifyCode(req.Code)), nil
}
