// Package player owns the persistent player save and serializes every change to it
package player

//go:generate mockgen -destination=mock/mock_service.go -package=playermock github.com/KirkDiggler/codequest/internal/orchestrators/player Service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/catalog"
	"github.com/KirkDiggler/codequest/internal/engine/progression"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	playersave "github.com/KirkDiggler/codequest/internal/repositories/player_save"
)

// Service defines the interface for player operations
type Service interface {
	// GetPlayer returns the current snapshot, loading the save on first use
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// Update applies an arbitrary transition and persists the result
	Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error)

	SpendSkillPoint(ctx context.Context, input *SpendSkillPointInput) (*SpendSkillPointOutput, error)
	UnlockAdvancedSkill(ctx context.Context, input *UnlockAdvancedSkillInput) (*UnlockAdvancedSkillOutput, error)
	EquipWeapon(ctx context.Context, input *EquipWeaponInput) (*EquipWeaponOutput, error)
	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)

	// ResetSave deletes the stored save and starts over from the default player
	ResetSave(ctx context.Context, input *ResetSaveInput) (*ResetSaveOutput, error)
}

// Config holds the dependencies for the player orchestrator
type Config struct {
	Repository playersave.Repository
	Catalog    *catalog.Catalog
	Logger     *zap.Logger
	// Slot names the save; defaults to playersave.DefaultSlot
	Slot string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Slot == "" {
		c.Slot = playersave.DefaultSlot
	}
	return nil
}

type orchestrator struct {
	repo      playersave.Repository
	catalog   *catalog.Catalog
	evaluator *progression.Evaluator
	logger    *zap.Logger
	slot      string

	// mu serializes load, transition and save
	mu      sync.Mutex
	current *entities.Player
}

// NewOrchestrator creates a new player orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:      cfg.Repository,
		catalog:   cfg.Catalog,
		evaluator: progression.NewEvaluator(cfg.Catalog.Achievements),
		logger:    cfg.Logger.With(zap.String("slot", cfg.Slot)),
		slot:      cfg.Slot,
	}, nil
}

func (o *orchestrator) GetPlayer(ctx context.Context, _ *GetPlayerInput) (*GetPlayerOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{Player: snapshot(p)}, nil
}

func (o *orchestrator) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil || input.Mutate == nil {
		return nil, errors.InvalidArgument("mutate function is required")
	}

	p, err := o.mutate(ctx, input.Mutate)
	if err != nil {
		return nil, err
	}

	return &UpdateOutput{Player: p}, nil
}

func (o *orchestrator) SpendSkillPoint(
	ctx context.Context,
	input *SpendSkillPointInput,
) (*SpendSkillPointOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch input.Kind {
	case entities.SkillDamage, entities.SkillCrit, entities.SkillHeal:
	default:
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Kind)
	}

	var earned []entities.Achievement
	p, err := o.mutate(ctx, func(p entities.Player) (entities.Player, error) {
		next, ok := progression.SpendSkillPoint(p, input.Kind)
		if !ok {
			return p, errors.FailedPrecondition("no skill points available")
		}
		next, earned = o.evaluator.UpdateStats(next, map[string]int{entities.StatSkillPointsSpent: 1})
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &SpendSkillPointOutput{Player: p, NewAchievements: earned}, nil
}

func (o *orchestrator) UnlockAdvancedSkill(
	ctx context.Context,
	input *UnlockAdvancedSkillInput,
) (*UnlockAdvancedSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !progression.IsAdvancedSkill(input.Skill) {
		return nil, errors.InvalidArgumentf("unknown advanced skill %q", input.Skill)
	}

	unlocked := false
	p, err := o.mutate(ctx, func(p entities.Player) (entities.Player, error) {
		if p.HasAdvancedSkill(input.Skill) {
			return p, nil
		}
		next, ok := progression.UnlockAdvancedSkill(p, input.Skill)
		if !ok {
			return p, errors.Newf(errors.CodeFailedPrecondition,
				"%s needs %d skill points", input.Skill, progression.AdvancedSkillCost)
		}
		unlocked = true
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &UnlockAdvancedSkillOutput{Player: p, Unlocked: unlocked}, nil
}

func (o *orchestrator) EquipWeapon(ctx context.Context, input *EquipWeaponInput) (*EquipWeaponOutput, error) {
	if input == nil || input.WeaponID == "" {
		return nil, errors.InvalidArgument("weapon id is required")
	}

	weapon, ok := o.catalog.Weapon(input.WeaponID)
	if !ok {
		return nil, errors.NotFoundf("weapon %q not found", input.WeaponID)
	}

	p, err := o.mutate(ctx, func(p entities.Player) (entities.Player, error) {
		if !p.OwnsWeapon(weapon.ID) {
			return p, errors.FailedPreconditionf("weapon %q is not in the inventory", weapon.ID)
		}
		return progression.EquipWeapon(p, weapon), nil
	})
	if err != nil {
		return nil, err
	}

	return &EquipWeaponOutput{Player: p}, nil
}

func (o *orchestrator) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input == nil || input.Amount < 0 {
		return nil, errors.InvalidArgument("heal amount cannot be negative")
	}

	healed := 0
	p, err := o.mutate(ctx, func(p entities.Player) (entities.Player, error) {
		amount := input.Amount
		if amount == 0 {
			amount = p.MaxHP
		}
		next := progression.Heal(p, amount)
		healed = next.HP - p.HP
		return next, nil
	})
	if err != nil {
		return nil, err
	}

	return &HealOutput{Player: p, Healed: healed}, nil
}

func (o *orchestrator) ResetSave(ctx context.Context, _ *ResetSaveInput) (*ResetSaveOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := o.repo.Delete(ctx, playersave.DeleteInput{Slot: o.slot}); err != nil {
		return nil, errors.Wrap(err, "failed to delete save")
	}

	fresh := o.catalog.DefaultPlayer()
	o.current = &fresh
	o.logger.Info("save reset")

	return &ResetSaveOutput{Player: snapshot(o.current)}, nil
}

// mutate runs load, transition and save as one serialized step. A failed save is
// logged and the in-memory snapshot still advances.
func (o *orchestrator) mutate(ctx context.Context, fn MutateFunc) (*entities.Player, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	current, err := o.loadLocked(ctx)
	if err != nil {
		return nil, err
	}

	next, err := fn(current.Clone())
	if err != nil {
		return nil, err
	}

	o.current = &next

	if _, err := o.repo.Save(ctx, playersave.SaveInput{Slot: o.slot, Player: o.current}); err != nil {
		o.logger.Warn("failed to persist save", zap.Error(err))
	}

	return snapshot(o.current), nil
}

func (o *orchestrator) loadLocked(ctx context.Context) (*entities.Player, error) {
	if o.current != nil {
		return o.current, nil
	}

	out, err := o.repo.Load(ctx, playersave.LoadInput{Slot: o.slot})
	if err == nil {
		err = o.checkWeapon(out.Player)
	}
	switch {
	case err == nil:
		o.current = normalize(out.Player)
	case errors.IsNotFound(err):
		fresh := o.catalog.DefaultPlayer()
		o.current = &fresh
	case errors.IsDataLoss(err):
		o.logger.Warn("save is corrupt, starting from the default player", zap.Error(err))
		fresh := o.catalog.DefaultPlayer()
		o.current = &fresh
	default:
		return nil, errors.Wrap(err, "failed to load save")
	}

	return o.current, nil
}

// checkWeapon treats a save whose equipped weapon left the catalog as corrupt
func (o *orchestrator) checkWeapon(p *entities.Player) error {
	if p.EquippedWeapon == nil {
		return nil
	}
	if _, ok := o.catalog.Weapon(p.EquippedWeapon.ID); !ok {
		return errors.DataLoss("equipped weapon is not in the catalog").
			WithMeta("weapon_id", p.EquippedWeapon.ID)
	}
	return nil
}

// normalize fills maps an older or hand edited save may be missing
func normalize(p *entities.Player) *entities.Player {
	if p.AdvancedSkills == nil {
		p.AdvancedSkills = map[entities.AdvancedSkill]bool{}
	}
	if p.Stats == nil {
		p.Stats = map[string]int{}
	}
	return p
}

func snapshot(p *entities.Player) *entities.Player {
	c := p.Clone()
	return &c
}
