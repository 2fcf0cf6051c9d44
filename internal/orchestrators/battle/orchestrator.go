// Package battle runs boss encounters: one code submission per turn, resolved into
// damage, followed by the boss's counter attack.
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/codequest/internal/orchestrators/battle Service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/catalog"
	"github.com/KirkDiggler/codequest/internal/engine"
	"github.com/KirkDiggler/codequest/internal/engine/boss"
	"github.com/KirkDiggler/codequest/internal/engine/progression"
	"github.com/KirkDiggler/codequest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	"github.com/KirkDiggler/codequest/internal/pkg/idgen"
	"github.com/KirkDiggler/codequest/internal/sandbox"
)

// Battle tuning
const (
	FocusPerAttack = 10
	HealBase       = 15
	HealPerSkill   = 5
	FocusHealCost  = 50
)

// Service defines the interface for encounter operations
type Service interface {
	StartEncounter(ctx context.Context, input *StartEncounterInput) (*StartEncounterOutput, error)

	// Attack runs one submission. A second call while a turn is in flight for the
	// same encounter fails with an Aborted error.
	Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error)

	Heal(ctx context.Context, input *HealInput) (*HealOutput, error)
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)
	GetEncounter(ctx context.Context, input *GetEncounterInput) (*GetEncounterOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	Engine      engine.Engine
	Players     player.Service
	Catalog     *catalog.Catalog
	Gateway     sandbox.Gateway
	IDGenerator idgen.Generator
	Logger      *zap.Logger

	// Slot identifies the player in published events
	Slot string

	// RetaliationDelay is the pause between the player's hit and the boss's answer
	RetaliationDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Players == nil {
		vb.RequiredField("Players")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Gateway == nil {
		vb.RequiredField("Gateway")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.RetaliationDelay < 0 {
		vb.Field("RetaliationDelay", "cannot be negative")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return nil
}

type orchestrator struct {
	engine  engine.Engine
	players player.Service
	catalog *catalog.Catalog
	gateway sandbox.Gateway
	idGen   idgen.Generator
	logger  *zap.Logger
	slot    string
	delay   time.Duration

	evaluator *progression.Evaluator

	mu         sync.RWMutex
	encounters map[string]*encounterState
}

// encounterState holds the state of one fight
type encounterState struct {
	id string

	// busy is set for the whole turn, including the retaliation pause
	busy atomic.Bool

	mu      sync.Mutex
	machine *boss.Machine
	status  Status
	turns   int
}

func (e *encounterState) snapshot() *Encounter {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

func (e *encounterState) snapshotLocked() *Encounter {
	out := &Encounter{
		ID:     e.id,
		Boss:   e.machine.Boss(),
		Status: e.status,
		Turns:  e.turns,
	}
	if p, ok := e.machine.CurrentPhase(); ok {
		out.Phase = &p
	}
	return out
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:     cfg.Engine,
		players:    cfg.Players,
		catalog:    cfg.Catalog,
		gateway:    cfg.Gateway,
		idGen:      cfg.IDGenerator,
		logger:     cfg.Logger,
		slot:       cfg.Slot,
		delay:      cfg.RetaliationDelay,
		evaluator:  progression.NewEvaluator(cfg.Catalog.Achievements),
		encounters: make(map[string]*encounterState),
	}, nil
}

func (o *orchestrator) StartEncounter(
	ctx context.Context,
	input *StartEncounterInput,
) (*StartEncounterOutput, error) {
	if input == nil || input.BossID == "" {
		return nil, errors.InvalidArgument("boss id is required")
	}

	b, err := o.catalog.NewBoss(input.BossID)
	if err != nil {
		return nil, err
	}

	playerOut, err := o.players.GetPlayer(ctx, &player.GetPlayerInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	state := &encounterState{
		id:      o.idGen.Generate(),
		machine: boss.NewMachine(b),
		status:  StatusActive,
	}

	o.mu.Lock()
	o.evictFinishedLocked()
	o.encounters[state.id] = state
	o.mu.Unlock()

	o.logger.Info("encounter started",
		zap.String("encounter_id", state.id),
		zap.String("boss_id", b.ID),
	)

	return &StartEncounterOutput{
		Encounter: state.snapshot(),
		Player:    playerOut.Player,
	}, nil
}

func (o *orchestrator) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter id is required")
	}

	state, release, err := o.beginTurn(input.EncounterID)
	if err != nil {
		return nil, err
	}
	defer release()

	result := sandbox.Run(ctx, o.gateway, input.Code)

	current, err := o.players.GetPlayer(ctx, &player.GetPlayerInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	state.mu.Lock()
	bossSnapshot := state.machine.Boss()
	state.mu.Unlock()

	resolved, err := o.engine.ResolveAttack(ctx, &engine.ResolveAttackInput{
		Player: current.Player,
		Boss:   &bossSnapshot,
		Code:   input.Code,
		Result: result,
	})
	if err != nil {
		return nil, err
	}
	outcome := resolved.Outcome

	// the turn runs on a copy of the boss and is committed after the player update
	state.mu.Lock()
	nextBoss := state.machine.Clone()
	state.mu.Unlock()
	transition := nextBoss.ApplyDamage(outcome.DamageDealt)

	out := &AttackOutput{
		Execution:     result,
		Flags:         resolved.Flags,
		Outcome:       outcome,
		DamageApplied: transition.Applied,
		PhaseMessages: transition.Messages(),
	}

	updated, err := o.players.Update(ctx, &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			next := progression.TakeDamage(p, outcome.SelfDamage)
			if result.Success {
				focus := next.Focus + FocusPerAttack
				update := progression.MeterUpdate{Focus: &focus}
				if next.Rage > 0 {
					update.Rage = new(int)
				}
				next = progression.UpdateMeters(next, update)
			}

			var earned []entities.Achievement
			next, earned = o.evaluator.UpdateStats(next, attackStats(result, outcome, resolved.Flags, transition))
			out.NewAchievements = append(out.NewAchievements, earned...)

			if transition.Defeated {
				var leveled bool
				next, leveled = progression.GainXP(next, bossSnapshot.XPReward)
				out.XPGained = bossSnapshot.XPReward
				out.LeveledUp = leveled
			}
			return next, nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}
	out.Player = updated.Player

	state.mu.Lock()
	state.machine = nextBoss
	state.turns++
	if transition.Defeated {
		state.status = StatusWon
	}
	state.mu.Unlock()

	o.publishAttack(ctx, state, out)

	switch {
	case transition.Defeated:
		o.publish(ctx, engine.EventBossDefeated, state, out.Player, map[string]any{
			engine.DataMessage: bossSnapshot.Name + " was defeated",
		})
	case out.Player.HP <= 0:
		out.Player, err = o.defeat(ctx, state)
		if err != nil {
			return nil, err
		}
	default:
		o.pause(ctx)
		out.Player, out.Retaliation, err = o.retaliate(ctx, state)
		if err != nil {
			return nil, err
		}
	}

	out.Encounter = state.snapshot()
	return out, nil
}

func (o *orchestrator) Heal(ctx context.Context, input *HealInput) (*HealOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter id is required")
	}

	state, release, err := o.beginTurn(input.EncounterID)
	if err != nil {
		return nil, err
	}
	defer release()

	out := &HealOutput{}
	updated, err := o.players.Update(ctx, &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			amount := HealBase + HealPerSkill*p.HealSkill
			next := p
			if p.Focus >= FocusHealCost {
				amount *= 2
				focus := p.Focus - FocusHealCost
				next = progression.UpdateMeters(next, progression.MeterUpdate{Focus: &focus})
				out.FocusSpent = FocusHealCost
			}
			healed := progression.Heal(next, amount)
			out.Healed = healed.HP - next.HP
			return healed, nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}
	out.Player = updated.Player

	state.mu.Lock()
	state.turns++
	state.mu.Unlock()

	o.pause(ctx)
	out.Player, out.Retaliation, err = o.retaliate(ctx, state)
	if err != nil {
		return nil, err
	}

	out.Encounter = state.snapshot()
	return out, nil
}

func (o *orchestrator) Flee(_ context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter id is required")
	}

	state, release, err := o.beginTurn(input.EncounterID)
	if err != nil {
		return nil, err
	}
	defer release()

	state.mu.Lock()
	state.status = StatusFled
	snap := state.snapshotLocked()
	state.mu.Unlock()

	o.logger.Info("encounter fled", zap.String("encounter_id", state.id))

	return &FleeOutput{Encounter: snap}, nil
}

func (o *orchestrator) GetEncounter(_ context.Context, input *GetEncounterInput) (*GetEncounterOutput, error) {
	if input == nil || input.EncounterID == "" {
		return nil, errors.InvalidArgument("encounter id is required")
	}

	state, err := o.lookup(input.EncounterID)
	if err != nil {
		return nil, err
	}

	return &GetEncounterOutput{Encounter: state.snapshot()}, nil
}

func (o *orchestrator) lookup(id string) (*encounterState, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	state, ok := o.encounters[id]
	if !ok {
		return nil, errors.NotFoundf("encounter %q not found", id)
	}
	return state, nil
}

// beginTurn claims the encounter's busy flag. The returned func releases it.
func (o *orchestrator) beginTurn(id string) (*encounterState, func(), error) {
	state, err := o.lookup(id)
	if err != nil {
		return nil, nil, err
	}

	if !state.busy.CompareAndSwap(false, true) {
		return nil, nil, errors.Aborted("a turn is already in progress").WithMeta("encounter_id", id)
	}
	release := func() { state.busy.Store(false) }

	state.mu.Lock()
	status := state.status
	state.mu.Unlock()

	if status != StatusActive {
		release()
		return nil, nil, errors.FailedPreconditionf("encounter is %s", status)
	}
	return state, release, nil
}

// pause waits out the retaliation delay. Cancellation cuts the wait short but the
// boss still answers.
func (o *orchestrator) pause(ctx context.Context) {
	if o.delay <= 0 {
		return
	}

	timer := time.NewTimer(o.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// retaliate applies the boss's counter attack and, when it drops the player to
// zero, ends the encounter
func (o *orchestrator) retaliate(ctx context.Context, state *encounterState) (*entities.Player, int, error) {
	state.mu.Lock()
	damage := state.machine.Retaliate()
	state.mu.Unlock()

	var earned []entities.Achievement
	updated, err := o.players.Update(ctx, &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			next := progression.TakeDamage(p, damage)
			rage := next.Rage + damage
			next = progression.UpdateMeters(next, progression.MeterUpdate{Rage: &rage})
			next, earned = o.evaluator.UpdateStats(next, map[string]int{entities.StatDamageTaken: damage})
			return next, nil
		},
	})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to update player")
	}

	for _, a := range earned {
		o.publish(ctx, engine.EventAchievementEarned, state, updated.Player, map[string]any{
			engine.DataAchievement: a.ID,
		})
	}

	if updated.Player.HP > 0 {
		return updated.Player, damage, nil
	}

	p, err := o.defeat(ctx, state)
	return p, damage, err
}

// defeat ends the encounter and restores the player to full health
func (o *orchestrator) defeat(ctx context.Context, state *encounterState) (*entities.Player, error) {
	state.mu.Lock()
	state.status = StatusLost
	state.mu.Unlock()

	updated, err := o.players.Update(ctx, &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			next := progression.UpdateHP(p, p.MaxHP)
			return progression.UpdateMeters(next, progression.Meters(0, 0)), nil
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}

	o.publish(ctx, engine.EventPlayerDefeated, state, updated.Player, nil)
	return updated.Player, nil
}

func (o *orchestrator) evictFinishedLocked() {
	for id, state := range o.encounters {
		if state.busy.Load() {
			continue
		}
		state.mu.Lock()
		done := state.status != StatusActive
		state.mu.Unlock()
		if done {
			delete(o.encounters, id)
		}
	}
}

func attackStats(
	result entities.ExecutionResult,
	outcome *entities.CombatOutcome,
	flags entities.PatternFlags,
	transition boss.Transition,
) map[string]int {
	delta := map[string]int{
		entities.StatAttacks:     1,
		entities.StatDamageTaken: outcome.SelfDamage,
	}
	if !result.Success {
		delta[entities.StatFailedRuns] = 1
		return delta
	}

	delta[entities.StatSuccessfulRuns] = 1
	delta[entities.StatDamageDealt] = transition.Applied
	if outcome.IsCrit {
		delta[entities.StatCrits] = 1
	}
	if flags.HasRecursion {
		delta[entities.StatRecursionUsed] = 1
	}
	if flags.HasLoopBreak {
		delta[entities.StatLoopBreakUsed] = 1
	}
	if flags.HasListComp {
		delta[entities.StatListCompUsed] = 1
	}
	if flags.HasTryExcept {
		delta[entities.StatTryExceptUsed] = 1
	}
	if transition.Defeated {
		delta[entities.StatBossesDefeated] = 1
	}
	return delta
}

func (o *orchestrator) publishAttack(ctx context.Context, state *encounterState, out *AttackOutput) {
	o.publish(ctx, engine.EventAttackResolved, state, out.Player, map[string]any{
		engine.DataDamage:     out.DamageApplied,
		engine.DataCrit:       out.Outcome.IsCrit,
		engine.DataSelfDamage: out.Outcome.SelfDamage,
		engine.DataMessage:    out.Outcome.Message,
	})

	for _, msg := range out.PhaseMessages {
		o.publish(ctx, engine.EventBossPhaseEntered, state, out.Player, map[string]any{
			engine.DataPhase: msg,
		})
	}
	if out.LeveledUp {
		o.publish(ctx, engine.EventPlayerLeveledUp, state, out.Player, map[string]any{
			engine.DataLevel: out.Player.Level,
		})
	}
	for _, a := range out.NewAchievements {
		o.publish(ctx, engine.EventAchievementEarned, state, out.Player, map[string]any{
			engine.DataAchievement: a.ID,
		})
	}
}

// publish sends an event from the player to the encounter's boss. Failures are
// logged; events never fail a turn.
func (o *orchestrator) publish(
	ctx context.Context,
	eventType string,
	state *encounterState,
	p *entities.Player,
	data map[string]any,
) {
	state.mu.Lock()
	b := state.machine.Boss()
	state.mu.Unlock()

	err := o.engine.PublishEvent(ctx, &engine.PublishEventInput{
		Type:   eventType,
		Source: rpgtoolkit.WrapPlayer(o.slot, p),
		Target: rpgtoolkit.WrapBoss(state.id, &b),
		Data:   data,
	})
	if err != nil {
		o.logger.Warn("failed to publish event",
			zap.String("event", eventType),
			zap.String("encounter_id", state.id),
			zap.Error(err),
		)
	}
}
