// Package dungeon drives dungeon runs: an ordered list of coding stages verified
// against a sandbox session, with rewards folded into the player on completion.
package dungeon

//go:generate mockgen -destination=mock/mock_service.go -package=dungeonmock github.com/KirkDiggler/codequest/internal/orchestrators/dungeon Service

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/catalog"
	"github.com/KirkDiggler/codequest/internal/engine"
	dungeonengine "github.com/KirkDiggler/codequest/internal/engine/dungeon"
	"github.com/KirkDiggler/codequest/internal/engine/progression"
	"github.com/KirkDiggler/codequest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	"github.com/KirkDiggler/codequest/internal/pkg/idgen"
	"github.com/KirkDiggler/codequest/internal/sandbox"
)

// Defaults for failure handling
const (
	DefaultFailDamage    = 10
	DefaultFailThreshold = 10
)

// Service defines the interface for dungeon operations
type Service interface {
	// StartRun resets the sandbox session and positions a new run at stage one
	StartRun(ctx context.Context, input *StartRunInput) (*StartRunOutput, error)

	// SubmitStage verifies code against the run's current stage
	SubmitStage(ctx context.Context, input *SubmitStageInput) (*SubmitStageOutput, error)

	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)
}

// Config holds the dependencies for the dungeon orchestrator
type Config struct {
	Machine     *dungeonengine.Machine
	Session     sandbox.Session
	Engine      engine.Engine
	Players     player.Service
	Catalog     *catalog.Catalog
	IDGenerator idgen.Generator
	Logger      *zap.Logger

	// Slot identifies the player in published events
	Slot string

	// FailDamage is dealt to the player for every failed attempt
	FailDamage int
	// FailThreshold fails the run once player hp drops to or below it
	FailThreshold int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Machine == nil {
		vb.RequiredField("Machine")
	}
	if c.Session == nil {
		vb.RequiredField("Session")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Players == nil {
		vb.RequiredField("Players")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.FailDamage < 0 {
		vb.Field("FailDamage", "cannot be negative")
	}
	if c.FailThreshold < 0 {
		vb.Field("FailThreshold", "cannot be negative")
	}

	if err := vb.Build(); err != nil {
		return err
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.FailDamage == 0 {
		c.FailDamage = DefaultFailDamage
	}
	if c.FailThreshold == 0 {
		c.FailThreshold = DefaultFailThreshold
	}
	return nil
}

type orchestrator struct {
	machine       *dungeonengine.Machine
	session       sandbox.Session
	engine        engine.Engine
	players       player.Service
	idGen         idgen.Generator
	logger        *zap.Logger
	slot          string
	failDamage    int
	failThreshold int

	evaluator *progression.Evaluator

	// sessionMu serializes use of the shared interpreter session
	sessionMu sync.Mutex

	mu   sync.RWMutex
	runs map[string]*runState
}

type runState struct {
	busy atomic.Bool

	mu  sync.Mutex
	run entities.DungeonRun
}

func (r *runState) get() entities.DungeonRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.run
}

func (r *runState) set(run entities.DungeonRun) {
	r.mu.Lock()
	r.run = run
	r.mu.Unlock()
}

// NewOrchestrator creates a new dungeon orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		machine:       cfg.Machine,
		session:       cfg.Session,
		engine:        cfg.Engine,
		players:       cfg.Players,
		idGen:         cfg.IDGenerator,
		logger:        cfg.Logger,
		slot:          cfg.Slot,
		failDamage:    cfg.FailDamage,
		failThreshold: cfg.FailThreshold,
		evaluator:     progression.NewEvaluator(cfg.Catalog.Achievements),
		runs:          make(map[string]*runState),
	}, nil
}

func (o *orchestrator) StartRun(ctx context.Context, _ *StartRunInput) (*StartRunOutput, error) {
	playerOut, err := o.players.GetPlayer(ctx, &player.GetPlayerInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load player")
	}

	o.sessionMu.Lock()
	err = o.session.Reset(ctx)
	o.sessionMu.Unlock()
	if err != nil {
		return nil, errors.Wrap(err, "failed to reset sandbox session")
	}

	run := o.machine.StartRun(o.idGen.Generate())

	o.mu.Lock()
	o.evictFinishedLocked()
	o.runs[run.ID] = &runState{run: run}
	o.mu.Unlock()

	o.logger.Info("dungeon run started",
		zap.String("run_id", run.ID),
		zap.String("language", string(o.machine.Language())),
	)

	return &StartRunOutput{
		Run:    &run,
		Stage:  o.stageView(run),
		Player: playerOut.Player,
	}, nil
}

func (o *orchestrator) SubmitStage(ctx context.Context, input *SubmitStageInput) (*SubmitStageOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run id is required")
	}

	state, err := o.lookup(input.RunID)
	if err != nil {
		return nil, err
	}

	if !state.busy.CompareAndSwap(false, true) {
		return nil, errors.Aborted("a submission is already in progress").WithMeta("run_id", input.RunID)
	}
	defer state.busy.Store(false)

	run := state.get()
	stage, err := o.machine.CurrentStage(run)
	if err != nil {
		return nil, err
	}

	o.sessionMu.Lock()
	result, err := o.machine.Verify(ctx, o.session, stage, input.Code)
	o.sessionMu.Unlock()
	if err != nil {
		return nil, err
	}

	out := &SubmitStageOutput{Result: result}

	if result.Passed {
		err = o.pass(ctx, state, out)
	} else {
		err = o.fail(ctx, state, out)
	}
	if err != nil {
		return nil, err
	}

	final := state.get()
	out.Run = &final
	out.NextStage = o.stageView(final)

	o.publishSubmission(ctx, out)
	return out, nil
}

func (o *orchestrator) GetRun(_ context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input == nil || input.RunID == "" {
		return nil, errors.InvalidArgument("run id is required")
	}

	state, err := o.lookup(input.RunID)
	if err != nil {
		return nil, err
	}

	run := state.get()
	return &GetRunOutput{Run: &run, Stage: o.stageView(run)}, nil
}

// pass banks the stage and, on the last one, folds the run rewards into the player.
// The run only advances once the player update succeeded.
func (o *orchestrator) pass(ctx context.Context, state *runState, out *SubmitStageOutput) error {
	next, drop, err := o.machine.Progress(state.get())
	if err != nil {
		return err
	}

	updated, err := o.players.Update(ctx, &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			delta := map[string]int{entities.StatStagesCleared: 1}
			if !next.IsComplete {
				var earned []entities.Achievement
				p, earned = o.evaluator.UpdateStats(p, delta)
				out.NewAchievements = earned
				return p, nil
			}

			p, out.LeveledUp = progression.GainXP(p, next.Rewards.XP)
			out.XPGained = next.Rewards.XP
			for _, w := range next.Rewards.Loot {
				p = progression.AddItem(p, w)
			}

			delta[entities.StatDungeonsCleared] = 1
			var earned []entities.Achievement
			p, earned = o.evaluator.UpdateStats(p, delta)
			out.NewAchievements = earned
			return p, nil
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to update player")
	}
	state.set(next)
	out.Loot = drop
	out.Player = updated.Player
	return nil
}

// fail counts the attempt, hurts the player and ends the run at the hp threshold
func (o *orchestrator) fail(ctx context.Context, state *runState, out *SubmitStageOutput) error {
	run := o.machine.RecordFailure(state.get())

	updated, err := o.players.Update(ctx, &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			next := progression.TakeDamage(p, o.failDamage)
			var earned []entities.Achievement
			next, earned = o.evaluator.UpdateStats(next, map[string]int{
				entities.StatDamageTaken: p.HP - next.HP,
			})
			out.NewAchievements = earned
			return next, nil
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to update player")
	}
	out.Player = updated.Player

	if out.Player.HP <= o.failThreshold {
		run = o.machine.Fail(run)
		o.logger.Info("dungeon run failed",
			zap.String("run_id", run.ID),
			zap.Int("failures", run.Failures),
		)
	}
	state.set(run)
	return nil
}

func (o *orchestrator) lookup(id string) (*runState, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	state, ok := o.runs[id]
	if !ok {
		return nil, errors.NotFoundf("run %q not found", id)
	}
	return state, nil
}

func (o *orchestrator) evictFinishedLocked() {
	for id, state := range o.runs {
		if state.busy.Load() {
			continue
		}
		run := state.get()
		if run.IsComplete || run.IsFailed {
			delete(o.runs, id)
		}
	}
}

func (o *orchestrator) stageView(run entities.DungeonRun) *StageView {
	stage, err := o.machine.CurrentStage(run)
	if err != nil {
		return nil
	}

	return &StageView{
		ID:        stage.ID,
		Title:     stage.Title,
		Challenge: stage.Challenge,
		XPReward:  stage.XPReward,
		Starter:   o.machine.Code(stage).Starter,
		Index:     run.CurrentStageIndex,
		Total:     len(o.machine.Stages()),
	}
}

func (o *orchestrator) publishSubmission(ctx context.Context, out *SubmitStageOutput) {
	o.publish(ctx, engine.EventStageVerified, out, map[string]any{
		engine.DataStageID: out.Result.StageID,
		engine.DataPassed:  out.Result.Passed,
	})

	switch {
	case out.Run.IsComplete:
		o.publish(ctx, engine.EventDungeonCompleted, out, nil)
	case out.Run.IsFailed:
		o.publish(ctx, engine.EventDungeonFailed, out, nil)
	}

	if out.LeveledUp {
		o.publish(ctx, engine.EventPlayerLeveledUp, out, map[string]any{
			engine.DataLevel: out.Player.Level,
		})
	}
	for _, a := range out.NewAchievements {
		o.publish(ctx, engine.EventAchievementEarned, out, map[string]any{
			engine.DataAchievement: a.ID,
		})
	}
}

func (o *orchestrator) publish(ctx context.Context, eventType string, out *SubmitStageOutput, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data[engine.DataRunID] = out.Run.ID

	err := o.engine.PublishEvent(ctx, &engine.PublishEventInput{
		Type:   eventType,
		Source: rpgtoolkit.WrapPlayer(o.slot, out.Player),
		Target: rpgtoolkit.WrapRun(out.Run),
		Data:   data,
	})
	if err != nil {
		o.logger.Warn("failed to publish event",
			zap.String("event", eventType),
			zap.String("run_id", out.Run.ID),
			zap.Error(err),
		)
	}
}
