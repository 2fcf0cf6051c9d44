// Package dungeon sequences the dungeon stages and validates submissions against them.
package dungeon

import (
	"context"
	"math"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/sandbox"
)

// PassToken must appear in the validation output for a stage to pass
const PassToken = "CORRECT"

// DefaultLootChance is the probability that clearing a stage drops a weapon
const DefaultLootChance = 0.3

// loot rolls use a d100
const lootDieSize = 100

// Config configures a dungeon machine
type Config struct {
	Stages   []entities.Stage
	Language sandbox.Language
	Roller   dice.Roller
	// LootPool is the weapons a stage can drop, normally every non-Common weapon
	LootPool   []entities.Weapon
	LootChance float64
}

// Validate checks the config and fills defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Stages) == 0 {
		vb.RequiredField("stages")
	}
	if c.Language == "" {
		c.Language = sandbox.LanguagePython
	}
	for _, st := range c.Stages {
		if _, ok := st.Variants[string(c.Language)]; !ok {
			vb.Fieldf("stages", "%s has no %s variant", st.ID, c.Language)
		}
	}
	if c.Roller == nil {
		vb.RequiredField("roller")
	}
	if c.LootChance == 0 {
		c.LootChance = DefaultLootChance
	}
	if c.LootChance < 0 || c.LootChance > 1 {
		vb.Field("loot_chance", "must be within [0,1]")
	}

	return vb.Build()
}

// Machine holds the fixed stage list. Runs are plain values passed in and out.
type Machine struct {
	stages     []entities.Stage
	language   sandbox.Language
	roller     dice.Roller
	lootPool   []entities.Weapon
	lootChance float64
}

// NewMachine creates a dungeon machine
func NewMachine(cfg *Config) (*Machine, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Machine{
		stages:     append([]entities.Stage(nil), cfg.Stages...),
		language:   cfg.Language,
		roller:     cfg.Roller,
		lootPool:   append([]entities.Weapon(nil), cfg.LootPool...),
		lootChance: cfg.LootChance,
	}, nil
}

// Language returns the sandbox language stages are validated in
func (m *Machine) Language() sandbox.Language {
	return m.language
}

// Stages returns the ordered stage list
func (m *Machine) Stages() []entities.Stage {
	return append([]entities.Stage(nil), m.stages...)
}

// StartRun returns a run positioned at the first stage
func (m *Machine) StartRun(id string) entities.DungeonRun {
	return entities.DungeonRun{
		ID:      id,
		Rewards: entities.DungeonRewards{Loot: []entities.Weapon{}},
	}
}

// CurrentStage returns the stage the run is positioned at
func (m *Machine) CurrentStage(run entities.DungeonRun) (entities.Stage, error) {
	if run.IsComplete || run.IsFailed {
		return entities.Stage{}, errors.FailedPreconditionf("run %s is over", run.ID)
	}
	if run.CurrentStageIndex < 0 || run.CurrentStageIndex >= len(m.stages) {
		return entities.Stage{}, errors.Internalf("run %s is at stage %d of %d", run.ID, run.CurrentStageIndex, len(m.stages))
	}
	return m.stages[run.CurrentStageIndex], nil
}

// Code returns the starter and validation code of a stage in the machine's language
func (m *Machine) Code(stage entities.Stage) entities.StageCode {
	return stage.Variants[string(m.language)]
}

// Verify validates a submission in two phases on the same session. Phase one runs the
// code alone; if it fails the stage fails with that error and nothing else runs.
// Phase two runs starter, submission and validation snippet together and passes iff
// the output contains PassToken. Gateway errors count as failed executions.
func (m *Machine) Verify(
	ctx context.Context,
	gateway sandbox.Gateway,
	stage entities.Stage,
	code string,
) (*entities.StageResult, error) {
	if gateway == nil {
		return nil, errors.InvalidArgument("gateway is required")
	}
	variant, ok := stage.Variants[string(m.language)]
	if !ok {
		return nil, errors.InvalidArgumentf("stage %s has no %s variant", stage.ID, m.language)
	}

	first := sandbox.Run(ctx, gateway, code)
	if !first.Success {
		return &entities.StageResult{
			StageID: stage.ID,
			Passed:  false,
			Output:  first.Output,
			Error:   first.Error,
		}, nil
	}

	second := sandbox.Run(ctx, gateway, assemble(variant.Starter, code, variant.Validation))

	return &entities.StageResult{
		StageID: stage.ID,
		Passed:  strings.Contains(second.Output, PassToken),
		Output:  second.Output,
		Error:   second.Error,
	}, nil
}

func assemble(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b.WriteString(strings.TrimRight(p, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}

// Progress advances the run past its current stage, banking the stage xp and maybe
// one loot drop. The returned weapon is the drop, nil when nothing dropped.
func (m *Machine) Progress(run entities.DungeonRun) (entities.DungeonRun, *entities.Weapon, error) {
	stage, err := m.CurrentStage(run)
	if err != nil {
		return run, nil, err
	}

	drop, err := m.rollLoot()
	if err != nil {
		return run, nil, err
	}

	out := run
	out.Rewards.Loot = append([]entities.Weapon(nil), run.Rewards.Loot...)
	out.Rewards.XP += stage.XPReward
	out.CurrentStageIndex++
	out.StagesComplete++
	if drop != nil {
		out.Rewards.Loot = append(out.Rewards.Loot, *drop)
	}
	if out.CurrentStageIndex >= len(m.stages) {
		out.IsComplete = true
	}

	return out, drop, nil
}

// RecordFailure counts a failed attempt at the current stage
func (m *Machine) RecordFailure(run entities.DungeonRun) entities.DungeonRun {
	run.Failures++
	return run
}

// Fail ends the run without rewards
func (m *Machine) Fail(run entities.DungeonRun) entities.DungeonRun {
	run.IsFailed = true
	return run
}

// rollLoot drops a weapon when a d100 lands within the loot chance, then picks one
// uniformly from the pool
func (m *Machine) rollLoot() (*entities.Weapon, error) {
	if len(m.lootPool) == 0 {
		return nil, nil
	}

	roll, err := m.roller.Roll(lootDieSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll for loot")
	}
	if roll > int(math.Round(m.lootChance*lootDieSize)) {
		return nil, nil
	}

	pick, err := m.roller.Roll(len(m.lootPool))
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick loot")
	}

	if pick < 1 || pick > len(m.lootPool) {
		return nil, errors.Internalf("loot roll %d outside pool of %d", pick, len(m.lootPool))
	}

	w := m.lootPool[pick-1]
	return &w, nil
}
