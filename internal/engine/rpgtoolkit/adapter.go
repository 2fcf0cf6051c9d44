// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/codequest/internal/engine"
	"github.com/KirkDiggler/codequest/internal/engine/combat"
	"github.com/KirkDiggler/codequest/internal/engine/patterns"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	classifier patterns.Classifier
	resolver   *combat.Resolver
	weaknesses map[string]entities.Pattern
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
	Classifier patterns.Classifier
	// Weaknesses maps boss ids to the pattern that exploits them
	Weaknesses map[string]entities.Pattern
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidArgument("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	if c.Classifier == nil {
		return errors.InvalidArgument("classifier is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolver, err := combat.NewResolver(cfg.DiceRoller)
	if err != nil {
		return nil, err
	}

	weaknesses := make(map[string]entities.Pattern, len(cfg.Weaknesses))
	for k, v := range cfg.Weaknesses {
		weaknesses[k] = v
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		classifier: cfg.Classifier,
		resolver:   resolver,
		weaknesses: weaknesses,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// ClassifyCode delegates to the configured classifier
func (a *Adapter) ClassifyCode(code string) entities.PatternFlags {
	return a.classifier.Classify(code)
}

// ResolveAttack classifies the submission and resolves it against the boss
func (a *Adapter) ResolveAttack(
	_ context.Context,
	input *engine.ResolveAttackInput,
) (*engine.ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Player == nil {
		return nil, errors.InvalidArgument("player is required")
	}
	if input.Boss == nil {
		return nil, errors.InvalidArgument("boss is required")
	}

	flags := a.classifier.Classify(input.Code)

	outcome, err := a.resolver.Resolve(&combat.Input{
		Player:     *input.Player,
		Boss:       *input.Boss,
		Result:     input.Result,
		Flags:      flags,
		Code:       input.Code,
		Weaknesses: a.weaknesses,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve attack")
	}

	return &engine.ResolveAttackOutput{
		Outcome: outcome,
		Flags:   flags,
	}, nil
}

// PublishEvent wraps the input in a toolkit game event and publishes it on the bus
func (a *Adapter) PublishEvent(ctx context.Context, input *engine.PublishEventInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Type == "" {
		return errors.InvalidArgument("event type is required")
	}

	event := events.NewGameEvent(input.Type, input.Source, input.Target)
	for k, v := range input.Data {
		event.Context().Set(k, v)
	}

	if err := a.eventBus.Publish(ctx, event); err != nil {
		return errors.Wrapf(err, "failed to publish %s", input.Type)
	}
	return nil
}
