// Package engine exposes the combat rules to orchestrators
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/codequest/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/codequest/internal/entities"
)

// Engine provides code classification, attack resolution and game event fan-out
type Engine interface {
	// ClassifyCode detects structural patterns in a submission
	ClassifyCode(code string) entities.PatternFlags

	// ResolveAttack classifies the submission and turns its execution result into
	// a combat outcome
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)

	// PublishEvent notifies subscribers of something that happened in a fight or run
	PublishEvent(ctx context.Context, input *PublishEventInput) error
}
