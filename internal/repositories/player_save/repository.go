// Package playersave persists player progression snapshots per save slot
package playersave

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=playersavemock github.com/KirkDiggler/codequest/internal/repositories/player_save Repository

// DefaultSlot is used when callers don't name a slot
const DefaultSlot = "default"

const (
	errSlotEmpty  = "slot cannot be empty"
	errPlayerNil  = "player cannot be nil"
	errCorruptFmt = "save %q is corrupt"
)

// LoadInput contains parameters for loading a save
type LoadInput struct {
	Slot string
}

// LoadOutput contains the loaded save
type LoadOutput struct {
	Player *entities.Player
}

// SaveInput contains parameters for writing a save
type SaveInput struct {
	Slot   string
	Player *entities.Player
}

// SaveOutput reports when the save was written
type SaveOutput struct {
	SavedAt time.Time
}

// DeleteInput contains parameters for deleting a save
type DeleteInput struct {
	Slot string
}

// DeleteOutput reports whether a save existed
type DeleteOutput struct {
	Deleted bool
}

// Repository stores one player snapshot per slot.
//
// Load returns a NotFound error when the slot has never been written and a
// DataLoss error when the stored bytes can't be decoded. Callers decide the
// fallback.
type Repository interface {
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

func encode(p *entities.Player) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}
	return data, nil
}

func decode(slot string, data []byte) (*entities.Player, error) {
	var p entities.Player
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, fmt.Sprintf(errCorruptFmt, slot)).
			WithMeta("slot", slot)
	}
	if err := checkPlayer(&p); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, fmt.Sprintf(errCorruptFmt, slot)).
			WithMeta("slot", slot)
	}
	return &p, nil
}

// checkPlayer rejects snapshots that parse but break the progression invariants.
// xp may still be at or above max_xp after a single step level-up, so only its
// sign is checked.
func checkPlayer(p *entities.Player) error {
	vb := errors.NewValidationBuilder()

	if p.Level < 1 {
		vb.Field("level", "must be at least 1")
	}
	if p.MaxHP <= 0 {
		vb.Field("max_hp", "must be positive")
	}
	if p.HP < 0 || p.HP > p.MaxHP {
		vb.Fieldf("hp", "must be within [0, %d]", p.MaxHP)
	}
	if p.MaxXP <= 0 {
		vb.Field("max_xp", "must be positive")
	}
	if p.XP < 0 {
		vb.Field("xp", "cannot be negative")
	}
	checkRange("rage", p.Rage, 0, 100, vb)
	checkRange("focus", p.Focus, 0, 100, vb)
	for field, v := range map[string]int{
		"skill_points": p.SkillPoints,
		"damage_skill": p.DamageSkill,
		"crit_skill":   p.CritSkill,
		"heal_skill":   p.HealSkill,
	} {
		if v < 0 {
			vb.Field(field, "cannot be negative")
		}
	}
	if w := p.EquippedWeapon; w != nil && w.ID == "" {
		vb.Field("equipped_weapon.id", "is required")
	}

	return vb.Build()
}

func checkRange(field string, v, lo, hi int, vb *errors.ValidationBuilder) {
	if v < lo || v > hi {
		vb.Fieldf(field, "must be within [%d, %d]", lo, hi)
	}
}

func validateSave(input SaveInput) error {
	if input.Slot == "" {
		return errors.InvalidArgument(errSlotEmpty)
	}
	if input.Player == nil {
		return errors.InvalidArgument(errPlayerNil)
	}
	return nil
}
