package rpgtoolkit

import "github.com/KirkDiggler/codequest/internal/entities"

// Entity types reported to the toolkit
const (
	EntityTypePlayer = "player"
	EntityTypeBoss   = "boss"
	EntityTypeRun    = "dungeon_run"
)

// PlayerEntity wraps the save slot's player to implement core.Entity
type PlayerEntity struct {
	Slot string
	*entities.Player
}

// GetID returns the save slot, which identifies the player
func (p *PlayerEntity) GetID() string {
	return p.Slot
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerEntity) GetType() string {
	return EntityTypePlayer
}

// BossEntity wraps an encounter's boss to implement core.Entity
type BossEntity struct {
	EncounterID string
	*entities.Boss
}

// GetID returns the encounter scoped boss id
func (b *BossEntity) GetID() string {
	return b.EncounterID + "/" + b.ID
}

// GetType returns the entity type for rpg-toolkit
func (b *BossEntity) GetType() string {
	return EntityTypeBoss
}

// RunEntity wraps a dungeon run to implement core.Entity
type RunEntity struct {
	*entities.DungeonRun
}

// GetID returns the run id
func (r *RunEntity) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *RunEntity) GetType() string {
	return EntityTypeRun
}

// WrapPlayer converts a player into a toolkit entity
func WrapPlayer(slot string, p *entities.Player) *PlayerEntity {
	return &PlayerEntity{Slot: slot, Player: p}
}

// WrapBoss converts an encounter boss into a toolkit entity
func WrapBoss(encounterID string, b *entities.Boss) *BossEntity {
	return &BossEntity{EncounterID: encounterID, Boss: b}
}

// WrapRun converts a dungeon run into a toolkit entity
func WrapRun(run *entities.DungeonRun) *RunEntity {
	return &RunEntity{DungeonRun: run}
}
