package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/codequest/internal/entities"
)

func TestPlayerEntity(t *testing.T) {
	player := &entities.Player{Level: 4}

	entity := WrapPlayer("default", player)

	assert.Equal(t, "default", entity.GetID())
	assert.Equal(t, EntityTypePlayer, entity.GetType())
	assert.Equal(t, 4, entity.Level)
}

func TestBossEntity(t *testing.T) {
	boss := &entities.Boss{ID: "infinite_loop", Name: "The Infinite Loop"}

	entity := WrapBoss("enc-7", boss)

	assert.Equal(t, "enc-7/infinite_loop", entity.GetID())
	assert.Equal(t, EntityTypeBoss, entity.GetType())
	assert.Equal(t, "The Infinite Loop", entity.Name)
}

func TestRunEntity(t *testing.T) {
	run := &entities.DungeonRun{ID: "run-1", StagesComplete: 2}

	entity := WrapRun(run)

	assert.Equal(t, "run-1", entity.GetID())
	assert.Equal(t, EntityTypeRun, entity.GetType())
	assert.Equal(t, 2, entity.StagesComplete)
}
