package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/codequest/internal/catalog"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	"github.com/KirkDiggler/codequest/internal/pkg/clock"
	playersave "github.com/KirkDiggler/codequest/internal/repositories/player_save"
)

// TestPassValidation is a validation script that always reports success
const TestPassValidation = `print("CORRECT")`

// CreateTestStages returns a two stage python dungeon worth 50 xp in total
func CreateTestStages() []entities.Stage {
	return []entities.Stage{
		{
			ID:        "sum",
			Title:     "Sum",
			Challenge: "Write add(a, b)",
			XPReward:  20,
			Variants: map[string]entities.StageCode{
				"python": {Starter: "import math", Validation: TestPassValidation},
			},
		},
		{
			ID:        "fact",
			Title:     "Factorial",
			Challenge: "Write fact(n)",
			XPReward:  30,
			Variants: map[string]entities.StageCode{
				"python": {Validation: TestPassValidation},
			},
		},
	}
}

// CreateTestPlayerService returns a player orchestrator over a fresh miniredis save
// store whose clock is pinned to the epoch
func CreateTestPlayerService(t *testing.T, cat *catalog.Catalog) player.Service {
	t.Helper()

	client, _ := CreateTestRedisClient(t)
	repo, err := playersave.NewRedisRepository(&playersave.RedisConfig{
		Client: client,
		Clock:  &clock.Fixed{At: time.Unix(0, 0)},
	})
	require.NoError(t, err)

	svc, err := player.NewOrchestrator(&player.Config{Repository: repo, Catalog: cat})
	require.NoError(t, err)
	return svc
}

// SetTestPlayer edits the current player in place through the service
func SetTestPlayer(t *testing.T, svc player.Service, fn func(p *entities.Player)) {
	t.Helper()

	_, err := svc.Update(context.Background(), &player.UpdateInput{
		Mutate: func(p entities.Player) (entities.Player, error) {
			fn(&p)
			return p, nil
		},
	})
	require.NoError(t, err)
}
