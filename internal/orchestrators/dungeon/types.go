package dungeon

import "github.com/KirkDiggler/codequest/internal/entities"

// StageView is a stage as shown to the learner, in the session's language
type StageView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Challenge string `json:"challenge"`
	XPReward  int    `json:"xp_reward"`
	Starter   string `json:"starter"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
}

// StartRunInput defines the request for starting a dungeon run
type StartRunInput struct{}

// StartRunOutput defines the response for starting a dungeon run
type StartRunOutput struct {
	Run    *entities.DungeonRun
	Stage  *StageView
	Player *entities.Player
}

// SubmitStageInput defines one attempt at the current stage
type SubmitStageInput struct {
	RunID string
	Code  string
}

// SubmitStageOutput describes the attempt and what it changed
type SubmitStageOutput struct {
	Run    *entities.DungeonRun
	Result *entities.StageResult
	Player *entities.Player

	// NextStage is nil once the run is over
	NextStage *StageView

	// Loot is the weapon dropped by this stage, if any
	Loot *entities.Weapon

	// Set when the run completed on this attempt
	XPGained  int
	LeveledUp bool

	NewAchievements []entities.Achievement
}

// GetRunInput defines the request for reading a run
type GetRunInput struct {
	RunID string
}

// GetRunOutput defines the response for reading a run
type GetRunOutput struct {
	Run   *entities.DungeonRun
	Stage *StageView
}
