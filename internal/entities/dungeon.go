package entities

// StageCode holds the language specific code of a stage
type StageCode struct {
	Starter    string `json:"starter" yaml:"starter"`
	Validation string `json:"validation" yaml:"validation"`
}

// Stage is one coding challenge of the dungeon
type Stage struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Challenge string `json:"challenge" yaml:"challenge"`
	XPReward  int    `json:"xp_reward" yaml:"xp_reward"`
	// Variants is keyed by sandbox language ("python", "go")
	Variants map[string]StageCode `json:"variants" yaml:"variants"`
}

// DungeonRewards accumulate over a run and are folded into the player on completion
type DungeonRewards struct {
	XP   int      `json:"xp"`
	Loot []Weapon `json:"loot"`
}

// DungeonRun is the state of one pass through the stage list
type DungeonRun struct {
	ID                string         `json:"id"`
	CurrentStageIndex int            `json:"current_stage_index"`
	StagesComplete    int            `json:"stages_complete"`
	IsComplete        bool           `json:"is_complete"`
	IsFailed          bool           `json:"is_failed"`
	Failures          int            `json:"failures"`
	Rewards           DungeonRewards `json:"rewards"`
}

// StageResult reports one verification attempt
type StageResult struct {
	StageID string `json:"stage_id"`
	Passed  bool   `json:"passed"`
	Output  string `json:"output"`
	Error   string `json:"error,omitempty"`
}
