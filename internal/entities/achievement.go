package entities

// Achievement is a catalog definition: earned once Stats[Stat] >= Threshold
type Achievement struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Stat        string `json:"stat" yaml:"stat"`
	Threshold   int    `json:"threshold" yaml:"threshold"`
}

// Stat counter names
const (
	StatAttacks          = "attacks"
	StatSuccessfulRuns   = "successful_runs"
	StatFailedRuns       = "failed_runs"
	StatCrits            = "crits"
	StatDamageDealt      = "damage_dealt"
	StatDamageTaken      = "damage_taken"
	StatRecursionUsed    = "recursion_used"
	StatLoopBreakUsed    = "loop_break_used"
	StatListCompUsed     = "list_comp_used"
	StatTryExceptUsed    = "try_except_used"
	StatBossesDefeated   = "bosses_defeated"
	StatStagesCleared    = "stages_cleared"
	StatDungeonsCleared  = "dungeons_cleared"
	StatLevelsGained     = "levels_gained"
	StatSkillPointsSpent = "skill_points_spent"
)
