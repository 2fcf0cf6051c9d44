package engine

// Event types published on the bus
const (
	EventAttackResolved    = "codequest.attack.resolved"
	EventBossPhaseEntered  = "codequest.boss.phase_entered"
	EventBossDefeated      = "codequest.boss.defeated"
	EventPlayerDefeated    = "codequest.player.defeated"
	EventPlayerLeveledUp   = "codequest.player.leveled_up"
	EventAchievementEarned = "codequest.achievement.earned"
	EventStageVerified     = "codequest.stage.verified"
	EventDungeonCompleted  = "codequest.dungeon.completed"
	EventDungeonFailed     = "codequest.dungeon.failed"
)

// Event context keys
const (
	DataDamage      = "damage"
	DataCrit        = "crit"
	DataSelfDamage  = "self_damage"
	DataMessage     = "message"
	DataPhase       = "phase"
	DataLevel       = "level"
	DataAchievement = "achievement"
	DataStageID     = "stage_id"
	DataPassed      = "passed"
	DataRunID       = "run_id"
)
