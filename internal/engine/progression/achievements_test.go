package progression_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/codequest/internal/engine/progression"
	"github.com/KirkDiggler/codequest/internal/entities"
)

type AchievementsTestSuite struct {
	suite.Suite
	evaluator *progression.Evaluator
	player    entities.Player
}

func (s *AchievementsTestSuite) SetupTest() {
	s.evaluator = progression.NewEvaluator([]entities.Achievement{
		{ID: "first_strike", Stat: entities.StatSuccessfulRuns, Threshold: 1},
		{ID: "crit_master", Stat: entities.StatCrits, Threshold: 3},
		{ID: "boss_slayer", Stat: entities.StatBossesDefeated, Threshold: 1},
	})
	s.player = entities.Player{Level: 1, HP: 100, MaxHP: 100, MaxXP: 100}
}

func (s *AchievementsTestSuite) TestUpdateStatsIsAdditive() {
	p, _ := s.evaluator.UpdateStats(s.player, map[string]int{entities.StatAttacks: 2})
	p, _ = s.evaluator.UpdateStats(p, map[string]int{entities.StatAttacks: 3, entities.StatCrits: 1})

	s.Equal(5, p.Stats[entities.StatAttacks])
	s.Equal(1, p.Stats[entities.StatCrits])
	s.Empty(s.player.Stats)
}

func (s *AchievementsTestSuite) TestNegativeDeltaIsDropped() {
	p, _ := s.evaluator.UpdateStats(s.player, map[string]int{entities.StatAttacks: 4})
	p, _ = s.evaluator.UpdateStats(p, map[string]int{entities.StatAttacks: -10})
	s.Equal(4, p.Stats[entities.StatAttacks])
}

func (s *AchievementsTestSuite) TestEarnsOnThreshold() {
	p, earned := s.evaluator.UpdateStats(s.player, map[string]int{entities.StatCrits: 2})
	s.Empty(earned)

	p, earned = s.evaluator.UpdateStats(p, map[string]int{entities.StatCrits: 1})
	s.Require().Len(earned, 1)
	s.Equal("crit_master", earned[0].ID)
	s.True(p.HasAchievement("crit_master"))
}

func (s *AchievementsTestSuite) TestAchievementsAreRecordedOnce() {
	p, earned := s.evaluator.UpdateStats(s.player, map[string]int{entities.StatSuccessfulRuns: 1})
	s.Len(earned, 1)

	for i := 0; i < 5; i++ {
		p, earned = s.evaluator.UpdateStats(p, map[string]int{entities.StatSuccessfulRuns: 1})
		s.Empty(earned)
	}
	s.Equal([]string{"first_strike"}, p.Achievements)
}

func (s *AchievementsTestSuite) TestSeveralAtOnce() {
	p, earned := s.evaluator.UpdateStats(s.player, map[string]int{
		entities.StatSuccessfulRuns: 1,
		entities.StatBossesDefeated: 1,
	})
	s.Len(earned, 2)
	s.ElementsMatch([]string{"first_strike", "boss_slayer"}, p.Achievements)
}

func TestAchievementsTestSuite(t *testing.T) {
	suite.Run(t, new(AchievementsTestSuite))
}
