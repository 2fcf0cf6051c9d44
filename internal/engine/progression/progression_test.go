package progression_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/codequest/internal/engine/progression"
	"github.com/KirkDiggler/codequest/internal/entities"
)

type ProgressionTestSuite struct {
	suite.Suite
	player entities.Player
}

func (s *ProgressionTestSuite) SetupTest() {
	starter := entities.Weapon{ID: "wooden_keyboard", Name: "Wooden Keyboard", Damage: 2, Rarity: entities.RarityCommon}
	s.player = entities.Player{
		Level:          1,
		ClassType:      entities.ClassApprentice,
		HP:             100,
		MaxHP:          100,
		MaxXP:          100,
		Inventory:      []entities.Weapon{starter},
		EquippedWeapon: &starter,
		AdvancedSkills: map[entities.AdvancedSkill]bool{},
		Stats:          map[string]int{},
		Achievements:   []string{},
	}
}

func (s *ProgressionTestSuite) TestGainXPBelowThreshold() {
	out, leveled := progression.GainXP(s.player, 40)
	s.False(leveled)
	s.Equal(40, out.XP)
	s.Equal(1, out.Level)
	s.Zero(s.player.XP, "input must not change")
}

func (s *ProgressionTestSuite) TestGainXPLevelsUp() {
	hurt := progression.TakeDamage(s.player, 70)

	out, leveled := progression.GainXP(hurt, 130)
	s.True(leveled)
	s.Equal(2, out.Level)
	s.Equal(30, out.XP)
	s.Equal(150, out.MaxXP)
	s.Equal(1, out.SkillPoints)
	s.Equal(110, out.MaxHP)
	s.Equal(out.MaxHP, out.HP)
}

func (s *ProgressionTestSuite) TestGainXPKeepsXPUnderMax() {
	// any gain short of two full thresholds (100 + 150) leaves xp < maxXp
	for amount := 0; amount < 250; amount++ {
		out, _ := progression.GainXP(s.player, amount)
		s.Less(out.XP, out.MaxXP, "amount %d", amount)
	}
}

func (s *ProgressionTestSuite) TestGainXPLevelUpAlwaysHeals() {
	for _, hp := range []int{0, 1, 50, 100} {
		p := progression.UpdateHP(s.player, hp)
		p.XP = 99
		out, leveled := progression.GainXP(p, 1)
		s.Require().True(leveled)
		s.Equal(p.MaxHP+10, out.MaxHP)
		s.Equal(out.MaxHP, out.HP)
	}
}

func (s *ProgressionTestSuite) TestGainXPSingleStepLimitation() {
	// 400 xp covers several thresholds but only one level is granted per call
	out, leveled := progression.GainXP(s.player, 400)
	s.True(leveled)
	s.Equal(2, out.Level)
	s.Equal(300, out.XP)
	s.Equal(150, out.MaxXP)
	s.GreaterOrEqual(out.XP, out.MaxXP)

	// the next gain picks up the leftover level
	out, leveled = progression.GainXP(out, 0)
	s.True(leveled)
	s.Equal(3, out.Level)
	s.Equal(150, out.XP)
	s.Equal(225, out.MaxXP)
}

func (s *ProgressionTestSuite) TestGainXPNegativeIsIgnored() {
	out, leveled := progression.GainXP(s.player, -50)
	s.False(leveled)
	s.Zero(out.XP)
}

func (s *ProgressionTestSuite) TestUpdateHPIsClamped() {
	for hp := -500; hp <= 500; hp += 7 {
		out := progression.UpdateHP(s.player, hp)
		s.GreaterOrEqual(out.HP, 0)
		s.LessOrEqual(out.HP, out.MaxHP)
	}

	s.Equal(0, progression.TakeDamage(s.player, 1000).HP)
	s.Equal(100, progression.Heal(progression.TakeDamage(s.player, 10), 1000).HP)
	s.Equal(100, progression.TakeDamage(s.player, -10).HP)
	s.Equal(90, progression.Heal(progression.TakeDamage(s.player, 10), -10).HP)
}

func (s *ProgressionTestSuite) TestUpdateMeters() {
	rage := 150
	out := progression.UpdateMeters(s.player, progression.MeterUpdate{Rage: &rage})
	s.Equal(100, out.Rage)
	s.Equal(0, out.Focus)

	out = progression.UpdateMeters(out, progression.Meters(-5, 30))
	s.Equal(0, out.Rage)
	s.Equal(30, out.Focus)

	same := progression.UpdateMeters(out, progression.MeterUpdate{})
	s.Equal(out, same)
}

func (s *ProgressionTestSuite) TestSpendSkillPointWithoutPointsIsNoop() {
	for _, kind := range []entities.SkillKind{entities.SkillDamage, entities.SkillCrit, entities.SkillHeal} {
		out, ok := progression.SpendSkillPoint(s.player, kind)
		s.False(ok)
		s.Empty(cmp.Diff(s.player, out))
	}
}

func (s *ProgressionTestSuite) TestSpendSkillPoint() {
	p := s.player
	p.SkillPoints = 3

	p, ok := progression.SpendSkillPoint(p, entities.SkillDamage)
	s.True(ok)
	p, _ = progression.SpendSkillPoint(p, entities.SkillCrit)
	p, _ = progression.SpendSkillPoint(p, entities.SkillHeal)

	s.Equal(1, p.DamageSkill)
	s.Equal(1, p.CritSkill)
	s.Equal(1, p.HealSkill)
	s.Zero(p.SkillPoints)

	_, ok = progression.SpendSkillPoint(s.player, "charisma")
	s.False(ok)
}

func (s *ProgressionTestSuite) TestUnlockAdvancedSkillIsIdempotent() {
	p := s.player
	p.SkillPoints = 5

	p, ok := progression.UnlockAdvancedSkill(p, entities.AdvancedLoopMastery)
	s.True(ok)
	s.Equal(3, p.SkillPoints)

	again, ok := progression.UnlockAdvancedSkill(p, entities.AdvancedLoopMastery)
	s.False(ok)
	s.Equal(3, again.SkillPoints)
	s.True(again.HasAdvancedSkill(entities.AdvancedLoopMastery))
}

func (s *ProgressionTestSuite) TestUnlockAdvancedSkillNeedsTwoPoints() {
	p := s.player
	p.SkillPoints = 1

	out, ok := progression.UnlockAdvancedSkill(p, entities.AdvancedDebugSuite)
	s.False(ok)
	s.False(out.HasAdvancedSkill(entities.AdvancedDebugSuite))
	s.Equal(1, out.SkillPoints)

	p.SkillPoints = 2
	_, ok = progression.UnlockAdvancedSkill(p, "time_travel")
	s.False(ok)
}

func (s *ProgressionTestSuite) TestUnlockDoesNotShareMaps() {
	p := s.player
	p.SkillPoints = 2

	out, ok := progression.UnlockAdvancedSkill(p, entities.AdvancedOptimizedCompiler)
	s.True(ok)
	s.False(p.HasAdvancedSkill(entities.AdvancedOptimizedCompiler))
	s.True(out.HasAdvancedSkill(entities.AdvancedOptimizedCompiler))
}

func (s *ProgressionTestSuite) TestEquipAndAddItem() {
	blade := entities.Weapon{ID: "regex_blade", Damage: 8, Rarity: entities.RarityRare}

	out := progression.AddItem(s.player, blade)
	out = progression.AddItem(out, blade)
	s.Len(out.Inventory, 3)
	s.Len(s.player.Inventory, 1)

	out = progression.EquipWeapon(out, blade)
	s.Equal("regex_blade", out.EquippedWeapon.ID)
	s.Equal("wooden_keyboard", s.player.EquippedWeapon.ID)
}

func TestProgressionTestSuite(t *testing.T) {
	suite.Run(t, new(ProgressionTestSuite))
}
