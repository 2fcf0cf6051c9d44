package battle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/codequest/internal/catalog"
	"github.com/KirkDiggler/codequest/internal/engine"
	enginemock "github.com/KirkDiggler/codequest/internal/engine/mock"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/orchestrators/battle"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/codequest/internal/orchestrators/player/mock"
	"github.com/KirkDiggler/codequest/internal/pkg/idgen"
	sandboxmock "github.com/KirkDiggler/codequest/internal/sandbox/mock"
	"github.com/KirkDiggler/codequest/internal/testutils"
	"github.com/KirkDiggler/codequest/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockEngine  *enginemock.MockEngine
	mockGateway *sandboxmock.MockGateway
	players     player.Service
	svc         battle.Service
	ctx         context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockGateway = sandboxmock.NewMockGateway(s.ctrl)
	s.ctx = context.Background()

	mocks.ExpectAnyPublish(s.mockEngine)

	cat, err := catalog.Default()
	s.Require().NoError(err)

	s.players = testutils.CreateTestPlayerService(s.T(), cat)

	s.svc, err = battle.NewOrchestrator(&battle.Config{
		Engine:      s.mockEngine,
		Players:     s.players,
		Catalog:     cat,
		Gateway:     s.mockGateway,
		IDGenerator: idgen.NewSequential("enc"),
		Slot:        "test",
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) start(bossID string) string {
	out, err := s.svc.StartEncounter(s.ctx, &battle.StartEncounterInput{BossID: bossID})
	s.Require().NoError(err)
	return out.Encounter.ID
}

func (s *OrchestratorTestSuite) setPlayer(fn func(p *entities.Player)) {
	testutils.SetTestPlayer(s.T(), s.players, fn)
}

func (s *OrchestratorTestSuite) expectExecute(success bool) {
	mocks.ExpectGatewayRun(s.mockGateway, "print(1)", entities.ExecutionResult{Success: success, Output: "1\n"})
}

func (s *OrchestratorTestSuite) expectResolve(outcome entities.CombatOutcome, flags entities.PatternFlags) {
	s.mockEngine.EXPECT().
		ResolveAttack(gomock.Any(), gomock.Any()).
		Return(&engine.ResolveAttackOutput{Outcome: &outcome, Flags: flags}, nil)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	_, err := battle.NewOrchestrator(&battle.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStartEncounter() {
	out, err := s.svc.StartEncounter(s.ctx, &battle.StartEncounterInput{BossID: "bug_swarm"})
	s.Require().NoError(err)
	s.Equal("enc_1", out.Encounter.ID)
	s.Equal(battle.StatusActive, out.Encounter.Status)
	s.Equal(150, out.Encounter.Boss.HP)
	s.Nil(out.Encounter.Phase)
	s.Equal(100, out.Player.HP)

	_, err = s.svc.StartEncounter(s.ctx, &battle.StartEncounterInput{BossID: "dragon"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestAttack_PlayerUpdateFailureKeepsBoss() {
	mockPlayers := playermock.NewMockService(s.ctrl)
	cat, err := catalog.Default()
	s.Require().NoError(err)

	svc, err := battle.NewOrchestrator(&battle.Config{
		Engine:      s.mockEngine,
		Players:     mockPlayers,
		Catalog:     cat,
		Gateway:     s.mockGateway,
		IDGenerator: idgen.NewSequential("enc"),
		Slot:        "test",
	})
	s.Require().NoError(err)

	p := cat.DefaultPlayer()
	mockPlayers.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).
		Return(&player.GetPlayerOutput{Player: &p}, nil).Times(2)
	mockPlayers.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("save store unavailable"))

	started, err := svc.StartEncounter(s.ctx, &battle.StartEncounterInput{BossID: "bug_swarm"})
	s.Require().NoError(err)
	id := started.Encounter.ID

	s.expectExecute(true)
	s.expectResolve(entities.CombatOutcome{DamageDealt: 150, Message: "hit"}, entities.PatternFlags{})

	_, err = svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	got, err := svc.GetEncounter(s.ctx, &battle.GetEncounterInput{EncounterID: id})
	s.Require().NoError(err)
	s.Equal(150, got.Encounter.Boss.HP)
	s.Equal(0, got.Encounter.Turns)
	s.Equal(battle.StatusActive, got.Encounter.Status)
}

func (s *OrchestratorTestSuite) TestAttack_Success() {
	id := s.start("bug_swarm")
	s.expectExecute(true)
	s.expectResolve(entities.CombatOutcome{DamageDealt: 30, Message: "hit"}, entities.PatternFlags{HasRecursion: true})

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)

	s.Equal(30, out.DamageApplied)
	s.Equal(120, out.Encounter.Boss.HP)
	s.Equal(1, out.Encounter.Turns)
	s.Equal(8, out.Retaliation)
	s.Equal(92, out.Player.HP)
	s.Equal(8, out.Player.Rage)
	s.Equal(10, out.Player.Focus)
	s.Equal(1, out.Player.Stats[entities.StatAttacks])
	s.Equal(1, out.Player.Stats[entities.StatSuccessfulRuns])
	s.Equal(1, out.Player.Stats[entities.StatRecursionUsed])
	s.Equal(30, out.Player.Stats[entities.StatDamageDealt])
	s.Equal(8, out.Player.Stats[entities.StatDamageTaken])
	s.Require().Len(out.NewAchievements, 1)
	s.Equal("first_strike", out.NewAchievements[0].ID)
}

func (s *OrchestratorTestSuite) TestAttack_RageIsSpentOnHit() {
	id := s.start("bug_swarm")

	for i := 0; i < 2; i++ {
		s.expectExecute(true)
		s.expectResolve(entities.CombatOutcome{DamageDealt: 10}, entities.PatternFlags{})
	}

	_, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)
	// rage from the first retaliation is consumed, then refilled by the second
	s.Equal(8, out.Player.Rage)
	s.Equal(20, out.Player.Focus)
}

func (s *OrchestratorTestSuite) TestAttack_GatewayErrorIsFailedRun() {
	id := s.start("bug_swarm")

	s.mockGateway.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(nil, errors.DeadlineExceeded("execution timed out"))
	s.mockEngine.EXPECT().
		ResolveAttack(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *engine.ResolveAttackInput) (*engine.ResolveAttackOutput, error) {
			s.False(in.Result.Success)
			s.Equal("execution timed out", in.Result.Error)
			return &engine.ResolveAttackOutput{
				Outcome: &entities.CombatOutcome{SelfDamage: 5},
			}, nil
		})

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "while True: pass"})
	s.Require().NoError(err)
	s.Equal(87, out.Player.HP)
	s.Equal(1, out.Player.Stats[entities.StatFailedRuns])
	s.Equal(0, out.Player.Stats[entities.StatSuccessfulRuns])
	s.Equal(0, out.Player.Focus)
	s.Equal(150, out.Encounter.Boss.HP)
}

func (s *OrchestratorTestSuite) TestAttack_DefeatBoss() {
	id := s.start("bug_swarm")
	s.expectExecute(true)
	s.expectResolve(entities.CombatOutcome{DamageDealt: 500}, entities.PatternFlags{})

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)
	s.Equal(battle.StatusWon, out.Encounter.Status)
	s.Equal(0, out.Encounter.Boss.HP)
	s.Equal(500, out.DamageApplied)
	s.Equal(0, out.Retaliation)
	s.Equal(40, out.XPGained)
	s.Equal(40, out.Player.XP)
	s.Equal(100, out.Player.HP)
	s.Equal(1, out.Player.Stats[entities.StatBossesDefeated])
	s.True(out.Player.HasAchievement("boss_slayer"))

	_, err = s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestAttack_PhaseMessages() {
	id := s.start("infinite_loop")
	s.expectExecute(true)
	s.expectResolve(entities.CombatOutcome{DamageDealt: 100}, entities.PatternFlags{})

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)
	s.Len(out.PhaseMessages, 1)
	s.Require().NotNil(out.Encounter.Phase)
	s.Equal(66.0, out.Encounter.Phase.Threshold)
}

func (s *OrchestratorTestSuite) TestAttack_PlayerDefeated() {
	id := s.start("bug_swarm")
	s.setPlayer(func(p *entities.Player) { p.HP = 6 })

	s.expectExecute(true)
	s.expectResolve(entities.CombatOutcome{DamageDealt: 10}, entities.PatternFlags{})

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)
	s.Equal(battle.StatusLost, out.Encounter.Status)
	s.Equal(8, out.Retaliation)
	s.Equal(out.Player.MaxHP, out.Player.HP)
	s.Equal(0, out.Player.Rage)
}

func (s *OrchestratorTestSuite) TestAttack_SelfDamageDefeat() {
	id := s.start("bug_swarm")
	s.setPlayer(func(p *entities.Player) { p.HP = 5 })

	s.expectExecute(false)
	s.expectResolve(entities.CombatOutcome{SelfDamage: 5}, entities.PatternFlags{})

	out, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "print(1)"})
	s.Require().NoError(err)
	s.Equal(battle.StatusLost, out.Encounter.Status)
	s.Equal(0, out.Retaliation)
}

func (s *OrchestratorTestSuite) TestAttack_BusyGuard() {
	id := s.start("bug_swarm")

	started := make(chan struct{})
	unblock := make(chan struct{})
	s.mockGateway.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (*entities.ExecutionResult, error) {
			close(started)
			<-unblock
			return &entities.ExecutionResult{Success: true}, nil
		})
	s.expectResolve(entities.CombatOutcome{DamageDealt: 10}, entities.PatternFlags{})

	done := make(chan error, 1)
	go func() {
		_, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "slow"})
		done <- err
	}()

	<-started
	_, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: id, Code: "fast"})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	_, err = s.svc.Heal(s.ctx, &battle.HealInput{EncounterID: id})
	s.True(errors.IsAborted(err))

	close(unblock)
	s.Require().NoError(<-done)
}

func (s *OrchestratorTestSuite) TestAttack_UnknownEncounter() {
	_, err := s.svc.Attack(s.ctx, &battle.AttackInput{EncounterID: "nope", Code: "x"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.svc.Attack(s.ctx, &battle.AttackInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestHeal() {
	testCases := []struct {
		name       string
		hp         int
		focus      int
		healSkill  int
		wantHealed int
		wantFocus  int
		wantHP     int
	}{
		{name: "base", hp: 50, wantHealed: 15, wantHP: 57},
		{name: "skill", hp: 50, healSkill: 2, wantHealed: 25, wantHP: 67},
		{name: "focus doubles", hp: 50, focus: 60, wantHealed: 30, wantFocus: 10, wantHP: 72},
		{name: "capped", hp: 95, focus: 50, wantHealed: 5, wantFocus: 0, wantHP: 92},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			id := s.start("bug_swarm")
			s.setPlayer(func(p *entities.Player) {
				p.HP = tc.hp
				p.Focus = tc.focus
				p.HealSkill = tc.healSkill
			})

			out, err := s.svc.Heal(s.ctx, &battle.HealInput{EncounterID: id})
			s.Require().NoError(err)
			s.Equal(tc.wantHealed, out.Healed)
			s.Equal(8, out.Retaliation)
			s.Equal(tc.wantHP, out.Player.HP)
			s.Equal(tc.wantFocus, out.Player.Focus)
		})
	}
}

func (s *OrchestratorTestSuite) TestFlee() {
	id := s.start("bug_swarm")

	out, err := s.svc.Flee(s.ctx, &battle.FleeInput{EncounterID: id})
	s.Require().NoError(err)
	s.Equal(battle.StatusFled, out.Encounter.Status)

	got, err := s.svc.GetEncounter(s.ctx, &battle.GetEncounterInput{EncounterID: id})
	s.Require().NoError(err)
	s.Equal(battle.StatusFled, got.Encounter.Status)

	_, err = s.svc.Flee(s.ctx, &battle.FleeInput{EncounterID: id})
	s.True(errors.IsFailedPrecondition(err))

	// finished encounters are dropped when the next one starts
	s.start("null_wraith")
	_, err = s.svc.GetEncounter(s.ctx, &battle.GetEncounterInput{EncounterID: id})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRetaliationDelay_CancelledContext() {
	svc, err := battle.NewOrchestrator(&battle.Config{
		Engine:           s.mockEngine,
		Players:          s.players,
		Catalog:          mustCatalog(s),
		Gateway:          s.mockGateway,
		IDGenerator:      idgen.NewSequential("slow"),
		RetaliationDelay: time.Hour,
	})
	s.Require().NoError(err)

	// warm the player cache before the context goes away
	_, err = s.players.GetPlayer(s.ctx, &player.GetPlayerInput{})
	s.Require().NoError(err)

	start, err := svc.StartEncounter(s.ctx, &battle.StartEncounterInput{BossID: "bug_swarm"})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.expectResolve(entities.CombatOutcome{DamageDealt: 10}, entities.PatternFlags{})
	s.mockGateway.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(&entities.ExecutionResult{Success: true}, nil)

	began := time.Now()
	out, err := svc.Attack(ctx, &battle.AttackInput{EncounterID: start.Encounter.ID, Code: "print(1)"})
	s.Require().NoError(err)
	s.Less(time.Since(began), time.Minute)
	s.Equal(8, out.Retaliation)
}

func mustCatalog(s *OrchestratorTestSuite) *catalog.Catalog {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	return cat
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
