package dungeon_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/codequest/internal/catalog"
	dungeonengine "github.com/KirkDiggler/codequest/internal/engine/dungeon"
	enginemock "github.com/KirkDiggler/codequest/internal/engine/mock"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/codequest/internal/orchestrators/player/mock"
	"github.com/KirkDiggler/codequest/internal/pkg/idgen"
	"github.com/KirkDiggler/codequest/internal/sandbox"
	sandboxmock "github.com/KirkDiggler/codequest/internal/sandbox/mock"
	"github.com/KirkDiggler/codequest/internal/testutils"
	"github.com/KirkDiggler/codequest/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockSession *sandboxmock.MockSession
	mockRoller  *mocks.MockRoller
	mockEngine  *enginemock.MockEngine
	players     player.Service
	svc         dungeon.Service
	ctx         context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSession = sandboxmock.NewMockSession(s.ctrl)
	s.mockRoller = mocks.NewMockRoller(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()

	mocks.ExpectAnyPublish(s.mockEngine)

	cat, err := catalog.Default()
	s.Require().NoError(err)

	machine, err := dungeonengine.NewMachine(&dungeonengine.Config{
		Stages:   testutils.CreateTestStages(),
		Language: sandbox.LanguagePython,
		Roller:   s.mockRoller,
		LootPool: cat.LootPool()[:2],
	})
	s.Require().NoError(err)

	s.players = testutils.CreateTestPlayerService(s.T(), cat)

	s.svc, err = dungeon.NewOrchestrator(&dungeon.Config{
		Machine:     machine,
		Session:     s.mockSession,
		Engine:      s.mockEngine,
		Players:     s.players,
		Catalog:     cat,
		IDGenerator: idgen.NewSequential("run"),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) startRun() string {
	s.mockSession.EXPECT().Reset(gomock.Any()).Return(nil)

	out, err := s.svc.StartRun(s.ctx, &dungeon.StartRunInput{})
	s.Require().NoError(err)
	return out.Run.ID
}

func (s *OrchestratorTestSuite) submit(id string) *dungeon.SubmitStageOutput {
	out, err := s.svc.SubmitStage(s.ctx, &dungeon.SubmitStageInput{RunID: id, Code: "answer"})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_Validation() {
	_, err := dungeon.NewOrchestrator(&dungeon.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestStartRun() {
	s.mockSession.EXPECT().Reset(gomock.Any()).Return(nil)

	out, err := s.svc.StartRun(s.ctx, &dungeon.StartRunInput{})
	s.Require().NoError(err)
	s.Equal("run_1", out.Run.ID)
	s.Require().NotNil(out.Stage)
	s.Equal("sum", out.Stage.ID)
	s.Equal("import math", out.Stage.Starter)
	s.Equal(0, out.Stage.Index)
	s.Equal(2, out.Stage.Total)
	s.Equal(100, out.Player.HP)
}

func (s *OrchestratorTestSuite) TestStartRun_ResetFails() {
	s.mockSession.EXPECT().Reset(gomock.Any()).Return(errors.Unavailable("python3 died"))

	_, err := s.svc.StartRun(s.ctx, &dungeon.StartRunInput{})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestSubmitStage_Pass() {
	id := s.startRun()
	mocks.ExpectStagePass(s.mockSession, "answer")
	mocks.ExpectNoLoot(s.mockRoller)

	out := s.submit(id)
	s.True(out.Result.Passed)
	s.Nil(out.Loot)
	s.Equal(1, out.Run.StagesComplete)
	s.Equal(20, out.Run.Rewards.XP)
	s.Require().NotNil(out.NextStage)
	s.Equal("fact", out.NextStage.ID)
	s.Equal(0, out.Player.XP, "rewards wait for completion")
	s.Equal(1, out.Player.Stats[entities.StatStagesCleared])
}

func (s *OrchestratorTestSuite) TestSubmitStage_PlayerUpdateFailureKeepsRun() {
	mockPlayers := playermock.NewMockService(s.ctrl)
	cat, err := catalog.Default()
	s.Require().NoError(err)

	machine, err := dungeonengine.NewMachine(&dungeonengine.Config{
		Stages:   testutils.CreateTestStages(),
		Language: sandbox.LanguagePython,
		Roller:   s.mockRoller,
		LootPool: cat.LootPool()[:2],
	})
	s.Require().NoError(err)

	svc, err := dungeon.NewOrchestrator(&dungeon.Config{
		Machine:     machine,
		Session:     s.mockSession,
		Engine:      s.mockEngine,
		Players:     mockPlayers,
		Catalog:     cat,
		IDGenerator: idgen.NewSequential("run"),
	})
	s.Require().NoError(err)

	p := cat.DefaultPlayer()
	mockPlayers.EXPECT().GetPlayer(gomock.Any(), gomock.Any()).
		Return(&player.GetPlayerOutput{Player: &p}, nil).AnyTimes()
	mockPlayers.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("save store unavailable"))
	s.mockSession.EXPECT().Reset(gomock.Any()).Return(nil)

	started, err := svc.StartRun(s.ctx, &dungeon.StartRunInput{})
	s.Require().NoError(err)
	id := started.Run.ID

	mocks.ExpectStagePass(s.mockSession, "answer")
	mocks.ExpectNoLoot(s.mockRoller)

	_, err = svc.SubmitStage(s.ctx, &dungeon.SubmitStageInput{RunID: id, Code: "answer"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	got, err := svc.GetRun(s.ctx, &dungeon.GetRunInput{RunID: id})
	s.Require().NoError(err)
	s.Equal(0, got.Run.StagesComplete)
	s.Equal(0, got.Run.Rewards.XP)
	s.Require().NotNil(got.Stage)
	s.Equal("sum", got.Stage.ID)
}

func (s *OrchestratorTestSuite) TestSubmitStage_CompleteFoldsRewards() {
	id := s.startRun()

	mocks.ExpectStagePass(s.mockSession, "answer")
	mocks.ExpectNoLoot(s.mockRoller)
	s.submit(id)

	mocks.ExpectStagePass(s.mockSession, "answer")
	mocks.ExpectLoot(s.mockRoller, 2, 2)
	out := s.submit(id)

	s.True(out.Run.IsComplete)
	s.Nil(out.NextStage)
	s.Require().NotNil(out.Loot)
	s.Equal(50, out.XPGained)
	s.False(out.LeveledUp)
	s.Equal(50, out.Player.XP)
	s.True(out.Player.OwnsWeapon(out.Loot.ID))
	s.Len(out.Player.Inventory, 2)
	s.Equal(1, out.Player.Stats[entities.StatDungeonsCleared])
	s.Equal(2, out.Player.Stats[entities.StatStagesCleared])
	s.Require().Len(out.NewAchievements, 1)
	s.Equal("dungeon_delver", out.NewAchievements[0].ID)

	_, err := s.svc.SubmitStage(s.ctx, &dungeon.SubmitStageInput{RunID: id, Code: "answer"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSubmitStage_FailureHurts() {
	id := s.startRun()
	mocks.ExpectStageCrash(s.mockSession, "answer", "NameError")

	out := s.submit(id)
	s.False(out.Result.Passed)
	s.Equal("NameError", out.Result.Error)
	s.Equal(1, out.Run.Failures)
	s.False(out.Run.IsFailed)
	s.Equal(90, out.Player.HP)
	s.Equal(10, out.Player.Stats[entities.StatDamageTaken])
	s.Require().NotNil(out.NextStage)
	s.Equal("sum", out.NextStage.ID)
}

func (s *OrchestratorTestSuite) TestSubmitStage_WrongAnswer() {
	id := s.startRun()
	mocks.ExpectStageOutput(s.mockSession, "answer", "WRONG\n")

	out := s.submit(id)
	s.False(out.Result.Passed)
	s.Equal(1, out.Run.Failures)
}

func (s *OrchestratorTestSuite) TestSubmitStage_FailsRunAtThreshold() {
	id := s.startRun()
	testutils.SetTestPlayer(s.T(), s.players, func(p *entities.Player) { p.HP = 20 })

	mocks.ExpectStageCrash(s.mockSession, "answer", "NameError")
	out := s.submit(id)
	s.Equal(10, out.Player.HP)
	s.True(out.Run.IsFailed)
	s.Nil(out.NextStage)

	got, err := s.svc.GetRun(s.ctx, &dungeon.GetRunInput{RunID: id})
	s.Require().NoError(err)
	s.True(got.Run.IsFailed)

	_, err = s.svc.SubmitStage(s.ctx, &dungeon.SubmitStageInput{RunID: id, Code: "answer"})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestGetRun() {
	_, err := s.svc.GetRun(s.ctx, &dungeon.GetRunInput{RunID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.svc.GetRun(s.ctx, &dungeon.GetRunInput{})
	s.True(errors.IsInvalidArgument(err))

	id := s.startRun()
	got, err := s.svc.GetRun(s.ctx, &dungeon.GetRunInput{RunID: id})
	s.Require().NoError(err)
	s.Equal(id, got.Run.ID)
	s.Equal("sum", got.Stage.ID)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
