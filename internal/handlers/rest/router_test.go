package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	enginemock "github.com/KirkDiggler/codequest/internal/engine/mock"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
	"github.com/KirkDiggler/codequest/internal/handlers/rest"
	"github.com/KirkDiggler/codequest/internal/orchestrators/battle"
	battlemock "github.com/KirkDiggler/codequest/internal/orchestrators/battle/mock"
	dungeonmock "github.com/KirkDiggler/codequest/internal/orchestrators/dungeon/mock"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/codequest/internal/orchestrators/player/mock"
)

type RouterTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockPlayers  *playermock.MockService
	mockBattles  *battlemock.MockService
	mockDungeons *dungeonmock.MockService
	mockEngine   *enginemock.MockEngine
	router       *gin.Engine
}

func TestRouterTestSuite(t *testing.T) {
	gin.SetMode(gin.TestMode)
	suite.Run(t, new(RouterTestSuite))
}

func (s *RouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayers = playermock.NewMockService(s.ctrl)
	s.mockBattles = battlemock.NewMockService(s.ctrl)
	s.mockDungeons = dungeonmock.NewMockService(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)

	game, err := gamev1.NewHandler(&gamev1.HandlerConfig{
		PlayerService:  s.mockPlayers,
		BattleService:  s.mockBattles,
		DungeonService: s.mockDungeons,
		Engine:         s.mockEngine,
	})
	s.Require().NoError(err)

	s.router, err = rest.NewRouter(&rest.Config{Game: game})
	s.Require().NoError(err)
}

func (s *RouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *RouterTestSuite) TestNewRouter_Validation() {
	_, err := rest.NewRouter(&rest.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RouterTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *RouterTestSuite) TestGetPlayer() {
	s.mockPlayers.EXPECT().
		GetPlayer(gomock.Any(), gomock.Any()).
		Return(&player.GetPlayerOutput{Player: &entities.Player{Level: 2, HP: 110}}, nil)

	rec := s.do(http.MethodGet, "/v1/player", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp gamev1.PlayerResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Player.Level)
	s.Equal(110, resp.Player.HP)
}

func (s *RouterTestSuite) TestAttack() {
	s.mockBattles.EXPECT().
		Attack(gomock.Any(), &battle.AttackInput{EncounterID: "enc_7", Code: "print(1)"}).
		Return(&battle.AttackOutput{
			Encounter: &battle.Encounter{ID: "enc_7", Status: battle.StatusActive},
			Player:    &entities.Player{HP: 90},
			Outcome:   &entities.CombatOutcome{DamageDealt: 12},
		}, nil)

	rec := s.do(http.MethodPost, "/v1/encounters/enc_7/attack", `{"code":"print(1)"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp gamev1.AttackResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(12, resp.Outcome.DamageDealt)
	s.Equal("enc_7", resp.Encounter.ID)
}

func (s *RouterTestSuite) TestErrorMapping() {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantRetry  string
	}{
		{name: "busy", err: errors.Aborted("a turn is already in progress"), wantStatus: http.StatusConflict, wantCode: "ABORTED", wantRetry: "1"},
		{name: "missing", err: errors.NotFound("encounter not found"), wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "over", err: errors.FailedPrecondition("encounter is won"), wantStatus: http.StatusPreconditionFailed, wantCode: "FAILED_PRECONDITION"},
		{name: "store down", err: errors.Unavailable("save store unavailable"), wantStatus: http.StatusServiceUnavailable, wantCode: "UNAVAILABLE", wantRetry: "1"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockBattles.EXPECT().Flee(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/v1/encounters/enc_1/flee", "")
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantRetry, rec.Header().Get("Retry-After"))

			var body map[string]string
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			s.Equal(tc.wantCode, body["code"])
		})
	}
}

func (s *RouterTestSuite) TestBadBody() {
	rec := s.do(http.MethodPost, "/v1/player/skills", `{"kind":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestSpendSkillPoint_MissingKind() {
	rec := s.do(http.MethodPost, "/v1/player/skills", `{}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterTestSuite) TestClassify() {
	s.mockEngine.EXPECT().
		ClassifyCode("while True:\n    break").
		Return(entities.PatternFlags{HasLoopBreak: true, HasWhileLoop: true})

	rec := s.do(http.MethodPost, "/v1/classify", `{"code":"while True:\n    break"}`)
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp gamev1.ClassifyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal([]entities.Pattern{entities.PatternLoopBreak, entities.PatternWhileLoop}, resp.Patterns)
}
