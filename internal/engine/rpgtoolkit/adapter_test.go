package rpgtoolkit_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/codequest/internal/engine"
	"github.com/KirkDiggler/codequest/internal/engine/patterns"
	patternsmock "github.com/KirkDiggler/codequest/internal/engine/patterns/mock"
	"github.com/KirkDiggler/codequest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/errors"
	"github.com/KirkDiggler/codequest/internal/testutils/mocks"
)

type AdapterTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	roller  *mocks.MockRoller
	bus     events.EventBus
	adapter *rpgtoolkit.Adapter
	ctx     context.Context
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.roller = mocks.NewMockRoller(s.ctrl)
	s.bus = events.NewBus()
	s.ctx = context.Background()

	var err error
	s.adapter, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   s.bus,
		DiceRoller: s.roller,
		Classifier: patterns.NewLexical(),
		Weaknesses: map[string]entities.Pattern{"stack_overflow": entities.PatternBaseCase},
	})
	s.Require().NoError(err)
}

func (s *AdapterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AdapterTestSuite) TestNewAdapterValidation() {
	testCases := []struct {
		name string
		cfg  *rpgtoolkit.AdapterConfig
	}{
		{name: "nil config", cfg: nil},
		{name: "missing bus", cfg: &rpgtoolkit.AdapterConfig{DiceRoller: s.roller, Classifier: patterns.NewLexical()}},
		{name: "missing roller", cfg: &rpgtoolkit.AdapterConfig{EventBus: s.bus, Classifier: patterns.NewLexical()}},
		{name: "missing classifier", cfg: &rpgtoolkit.AdapterConfig{EventBus: s.bus, DiceRoller: s.roller}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := rpgtoolkit.NewAdapter(tc.cfg)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *AdapterTestSuite) TestResolveAttackClassifiesAndResolves() {
	s.roller.EXPECT().Roll(10000).Return(10000, nil)

	player := entities.Player{Level: 1, HP: 100, MaxHP: 100}
	boss := entities.Boss{ID: "bug_swarm", HP: 100, MaxHP: 100}

	out, err := s.adapter.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		Player: &player,
		Boss:   &boss,
		Code:   "def f(n):\n    if n == 0:\n        return 0\n    return f(n - 1)\n",
		Result: entities.ExecutionResult{Success: true},
	})
	s.Require().NoError(err)

	s.True(out.Flags.HasRecursion)
	s.True(out.Flags.HasBaseCase)
	s.Equal(15, out.Outcome.DamageDealt)
}

func (s *AdapterTestSuite) TestResolveAttackUsesInjectedClassifier() {
	classifier := patternsmock.NewMockClassifier(s.ctrl)
	adapter, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   s.bus,
		DiceRoller: s.roller,
		Classifier: classifier,
	})
	s.Require().NoError(err)

	classifier.EXPECT().Classify("x").Return(entities.PatternFlags{HasLoopBreak: true})
	s.roller.EXPECT().Roll(10000).Return(10000, nil)

	out, err := adapter.ResolveAttack(s.ctx, &engine.ResolveAttackInput{
		Player: &entities.Player{},
		Boss:   &entities.Boss{},
		Code:   "x",
		Result: entities.ExecutionResult{Success: true},
	})
	s.Require().NoError(err)
	s.Equal(13, out.Outcome.DamageDealt)
}

func (s *AdapterTestSuite) TestResolveAttackRequiresFighters() {
	_, err := s.adapter.ResolveAttack(s.ctx, &engine.ResolveAttackInput{Boss: &entities.Boss{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.ResolveAttack(s.ctx, &engine.ResolveAttackInput{Player: &entities.Player{}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.adapter.ResolveAttack(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *AdapterTestSuite) TestPublishEvent() {
	var got events.Event
	s.bus.SubscribeFunc(engine.EventBossDefeated, 0, func(_ context.Context, e events.Event) error {
		got = e
		return nil
	})

	player := &entities.Player{Level: 3}
	boss := &entities.Boss{ID: "bug_swarm"}

	err := s.adapter.PublishEvent(s.ctx, &engine.PublishEventInput{
		Type:   engine.EventBossDefeated,
		Source: rpgtoolkit.WrapPlayer("slot-1", player),
		Target: rpgtoolkit.WrapBoss("enc-1", boss),
		Data:   map[string]any{engine.DataDamage: 42},
	})
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(engine.EventBossDefeated, got.Type())
	s.Equal("slot-1", got.Source().GetID())
	s.Equal("enc-1/bug_swarm", got.Target().GetID())

	damage, ok := got.Context().Get(engine.DataDamage)
	s.True(ok)
	s.Equal(42, damage)
}

func (s *AdapterTestSuite) TestPublishEventRequiresType() {
	err := s.adapter.PublishEvent(s.ctx, &engine.PublishEventInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestAdapterTestSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}
