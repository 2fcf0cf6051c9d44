package logging_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/codequest/internal/engine"
	"github.com/KirkDiggler/codequest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/codequest/internal/entities"
	"github.com/KirkDiggler/codequest/internal/logging"
)

type LoggingTestSuite struct {
	suite.Suite
	logs   *observer.ObservedLogs
	logger *zap.Logger
}

func (s *LoggingTestSuite) SetupTest() {
	core, logs := observer.New(zapcore.DebugLevel)
	s.logs = logs
	s.logger = zap.New(core)
}

func (s *LoggingTestSuite) TestNew() {
	logger, err := logging.New(false)
	s.Require().NoError(err)
	s.False(logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = logging.New(true)
	s.Require().NoError(err)
	s.True(logger.Core().Enabled(zapcore.DebugLevel))
}

func (s *LoggingTestSuite) TestInterceptorLoggerLevelsAndFields() {
	l := logging.InterceptorLogger(s.logger)

	l.Log(context.Background(), grpc_logging.LevelWarn, "finished call",
		"grpc.method", "Attack", "grpc.code", 0, "ok", true, "took", 1.5)

	entries := s.logs.All()
	s.Require().Len(entries, 1)
	s.Equal(zapcore.WarnLevel, entries[0].Level)
	s.Equal("finished call", entries[0].Message)

	fields := entries[0].ContextMap()
	s.Equal("Attack", fields["grpc.method"])
	s.EqualValues(0, fields["grpc.code"])
	s.Equal(true, fields["ok"])
	s.Equal(1.5, fields["took"])
}

func (s *LoggingTestSuite) TestInterceptorLoggerOddFields() {
	l := logging.InterceptorLogger(s.logger)

	l.Log(context.Background(), grpc_logging.LevelError, "dangling", "only-key")

	entries := s.logs.All()
	s.Require().Len(entries, 1)
	s.Equal(zapcore.ErrorLevel, entries[0].Level)
	s.Empty(entries[0].Context)
}

func (s *LoggingTestSuite) TestSubscribeEvents() {
	bus := events.NewBus()
	logging.SubscribeEvents(bus, s.logger)

	event := events.NewGameEvent(engine.EventBossDefeated,
		rpgtoolkit.WrapPlayer("default", &entities.Player{}),
		rpgtoolkit.WrapBoss("enc_1", &entities.Boss{ID: "bug_swarm"}))
	event.Context().Set(engine.DataDamage, 42)

	s.Require().NoError(bus.Publish(context.Background(), event))

	entries := s.logs.FilterMessage("game event").All()
	s.Require().Len(entries, 1)

	fields := entries[0].ContextMap()
	s.Equal(engine.EventBossDefeated, fields["type"])
	s.Equal("enc_1/bug_swarm", fields["target"])
	s.EqualValues(42, fields["damage"])
	s.NotContains(fields, engine.DataCrit)
}

func TestLoggingTestSuite(t *testing.T) {
	suite.Run(t, new(LoggingTestSuite))
}
