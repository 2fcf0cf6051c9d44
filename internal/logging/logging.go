// Package logging builds the zap logger and bridges it into gRPC and the event bus.
package logging

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/KirkDiggler/codequest/internal/engine"
)

// New returns a production JSON logger, lowered to debug level when asked.
func New(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// InterceptorLogger adapts a zap logger to the gRPC logging interceptors.
func InterceptorLogger(l *zap.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(_ context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		f := make([]zap.Field, 0, len(fields)/2)

		for i := 0; i+1 < len(fields); i += 2 {
			key, ok := fields[i].(string)
			if !ok {
				key = fmt.Sprint(fields[i])
			}

			switch v := fields[i+1].(type) {
			case string:
				f = append(f, zap.String(key, v))
			case int:
				f = append(f, zap.Int(key, v))
			case bool:
				f = append(f, zap.Bool(key, v))
			default:
				f = append(f, zap.Any(key, v))
			}
		}

		logger := l.WithOptions(zap.AddCallerSkip(1)).With(f...)

		switch lvl {
		case grpc_logging.LevelDebug:
			logger.Debug(msg)
		case grpc_logging.LevelInfo:
			logger.Info(msg)
		case grpc_logging.LevelWarn:
			logger.Warn(msg)
		case grpc_logging.LevelError:
			logger.Error(msg)
		default:
			logger.Info(msg, zap.Any("unknown_level", lvl))
		}
	})
}

// eventDataKeys are copied from the event context into the log line when present
var eventDataKeys = []string{
	engine.DataDamage,
	engine.DataCrit,
	engine.DataSelfDamage,
	engine.DataMessage,
	engine.DataPhase,
	engine.DataLevel,
	engine.DataAchievement,
	engine.DataStageID,
	engine.DataPassed,
	engine.DataRunID,
}

// EventTypes lists every event the game publishes
var EventTypes = []string{
	engine.EventAttackResolved,
	engine.EventBossPhaseEntered,
	engine.EventBossDefeated,
	engine.EventPlayerDefeated,
	engine.EventPlayerLeveledUp,
	engine.EventAchievementEarned,
	engine.EventStageVerified,
	engine.EventDungeonCompleted,
	engine.EventDungeonFailed,
}

// SubscribeEvents logs every game event published on the bus at info level.
func SubscribeEvents(bus events.EventBus, l *zap.Logger) {
	for _, eventType := range EventTypes {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, e events.Event) error {
			l.Info("game event", EventFields(e)...)
			return nil
		})
	}
}

// EventFields flattens an event into zap fields.
func EventFields(e events.Event) []zap.Field {
	fields := []zap.Field{zap.String("type", e.Type())}
	if src := e.Source(); src != nil {
		fields = append(fields, zap.String("source", src.GetID()))
	}
	if tgt := e.Target(); tgt != nil {
		fields = append(fields, zap.String("target", tgt.GetID()))
	}
	for _, key := range eventDataKeys {
		if v, ok := e.Context().Get(key); ok {
			fields = append(fields, zap.Any(key, v))
		}
	}
	return fields
}
