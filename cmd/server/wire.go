package main

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"go.uber.org/zap"

	"github.com/KirkDiggler/codequest/internal/catalog"
	"github.com/KirkDiggler/codequest/internal/config"
	dungeonengine "github.com/KirkDiggler/codequest/internal/engine/dungeon"
	"github.com/KirkDiggler/codequest/internal/engine/patterns"
	"github.com/KirkDiggler/codequest/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/codequest/internal/errors"
	gamev1 "github.com/KirkDiggler/codequest/internal/handlers/game/v1"
	"github.com/KirkDiggler/codequest/internal/logging"
	"github.com/KirkDiggler/codequest/internal/orchestrators/battle"
	"github.com/KirkDiggler/codequest/internal/orchestrators/dungeon"
	"github.com/KirkDiggler/codequest/internal/orchestrators/player"
	"github.com/KirkDiggler/codequest/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/codequest/internal/redis"
	playersave "github.com/KirkDiggler/codequest/internal/repositories/player_save"
	"github.com/KirkDiggler/codequest/internal/sandbox"
	"github.com/KirkDiggler/codequest/internal/sandbox/python"
	"github.com/KirkDiggler/codequest/internal/sandbox/yaegi"
)

const redisPingTimeout = 3 * time.Second

// app is the fully wired game behind both listeners
type app struct {
	handler *gamev1.Handler
	closers []func() error
}

func (a *app) Close(logger *zap.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			logger.Warn("failed to release resource", zap.Error(err))
		}
	}
}

func buildApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*app, error) {
	a := &app{}
	built := false
	defer func() {
		if !built {
			a.Close(logger)
		}
	}()

	cat, err := loadCatalog(cfg.Game.CatalogPath)
	if err != nil {
		return nil, err
	}

	repo, err := openStore(ctx, cfg.Store, a)
	if err != nil {
		return nil, err
	}

	battleSession, err := newSession(cfg.Sandbox, logger.Named("battle-sandbox"), a)
	if err != nil {
		return nil, err
	}
	dungeonSession, err := newSession(cfg.Sandbox, logger.Named("dungeon-sandbox"), a)
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	logging.SubscribeEvents(bus, logger.Named("events"))

	eng, err := rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		EventBus:   bus,
		DiceRoller: dice.DefaultRoller,
		Classifier: patterns.New(cfg.Game.Classifier),
		Weaknesses: cat.Weaknesses(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create engine")
	}

	machine, err := dungeonengine.NewMachine(&dungeonengine.Config{
		Stages:   cat.Stages,
		Language: cfg.Sandbox.Language,
		Roller:   dice.DefaultRoller,
		LootPool: cat.LootPool(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon machine")
	}

	players, err := player.NewOrchestrator(&player.Config{
		Repository: repo,
		Catalog:    cat,
		Logger:     logger.Named("player"),
		Slot:       cfg.Store.Slot,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create player orchestrator")
	}

	battles, err := battle.NewOrchestrator(&battle.Config{
		Engine:           eng,
		Players:          players,
		Catalog:          cat,
		Gateway:          battleSession,
		IDGenerator:      idgen.NewUUID("enc"),
		Logger:           logger.Named("battle"),
		Slot:             cfg.Store.Slot,
		RetaliationDelay: cfg.Game.RetaliationDelay,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create battle orchestrator")
	}

	dungeons, err := dungeon.NewOrchestrator(&dungeon.Config{
		Machine:       machine,
		Session:       dungeonSession,
		Engine:        eng,
		Players:       players,
		Catalog:       cat,
		IDGenerator:   idgen.NewUUID("run"),
		Logger:        logger.Named("dungeon"),
		Slot:          cfg.Store.Slot,
		FailDamage:    cfg.Game.FailDamage,
		FailThreshold: cfg.Game.FailThreshold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dungeon orchestrator")
	}

	a.handler, err = gamev1.NewHandler(&gamev1.HandlerConfig{
		PlayerService:  players,
		BattleService:  battles,
		DungeonService: dungeons,
		Engine:         eng,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create game handler")
	}

	built = true
	return a, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func openStore(ctx context.Context, cfg config.StoreConfig, a *app) (playersave.Repository, error) {
	switch cfg.Kind {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)

		if err := redisclient.Ping(ctx, client, redisPingTimeout); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
		}
		return playersave.NewRedisRepository(&playersave.RedisConfig{Client: client})

	case config.StoreSQLite:
		repo, err := playersave.OpenSQLite(ctx, &playersave.SQLiteConfig{Path: cfg.SQLitePath})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, repo.Close)
		return repo, nil

	default:
		return nil, errors.InvalidArgumentf("unknown store %q", cfg.Kind)
	}
}

func newSession(cfg config.SandboxConfig, logger *zap.Logger, a *app) (sandbox.Session, error) {
	var (
		s   sandbox.Session
		err error
	)

	switch cfg.Language {
	case sandbox.LanguagePython:
		s, err = python.NewSession(&python.Config{Binary: cfg.PythonBinary, Logger: logger})
	case sandbox.LanguageGo:
		s, err = yaegi.NewSession(&yaegi.Config{Logger: logger})
	default:
		return nil, errors.InvalidArgumentf("unknown language %q", cfg.Language)
	}
	if err != nil {
		return nil, err
	}

	a.closers = append(a.closers, s.Close)
	return sandbox.WithTimeout(s, cfg.ExecTimeout), nil
}
