package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/hol-api/internal/config"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/actor"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/seed"
	"github.com/KirkDiggler/hol-api/internal/orchestrators/weapon"
	"github.com/KirkDiggler/hol-api/internal/pkg/idgen"
	"github.com/KirkDiggler/hol-api/internal/redis"
	"github.com/KirkDiggler/hol-api/internal/repositories/actors"
	"github.com/KirkDiggler/hol-api/internal/repositories/items"
	"github.com/KirkDiggler/hol-api/internal/repositories/packs"
	"github.com/KirkDiggler/hol-api/internal/seedsource"
)

// app holds the wired services shared by the server and the seed command
type app struct {
	cfg    *config.Config
	client redis.Client
	bus    events.EventBus

	seedService     seed.Service
	weaponService   weapon.Service
	sheetController actor.SheetController
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	client, err := redis.Connect(ctx, cfg.RedisEndpoints, &redis.Options{
		PoolSize:        cfg.RedisPoolSize,
		MinIdleConns:    cfg.RedisMinIdleConns,
		ConnMaxIdleTime: cfg.RedisIdleTimeout,
		MaxRetries:      cfg.RedisMaxRetries,
		UseTLS:          cfg.RedisTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	a, err := wire(cfg, client)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return a, nil
}

func wire(cfg *config.Config, client redis.Client) (*app, error) {
	itemRepo, err := items.NewRedis(&items.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create item repository: %w", err)
	}
	packRepo, err := packs.NewRedis(&packs.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create pack repository: %w", err)
	}
	actorRepo, err := actors.NewRedis(&actors.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor repository: %w", err)
	}

	fetcher, err := seedsource.New(&seedsource.Config{Base: cfg.SeedBase, Timeout: cfg.SeedTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create seed source: %w", err)
	}

	bus := events.NewBus()
	docIDs := idgen.NewDocument()

	seedService, err := seed.NewOrchestrator(&seed.Config{
		ItemRepo:    itemRepo,
		PackRepo:    packRepo,
		Fetcher:     fetcher,
		IDGenerator: docIDs,
		EventBus:    bus,
		Imports:     config.DefaultImports(),
		ModuleID:    cfg.ModuleID,
		FlagScope:   cfg.FlagScope,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create seed service: %w", err)
	}

	resolver, err := weapon.NewStoreResolver(&weapon.ResolverConfig{
		ItemRepo:  itemRepo,
		PackRepo:  packRepo,
		FlagScope: cfg.FlagScope,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create refine resolver: %w", err)
	}

	weaponService, err := weapon.NewOrchestrator(&weapon.Config{
		ItemRepo:  itemRepo,
		ActorRepo: actorRepo,
		Resolver:  resolver,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create weapon service: %w", err)
	}

	sheetController, err := actor.NewOrchestrator(&actor.Config{
		ActorRepo:   actorRepo,
		ItemRepo:    itemRepo,
		IDGenerator: docIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet controller: %w", err)
	}

	return &app{
		cfg:             cfg,
		client:          client,
		bus:             bus,
		seedService:     seedService,
		weaponService:   weaponService,
		sheetController: sheetController,
	}, nil
}

func (a *app) Close() error {
	return a.client.Close()
}
