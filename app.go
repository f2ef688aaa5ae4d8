package main

import (
	"context"
	"fmt"
	"time"

	"MakeupBot/config"
	"MakeupBot/content"
	"MakeupBot/handler"
	"MakeupBot/quiz"
	"MakeupBot/repo"
	"MakeupBot/rotation"
	"MakeupBot/server"

	"github.com/go-telegram/bot"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const redisKeyPrefix = "makeupbot:"

// newApp wires the long running bot process.
func newApp(cfg *config.Config, logger zerolog.Logger) *fx.App {
	return fx.New(appOptions(cfg, logger)...)
}

func appOptions(cfg *config.Config, logger zerolog.Logger) []fx.Option {
	return []fx.Option{
		fx.NopLogger,
		fx.Supply(cfg, logger),
		fx.Provide(
			provideStore,
			provideBot,
			provideTelegram,
			quiz.NewSessions,
			provideMachine,
			provideGate,
			provideRouter,
			provideGuard,
			provideScheduler,
			provideHealth,
		),
		fx.Invoke(
			registerRoutes,
			runScheduler,
			runHealth,
			runBot,
		),
	}
}

func provideStore(lc fx.Lifecycle, cfg *config.Config) (repo.UserStore, error) {
	store, err := repo.Open(context.Background(), storeOptions(cfg))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

func provideBot(cfg *config.Config, logger zerolog.Logger) (*bot.Bot, error) {
	opts := []bot.Option{
		bot.WithDefaultHandler(handler.Fallback),
		bot.WithMiddlewares(handler.LogUpdates(logger)),
	}
	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	return b, nil
}

func provideTelegram(b *bot.Bot) *handler.Telegram {
	return handler.NewTelegram(b)
}

func provideMachine(sessions *quiz.Sessions, store repo.UserStore, tg *handler.Telegram, logger zerolog.Logger) *quiz.Machine {
	return quiz.NewMachine(sessions, store, tg, logger)
}

func provideGate(b *bot.Bot, cfg *config.Config, logger zerolog.Logger) *handler.Gate {
	return handler.NewGate(b, cfg.RequiredChannel, logger)
}

func provideRouter(b *bot.Bot, machine *quiz.Machine, store repo.UserStore, gate *handler.Gate, logger zerolog.Logger) *handler.Router {
	return handler.NewRouter(b, machine, store, gate, logger)
}

// provideGuard returns a Redis backed guard when REDIS_ADDR is set, so that
// only one replica sends each day's tips.
func provideGuard(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (rotation.TickGuard, error) {
	if cfg.RedisAddr == "" {
		return &rotation.LocalGuard{}, nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("error connecting to redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("rotation guard uses redis")

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return rotation.NewRedisGuard(client, redisKeyPrefix), nil
}

func provideScheduler(store repo.UserStore, tg *handler.Telegram, guard rotation.TickGuard, cfg *config.Config, logger zerolog.Logger) *rotation.Scheduler {
	return rotation.NewScheduler(store, tg, content.Default(), guard, cfg.RotationWorkers, logger)
}

func provideHealth(store repo.UserStore, sessions *quiz.Sessions, logger zerolog.Logger) *server.Health {
	return server.NewHealth(store, sessions, logger)
}

func registerRoutes(r *handler.Router, b *bot.Bot) {
	r.Register(b)
}

func runScheduler(lc fx.Lifecycle, s *rotation.Scheduler, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return s.Start(ctx, cfg.DailyHour, cfg.DailyMinute, cfg.Timezone)
		},
		OnStop: func(context.Context) error {
			s.Stop()
			cancel()
			return nil
		},
	})
}

func runHealth(lc fx.Lifecycle, h *server.Health, cfg *config.Config) {
	if cfg.HealthAddr == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return h.Start(cfg.HealthAddr)
		},
		OnStop: h.Stop,
	})
}

func runBot(lc fx.Lifecycle, b *bot.Bot) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				b.Start(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
