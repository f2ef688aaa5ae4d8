package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"MakeupBot/config"
	"MakeupBot/content"
	"MakeupBot/handler"
	"MakeupBot/repo"
	"MakeupBot/rotation"

	"github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	serveCmd := newServeCommand(opts)
	cmd := &cobra.Command{
		Use:          "makeupbot",
		Short:        "Telegram bot that picks a makeup routine and sends daily tips",
		SilenceUsage: true,
		RunE:         serveCmd.RunE,
	}
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (yaml, json or toml); environment variables take precedence")

	cmd.AddCommand(serveCmd)
	cmd.AddCommand(newTickCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))
	return cmd
}

// bootstrap loads the configuration and sets up the process logger.
func bootstrap(opts *rootOptions) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log.Logger = logger
	return cfg, logger, nil
}

func storeOptions(cfg *config.Config) repo.Options {
	return repo.Options{
		Driver:              cfg.Storage,
		SQLitePath:          cfg.DBPath,
		PostgresDSN:         cfg.PostgresDSN,
		FirebaseCredentials: cfg.FirebaseCredentials,
		FirebaseDatabaseURL: cfg.FirebaseDatabaseURL,
	}
}

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot and the daily tip rotation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(opts)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	app := newApp(cfg, logger)

	startCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return fmt.Errorf("error starting bot: %w", err)
	}
	logger.Info().Str("storage", cfg.Storage).Msg("bot started")

	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		return fmt.Errorf("error stopping bot: %w", err)
	}
	logger.Info().Msg("bot stopped")
	return nil
}

func newTickCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Send the current tip to every subscriber now",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := bootstrap(opts)
			if err != nil {
				return err
			}
			store, err := repo.Open(cmd.Context(), storeOptions(cfg))
			if err != nil {
				return err
			}
			defer store.Close()

			b, err := bot.New(cfg.BotToken)
			if err != nil {
				return fmt.Errorf("error creating bot: %w", err)
			}

			s := rotation.NewScheduler(store, handler.NewTelegram(b), content.Default(), nil, cfg.RotationWorkers, logger)
			report := s.Tick(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d subscribers, %d delivered, %d failed, %d cursor errors\n",
				report.Run, report.Total, report.Delivered, report.Failed, report.AdvanceErrors)
			return nil
		},
	}
}

func newStatsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the number of tip subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := bootstrap(opts)
			if err != nil {
				return err
			}
			store, err := repo.Open(cmd.Context(), storeOptions(cfg))
			if err != nil {
				return err
			}
			defer store.Close()

			subs, err := store.ListSubscribed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "subscribers: %d\n", len(subs))
			return nil
		},
	}
}
