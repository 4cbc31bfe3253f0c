package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"tasklist/internal/adapter/clock"
	"tasklist/internal/adapter/memory"
	"tasklist/internal/app/service"
	"tasklist/internal/config"
	"tasklist/internal/core/ports"
	"tasklist/pkg/translator"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCommand().Run(ctx, os.Args); err != nil {
		zap.L().Error("fatal", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "tasklist",
		Usage: "Track projects, tasks and deadlines",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Before: setupLogger,
		After: func(ctx context.Context, _ *cli.Command) error {
			// Sync fails on non-file outputs such as a terminal.
			if err := zap.L().Sync(); err != nil {
				zap.L().Debug("failed to sync logger", zap.Error(err))
			}
			return nil
		},
		Commands: []*cli.Command{
			newServeCommand(),
			newConsoleCommand(),
		},
		DefaultCommand: "console",
	}
}

func setupLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logger, err := zap.NewProduction()
	if cmd.Bool("debug") {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return ctx, err
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	return ctx, nil
}

func newTaskService(clk ports.Clock) *service.TaskService {
	return service.NewTaskService(memory.NewTaskRepository(), clk)
}

func initTranslator(cfg *config.Config) {
	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})
}

func systemClock(cfg *config.Config) ports.Clock {
	return clock.NewSystem(cfg.Location())
}
