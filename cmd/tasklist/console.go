package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"tasklist/internal/adapter/clock"
	"tasklist/internal/adapter/console"
	"tasklist/internal/config"
	"tasklist/internal/core/domain"
	"tasklist/internal/core/ports"
)

func newConsoleCommand() *cli.Command {
	return &cli.Command{
		Name:  "console",
		Usage: "Start the interactive console",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "today",
				Usage: "Pin today's date (dd-MM-yyyy) for the 'today' command",
			},
		},
		Action: runConsole,
	}
}

func runConsole(ctx context.Context, cmd *cli.Command) error {
	cfg := config.LoadConfig()

	var clk ports.Clock = systemClock(cfg)
	if value := cmd.String("today"); value != "" {
		today, err := domain.ParseDeadline(value)
		if err != nil {
			return err
		}
		clk = clock.Fixed(today)
	}

	return console.NewConsole(os.Stdin, os.Stdout, newTaskService(clk)).Run(ctx)
}
