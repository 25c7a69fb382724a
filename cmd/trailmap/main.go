package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/trailmap/internal/app"
	"github.com/alexanderramin/trailmap/internal/cli"
	"github.com/alexanderramin/trailmap/internal/config"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rt *app.Runtime
	defer func() {
		if rt != nil {
			rt.Close()
		}
	}()

	cliApp := &cli.App{
		Confirm: cli.HuhConfirm,
	}

	// Detect interactive terminal for prompts and the browse view.
	cliApp.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Settings are only known after flags are parsed, so the store is
	// opened from the root command's pre-run hook.
	cliApp.Setup = func(v *viper.Viper) error {
		cfg, err := config.Load(v)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger := app.NewLogger(cfg.Log, os.Stderr)

		rt, err = app.Open(cfg, logger)
		if err != nil {
			return err
		}

		cliApp.Planner = rt.Planner
		cliApp.Schedule = cfg.RepetitionSchedule()
		cliApp.Logger = logger
		cliApp.ServerAddr = cfg.Server.Addr
		return nil
	}

	return cli.NewRootCmd(cliApp).ExecuteContext(ctx)
}
