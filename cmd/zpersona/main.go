package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zpersona/internal/cli"
	"github.com/zarlcorp/zpersona/internal/config"
	"github.com/zarlcorp/zpersona/internal/identity"
	"github.com/zarlcorp/zpersona/internal/refdata"
	"github.com/zarlcorp/zpersona/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zpersona"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
		_ = app.Close()
		os.Exit(1)
	}

	interactive := len(os.Args) == 1 && cli.IsTerminal(os.Stdout)

	rng := identity.NewRand(cfg.Seed)
	opts := []refdata.Option{refdata.WithRand(rng)}
	if interactive {
		// slog output would tear the alt screen
		opts = append(opts, refdata.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	}
	store := refdata.New(cfg.Store(), opts...)
	gen := identity.New(store, identity.WithRand(rng))

	switch {
	case len(os.Args) > 1:
		err = runCLI(ctx, cfg, store, gen)
	case interactive:
		err = runTUI(gen, cfg.Gender)
	default:
		cli.PrintRecord(os.Stdout, gen.Generate(ctx, cfg.Gender))
	}

	if err != nil {
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context, cfg config.Config, store *refdata.Store, gen *identity.Generator) error {
	a := &cli.App{
		Version: version,
		Config:  cfg,
		Store:   store,
		Gen:     gen,
		Out:     os.Stdout,
	}

	err := a.Run(ctx, os.Args[1], os.Args[2:])
	switch {
	case err == nil:
	case errors.Is(err, cli.ErrInvalidNationalID):
		// validate already printed its verdict
	case errors.Is(err, cli.ErrUsage):
		fmt.Fprintf(os.Stderr, "zpersona: %v\n\n%s", err, cli.Usage())
	default:
		fmt.Fprintf(os.Stderr, "zpersona: %v\n", err)
	}
	return err
}

func runTUI(gen *identity.Generator, gender refdata.Gender) error {
	p := tea.NewProgram(tui.New(version, gen, gender))
	if _, err := p.Run(); err != nil {
		slog.Error("tui", "err", err)
		return err
	}
	return nil
}
