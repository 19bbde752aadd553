package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/deisrc/deisrc/internal/activate"
	"github.com/deisrc/deisrc/internal/branding"
	"github.com/deisrc/deisrc/internal/config"
	"github.com/deisrc/deisrc/internal/store"
	"github.com/deisrc/deisrc/internal/version"
	"github.com/spf13/afero"
)

// app carries what a single invocation needs. Everything is built once in
// run; nothing outlives the process.
type app struct {
	stdout io.Writer
	stderr io.Writer
	info   version.Info
}

func (a *app) run(c Command) error {
	switch c.Kind {
	case KindHelp:
		printHelp(a.stdout)
		return reported(ErrHelp)
	case KindUsage:
		fmt.Fprintf(a.stderr, "Unknown option: %s\n", c.Option)
		printUsage(a.stderr)
		return reported(fmt.Errorf("%w: %w", ErrUsage, c.Err))
	case KindVersion:
		fmt.Fprintln(a.stdout, a.info.String(branding.CLIName()))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(a.stderr, cfg.Debug)
	logger.Debug("resolved configuration", "store", cfg.StoreDir, "link", cfg.LinkPath, "command", c.Kind)

	fs := afero.NewOsFs()
	engine, err := activate.New(fs, cfg, a.stdout, logger)
	if err != nil {
		return err
	}
	manager := store.New(fs, cfg, engine, a.stdout, logger)

	initialized, err := manager.Ensure()
	if err != nil || initialized {
		return err
	}

	switch c.Kind {
	case KindCreate:
		return a.create(manager, c.Name)
	case KindActivate:
		return engine.Switch(c.Name)
	default:
		return a.list(manager)
	}
}

func (a *app) list(manager *store.Manager) error {
	profiles, err := manager.List()
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Available %s profiles:\n\n", branding.DisplayName())
	for _, p := range profiles {
		marker := " "
		if p.Active {
			marker = "*"
		}
		fmt.Fprintf(a.stdout, " %s %s\n", marker, p.Name)
	}
	return nil
}

func (a *app) create(manager *store.Manager, name string) error {
	err := manager.Create(name)
	if errors.Is(err, store.ErrMissingName) {
		fmt.Fprintf(a.stderr, "What do you want to call your new %s configuration?\n", branding.DisplayName())
		printUsage(a.stderr)
		return reported(err)
	}
	return err
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
