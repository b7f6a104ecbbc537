// Package app implements the application layer for cargotags.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cargotags/cargotags/internal/core/domain"
	"github.com/cargotags/cargotags/internal/core/ports"
	"github.com/cargotags/cargotags/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	locator   ports.ProjectLocator
	fetcher   ports.SourceFetcher
	reader    ports.DependencyReader
	scheduler *scheduler.Scheduler
	logger    ports.Logger
	stdout    io.Writer
}

// New creates a new App instance.
func New(
	locator ports.ProjectLocator,
	fetcher ports.SourceFetcher,
	reader ports.DependencyReader,
	sched *scheduler.Scheduler,
	logger ports.Logger,
) *App {
	return &App{
		locator:   locator,
		fetcher:   fetcher,
		reader:    reader,
		scheduler: sched,
		logger:    logger,
		stdout:    os.Stdout,
	}
}

// SetOutput redirects the missing-source report. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.stdout = w
}

// Run regenerates the tag files of the project in the current working
// directory for the given tag flavor ("vi" or "emacs").
func (a *App) Run(ctx context.Context, kindArg string) error {
	kind, err := domain.ParseTagsKind(kindArg)
	if err != nil {
		return err
	}

	// Best effort: a failed fetch only means more sources may be missing.
	if err := a.fetcher.Fetch(ctx); err != nil {
		a.logger.Warn("fetching sources failed: " + err.Error())
	}

	cwd, err := os.Getwd()
	if err != nil {
		return zerr.Wrap(err, "failed to determine working directory")
	}

	manifestDir, err := a.locator.FindManifestDir(cwd)
	if err != nil {
		return err
	}

	roots, err := a.reader.Read(manifestDir)
	if err != nil {
		return zerr.Wrap(err, "failed to read dependency graph")
	}

	missing, runErr := a.scheduler.Run(ctx, roots, kind)
	a.reportMissing(missing)
	return runErr
}

// reportMissing prints the accumulated missing-source report to stdout.
// An empty accumulator prints nothing.
func (a *App) reportMissing(missing *domain.MissingSources) {
	if missing == nil || missing.Empty() {
		return
	}

	fmt.Fprintln(a.stdout, "Couldn't find the source code of these dependencies:")
	for _, id := range missing.List() {
		fmt.Fprintf(a.stdout, "   %s\n", id)
	}
	fmt.Fprintln(a.stdout, "Have you run 'cargo fetch' at least once for this project?")
}
