// Package watch rebuilds the destination whenever the source document
// changes. It debounces editor write bursts and can additionally trigger
// periodic rebuilds on a fixed interval.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"

	"git.home.luguber.info/inful/htmlpress/internal/logfields"
)

// Config tunes the watch loop.
type Config struct {
	// Source is the HTML file to watch.
	Source string

	// Debounce is the quiet window after the last write before rebuilding.
	Debounce time.Duration

	// Interval triggers periodic forced rebuilds when positive; zero
	// disables them.
	Interval time.Duration
}

// RebuildFunc runs one pipeline pass. Errors are logged and the watch
// continues; a broken intermediate save must not kill the loop.
type RebuildFunc func(ctx context.Context) error

// Watcher owns the fsnotify watcher and optional gocron scheduler.
type Watcher struct {
	cfg     Config
	rebuild RebuildFunc
	fsw     *fsnotify.Watcher
}

// New creates a watcher for cfg.Source.
func New(cfg Config, rebuild RebuildFunc) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	absSource, err := filepath.Abs(cfg.Source)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to resolve source path: %w", err)
	}
	cfg.Source = absSource

	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}

	return &Watcher{cfg: cfg, rebuild: rebuild, fsw: fsw}, nil
}

// Run performs an initial build, then blocks rebuilding on changes until ctx
// is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	// Watch the directory containing the source file (more reliable than
	// watching the file directly, since editors replace files on save).
	sourceDir := filepath.Dir(w.cfg.Source)
	if err := w.fsw.Add(sourceDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", sourceDir, err)
	}

	kick := make(chan struct{}, 1)
	if w.cfg.Interval > 0 {
		scheduler, err := w.startScheduler(kick)
		if err != nil {
			return err
		}
		defer func() {
			if err := scheduler.Shutdown(); err != nil {
				slog.Error("Error shutting down scheduler", logfields.Error(err))
			}
		}()
	}

	slog.Info("Watching for changes", logfields.Source(w.cfg.Source))
	w.runRebuild(ctx)

	debounce := time.NewTimer(w.cfg.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	sourceFile := filepath.Base(w.cfg.Source)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != sourceFile {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				slog.Debug("Source change detected", logfields.Source(event.Name), slog.String("op", event.Op.String()))
				debounce.Reset(w.cfg.Debounce)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))

		case <-debounce.C:
			w.runRebuild(ctx)

		case <-kick:
			slog.Debug("Periodic rebuild triggered")
			w.runRebuild(ctx)
		}
	}
}

// startScheduler wires a gocron duration job that nudges the rebuild loop.
func (w *Watcher) startScheduler(kick chan<- struct{}) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.cfg.Interval),
		gocron.NewTask(func() {
			select {
			case kick <- struct{}{}:
			default: // a rebuild is already pending
			}
		}),
		gocron.WithName("periodic-rebuild"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create periodic rebuild job: %w", err)
	}

	scheduler.Start()
	return scheduler, nil
}

func (w *Watcher) runRebuild(ctx context.Context) {
	if err := w.rebuild(ctx); err != nil {
		slog.Error("Rebuild failed", logfields.Error(err))
	}
}
