package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/htmlpress/internal/config"
	"git.home.luguber.info/inful/htmlpress/internal/logfields"
	"git.home.luguber.info/inful/htmlpress/internal/press"
	"git.home.luguber.info/inful/htmlpress/internal/toolchain"
	"git.home.luguber.info/inful/htmlpress/internal/version"
	"git.home.luguber.info/inful/htmlpress/internal/watch"
)

const defaultConfigPath = "htmlpress.yaml"

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"htmlpress.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Src       string `arg:"" help:"Source HTML file"`
		Dest      string `arg:"" help:"Destination HTML file"`
		NoMinify  bool   `help:"Skip HTML minification"`
		Preflight bool   `help:"Enable Tailwind's preflight CSS reset"`
		Tailwind  bool   `help:"Force Tailwind compilation even without a CDN script tag"`
	} `cmd:"" help:"Inline compiled Tailwind CSS and minify an HTML file"`

	Watch struct {
		Src       string `arg:"" help:"Source HTML file"`
		Dest      string `arg:"" help:"Destination HTML file"`
		NoMinify  bool   `help:"Skip HTML minification"`
		Preflight bool   `help:"Enable Tailwind's preflight CSS reset"`
		Tailwind  bool   `help:"Force Tailwind compilation even without a CDN script tag"`
		Debounce  string `help:"Quiet window after the last change before rebuilding (e.g. 500ms)"`
		Interval  string `help:"Additionally rebuild on a fixed interval (e.g. 5m)"`
	} `cmd:"" help:"Rebuild the destination whenever the source changes"`

	Init struct {
		Force bool `help:"Overwrite existing toolchain files"`
	} `cmd:"" help:"Scaffold the Node toolchain and install npm dependencies"`

	Version struct{} `cmd:"" help:"Print version information"`
}

func main() {
	loadEnvFiles()

	ctx := kong.Parse(&CLI)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(CLI.Config, CLI.Config != defaultConfigPath)
	if err != nil {
		slog.Error("Failed to load configuration", logfields.Error(err))
		os.Exit(1)
	}

	switch ctx.Command() {
	case "build <src> <dest>":
		opts := press.Options{
			Minify:        cfg.MinifyEnabled() && !CLI.Build.NoMinify,
			Preflight:     cfg.Build.Preflight || CLI.Build.Preflight,
			ForceTailwind: cfg.Build.ForceTailwind || CLI.Build.Tailwind,
		}
		if err := runBuild(cfg, opts, CLI.Build.Src, CLI.Build.Dest); err != nil {
			slog.Error("Build failed", logfields.Error(err))
			os.Exit(1)
		}

	case "watch <src> <dest>":
		opts := press.Options{
			Minify:        cfg.MinifyEnabled() && !CLI.Watch.NoMinify,
			Preflight:     cfg.Build.Preflight || CLI.Watch.Preflight,
			ForceTailwind: cfg.Build.ForceTailwind || CLI.Watch.Tailwind,
		}
		if err := runWatch(cfg, opts, CLI.Watch.Src, CLI.Watch.Dest); err != nil {
			slog.Error("Watch failed", logfields.Error(err))
			os.Exit(1)
		}

	case "init":
		if err := runInit(cfg, CLI.Init.Force); err != nil {
			slog.Error("Init failed", logfields.Error(err))
			os.Exit(1)
		}

	case "version":
		fmt.Printf("htmlpress %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)

	default:
		slog.Error("Unknown command", slog.String("command", ctx.Command()))
		os.Exit(1)
	}
}

// loadEnvFiles loads environment variables from .env/.env.local, stopping at
// the first file found. Existing process variables are not overwritten.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err == nil {
			fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", path)
			return
		}
	}
}

func runBuild(cfg *config.Config, opts press.Options, src, dest string) error {
	tc := toolchain.New(cfg.Toolchain.Dir, cfg.Toolchain.Npx)
	_, err := press.New(tc, opts).Run(context.Background(), src, dest)
	return err
}

func runWatch(cfg *config.Config, opts press.Options, src, dest string) error {
	tc := toolchain.New(cfg.Toolchain.Dir, cfg.Toolchain.Npx)
	pipeline := press.New(tc, opts)

	debounce := cfg.DebounceDuration()
	if CLI.Watch.Debounce != "" {
		d, err := time.ParseDuration(CLI.Watch.Debounce)
		if err != nil {
			return fmt.Errorf("invalid --debounce value %q: %w", CLI.Watch.Debounce, err)
		}
		debounce = d
	}
	interval := cfg.IntervalDuration()
	if CLI.Watch.Interval != "" {
		d, err := time.ParseDuration(CLI.Watch.Interval)
		if err != nil {
			return fmt.Errorf("invalid --interval value %q: %w", CLI.Watch.Interval, err)
		}
		interval = d
	}

	watcher, err := watch.New(watch.Config{Source: src, Debounce: debounce, Interval: interval},
		func(ctx context.Context) error {
			_, err := pipeline.Run(ctx, src, dest)
			return err
		})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watcher.Run(ctx)
}

func runInit(cfg *config.Config, force bool) error {
	if err := toolchain.Scaffold(cfg.Toolchain.Dir, force); err != nil {
		return err
	}

	tc := toolchain.New(cfg.Toolchain.Dir, cfg.Toolchain.Npx)
	if err := tc.CheckNpx(); err != nil {
		return err
	}
	if err := tc.EnsureReady(context.Background()); err != nil {
		return err
	}

	slog.Info("Toolchain ready", slog.String("dir", cfg.Toolchain.Dir))
	return nil
}
