package tailwind

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/htmlpress/internal/errors"
	"git.home.luguber.info/inful/htmlpress/internal/logfields"
	"git.home.luguber.info/inful/htmlpress/internal/toolchain"
)

// Compiler abstracts how compiled CSS text is obtained. This allows swapping
// out the external @tailwindcss/cli binary (CLICompiler) with alternative
// strategies (canned text in tests) without changing the transform logic.
type Compiler interface {
	Compile(ctx context.Context, cfg StyleConfig) (css string, err error)
}

// CLICompiler invokes `npx @tailwindcss/cli` inside the Node toolchain
// directory. Compiler configuration and the output stylesheet are staged in
// a temporary directory created under StageDir and removed on all paths.
type CLICompiler struct {
	Toolchain *toolchain.Toolchain

	// StageDir is where the per-run temp directory is created, normally the
	// destination file's directory so staging stays on the same filesystem.
	StageDir string
}

func (c *CLICompiler) Compile(ctx context.Context, cfg StyleConfig) (string, error) {
	if err := c.Toolchain.CheckNpx(); err != nil {
		return "", err
	}
	if err := c.Toolchain.EnsureReady(ctx); err != nil {
		return "", err
	}

	stageDir := c.StageDir
	if stageDir == "" {
		stageDir = os.TempDir()
	}
	tmpDir, err := os.MkdirTemp(stageDir, "htmlpress-tw-")
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryFileSystem, "failed to create staging directory")
	}
	defer os.RemoveAll(tmpDir)

	configJS, err := cfg.ConfigJS()
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryTailwind, "failed to render tailwind config")
	}
	configPath := filepath.Join(tmpDir, "tailwind.config.js")
	if err := os.WriteFile(configPath, []byte(configJS), 0o644); err != nil {
		return "", errors.WriteFailed(configPath, err)
	}

	outputCSS := filepath.Join(tmpDir, "tailwind.min.css")
	args := []string{
		"@tailwindcss/cli",
		"-i", c.Toolchain.InputCSS(),
		"-o", outputCSS,
		"--config", configPath,
		"--minify",
	}

	slog.Info("Compiling Tailwind CSS", logfields.Tool("@tailwindcss/cli"), logfields.Source(cfg.ContentPath))
	stdout, stderr, err := c.Toolchain.Run(ctx, args...)
	if err != nil {
		return "", errors.TailwindBuildFailed(err).WithOutput(stdout, stderr)
	}

	data, err := os.ReadFile(outputCSS)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryTailwind, "compiler produced no output stylesheet")
	}
	return string(data), nil
}

// StaticCompiler returns fixed CSS text; used by tests as a fake collaborator.
type StaticCompiler struct {
	CSS string
	Err error

	// LastConfig records the configuration of the most recent call.
	LastConfig StyleConfig
	Calls      int
}

func (s *StaticCompiler) Compile(ctx context.Context, cfg StyleConfig) (string, error) {
	s.LastConfig = cfg
	s.Calls++
	if s.Err != nil {
		return "", s.Err
	}
	return s.CSS, nil
}
