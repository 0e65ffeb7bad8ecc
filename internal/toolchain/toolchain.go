// Package toolchain manages the Node toolchain directory that hosts the
// external Tailwind compiler and HTML minifier (npm packages invoked via npx).
package toolchain

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/htmlpress/internal/errors"
	"git.home.luguber.info/inful/htmlpress/internal/logfields"
)

// Toolchain locates the directory containing package.json and node_modules
// and runs npx commands inside it. It performs no work at construction time;
// preparation happens in EnsureReady so that runs which never touch an
// external tool stay side-effect free.
type Toolchain struct {
	dir string
	npx string
}

// New creates a Toolchain rooted at dir. npx is the binary name to invoke,
// normally "npx"; tests may point it at a stub script.
func New(dir, npx string) *Toolchain {
	if npx == "" {
		npx = "npx"
	}
	return &Toolchain{dir: dir, npx: npx}
}

// Dir returns the toolchain directory.
func (t *Toolchain) Dir() string { return t.dir }

// InputCSS returns the path of the permanent Tailwind entry stylesheet.
func (t *Toolchain) InputCSS() string { return filepath.Join(t.dir, "input.css") }

// CheckNpx verifies the npx binary is available on PATH.
func (t *Toolchain) CheckNpx() error {
	if _, err := exec.LookPath(t.npx); err != nil {
		return errors.ToolNotFound(t.npx, "Install Node.js and npm first to compile Tailwind CSS.")
	}
	return nil
}

// EnsureReady verifies the toolchain directory holds a package.json and
// installs npm packages when node_modules is missing. Collaborator
// implementations call this before their first tool invocation; the core
// transform never does.
func (t *Toolchain) EnsureReady(ctx context.Context) error {
	packageJSON := filepath.Join(t.dir, "package.json")
	if _, err := os.Stat(packageJSON); err != nil {
		return errors.PackageManifestMissing(packageJSON)
	}

	nodeModules := filepath.Join(t.dir, "node_modules")
	if _, err := os.Stat(nodeModules); err == nil {
		return nil
	}

	slog.Info("Installing npm dependencies", logfields.Tool("npm"), slog.String("dir", t.dir))
	stdout, stderr, err := t.run(exec.CommandContext(ctx, "npm", "install"))
	if err != nil {
		return errors.InstallFailed(err).WithOutput(stdout, stderr)
	}
	return nil
}

// Command builds an npx invocation rooted in the toolchain directory.
func (t *Toolchain) Command(ctx context.Context, args ...string) *exec.Cmd {
	// #nosec G204 -- args are constructed internally, not from user input
	cmd := exec.CommandContext(ctx, t.npx, args...)
	cmd.Dir = t.dir
	return cmd
}

// Run executes the command, capturing stdout and stderr separately so
// failures can surface the tool's diagnostics verbatim.
func (t *Toolchain) Run(ctx context.Context, args ...string) (stdout, stderr string, err error) {
	cmd := t.Command(ctx, args...)
	slog.Debug("Running external tool", logfields.Tool(t.npx), slog.String("args", strings.Join(args, " ")))
	return t.run(cmd)
}

func (t *Toolchain) run(cmd *exec.Cmd) (string, string, error) {
	cmd.Dir = t.dir

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	err := cmd.Run()

	// Log tool output when non-empty to diagnose issues
	if s := strings.TrimSpace(out.String()); s != "" {
		slog.Debug("tool stdout", slog.String("output", s))
	}
	if s := strings.TrimSpace(errBuf.String()); s != "" {
		slog.Debug("tool stderr", slog.String("output", s))
	}

	return out.String(), errBuf.String(), err
}
