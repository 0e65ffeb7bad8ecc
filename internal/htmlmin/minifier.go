// Package htmlmin wraps the external HTML minifier (html-minifier-terser)
// behind a narrow collaborator interface.
package htmlmin

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/htmlpress/internal/errors"
	"git.home.luguber.info/inful/htmlpress/internal/logfields"
	"git.home.luguber.info/inful/htmlpress/internal/toolchain"
)

// Minifier abstracts HTML minification so the finalizer can be tested with a
// copy-through fake instead of spawning a real process.
type Minifier interface {
	// Minify reads HTML from inPath and writes the minified document to
	// outPath, or fails with the tool's diagnostic output attached.
	Minify(ctx context.Context, inPath, outPath string) error
}

// TerserMinifier invokes `npx html-minifier-terser` inside the Node
// toolchain directory, collapsing whitespace, stripping comments, and
// minifying embedded CSS and script.
type TerserMinifier struct {
	Toolchain *toolchain.Toolchain
}

func (m *TerserMinifier) Minify(ctx context.Context, inPath, outPath string) error {
	if err := m.Toolchain.CheckNpx(); err != nil {
		return err
	}
	if err := m.Toolchain.EnsureReady(ctx); err != nil {
		return err
	}

	args := []string{
		"html-minifier-terser",
		"--collapse-whitespace",
		"--remove-comments",
		"--minify-css", "true",
		"--minify-js", "true",
		"-o", outPath,
		inPath,
	}

	slog.Info("Minifying HTML (including inline CSS and JS)", logfields.Tool("html-minifier-terser"))
	stdout, stderr, err := m.Toolchain.Run(ctx, args...)
	if err != nil {
		return errors.MinifyFailed(err).WithOutput(stdout, stderr)
	}
	return nil
}
