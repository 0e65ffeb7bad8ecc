// Package press orchestrates the HTML transform pipeline: Tailwind CDN
// detection and inlining, optional minification, and the atomic write of the
// finished document.
package press

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/htmlpress/internal/errors"
	"git.home.luguber.info/inful/htmlpress/internal/fsutil"
	"git.home.luguber.info/inful/htmlpress/internal/htmlmin"
	"git.home.luguber.info/inful/htmlpress/internal/logfields"
	"git.home.luguber.info/inful/htmlpress/internal/tailwind"
	"git.home.luguber.info/inful/htmlpress/internal/toolchain"
)

// Options controls a pipeline run.
type Options struct {
	// Minify passes the finished document through the external minifier.
	Minify bool

	// Preflight enables Tailwind's base CSS reset when compiling.
	Preflight bool

	// ForceTailwind compiles even when no CDN script tag is detected.
	ForceTailwind bool
}

// Pipeline is a stateless transform; each Run is a pure function of the
// input file and options. Collaborators default to the real external tools
// and may be replaced for tests.
type Pipeline struct {
	Toolchain *toolchain.Toolchain
	Opts      Options

	// Compiler overrides the default CLICompiler when non-nil.
	Compiler tailwind.Compiler

	// Minifier overrides the default TerserMinifier when non-nil.
	Minifier htmlmin.Minifier
}

// New creates a pipeline using the external tools from tc.
func New(tc *toolchain.Toolchain, opts Options) *Pipeline {
	return &Pipeline{Toolchain: tc, Opts: opts}
}

// Run transforms srcPath into destPath. On any failure the destination is
// left untouched; writes only happen after every transform step succeeded.
func (p *Pipeline) Run(ctx context.Context, srcPath, destPath string) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	slog.Info("Processing HTML document",
		logfields.RunID(runID), logfields.Source(srcPath), logfields.Dest(destPath))

	inputSize, err := fsutil.FileSize(srcPath)
	if err != nil {
		return nil, errors.ReadFailed(srcPath, err)
	}
	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, errors.ReadFailed(srcPath, err)
	}

	processed, compiled, err := tailwind.Inline(ctx, string(raw), srcPath,
		tailwind.Options{Preflight: p.Opts.Preflight, ForceCompile: p.Opts.ForceTailwind},
		p.compiler(destPath))
	if err != nil {
		return nil, err
	}

	output := []byte(processed)
	if p.Opts.Minify {
		output, err = p.minify(ctx, output, destPath)
		if err != nil {
			return nil, err
		}
	}

	if err := fsutil.WriteFileAtomic(destPath, output, 0o644); err != nil {
		return nil, errors.WriteFailed(destPath, err)
	}

	result := &Result{
		RunID:            runID,
		Source:           srcPath,
		Dest:             destPath,
		InputSize:        inputSize,
		OutputSize:       int64(len(output)),
		Duration:         time.Since(start),
		CompiledTailwind: compiled,
		MinifiedHTML:     p.Opts.Minify,
	}

	slog.Info(result.Summary(),
		logfields.RunID(runID),
		logfields.DurationMS(float64(result.Duration.Milliseconds())),
		logfields.SizeBytes(result.OutputSize))
	return result, nil
}

// compiler returns the injected compiler or a CLICompiler staging next to
// the destination so temp artifacts stay on the same filesystem.
func (p *Pipeline) compiler(destPath string) tailwind.Compiler {
	if p.Compiler != nil {
		return p.Compiler
	}
	return &tailwind.CLICompiler{Toolchain: p.Toolchain, StageDir: filepath.Dir(destPath)}
}

// minify stages the processed document in a temp directory next to the
// destination, runs the external minifier over it, and reads the result
// back. The staging directory is removed on all paths.
func (p *Pipeline) minify(ctx context.Context, processed []byte, destPath string) ([]byte, error) {
	minifier := p.Minifier
	if minifier == nil {
		minifier = &htmlmin.TerserMinifier{Toolchain: p.Toolchain}
	}

	stageDir, err := os.MkdirTemp(filepath.Dir(destPath), "htmlpress-min-")
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, "failed to create staging directory")
	}
	defer os.RemoveAll(stageDir)

	inPath := filepath.Join(stageDir, "in.html")
	outPath := filepath.Join(stageDir, "out.html")
	if err := os.WriteFile(inPath, processed, 0o644); err != nil {
		return nil, errors.WriteFailed(inPath, err)
	}

	if err := minifier.Minify(ctx, inPath, outPath); err != nil {
		return nil, err
	}

	minified, err := os.ReadFile(outPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryMinify, "minifier produced no output document")
	}
	return minified, nil
}
