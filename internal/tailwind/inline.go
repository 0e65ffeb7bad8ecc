package tailwind

import (
	"context"
	"log/slog"
)

// Options controls the detection-and-injection step.
type Options struct {
	// Preflight enables Tailwind's base CSS reset layer.
	Preflight bool

	// ForceCompile compiles and injects CSS even when no CDN script tag is
	// present in the document.
	ForceCompile bool
}

// Inline runs the detection-and-injection step over raw HTML text.
//
// When no CDN script tag is found and compilation is not forced, the input
// text is returned unchanged and the compiler is never invoked. Otherwise
// the compiler is asked for CSS scoped to srcPath (the content-scan target)
// and the result is spliced in via InlineCSS. The returned bool reports
// whether compilation occurred.
func Inline(ctx context.Context, html, srcPath string, opts Options, compiler Compiler) (string, bool, error) {
	_, found := FindCDNScript(html)
	if !found && !opts.ForceCompile {
		slog.Debug("No Tailwind CDN script found, passing document through unchanged")
		return html, false, nil
	}

	if found {
		slog.Info("Tailwind CDN script detected, compiling and inlining Tailwind CSS")
	} else {
		slog.Info("Forcing Tailwind CSS compilation")
	}

	css, err := compiler.Compile(ctx, StyleConfig{ContentPath: srcPath, Preflight: opts.Preflight})
	if err != nil {
		return "", false, err
	}

	processed, point := InlineCSS(html, css)
	slog.Info("Tailwind CSS compiled and inlined", slog.String("insertion", string(point)))
	return processed, true, nil
}
