package toolchain

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// packageJSON pins the two external tools this system shells out to.
const packageJSON = `{
  "name": "htmlpress-toolchain",
  "private": true,
  "description": "Node toolchain for htmlpress (Tailwind CSS compiler and HTML minifier)",
  "dependencies": {
    "@tailwindcss/cli": "^4.0.0",
    "html-minifier-terser": "^7.2.0",
    "tailwindcss": "^4.0.0"
  }
}
`

// inputCSS is the permanent Tailwind v4 entry stylesheet.
const inputCSS = `@import "tailwindcss";
`

// Scaffold writes the toolchain directory skeleton (package.json and
// input.css). Existing files are left untouched unless force is set, so
// re-running init is safe.
func Scaffold(dir string, force bool) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create toolchain directory %s: %w", dir, err)
	}

	files := map[string]string{
		"package.json": packageJSON,
		"input.css":    inputCSS,
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil && !force {
			slog.Debug("Toolchain file already exists, skipping", slog.String("path", path))
			continue
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		slog.Info("Wrote toolchain file", slog.String("path", path))
	}
	return nil
}
