package tailwind

import (
	"encoding/json"
	"fmt"
)

// StyleConfig carries the feature toggles handed to the external compiler.
// It is constructed fresh per run and never persisted.
type StyleConfig struct {
	// ContentPath is the file the compiler scans to decide which utility
	// classes are actually used, so unused CSS is never emitted.
	ContentPath string

	// Preflight toggles Tailwind's base CSS reset layer.
	Preflight bool
}

// ConfigJS renders the Tailwind configuration as a JavaScript module.
func (c StyleConfig) ConfigJS() (string, error) {
	cfg := map[string]any{
		"content": []string{c.ContentPath},
		"corePlugins": map[string]any{
			"preflight": c.Preflight,
		},
		"theme": map[string]any{
			"extend": map[string]any{},
		},
		"plugins": []any{},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tailwind config: %w", err)
	}
	return "module.exports = " + string(data) + ";", nil
}
