package tailwind

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleConfig_ConfigJS(t *testing.T) {
	js, err := StyleConfig{ContentPath: "/tmp/page.html", Preflight: true}.ConfigJS()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(js, "module.exports = "))
	require.True(t, strings.HasSuffix(js, ";"))

	// The payload between the module wrapper is plain JSON.
	payload := strings.TrimSuffix(strings.TrimPrefix(js, "module.exports = "), ";")
	var cfg struct {
		Content     []string `json:"content"`
		CorePlugins struct {
			Preflight bool `json:"preflight"`
		} `json:"corePlugins"`
		Theme struct {
			Extend map[string]any `json:"extend"`
		} `json:"theme"`
		Plugins []any `json:"plugins"`
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &cfg))
	require.Equal(t, []string{"/tmp/page.html"}, cfg.Content)
	require.True(t, cfg.CorePlugins.Preflight)
	require.NotNil(t, cfg.Theme.Extend)
	require.NotNil(t, cfg.Plugins)
}

func TestStyleConfig_ConfigJS_PreflightDefaultsOff(t *testing.T) {
	js, err := StyleConfig{ContentPath: "page.html"}.ConfigJS()
	require.NoError(t, err)
	require.Contains(t, js, `"preflight": false`)
}
