package menukit

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/menukit/retained"
)

func TestDefaultConfigMatchesSettings(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, retained.DefaultSettings(), cfg.Settings())
	assert.Zero(t, cfg.WheelInterval())
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
debug = true

[input]
click_threshold = 6
wheel_interval_ms = 50

[tooltip]
offset_x = 10
`))
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 6, cfg.Input.ClickThreshold)
	assert.Equal(t, 120, cfg.Input.WheelStep)
	assert.Equal(t, 50*time.Millisecond, cfg.WheelInterval())

	s := cfg.Settings()
	assert.Equal(t, image.Pt(10, 32), s.TooltipOffset)
	assert.Equal(t, 44, s.ScrollBarSize)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"syntax", "[input", "failed to parse config"},
		{"window", "[window]\nwidth = 0", "window size"},
		{"wheel step", "[input]\nwheel_step = -1", "wheel_step"},
		{"threshold", "[input]\nclick_threshold = -1", "click_threshold"},
		{"bar", "[scroll]\nbar_size = 0", "bar_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.toml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menukit.toml")

	cfg := DefaultConfig()
	cfg.Window.Title = "Inventory"
	cfg.Scroll.SmallChange = 16
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[scroll]")

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
