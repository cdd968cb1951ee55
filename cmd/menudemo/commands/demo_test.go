package commands

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agiangrant/menukit"
	"github.com/agiangrant/menukit/retained"
)

func TestBuildDemo(t *testing.T) {
	cfg := menukit.DefaultConfig()
	form, err := BuildDemo(cfg, retained.NewAssets(retained.FixedFont{CellWidth: 8, CellHeight: 16}))
	require.NoError(t, err)

	assert.Equal(t, 5, form.Controls().Len())
	assert.Equal(t, cfg.Settings(), form.Settings())

	// The close button sits below the settings column, inside the padding.
	hit := form.ControlAt(image.Pt(16+4, 80+448+4))
	require.NotNil(t, hit)
	assert.IsType(t, &retained.Button{}, hit)

	rec := retained.NewRecorder(cfg.Window.Width, cfg.Window.Height)
	form.Render(rec)
	assert.Contains(t, rec.Texts(), "Close")
	assert.Contains(t, rec.Texts(), "Parsnip")
}

func TestWriteConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeConfig(&buf, menukit.DefaultConfig()))
	assert.Contains(t, buf.String(), "[input]")
	assert.Contains(t, buf.String(), "click_threshold = 4")
}
