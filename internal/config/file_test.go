package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileYAML(t *testing.T) {
	path := writeFile(t, "visualizer.yaml", `
application:
  dir: /opt/app
projectM:
  presetPath: /presets
  presetFilter: Geiss
  fps: 30
  hardCutSensitivity: 0.5
  shuffleEnabled: false
  meshX: "128"
`)

	src, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, src.Path())
	assert.Equal(t, "/opt/app", src.String("application.dir", ""))
	assert.Equal(t, "/presets", src.String("projectM.presetPath", ""))
	assert.Equal(t, "Geiss", src.String("projectM.presetFilter", ""))
	assert.Equal(t, 30, src.Int("projectM.fps", 60))
	assert.Equal(t, 128, src.Int("projectM.meshX", 220))
	assert.InDelta(t, 0.5, src.Float("projectM.hardCutSensitivity", 1), 1e-9)
	assert.False(t, src.Bool("projectM.shuffleEnabled", true))
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "visualizer.toml", `
[projectM]
fps = 45
beatSensitivity = 2
enableSplash = false
presetPath = "/usr/share/projectM/presets"
`)

	src, err := LoadFile(path)
	require.NoError(t, err)

	settings := NewSettings(src)
	assert.Equal(t, 45, settings.GetFPS())
	assert.InDelta(t, 2.0, settings.GetBeatSensitivity(), 1e-9)
	assert.False(t, settings.GetEnableSplash())
	assert.Equal(t, "/usr/share/projectM/presets", settings.GetPresetPath())
	assert.Equal(t, DefaultMeshY, settings.GetMeshY())
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, "visualizer.ini", "fps=60")
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	path = writeFile(t, "broken.yaml", "projectM: [fps")
	_, err = LoadFile(path)
	assert.Error(t, err)
}

func TestFileSourceFallbacks(t *testing.T) {
	src := NewFileSource(map[string]any{
		"projectM": map[string]any{
			"fps":             "fast",
			"shuffleEnabled":  "maybe",
			"beatSensitivity": "loud",
		},
	})

	assert.Equal(t, 60, src.Int("projectM.fps", 60))
	assert.True(t, src.Bool("projectM.shuffleEnabled", true))
	assert.InDelta(t, 1.0, src.Float("projectM.beatSensitivity", 1.0), 1e-9)
	assert.Equal(t, "fallback", src.String("projectM.absent", "fallback"))
	assert.Equal(t, 3, src.Keys())
}

func TestFileSourceSet(t *testing.T) {
	src := NewFileSource(nil)

	src.SetString("projectM.presetFilter", "Flexi")
	src.SetInt("projectM.fps", 24)
	src.SetFloat("projectM.hardCutSensitivity", 0.25)
	src.SetBool("projectM.enableSplash", false)

	assert.Equal(t, "Flexi", src.String("projectM.presetFilter", ""))
	assert.Equal(t, 24, src.Int("projectM.fps", 60))
	assert.InDelta(t, 0.25, src.Float("projectM.hardCutSensitivity", 1), 1e-9)
	assert.False(t, src.Bool("projectM.enableSplash", true))
	assert.Equal(t, "24", src.String("projectM.fps", ""))
}

func TestViewPrefixesKeys(t *testing.T) {
	src := NewFileSource(nil)
	view := NewView(src, "projectM")

	view.SetInt("meshX", 64)
	assert.Equal(t, 64, src.Int("projectM.meshX", 0))
	assert.Equal(t, 64, view.Int("meshX", 0))

	root := NewView(src, "")
	assert.Equal(t, 64, root.Int("projectM.meshX", 0))
}
