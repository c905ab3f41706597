package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/yt-visualizer/internal/config"
)

func newTestDialog(t *testing.T) (*SettingsDialog, *config.Settings) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(config.NewPreferencesSource(app))
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	return NewSettingsDialog(settings, window), settings
}

func TestSettingsDialog_LoadsCurrentSettings(t *testing.T) {
	sd, settings := newTestDialog(t)
	settings.SetFPS(30)
	settings.SetPresetFilter("Geiss")
	settings.SetEnableSplash(false)

	sd.loadCurrentSettings()

	assert.Equal(t, "30", sd.fpsEntry.Text)
	assert.Equal(t, "Geiss", sd.presetFilterEntry.Text)
	assert.Equal(t, "220", sd.meshXEntry.Text)
	assert.Equal(t, "1", sd.beatSensitivityEntry.Text)
	assert.False(t, sd.splashCheck.Checked)
	assert.True(t, sd.shuffleCheck.Checked)
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, settings := newTestDialog(t)
	sd.loadCurrentSettings()

	sd.presetPathEntry.SetText("/usr/share/projectM/presets")
	sd.fpsEntry.SetText("45")
	sd.meshXEntry.SetText("64")
	sd.transitionDurationEntry.SetText("3")
	sd.beatSensitivityEntry.SetText("2.5")
	sd.shuffleCheck.SetChecked(false)

	sd.onSave(true)

	assert.Equal(t, "/usr/share/projectM/presets", settings.GetPresetPath())
	assert.Equal(t, 45, settings.GetFPS())
	assert.Equal(t, 64, settings.GetMeshX())
	assert.Equal(t, 3, settings.GetTransitionDuration())
	assert.Equal(t, 2.5, settings.GetBeatSensitivity())
	assert.False(t, settings.GetShuffleEnabled())
}

func TestSettingsDialog_SaveKeepsPresetPathFallback(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	src := config.NewPreferencesSource(app)
	src.SetString(config.KeyApplicationDir, "/opt/presets")
	settings := config.NewSettings(src)
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	sd := NewSettingsDialog(settings, window)
	sd.loadCurrentSettings()
	assert.Equal(t, "/opt/presets", sd.presetPathEntry.Text)

	sd.fpsEntry.SetText("30")
	sd.onSave(true)

	src.SetString(config.KeyApplicationDir, "/opt/presets-later")
	assert.Equal(t, "/opt/presets-later", settings.GetPresetPath())
	assert.Equal(t, "", src.String(config.Namespace+"."+config.KeyPresetPath, ""))
	assert.Equal(t, 30, settings.GetFPS())
}

func TestSettingsDialog_SaveIgnoresInvalidNumbers(t *testing.T) {
	sd, settings := newTestDialog(t)
	sd.loadCurrentSettings()

	sd.fpsEntry.SetText("fast")
	sd.meshYEntry.SetText("0")
	sd.displayDurationEntry.SetText("-4")
	sd.hardCutSensitivityEntry.SetText("")

	sd.onSave(true)

	assert.Equal(t, config.DefaultFPS, settings.GetFPS())
	assert.Equal(t, config.DefaultMeshY, settings.GetMeshY())
	assert.Equal(t, config.DefaultDisplayDuration, settings.GetDisplayDuration())
	assert.Equal(t, config.DefaultHardCutSensitivity, settings.GetHardCutSensitivity())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	sd, settings := newTestDialog(t)
	sd.loadCurrentSettings()
	sd.fpsEntry.SetText("12")

	sd.onSave(false)

	assert.Equal(t, config.DefaultFPS, settings.GetFPS())
}

func TestParseInts(t *testing.T) {
	tests := []struct {
		text        string
		positive    bool
		nonNegative bool
	}{
		{"10", true, true},
		{" 7 ", true, true},
		{"0", false, true},
		{"-1", false, false},
		{"abc", false, false},
	}

	for _, tt := range tests {
		_, ok := parsePositiveInt(tt.text)
		assert.Equal(t, tt.positive, ok, "parsePositiveInt(%q)", tt.text)
		_, ok = parseNonNegativeInt(tt.text)
		assert.Equal(t, tt.nonNegative, ok, "parseNonNegativeInt(%q)", tt.text)
	}
}
