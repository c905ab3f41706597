package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	src := NewPreferencesSource(app)
	settings := NewSettings(src)

	if settings.root != src {
		t.Error("Settings root should be the provided source")
	}
	if settings.view.Prefix() != Namespace {
		t.Errorf("Expected view prefix %s, got %s", Namespace, settings.view.Prefix())
	}
}

func TestSettingsDefaults(t *testing.T) {
	settings := NewSettings(NewPreferencesSource(test.NewApp()))

	intTests := []struct {
		name     string
		get      func() int
		expected int
	}{
		{"fps", settings.GetFPS, DefaultFPS},
		{"meshX", settings.GetMeshX, DefaultMeshX},
		{"meshY", settings.GetMeshY, DefaultMeshY},
		{"displayDuration", settings.GetDisplayDuration, DefaultDisplayDuration},
		{"transitionDuration", settings.GetTransitionDuration, DefaultTransitionDuration},
		{"hardCutDuration", settings.GetHardCutDuration, DefaultHardCutDuration},
	}
	for _, tt := range intTests {
		if got := tt.get(); got != tt.expected {
			t.Errorf("%s default = %d, expected %d", tt.name, got, tt.expected)
		}
	}

	boolTests := []struct {
		name     string
		get      func() bool
		expected bool
	}{
		{"aspectCorrectionEnabled", settings.GetAspectCorrectionEnabled, true},
		{"hardCutsEnabled", settings.GetHardCutsEnabled, true},
		{"shuffleEnabled", settings.GetShuffleEnabled, true},
		{"enableSplash", settings.GetEnableSplash, true},
	}
	for _, tt := range boolTests {
		if got := tt.get(); got != tt.expected {
			t.Errorf("%s default = %v, expected %v", tt.name, got, tt.expected)
		}
	}

	if got := settings.GetHardCutSensitivity(); got != DefaultHardCutSensitivity {
		t.Errorf("hardCutSensitivity default = %v, expected %v", got, DefaultHardCutSensitivity)
	}
	if got := settings.GetBeatSensitivity(); got != DefaultBeatSensitivity {
		t.Errorf("beatSensitivity default = %v, expected %v", got, DefaultBeatSensitivity)
	}
	if got := settings.GetPresetFilter(); got != "" {
		t.Errorf("presetFilter default = %q, expected empty", got)
	}
}

func TestPresetPathFallsBackToApplicationDir(t *testing.T) {
	app := test.NewApp()
	src := NewPreferencesSource(app)
	settings := NewSettings(src)

	src.SetString(KeyApplicationDir, "/opt/visualizer")
	if got := settings.GetPresetPath(); got != "/opt/visualizer" {
		t.Errorf("Expected preset path to fall back to application dir, got %s", got)
	}

	settings.SetPresetPath("/usr/share/projectM/presets")
	if got := settings.GetPresetPath(); got != "/usr/share/projectM/presets" {
		t.Errorf("Expected configured preset path, got %s", got)
	}
}

func TestApplicationDirDefault(t *testing.T) {
	settings := NewSettings(NewPreferencesSource(test.NewApp()))

	if settings.GetApplicationDir() == "" {
		t.Error("Application dir should not be empty")
	}
}

func TestSettingsSettersUseNamespace(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(NewPreferencesSource(app))

	settings.SetFPS(30)
	settings.SetShuffleEnabled(false)
	settings.SetBeatSensitivity(2.5)
	settings.SetPresetFilter("Geiss")

	prefs := app.Preferences()
	if got := prefs.Int("projectM.fps"); got != 30 {
		t.Errorf("Expected projectM.fps 30, got %d", got)
	}
	if got := prefs.BoolWithFallback("projectM.shuffleEnabled", true); got {
		t.Error("Expected projectM.shuffleEnabled to be false")
	}
	if got := prefs.Float("projectM.beatSensitivity"); got != 2.5 {
		t.Errorf("Expected projectM.beatSensitivity 2.5, got %v", got)
	}
	if got := prefs.String("projectM.presetFilter"); got != "Geiss" {
		t.Errorf("Expected projectM.presetFilter Geiss, got %s", got)
	}
}

func TestSettingsAreNotCached(t *testing.T) {
	src := NewFileSource(nil)
	settings := NewSettings(src)

	if settings.GetFPS() != DefaultFPS {
		t.Fatalf("Expected default fps %d", DefaultFPS)
	}

	src.SetInt("projectM.fps", 25)
	if got := settings.GetFPS(); got != 25 {
		t.Errorf("Expected fps to follow the source, got %d", got)
	}
}
