package config

import (
	"github.com/ytget/yt-visualizer/internal/platform"
)

// Namespace is the prefix of all visualizer keys
const Namespace = "projectM"

// KeyApplicationDir is read from the root of the source, outside Namespace
const KeyApplicationDir = "application.dir"

// Settings keys, relative to Namespace
const (
	KeyPresetPath              = "presetPath"
	KeyPresetFilter            = "presetFilter"
	KeyFPS                     = "fps"
	KeyMeshX                   = "meshX"
	KeyMeshY                   = "meshY"
	KeyAspectCorrectionEnabled = "aspectCorrectionEnabled"
	KeyDisplayDuration         = "displayDuration"
	KeyTransitionDuration      = "transitionDuration"
	KeyHardCutsEnabled         = "hardCutsEnabled"
	KeyHardCutDuration         = "hardCutDuration"
	KeyHardCutSensitivity      = "hardCutSensitivity"
	KeyBeatSensitivity         = "beatSensitivity"
	KeyShuffleEnabled          = "shuffleEnabled"
	KeyEnableSplash            = "enableSplash"
)

// Default values
const (
	DefaultPresetFilter            = ""
	DefaultFPS                     = 60
	DefaultMeshX                   = 220
	DefaultMeshY                   = 125
	DefaultAspectCorrectionEnabled = true
	DefaultDisplayDuration         = 40
	DefaultTransitionDuration      = 0
	DefaultHardCutsEnabled         = true
	DefaultHardCutDuration         = 20
	DefaultHardCutSensitivity      = 1.0
	DefaultBeatSensitivity         = 1.0
	DefaultShuffleEnabled          = true
	DefaultEnableSplash            = true
)

// Settings gives typed access to the visualizer configuration. Values are
// read from the source on every call and never cached.
type Settings struct {
	root Source
	view *View
}

// NewSettings creates a settings accessor over the root of a source
func NewSettings(src Source) *Settings {
	return &Settings{
		root: src,
		view: NewView(src, Namespace),
	}
}

// GetApplicationDir returns the application base directory. It falls back to
// the directory of the running executable.
func (s *Settings) GetApplicationDir() string {
	return s.root.String(KeyApplicationDir, platform.ApplicationDir())
}

// GetPresetPath returns the preset search path, defaulting to the application directory
func (s *Settings) GetPresetPath() string {
	return s.view.String(KeyPresetPath, s.GetApplicationDir())
}

// SetPresetPath sets the preset search path
func (s *Settings) SetPresetPath(path string) {
	s.view.SetString(KeyPresetPath, path)
}

// GetPresetFilter returns the filename substring presets must contain; empty disables filtering
func (s *Settings) GetPresetFilter() string {
	return s.view.String(KeyPresetFilter, DefaultPresetFilter)
}

// SetPresetFilter sets the preset filename filter
func (s *Settings) SetPresetFilter(filter string) {
	s.view.SetString(KeyPresetFilter, filter)
}

// GetFPS returns the target frame rate
func (s *Settings) GetFPS() int {
	return s.view.Int(KeyFPS, DefaultFPS)
}

// SetFPS sets the target frame rate
func (s *Settings) SetFPS(fps int) {
	s.view.SetInt(KeyFPS, fps)
}

// GetMeshX returns the horizontal mesh resolution
func (s *Settings) GetMeshX() int {
	return s.view.Int(KeyMeshX, DefaultMeshX)
}

// SetMeshX sets the horizontal mesh resolution
func (s *Settings) SetMeshX(x int) {
	s.view.SetInt(KeyMeshX, x)
}

// GetMeshY returns the vertical mesh resolution
func (s *Settings) GetMeshY() int {
	return s.view.Int(KeyMeshY, DefaultMeshY)
}

// SetMeshY sets the vertical mesh resolution
func (s *Settings) SetMeshY(y int) {
	s.view.SetInt(KeyMeshY, y)
}

// GetAspectCorrectionEnabled returns whether aspect correction is on
func (s *Settings) GetAspectCorrectionEnabled() bool {
	return s.view.Bool(KeyAspectCorrectionEnabled, DefaultAspectCorrectionEnabled)
}

// SetAspectCorrectionEnabled toggles aspect correction
func (s *Settings) SetAspectCorrectionEnabled(enabled bool) {
	s.view.SetBool(KeyAspectCorrectionEnabled, enabled)
}

// GetDisplayDuration returns how long a preset stays on screen, in seconds
func (s *Settings) GetDisplayDuration() int {
	return s.view.Int(KeyDisplayDuration, DefaultDisplayDuration)
}

// SetDisplayDuration sets the preset display duration in seconds
func (s *Settings) SetDisplayDuration(seconds int) {
	s.view.SetInt(KeyDisplayDuration, seconds)
}

// GetTransitionDuration returns the soft cut duration in seconds
func (s *Settings) GetTransitionDuration() int {
	return s.view.Int(KeyTransitionDuration, DefaultTransitionDuration)
}

// SetTransitionDuration sets the soft cut duration in seconds
func (s *Settings) SetTransitionDuration(seconds int) {
	s.view.SetInt(KeyTransitionDuration, seconds)
}

// GetHardCutsEnabled returns whether beat-triggered hard cuts are on
func (s *Settings) GetHardCutsEnabled() bool {
	return s.view.Bool(KeyHardCutsEnabled, DefaultHardCutsEnabled)
}

// SetHardCutsEnabled toggles hard cuts
func (s *Settings) SetHardCutsEnabled(enabled bool) {
	s.view.SetBool(KeyHardCutsEnabled, enabled)
}

// GetHardCutDuration returns the minimum seconds between hard cuts
func (s *Settings) GetHardCutDuration() int {
	return s.view.Int(KeyHardCutDuration, DefaultHardCutDuration)
}

// SetHardCutDuration sets the minimum seconds between hard cuts
func (s *Settings) SetHardCutDuration(seconds int) {
	s.view.SetInt(KeyHardCutDuration, seconds)
}

// GetHardCutSensitivity returns the hard cut beat threshold
func (s *Settings) GetHardCutSensitivity() float64 {
	return s.view.Float(KeyHardCutSensitivity, DefaultHardCutSensitivity)
}

// SetHardCutSensitivity sets the hard cut beat threshold
func (s *Settings) SetHardCutSensitivity(v float64) {
	s.view.SetFloat(KeyHardCutSensitivity, v)
}

// GetBeatSensitivity returns the beat detection sensitivity
func (s *Settings) GetBeatSensitivity() float64 {
	return s.view.Float(KeyBeatSensitivity, DefaultBeatSensitivity)
}

// SetBeatSensitivity sets the beat detection sensitivity
func (s *Settings) SetBeatSensitivity(v float64) {
	s.view.SetFloat(KeyBeatSensitivity, v)
}

// GetShuffleEnabled returns whether presets are picked at random
func (s *Settings) GetShuffleEnabled() bool {
	return s.view.Bool(KeyShuffleEnabled, DefaultShuffleEnabled)
}

// SetShuffleEnabled toggles shuffle
func (s *Settings) SetShuffleEnabled(enabled bool) {
	s.view.SetBool(KeyShuffleEnabled, enabled)
}

// GetEnableSplash returns whether the engine starts on its splash screen.
// When false a preset is selected right after startup.
func (s *Settings) GetEnableSplash() bool {
	return s.view.Bool(KeyEnableSplash, DefaultEnableSplash)
}

// SetEnableSplash toggles the startup splash
func (s *Settings) SetEnableSplash(enabled bool) {
	s.view.SetBool(KeyEnableSplash, enabled)
}
