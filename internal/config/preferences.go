package config

import (
	"fyne.io/fyne/v2"
)

// PreferencesSource reads and writes configuration through Fyne app
// preferences, which persist per application ID.
type PreferencesSource struct {
	prefs fyne.Preferences
}

// NewPreferencesSource creates a source backed by the app's preferences
func NewPreferencesSource(app fyne.App) *PreferencesSource {
	return &PreferencesSource{prefs: app.Preferences()}
}

func (p *PreferencesSource) String(key, fallback string) string {
	return p.prefs.StringWithFallback(key, fallback)
}

func (p *PreferencesSource) Int(key string, fallback int) int {
	return p.prefs.IntWithFallback(key, fallback)
}

func (p *PreferencesSource) Float(key string, fallback float64) float64 {
	return p.prefs.FloatWithFallback(key, fallback)
}

func (p *PreferencesSource) Bool(key string, fallback bool) bool {
	return p.prefs.BoolWithFallback(key, fallback)
}

func (p *PreferencesSource) SetString(key, value string) {
	p.prefs.SetString(key, value)
}

func (p *PreferencesSource) SetInt(key string, value int) {
	p.prefs.SetInt(key, value)
}

func (p *PreferencesSource) SetFloat(key string, value float64) {
	p.prefs.SetFloat(key, value)
}

func (p *PreferencesSource) SetBool(key string, value bool) {
	p.prefs.SetBool(key, value)
}
