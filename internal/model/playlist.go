package model

import (
	"path/filepath"
)

// Preset is a single playlist entry
type Preset struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
}

// NewPresetFromPath builds a preset named after the file's base name
func NewPresetFromPath(path string) Preset {
	return Preset{
		Name:     filepath.Base(path),
		Filename: path,
	}
}

// Playlist is an ordered list of presets. Indexes shift down when an entry
// before them is removed.
type Playlist struct {
	presets []Preset
}

// NewPlaylist creates a playlist holding the given presets in order
func NewPlaylist(presets ...Preset) *Playlist {
	p := &Playlist{presets: make([]Preset, 0, len(presets))}
	p.presets = append(p.presets, presets...)
	return p
}

// Len returns the number of presets
func (p *Playlist) Len() int {
	return len(p.presets)
}

// At returns the preset at index
func (p *Playlist) At(index int) (Preset, bool) {
	if index < 0 || index >= len(p.presets) {
		return Preset{}, false
	}
	return p.presets[index], true
}

// IndexOf returns the position of the first preset with the given name
func (p *Playlist) IndexOf(name string) (int, bool) {
	for i, preset := range p.presets {
		if preset.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Add appends a preset
func (p *Playlist) Add(preset Preset) {
	p.presets = append(p.presets, preset)
}

// Remove deletes the preset at index and reports whether it existed
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.presets) {
		return false
	}
	p.presets = append(p.presets[:index], p.presets[index+1:]...)
	return true
}

// Clear removes every preset
func (p *Playlist) Clear() {
	p.presets = p.presets[:0]
}

// Names returns preset names in playlist order
func (p *Playlist) Names() []string {
	names := make([]string, len(p.presets))
	for i, preset := range p.presets {
		names[i] = preset.Name
	}
	return names
}
