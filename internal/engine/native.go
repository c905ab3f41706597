package engine

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ytget/yt-visualizer/internal/model"
	"github.com/ytget/yt-visualizer/internal/platform"
)

// NativeName is the registry name of the built-in engine
const NativeName = "native"

const noPreset = -1

// defaultFPS replaces a non-positive frame rate when converting seconds to frames
const defaultFPS = 60

// NativeOption configures a Native engine
type NativeOption func(*Native)

// WithRand sets the random source used by SelectRandomPreset
func WithRand(r *rand.Rand) NativeOption {
	return func(n *Native) {
		n.rng = r
	}
}

// Native is the built-in engine. It keeps the playlist in Go, tracks the
// active preset and advances it on the configured schedule. It does not draw;
// the framebuffer keeps whatever the render target was cleared to.
type Native struct {
	settings Settings
	playlist *model.Playlist
	rng      *rand.Rand

	current          int
	frame            uint64
	presetFrames     int
	transitionFrames int
	destroyed        bool
}

// NewNative creates the built-in engine. Unless FlagDisablePlaylistLoad is
// set, the playlist is loaded from the preset files under settings.PresetURL.
func NewNative(settings Settings, flags Flags, opts ...NativeOption) (*Native, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	n := &Native{
		settings: settings,
		playlist: model.NewPlaylist(),
		current:  noPreset,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		seed := uint64(time.Now().UnixNano())
		n.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	if flags&FlagDisablePlaylistLoad == 0 {
		paths, err := platform.DiscoverPresets(settings.PresetURL)
		if err != nil {
			return nil, fmt.Errorf("load playlist: %w", err)
		}
		for _, path := range paths {
			n.playlist.Add(model.NewPresetFromPath(path))
		}
	}

	return n, nil
}

// NewNativeEngine is the Factory for the built-in engine
func NewNativeEngine(settings Settings, flags Flags) (Engine, error) {
	n, err := NewNative(settings, flags)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Settings returns the record the engine was created from
func (n *Native) Settings() Settings {
	return n.settings
}

// AddPreset appends a preset to the playlist
func (n *Native) AddPreset(name, filename string) {
	if n.destroyed {
		return
	}
	n.playlist.Add(model.Preset{Name: name, Filename: filename})
}

func (n *Native) PlaylistSize() int {
	return n.playlist.Len()
}

func (n *Native) PresetName(index int) string {
	preset, _ := n.playlist.At(index)
	return preset.Name
}

func (n *Native) PresetIndex(name string) (int, bool) {
	return n.playlist.IndexOf(name)
}

func (n *Native) PresetFilename(index int) string {
	preset, _ := n.playlist.At(index)
	return preset.Filename
}

func (n *Native) RemovePreset(index int) {
	if !n.playlist.Remove(index) {
		return
	}
	switch {
	case index == n.current:
		n.current = noPreset
	case index < n.current:
		n.current--
	}
}

// SelectRandomPreset switches to a random preset other than the active one
func (n *Native) SelectRandomPreset(hardCut bool) {
	size := n.playlist.Len()
	if size == 0 {
		return
	}
	if size == 1 || n.current == noPreset {
		n.switchTo(n.rng.IntN(size), hardCut)
		return
	}
	index := n.rng.IntN(size - 1)
	if index >= n.current {
		index++
	}
	n.switchTo(index, hardCut)
}

// SelectNextPreset switches to the preset after the active one, wrapping
// around at the end. From the splash it selects the first preset.
func (n *Native) SelectNextPreset(hardCut bool) {
	size := n.playlist.Len()
	if size == 0 {
		return
	}
	n.switchTo((n.current+1)%size, hardCut)
}

func (n *Native) switchTo(index int, hardCut bool) {
	n.current = index
	n.presetFrames = 0
	n.transitionFrames = 0
	if !hardCut && n.settings.SoftCutDuration > 0 {
		n.transitionFrames = int(n.settings.SoftCutDuration * float64(n.fps()))
	}
}

func (n *Native) fps() int {
	if n.settings.FPS <= 0 {
		return defaultFPS
	}
	return n.settings.FPS
}

// RenderFrame advances the engine clock by one frame. Once the active preset
// has been shown for PresetDuration seconds the next one is selected with a
// soft cut.
func (n *Native) RenderFrame() {
	if n.destroyed {
		return
	}
	n.frame++
	n.presetFrames++
	if n.transitionFrames > 0 {
		n.transitionFrames--
	}

	limit := int(n.settings.PresetDuration * float64(n.fps()))
	if limit <= 0 || n.presetFrames < limit {
		return
	}
	if n.playlist.Len() == 0 {
		n.presetFrames = 0
		return
	}
	if n.settings.ShuffleEnabled {
		n.SelectRandomPreset(false)
	} else {
		n.SelectNextPreset(false)
	}
}

// CurrentIndex returns the index of the active preset. It reports false while
// the splash is shown.
func (n *Native) CurrentIndex() (int, bool) {
	if n.current == noPreset {
		return noPreset, false
	}
	return n.current, true
}

// CurrentPreset returns the active preset
func (n *Native) CurrentPreset() (model.Preset, bool) {
	return n.playlist.At(n.current)
}

// Frame returns the number of frames rendered
func (n *Native) Frame() uint64 {
	return n.frame
}

// InTransition reports whether a soft cut is still blending
func (n *Native) InTransition() bool {
	return n.transitionFrames > 0
}

// Destroyed reports whether Destroy has been called
func (n *Native) Destroyed() bool {
	return n.destroyed
}

func (n *Native) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	n.playlist.Clear()
	n.current = noPreset
}
