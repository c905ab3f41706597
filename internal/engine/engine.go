package engine

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrUnknownEngine is returned by Lookup for names nobody registered
	ErrUnknownEngine = errors.New("unknown engine")

	// ErrInvalidSettings is returned by factories rejecting a Settings record
	ErrInvalidSettings = errors.New("invalid engine settings")
)

// Engine is a running visualization engine instance
type Engine interface {
	// PlaylistSize returns the number of presets in the playlist
	PlaylistSize() int
	// PresetName returns the name of the preset at index
	PresetName(index int) string
	// PresetIndex returns the index of the first preset with the given name
	PresetIndex(name string) (int, bool)
	// PresetFilename returns the file the preset at index was loaded from
	PresetFilename(index int) string
	// RemovePreset removes the preset at index, shifting later entries down
	RemovePreset(index int)

	SelectRandomPreset(hardCut bool)
	SelectNextPreset(hardCut bool)

	// RenderFrame renders one frame into the current framebuffer
	RenderFrame()
	// Destroy releases every resource held by the engine
	Destroy()
}

// Flags alter engine construction
type Flags int

const (
	// FlagNone lets the engine load its playlist from Settings.PresetURL
	FlagNone Flags = 0
	// FlagDisablePlaylistLoad starts the engine with an empty playlist
	FlagDisablePlaylistLoad Flags = 1
)

// Settings is the record an engine is created from
type Settings struct {
	WindowWidth  int
	WindowHeight int
	FPS          int
	MeshX        int
	MeshY        int

	AspectCorrection bool

	// Durations are in seconds
	PresetDuration     float64
	SoftCutDuration    float64
	HardCutEnabled     bool
	HardCutDuration    float64
	HardCutSensitivity float64
	BeatSensitivity    float64
	ShuffleEnabled     bool

	// PresetURL is the directory the playlist is loaded from
	PresetURL string

	// Legacy options the host never enables
	SoftCutRatingsEnabled bool
	MenuFontURL           string
	TitleFontURL          string
}

// Validate checks the fields every engine depends on
func (s Settings) Validate() error {
	if s.WindowWidth < 0 || s.WindowHeight < 0 {
		return fmt.Errorf("%w: window %dx%d", ErrInvalidSettings, s.WindowWidth, s.WindowHeight)
	}
	if s.MeshX <= 0 || s.MeshY <= 0 {
		return fmt.Errorf("%w: mesh %dx%d", ErrInvalidSettings, s.MeshX, s.MeshY)
	}
	return nil
}

// Factory creates an engine instance
type Factory func(settings Settings, flags Flags) (Engine, error)

var (
	factoriesMu sync.RWMutex
	factories   = map[string]Factory{
		NativeName: NewNativeEngine,
	}
)

// Register makes a factory available under name, replacing any previous one
func Register(name string, factory Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = factory
}

// Lookup returns the factory registered under name
func Lookup(name string) (Factory, error) {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
	return f, nil
}

// Names returns the registered engine names, sorted
func Names() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
