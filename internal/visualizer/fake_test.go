package visualizer

import (
	"fmt"

	"github.com/ytget/yt-visualizer/internal/engine"
	"github.com/ytget/yt-visualizer/internal/model"
)

// fakeEngine records every call in order, sharing the log with the render
// target so ordering across both can be asserted.
type fakeEngine struct {
	settings  engine.Settings
	flags     engine.Flags
	playlist  *model.Playlist
	calls     *[]string
	destroyed int
}

func newFakeEngine(calls *[]string, presets ...model.Preset) *fakeEngine {
	return &fakeEngine{playlist: model.NewPlaylist(presets...), calls: calls}
}

func (f *fakeEngine) record(format string, args ...any) {
	*f.calls = append(*f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeEngine) PlaylistSize() int {
	return f.playlist.Len()
}

func (f *fakeEngine) PresetName(index int) string {
	p, _ := f.playlist.At(index)
	return p.Name
}

func (f *fakeEngine) PresetIndex(name string) (int, bool) {
	return f.playlist.IndexOf(name)
}

func (f *fakeEngine) PresetFilename(index int) string {
	p, _ := f.playlist.At(index)
	return p.Filename
}

func (f *fakeEngine) RemovePreset(index int) {
	f.record("remove %d", index)
	f.playlist.Remove(index)
}

func (f *fakeEngine) SelectRandomPreset(hardCut bool) {
	f.record("random hard=%v", hardCut)
}

func (f *fakeEngine) SelectNextPreset(hardCut bool) {
	f.record("next hard=%v", hardCut)
}

func (f *fakeEngine) RenderFrame() {
	f.record("render")
}

func (f *fakeEngine) Destroy() {
	f.record("destroy")
	f.destroyed++
}

// fakeFactory hands out fake engines and remembers them
type fakeFactory struct {
	calls   *[]string
	presets []model.Preset
	created []*fakeEngine
	err     error
}

func (ff *fakeFactory) create(settings engine.Settings, flags engine.Flags) (engine.Engine, error) {
	if ff.err != nil {
		return nil, ff.err
	}
	eng := newFakeEngine(ff.calls, ff.presets...)
	eng.settings = settings
	eng.flags = flags
	ff.created = append(ff.created, eng)
	return eng, nil
}

func presetsFromFiles(files ...string) []model.Preset {
	presets := make([]model.Preset, len(files))
	for i, f := range files {
		presets[i] = model.NewPresetFromPath(f)
	}
	return presets
}
