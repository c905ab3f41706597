package visualizer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/yt-visualizer/internal/engine"
)

// filterPresets removes every preset whose filename does not contain filter.
// The playlist size is re-read on each step and the index only advances past
// kept entries, so removals never cause an entry to be skipped or seen twice.
func filterPresets(eng engine.Engine, filter string, log *zap.Logger) int {
	removed := 0
	for i := 0; i < eng.PlaylistSize(); {
		filename := eng.PresetFilename(i)
		if !strings.Contains(filename, filter) {
			eng.RemovePreset(i)
			removed++
			continue
		}
		log.Debug("INIT preset add", zap.String("file", filename))
		i++
	}
	return removed
}

// blockPresets removes the named presets and returns the names that were
// found. Unknown names are ignored.
func blockPresets(eng engine.Engine, names []string) []string {
	var blocked []string
	for _, name := range names {
		index, ok := eng.PresetIndex(name)
		if !ok || index >= eng.PlaylistSize() {
			continue
		}
		eng.RemovePreset(index)
		blocked = append(blocked, name)
	}
	return blocked
}
