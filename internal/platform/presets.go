package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PresetExtensions lists the file extensions recognized as presets
var PresetExtensions = []string{".milk", ".prjm"}

// IsPresetFile reports whether the file name has a preset extension
func IsPresetFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range PresetExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DiscoverPresets walks root recursively and returns the paths of all preset
// files sorted lexically. A missing root yields no presets and no error.
// Entries below root that cannot be read are skipped.
func DiscoverPresets(root string) ([]string, error) {
	if root == "" {
		return nil, nil
	}
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			// Hidden directories (.git and friends) never hold presets
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsPresetFile(d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan presets in %s: %w", root, err)
	}

	sort.Strings(found)
	return found, nil
}
