package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when a config file extension is not known.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// FileSource holds configuration loaded from a YAML or TOML document.
// Nested tables are flattened into dotted keys: a "projectM" table with an
// "fps" entry is read as "projectM.fps".
type FileSource struct {
	path   string
	values map[string]any
	mu     sync.RWMutex
}

// NewFileSource creates an in-memory source from already decoded values.
func NewFileSource(values map[string]any) *FileSource {
	flat := make(map[string]any)
	flatten("", values, flat)
	return &FileSource{values: flat}
}

// LoadFile reads a configuration document. The format is chosen by
// extension: .yaml, .yml or .toml.
func LoadFile(path string) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	raw := make(map[string]any)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, fmt.Errorf("parse toml %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	src := NewFileSource(raw)
	src.path = path
	return src, nil
}

// Path returns the file the source was loaded from, empty for in-memory sources.
func (f *FileSource) Path() string {
	return f.path
}

// Keys returns the number of flattened keys.
func (f *FileSource) Keys() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.values)
}

func (f *FileSource) lookup(key string) (any, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *FileSource) set(key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

func (f *FileSource) String(key, fallback string) string {
	v, ok := f.lookup(key)
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func (f *FileSource) Int(key string, fallback int) int {
	v, ok := f.lookup(key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case uint64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return fallback
}

func (f *FileSource) Float(key string, fallback float64) float64 {
	v, ok := f.lookup(key)
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		if x, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return x
		}
	}
	return fallback
}

func (f *FileSource) Bool(key string, fallback bool) bool {
	v, ok := f.lookup(key)
	if !ok {
		return fallback
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		if x, err := strconv.ParseBool(strings.TrimSpace(b)); err == nil {
			return x
		}
	}
	return fallback
}

func (f *FileSource) SetString(key, value string) {
	f.set(key, value)
}

func (f *FileSource) SetInt(key string, value int) {
	f.set(key, value)
}

func (f *FileSource) SetFloat(key string, value float64) {
	f.set(key, value)
}

func (f *FileSource) SetBool(key string, value bool) {
	f.set(key, value)
}

// flatten copies nested maps into dst using dotted keys.
func flatten(prefix string, src map[string]any, dst map[string]any) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, dst)
			continue
		}
		dst[key] = v
	}
}
