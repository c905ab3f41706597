package model

import (
	"path/filepath"
	"testing"
)

func samplePlaylist() *Playlist {
	return NewPlaylist(
		Preset{Name: "a.milk", Filename: "/presets/Geiss/a.milk"},
		Preset{Name: "b.milk", Filename: "/presets/Flexi/b.milk"},
		Preset{Name: "c.milk", Filename: "/presets/Geiss/c.milk"},
	)
}

func TestNewPresetFromPath(t *testing.T) {
	path := filepath.Join("presets", "Geiss", "Cosmic Dust.milk")
	preset := NewPresetFromPath(path)

	if preset.Name != "Cosmic Dust.milk" {
		t.Errorf("Expected name 'Cosmic Dust.milk', got '%s'", preset.Name)
	}
	if preset.Filename != path {
		t.Errorf("Expected filename '%s', got '%s'", path, preset.Filename)
	}
}

func TestPlaylist_At(t *testing.T) {
	p := samplePlaylist()

	if p.Len() != 3 {
		t.Fatalf("Expected 3 presets, got %d", p.Len())
	}

	preset, ok := p.At(1)
	if !ok || preset.Name != "b.milk" {
		t.Errorf("At(1) = %v, %v, expected b.milk", preset, ok)
	}

	for _, index := range []int{-1, 3, 100} {
		if _, ok := p.At(index); ok {
			t.Errorf("At(%d) should be out of range", index)
		}
	}
}

func TestPlaylist_IndexOf(t *testing.T) {
	p := samplePlaylist()

	tests := []struct {
		name     string
		expected int
		found    bool
	}{
		{"a.milk", 0, true},
		{"c.milk", 2, true},
		{"missing.milk", -1, false},
	}

	for _, test := range tests {
		index, found := p.IndexOf(test.name)
		if index != test.expected || found != test.found {
			t.Errorf("IndexOf(%s) = %d, %v, expected %d, %v", test.name, index, found, test.expected, test.found)
		}
	}
}

func TestPlaylist_RemoveShiftsIndexes(t *testing.T) {
	p := samplePlaylist()

	if !p.Remove(0) {
		t.Fatal("Expected Remove(0) to succeed")
	}
	if p.Len() != 2 {
		t.Fatalf("Expected 2 presets after removal, got %d", p.Len())
	}
	if index, _ := p.IndexOf("c.milk"); index != 1 {
		t.Errorf("Expected c.milk to shift to index 1, got %d", index)
	}
	if p.Remove(5) {
		t.Error("Remove out of range should report false")
	}
}

func TestPlaylist_AddClearNames(t *testing.T) {
	p := NewPlaylist()
	p.Add(Preset{Name: "x.milk"})
	p.Add(Preset{Name: "y.milk"})

	names := p.Names()
	if len(names) != 2 || names[0] != "x.milk" || names[1] != "y.milk" {
		t.Errorf("Unexpected names: %v", names)
	}

	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Expected empty playlist after Clear, got %d", p.Len())
	}
}
