package ui

// Package ui contains the Fyne-based settings editor for the visualizer.
// It edits the projectM.* preferences the render host reads at startup.
