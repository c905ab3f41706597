package model

// Package model defines the preset playlist kept by engines that manage
// their playlist on the Go side: presets addressed by position, looked up by
// name, removed in place.
