// Package engine defines the capability surface of the preset visualization
// engine and ships a pure-Go implementation of it.
//
// The engine is consumed as an opaque value: it is built from a Settings
// record, exposes its playlist for inspection and removal, switches presets
// and renders one frame per call. Implementations register a Factory under a
// name so the host can pick one at startup:
//
//	NativeName   - built-in Go engine, playlist only, no GPU work
//	"projectm"   - libprojectM through cgo, see engine/projectm
//
// Engines are not safe for concurrent use. They are driven from the render
// loop thread that owns the GL context.
package engine
