// Package projectm binds libprojectM as an engine.Engine.
//
// The binding is compiled only with the projectm build tag and needs the
// libprojectM development files visible to pkg-config:
//
//	go build -tags projectm .
//
// Importing the package registers the factory under Name. Without the tag the
// package is empty and the host falls back to the built-in engine.
package projectm
