package render

// Package render holds the seams between the visualizer and the windowing
// subsystem: the framebuffer the engine draws into, the drawable surface
// size and the frame pacer that keeps the loop at the target frame rate.
