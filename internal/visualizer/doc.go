package visualizer

// Package visualizer owns the lifecycle of one visualization engine instance
// for the host application. It turns configuration into engine settings,
// curates the preset playlist after startup, picks the first preset and
// renders frames on request of the host's render loop.
