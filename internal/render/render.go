package render

// Target is the framebuffer a frame is rendered into
type Target interface {
	// Clear resets the color and depth buffers to transparent black
	Clear()
}

// TargetFunc adapts a function to Target
type TargetFunc func()

// Clear calls f
func (f TargetFunc) Clear() {
	f()
}

// Surface reports the pixel size of the drawable area
type Surface interface {
	DrawableSize() (width, height int)
}

// Size is a fixed Surface, for headless hosts and tests
type Size struct {
	Width  int
	Height int
}

// DrawableSize returns the fixed size
func (s Size) DrawableSize() (int, int) {
	return s.Width, s.Height
}
