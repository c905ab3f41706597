package glwindow

import (
	"github.com/go-gl/gl/v2.1/gl"
)

// Target clears the framebuffer bound in the current GL context
type Target struct{}

// Clear resets color and depth to transparent black
func (Target) Clear() {
	gl.ClearColor(0, 0, 0, 0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
