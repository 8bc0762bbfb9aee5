// Package viewer displays rendered framebuffers in an OpenGL window. It is
// a display surface only; all distance field evaluation stays on the CPU.
package viewer

import "github.com/soypat/glgl/math/ms3"

// Show opens a window of the given pixel dimensions, uploads the
// framebuffer as a texture and blocks until the window is closed.
//
// Show must run on the main OS thread: callers lock it with
// runtime.LockOSThread in an init function. Requires cgo.
func Show(buf []ms3.Vec, width, height int, title string) error {
	return show(buf, width, height, title)
}
