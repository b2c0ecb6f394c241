//go:build !windows

package engine

import "github.com/go-gl/glfw/v3.3/glfw"

// styleWindow is a no-op outside Windows.
func styleWindow(_ *glfw.Window, _, _, _ float32) {}
