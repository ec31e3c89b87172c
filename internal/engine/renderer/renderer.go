// Package renderer initialises OpenGL on an existing context and presents
// offscreen frames to the window.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/engine/framebuffer"
	"github.com/Faultbox/glcourse/internal/logger"
)

// Renderer presents frames to the default framebuffer.
type Renderer struct {
	width  int
	height int
	log    *zap.Logger
}

// New loads GL function pointers and returns a renderer for a drawable of the given size.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{log: logger.Named("renderer")}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)
	r.Resize(width, height)
	return r, nil
}

// Resize records the drawable size.
func (r *Renderer) Resize(width, height int) {
	if width == r.width && height == r.height {
		return
	}
	r.width = width
	r.height = height
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the drawable size.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Present copies the colour attachment of fb onto the whole window, scaling if the
// sizes differ.
func (r *Renderer) Present(fb *framebuffer.Framebuffer) {
	srcW, srcH := fb.Size()

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.FBO())
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.BlitFramebuffer(
		0, 0, srcW, srcH,
		0, 0, int32(r.width), int32(r.height),
		gl.COLOR_BUFFER_BIT, gl.LINEAR,
	)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}
