// Package framebuffer provides the offscreen render target scenes draw into.
//
// The app renders each frame into a Framebuffer sized to the scene area; the demos
// show its colour texture inside ImGui and the viewer blits it to the window.
package framebuffer

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/engine/texture"
)

// Framebuffer is an RGBA8 colour texture plus a 24-bit depth renderbuffer.
type Framebuffer struct {
	fbo   uint32
	color uint32
	depth uint32

	width, height int32
}

// New allocates a framebuffer. Sizes below one pixel are raised to one.
func New(width, height int32) (*Framebuffer, error) {
	fb := &Framebuffer{}
	gl.GenFramebuffers(1, &fb.fbo)
	gl.GenTextures(1, &fb.color)
	gl.GenRenderbuffers(1, &fb.depth)

	fb.allocate(width, height)

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.color, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depth)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Destroy()
		return nil, fmt.Errorf("framebuffer %dx%d incomplete: 0x%x", fb.width, fb.height, status)
	}
	return fb, nil
}

// allocate (re)sizes both attachments.
func (fb *Framebuffer) allocate(width, height int32) {
	fb.width, fb.height = clampSize(width, height)

	gl.BindTexture(gl.TEXTURE_2D, fb.color)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depth)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
}

// clampSize raises sizes of a minimised window to one pixel.
func clampSize(width, height int32) (int32, int32) {
	return max(width, 1), max(height, 1)
}

// Resize reallocates the attachments when the size changed.
func (fb *Framebuffer) Resize(width, height int32) {
	if w, h := clampSize(width, height); w == fb.width && h == fb.height {
		return
	}
	fb.allocate(width, height)
}

// BindWithViewport makes the framebuffer the render target with a matching viewport.
// The returned func restores the previous target and viewport.
func (fb *Framebuffer) BindWithViewport() (restore func()) {
	var prev int32
	var viewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prev)
	gl.GetIntegerv(gl.VIEWPORT, &viewport[0])

	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)
	gl.Viewport(0, 0, fb.width, fb.height)

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prev))
		gl.Viewport(viewport[0], viewport[1], viewport[2], viewport[3])
	}
}

// Clear fills the bound target with an opaque colour and resets depth.
func (fb *Framebuffer) Clear(c mgl32.Vec3) {
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (fb *Framebuffer) ColorTexture() uint32 { return fb.color }
func (fb *Framebuffer) FBO() uint32          { return fb.fbo }

// Size returns the attachment size in pixels.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// ReadImage copies the colour attachment into an image, top row first.
func (fb *Framebuffer) ReadImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(fb.width), int(fb.height)))

	restore := fb.BindWithViewport()
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	restore()

	return texture.FlipVertical(img)
}

// SavePNG writes the colour attachment to path.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating screenshot: %w", err)
	}
	if err := png.Encode(f, fb.ReadImage()); err != nil {
		f.Close()
		return fmt.Errorf("encoding screenshot: %w", err)
	}
	return f.Close()
}

// Destroy deletes the GL objects. It is safe to call more than once.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.color != 0 {
		gl.DeleteTextures(1, &fb.color)
		fb.color = 0
	}
	if fb.depth != 0 {
		gl.DeleteRenderbuffers(1, &fb.depth)
		fb.depth = 0
	}
}
