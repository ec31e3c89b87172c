package scenes

import (
	"errors"
	"image/color"
	"sync"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/engine/texture"
	"github.com/Faultbox/glcourse/internal/logger"
)

var (
	checkerA = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	checkerB = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// TextureSlot holds the texture used by textured shading modes.
//
// Paths may be requested from any goroutine (the native file dialog runs on its own);
// loading always happens on the GL thread in Texture. Until an image loads, a
// checkerboard is used.
type TextureSlot struct {
	mu       sync.Mutex
	pending  string
	browsing bool

	tex     *texture.Texture
	lastErr error
	log     *zap.Logger
}

// NewTextureSlot creates a slot that will load path on first use. An empty path
// selects the checkerboard.
func NewTextureSlot(path string) *TextureSlot {
	return &TextureSlot{pending: path, log: logger.Named("texture")}
}

// Request queues path to be loaded on the next call to Texture.
func (s *TextureSlot) Request(path string) {
	s.mu.Lock()
	s.pending = path
	s.mu.Unlock()
}

// Browse opens a native file dialog without blocking the frame loop.
func (s *TextureSlot) Browse() {
	s.mu.Lock()
	if s.browsing {
		s.mu.Unlock()
		return
	}
	s.browsing = true
	s.mu.Unlock()

	go func() {
		defer func() {
			s.mu.Lock()
			s.browsing = false
			s.mu.Unlock()
		}()

		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "bmp", "tga").
			Filter("All Files", "*").
			Title("Load Texture").
			Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				s.log.Warn("file dialog failed", zap.Error(err))
			}
			return
		}
		s.Request(filename)
	}()
}

// Texture returns the current texture, loading a pending request first.
// It must be called on the GL thread.
func (s *TextureSlot) Texture() *texture.Texture {
	s.mu.Lock()
	path := s.pending
	s.pending = ""
	s.mu.Unlock()

	if path != "" {
		tex, err := texture.Load(path)
		if err != nil {
			s.lastErr = err
			s.log.Warn("texture load failed", zap.String("path", path), zap.Error(err))
		} else {
			s.lastErr = nil
			s.replace(tex)
			s.log.Info("texture loaded", zap.String("path", path))
		}
	}

	if s.tex == nil {
		s.replace(texture.FromImage(texture.Checker(256, 8, checkerA, checkerB)))
	}
	return s.tex
}

// Bind binds the current texture to unit.
func (s *TextureSlot) Bind(unit uint32) {
	s.Texture().Bind(unit)
}

// Err returns the error from the most recent failed load, if any.
func (s *TextureSlot) Err() error {
	return s.lastErr
}

// Panel draws the texture source and a load button.
func (s *TextureSlot) Panel() {
	source := "checkerboard"
	if s.tex != nil && s.tex.Source() != "" {
		source = s.tex.Source()
	}
	imgui.Text("Texture: " + source)
	if imgui.Button("Load Texture...") {
		s.Browse()
	}
	if s.lastErr != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), s.lastErr.Error())
	}
}

// Destroy releases the GL texture.
func (s *TextureSlot) Destroy() {
	if s.tex != nil {
		s.tex.Destroy()
		s.tex = nil
	}
}

func (s *TextureSlot) replace(tex *texture.Texture) {
	if s.tex != nil {
		s.tex.Destroy()
	}
	s.tex = tex
}
