// Package main runs the course demos in a bare SDL window without panels.
//
// Keys: Tab next scene, O orthographic, P orbit, F12 screenshot, Esc quit.
// Hold the right mouse button to look around, WASD/QE to move.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/app"
	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/input"
	"github.com/Faultbox/glcourse/internal/engine/renderer"
	"github.com/Faultbox/glcourse/internal/engine/window"
	"github.com/Faultbox/glcourse/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(cfg.Window)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer func() {
		if err := win.Close(); err != nil {
			logger.Warn("closing window", zap.Error(err))
		}
	}()

	// Renderer loads GL, so it must come after the window.
	r, err := renderer.New(win.DrawableSize())
	if err != nil {
		return err
	}

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("closing app", zap.Error(err))
		}
	}()

	in := input.New()
	title := ""
	for {
		if in.Update() {
			return nil
		}
		for _, ev := range in.Events() {
			if ev.Type != input.EventKeyDown {
				continue
			}
			switch ev.Key {
			case sdl.SCANCODE_ESCAPE:
				return nil
			case sdl.SCANCODE_TAB:
				a.NextScene()
			case sdl.SCANCODE_O:
				a.ToggleOrthographic()
			case sdl.SCANCODE_P:
				a.ToggleOrbit()
			case sdl.SCANCODE_F12:
				a.RequestScreenshot()
			}
		}

		w, h := win.DrawableSize()
		r.Resize(w, h)
		if err := a.Step(in, w, h); err != nil {
			return err
		}
		r.Present(a.Framebuffer())
		win.SwapBuffers()

		if s := a.Scene(); s != nil && s.Title() != title {
			title = s.Title()
			win.SetTitle(cfg.Window.Title + " - " + title)
		}
	}
}
