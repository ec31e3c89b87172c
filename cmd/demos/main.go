// Package main runs the course demos with ImGui settings panels.
package main

import (
	"fmt"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/app"
	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/ui"
	"github.com/Faultbox/glcourse/internal/logger"
)

const panelWidth = 360

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

	logger.Info("=== glcourse demos ===", zap.String("scene", cfg.Scene.Start))

	backend, err := ui.NewBackend(cfg.Window)
	if err != nil {
		logger.Error("failed to create window", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("shutdown", zap.Error(err))
		}
	}()

	input := ui.NewInput()
	savePath := config.ConfigPath()

	backend.Run(func() {
		x, y, w, h := ui.Viewport()
		sceneW := w - panelWidth
		if sceneW < 1 {
			sceneW = 1
		}

		// Shortcuts are ignored while a widget has keyboard focus.
		if !imgui.IsAnyItemActive() {
			switch {
			case ui.IsKeyPressed(imgui.KeyF12):
				a.RequestScreenshot()
			case ui.IsKeyPressed(imgui.KeyTab):
				a.NextScene()
			}
		}

		input.Sample()
		if err := a.Step(input, int(sceneW), int(h)); err != nil {
			logger.Error("frame failed", zap.Error(err))
		}

		ui.DrawSceneTexture(x, y, sceneW, h, a.Framebuffer().ColorTexture())
		a.MenuBar(savePath)
		a.Panel(x+sceneW, y, panelWidth, h)
		a.Overlay(x, y, sceneW, h)

		if s := a.Scene(); s != nil {
			backend.SetWindowTitle(cfg.Window.Title + " - " + s.Title())
		}
	})

	logger.Info("demos closed normally")
}
