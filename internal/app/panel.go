package app

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"
)

// MenuBar draws the main menu: scene selection and file actions.
// savePath is passed to SaveSettings.
func (a *App) MenuBar(savePath string) {
	if !imgui.BeginMainMenuBar() {
		return
	}
	if imgui.BeginMenu("File") {
		if imgui.MenuItemBool("Save Settings") {
			if err := a.SaveSettings(savePath); err != nil {
				a.log.Error("save settings", zap.Error(err))
			}
		}
		if imgui.MenuItemBool("Screenshot") {
			a.RequestScreenshot()
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("Scenes") {
		current := a.currentName()
		for _, s := range a.manager.Scenes() {
			if imgui.SelectableBoolV(s.Title(), s.Name() == current, 0, imgui.NewVec2(0, 0)) {
				_ = a.manager.Change(s.Name())
			}
		}
		imgui.EndMenu()
	}
	if imgui.BeginMenu("View") {
		imgui.Checkbox("Show FPS", &a.cfg.Scene.ShowFPS)
		imgui.EndMenu()
	}
	imgui.EndMainMenuBar()
}

// Panel draws the settings window for the current scene.
func (a *App) Panel(x, y, width, height float32) {
	imgui.SetNextWindowPos(imgui.NewVec2(x, y))
	imgui.SetNextWindowSize(imgui.NewVec2(width, height))
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse
	title := "Settings"
	if s := a.manager.Current(); s != nil {
		title = s.Title()
	}
	if imgui.BeginV(title+"###Settings", nil, flags) {
		a.manager.Panel()
	}
	imgui.End()
}

// Overlay draws the FPS counter and the latest status message over the scene area.
func (a *App) Overlay(x, y, width, height float32) {
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize

	if a.cfg.Scene.ShowFPS {
		imgui.SetNextWindowPos(imgui.NewVec2(x+width-100, y+5))
		imgui.SetNextWindowBgAlpha(0.5)
		if imgui.BeginV("##FPS", nil, flags) {
			imgui.Text(fmt.Sprintf("FPS: %.0f", a.FPS()))
		}
		imgui.End()
	}

	if a.status != "" && time.Now().Before(a.statusUntil) {
		msgWidth := float32(300)
		imgui.SetNextWindowPos(imgui.NewVec2(x+(width-msgWidth)/2, y+height-60))
		imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
		imgui.SetNextWindowBgAlpha(0.8)
		if imgui.BeginV("##Status", nil, flags) {
			imgui.TextColored(imgui.NewVec4(0.2, 1.0, 0.2, 1.0), a.status)
		}
		imgui.End()
	}
}
