// Package app ties the camera, shader library and scenes into a frame loop that
// renders into an offscreen framebuffer.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/camera"
	"github.com/Faultbox/glcourse/internal/engine/framebuffer"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/internal/logger"
	"github.com/Faultbox/glcourse/internal/scenes"
	"github.com/Faultbox/glcourse/internal/scenes/shaders"
	"github.com/Faultbox/glcourse/pkg/procgen"
)

// ScreenshotDir is where RequestScreenshot writes PNG files.
const ScreenshotDir = "screenshots"

// App runs the demo scenes. All methods must be called on the thread owning the GL context.
type App struct {
	cfg     *config.Config
	ctx     *scenes.Context
	manager *scenes.Manager
	shaders *shader.Library
	watcher *shader.Watcher
	fb      *framebuffer.Framebuffer

	start   time.Time
	last    time.Time
	elapsed float32
	fps     fpsCounter
	guard   cameraGuard
	frame   scenes.Frame

	screenshotRequested bool
	status              string
	statusUntil         time.Time

	log *zap.Logger
}

// New creates the app and schedules the configured start scene. A GL context must be current.
func New(cfg *config.Config) (*App, error) {
	log := logger.Named("app")

	fb, err := framebuffer.New(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		return nil, err
	}

	cam := camera.Default()
	cam.SetViewport(cfg.Window.Width, cfg.Window.Height)
	controls := camera.NewControls()
	controls.Sensitivity = cfg.Controls.Sensitivity
	controls.MoveSpeed = cfg.Controls.MoveSpeed

	a := &App{
		cfg:     cfg,
		shaders: shader.NewLibrary(shaders.FS, cfg.Assets.ShaderDir),
		fb:      fb,
		log:     log,
	}
	a.ctx = &scenes.Context{
		Config:   cfg,
		Shaders:  a.shaders,
		Meshes:   procgen.NewCache(procgen.DefaultCacheLimit),
		Camera:   cam,
		Controls: controls,
		Texture:  scenes.NewTextureSlot(cfg.Assets.Texture),
	}
	a.manager = scenes.NewManager(a.ctx, scenes.All())

	if err := a.manager.Change(cfg.Scene.Start); err != nil {
		log.Warn("unknown start scene, using the first", zap.String("scene", cfg.Scene.Start))
		a.manager.Next()
	}

	if dir := cfg.Assets.ShaderDir; dir != "" && cfg.Assets.HotReload {
		w, err := shader.NewWatcher(dir)
		if err != nil {
			log.Warn("shader hot reload disabled", zap.String("dir", dir), zap.Error(err))
		} else {
			a.watcher = w
			log.Info("watching shaders", zap.String("dir", dir))
		}
	}

	a.start = time.Now()
	a.last = a.start
	return a, nil
}

// Step advances one frame at the given framebuffer size and renders the current scene
// into the offscreen framebuffer. in may be nil when no camera input is available.
func (a *App) Step(in camera.Input, width, height int) error {
	now := time.Now()
	dt := float32(now.Sub(a.last).Seconds())
	a.last = now
	a.elapsed = float32(now.Sub(a.start).Seconds())
	a.fps.tick(dt)

	a.reloadShaders()

	if width > 0 && height > 0 {
		if w, h := a.fb.Size(); int(w) != width || int(h) != height {
			a.fb.Resize(int32(width), int32(height))
		}
		a.ctx.Camera.SetViewport(width, height)
	}

	cam := a.ctx.Camera
	if in != nil {
		a.ctx.Controls.Update(in, cam, dt)
	}

	frame := scenes.Frame{
		Time:   a.elapsed,
		Delta:  dt,
		Width:  width,
		Height: height,
	}
	err := cam.Validate()
	if a.guard.changed(err) {
		if err != nil {
			a.log.Warn("camera invalid, keeping last matrices", zap.Error(err))
		} else {
			a.log.Debug("camera valid")
		}
	}
	if err != nil {
		frame.View, frame.Projection, frame.Eye = a.frame.View, a.frame.Projection, a.frame.Eye
	} else {
		frame.View = cam.ViewMatrix(a.elapsed)
		frame.Projection = cam.ProjectionMatrix()
		frame.Eye = cam.Eye(a.elapsed)
	}
	a.frame = frame

	if err := a.manager.Update(frame); err != nil {
		return err
	}

	restore := a.fb.BindWithViewport()
	a.fb.Clear(a.cfg.Scene.ClearColor)
	a.manager.Render(frame)
	restore()

	if a.screenshotRequested {
		a.screenshotRequested = false
		a.saveScreenshot(now)
	}
	return nil
}

func (a *App) reloadShaders() {
	if a.watcher == nil {
		return
	}
	for _, name := range a.watcher.Drain() {
		if err := a.shaders.Reload(name); err != nil {
			a.log.Error("shader reload failed", zap.String("program", name), zap.Error(err))
			a.notify("Shader error: " + name)
			continue
		}
		a.notify("Reloaded " + name)
	}
}

// Framebuffer returns the offscreen render target.
func (a *App) Framebuffer() *framebuffer.Framebuffer {
	return a.fb
}

// Camera returns the shared camera.
func (a *App) Camera() *camera.Camera {
	return a.ctx.Camera
}

// Scene returns the current scene, or nil before the first Step.
func (a *App) Scene() scenes.Scene {
	return a.manager.Current()
}

// FPS returns the frame rate averaged over the last second.
func (a *App) FPS() float32 {
	return a.fps.value
}

// NextScene switches to the next scene on the following Step.
func (a *App) NextScene() {
	a.manager.Next()
}

// ChangeScene switches to the named scene on the following Step.
func (a *App) ChangeScene(name string) error {
	return a.manager.Change(name)
}

// ToggleOrthographic flips the camera between orthographic and perspective.
func (a *App) ToggleOrthographic() {
	a.ctx.Camera.Orthographic = !a.ctx.Camera.Orthographic
}

// ToggleOrbit flips camera orbiting.
func (a *App) ToggleOrbit() {
	a.ctx.Camera.Orbit = !a.ctx.Camera.Orbit
}

// RequestScreenshot saves the next rendered frame as a PNG.
func (a *App) RequestScreenshot() {
	a.screenshotRequested = true
}

func (a *App) saveScreenshot(now time.Time) {
	path := filepath.Join(ScreenshotDir, screenshotName(a.currentName(), now))
	err := os.MkdirAll(ScreenshotDir, 0755)
	if err == nil {
		err = a.fb.SavePNG(path)
	}
	if err != nil {
		a.log.Error("screenshot failed", zap.String("path", path), zap.Error(err))
		a.notify("Screenshot failed")
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
	a.notify("Saved " + path)
}

// SaveSettings writes the current camera and scene back to the config file at path,
// or to the user config dir when path is empty. The camera scene starts from the saved camera.
func (a *App) SaveSettings(path string) error {
	captureCamera(&a.cfg.Camera, a.ctx.Camera)
	if name := a.currentName(); name != "" {
		a.cfg.Scene.Start = name
	}

	var err error
	if path != "" {
		err = a.cfg.SaveTo(path)
	} else {
		err = a.cfg.Save()
	}
	if err != nil {
		a.notify("Save failed")
		return fmt.Errorf("saving settings: %w", err)
	}
	a.notify("Settings saved")
	return nil
}

func (a *App) currentName() string {
	if s := a.manager.Current(); s != nil {
		return s.Name()
	}
	return ""
}

func (a *App) notify(msg string) {
	a.status = msg
	a.statusUntil = time.Now().Add(3 * time.Second)
}

// Close releases every GL resource and stops the shader watcher.
func (a *App) Close() error {
	err := a.manager.Close()
	if a.watcher != nil {
		err = multierr.Append(err, a.watcher.Close())
	}
	a.ctx.Texture.Destroy()
	a.shaders.Destroy()
	a.fb.Destroy()

	hits, misses := a.ctx.Meshes.Stats()
	a.log.Debug("mesh cache", zap.Int("hits", hits), zap.Int("misses", misses))
	return err
}

// fpsCounter averages the frame rate over one-second windows.
type fpsCounter struct {
	frames  int
	elapsed float32
	value   float32
}

func (f *fpsCounter) tick(dt float32) {
	f.frames++
	f.elapsed += dt
	if f.elapsed >= 1 {
		f.value = float32(f.frames) / f.elapsed
		f.frames = 0
		f.elapsed = 0
	}
}

// cameraGuard remembers the last validation result so changes are logged once.
type cameraGuard struct {
	last string
}

func (g *cameraGuard) changed(err error) bool {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg == g.last {
		return false
	}
	g.last = msg
	return true
}

// captureCamera copies the editable camera state into cfg.
func captureCamera(cfg *config.CameraConfig, cam *camera.Camera) {
	cfg.Position = cam.Position
	cfg.Target = cam.Target
	cfg.FOV = cam.FOV
	cfg.Near = cam.NearPlane
	cfg.Far = cam.FarPlane
	cfg.Orthographic = cam.Orthographic
	cfg.OrthoSize = cam.OrthoSize
	cfg.Orbit = cam.Orbit
	cfg.OrbitSpeed = cam.OrbitSpeed
}

func screenshotName(scene string, t time.Time) string {
	if scene == "" {
		scene = "frame"
	}
	return fmt.Sprintf("%s-%s.png", scene, t.Format("20060102-150405"))
}
