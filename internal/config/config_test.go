package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1080 {
		t.Errorf("expected width 1080, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Camera.Position != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("expected camera at (0,0,5), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if !cfg.Camera.Orthographic {
		t.Error("expected orthographic camera by default")
	}
	if cfg.Camera.OrthoSize != 6 {
		t.Errorf("expected ortho size 6, got %f", cfg.Camera.OrthoSize)
	}

	if cfg.Controls.Sensitivity != 0.1 {
		t.Errorf("expected sensitivity 0.1, got %f", cfg.Controls.Sensitivity)
	}
	if cfg.Controls.MoveSpeed != 5 {
		t.Errorf("expected move speed 5, got %f", cfg.Controls.MoveSpeed)
	}

	if cfg.Shapes.Sphere.Segments != 8 {
		t.Errorf("expected 8 sphere segments, got %d", cfg.Shapes.Sphere.Segments)
	}

	if cfg.Lighting.Shininess != 10 {
		t.Errorf("expected shininess 10, got %f", cfg.Lighting.Shininess)
	}
	if cfg.Lighting.LightCount != 4 {
		t.Errorf("expected 4 lights, got %d", cfg.Lighting.LightCount)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

scene:
  start: lighting

camera:
  position: [1, 2, 3]
  orthographic: false
  orbit: true
  orbit_speed: 0.5

shapes:
  sphere:
    radius: 1.5
    segments: 32

assets:
  shader_dir: ./shaders

logging:
  level: "debug"
  log_file: "glcourse.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Scene.Start != "lighting" {
		t.Errorf("expected start scene lighting, got %s", cfg.Scene.Start)
	}
	if cfg.Camera.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected camera position (1,2,3), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Orthographic {
		t.Error("expected perspective camera")
	}
	if !cfg.Camera.Orbit || cfg.Camera.OrbitSpeed != 0.5 {
		t.Errorf("expected orbit at 0.5 rad/s, got %v at %f", cfg.Camera.Orbit, cfg.Camera.OrbitSpeed)
	}
	if cfg.Shapes.Sphere.Segments != 32 {
		t.Errorf("expected 32 sphere segments, got %d", cfg.Shapes.Sphere.Segments)
	}
	if cfg.Assets.ShaderDir != "./shaders" {
		t.Errorf("expected shader dir ./shaders, got %s", cfg.Assets.ShaderDir)
	}

	// Untouched sections keep their defaults.
	if cfg.Camera.FOV != 60 {
		t.Errorf("expected default fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Shapes.Cylinder.Segments != 8 {
		t.Errorf("expected default cylinder segments 8, got %d", cfg.Shapes.Cylinder.Segments)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "glcourse.log" {
		t.Errorf("expected log file 'glcourse.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	cases := map[string]string{
		"syntax":      "window:\n  width: not a number\n  invalid syntax here\n",
		"unknown key": "window:\n  widht: 800\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(tmpDir, strings.ReplaceAll(name, " ", "_")+".yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid YAML, got nil")
			}
		})
	}
}

func TestLoadFromFileEmpty(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(configPath, nil, 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Errorf("empty file should keep defaults, got %v", err)
	}
	if cfg.Window.Width != 1080 {
		t.Errorf("expected default width, got %d", cfg.Window.Width)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Window.Width = 0
	cfg.Camera.Near = 0
	cfg.Camera.FOV = 200

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"window size", "camera.near", "camera.fov"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestValidateShapeDimensions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"nan sphere radius", func(c *Config) { c.Shapes.Sphere.Radius = float32(math.NaN()) }, "shapes.sphere.radius"},
		{"infinite plane width", func(c *Config) { c.Shapes.Plane.Width = float32(math.Inf(1)) }, "shapes.plane.width"},
		{"zero cylinder height", func(c *Config) { c.Shapes.Cylinder.Height = 0 }, "shapes.cylinder.height"},
		{"negative cylinder radius", func(c *Config) { c.Shapes.Cylinder.Radius = -1 }, "shapes.cylinder.radius"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected %q in %v", tt.want, err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadRejectsNaNShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("shapes:\n  sphere:\n    radius: .nan\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile: %v", err)
	}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "shapes.sphere.radius") {
		t.Errorf("expected sphere radius error, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Scene.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "scene flag",
			setup: func() { *flagScene = "sunset" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Start != "sunset" {
					t.Errorf("expected scene sunset, got %s", cfg.Scene.Start)
				}
			},
			teardown: func() { *flagScene = "" },
		},
		{
			name:  "shaders flag",
			setup: func() { *flagShaders = "/tmp/shaders" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Assets.ShaderDir != "/tmp/shaders" {
					t.Errorf("expected shader dir /tmp/shaders, got %s", cfg.Assets.ShaderDir)
				}
			},
			teardown: func() { *flagShaders = "" },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.Orbit = true
	cfg.Shapes.Plane.Subdivisions = 12
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if !loaded.Camera.Orbit {
		t.Error("expected orbit to survive save")
	}
	if loaded.Shapes.Plane.Subdivisions != 12 {
		t.Errorf("expected 12 subdivisions, got %d", loaded.Shapes.Plane.Subdivisions)
	}
}
