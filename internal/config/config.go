// Package config handles application configuration loading and management.
package config

import "github.com/go-gl/mathgl/mgl32"

// Config holds all application settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Shapes   ShapesConfig   `yaml:"shapes"`
	Lighting LightingConfig `yaml:"lighting"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig selects the scene shown at startup.
type SceneConfig struct {
	Start      string     `yaml:"start"`
	ClearColor mgl32.Vec3 `yaml:"clear_color"`
	ShowFPS    bool       `yaml:"show_fps"`
}

// CameraConfig holds the initial camera. Angles are in degrees, orbit speed in radians per second.
type CameraConfig struct {
	Position     mgl32.Vec3 `yaml:"position"`
	Target       mgl32.Vec3 `yaml:"target"`
	FOV          float32    `yaml:"fov"`
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	Orthographic bool       `yaml:"orthographic"`
	OrthoSize    float32    `yaml:"ortho_size"`
	Orbit        bool       `yaml:"orbit"`
	OrbitSpeed   float32    `yaml:"orbit_speed"`
}

// ControlsConfig holds mouse-look settings.
type ControlsConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
	MoveSpeed   float32 `yaml:"move_speed"`
}

// ShapesConfig holds the initial procedural shape parameters.
type ShapesConfig struct {
	Plane    PlaneConfig    `yaml:"plane"`
	Cylinder CylinderConfig `yaml:"cylinder"`
	Sphere   SphereConfig   `yaml:"sphere"`
}

// PlaneConfig holds plane generator parameters.
type PlaneConfig struct {
	Width        float32 `yaml:"width"`
	Height       float32 `yaml:"height"`
	Subdivisions int     `yaml:"subdivisions"`
}

// CylinderConfig holds cylinder generator parameters.
type CylinderConfig struct {
	Height   float32 `yaml:"height"`
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

// SphereConfig holds sphere generator parameters.
type SphereConfig struct {
	Radius   float32 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

// LightingConfig holds the Blinn-Phong material and ambient term.
type LightingConfig struct {
	AmbientColor mgl32.Vec3 `yaml:"ambient_color"`
	AmbientK     float32    `yaml:"ambient_k"`
	DiffuseK     float32    `yaml:"diffuse_k"`
	SpecularK    float32    `yaml:"specular_k"`
	Shininess    float32    `yaml:"shininess"`
	LightCount   int        `yaml:"light_count"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	ShaderDir string `yaml:"shader_dir"` // Overrides the embedded shaders when set
	HotReload bool   `yaml:"hot_reload"`
	Texture   string `yaml:"texture"` // Image used by textured shading modes
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "glcourse",
			Width:      1080,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			Start:      "camera",
			ClearColor: mgl32.Vec3{0.1, 0.1, 0.1},
		},
		Camera: CameraConfig{
			Position:     mgl32.Vec3{0, 0, 5},
			Target:       mgl32.Vec3{0, 0, 0},
			FOV:          60,
			Near:         0.1,
			Far:          100,
			Orthographic: true,
			OrthoSize:    6,
			Orbit:        false,
			OrbitSpeed:   1,
		},
		Controls: ControlsConfig{
			Sensitivity: 0.1,
			MoveSpeed:   5,
		},
		Shapes: ShapesConfig{
			Plane:    PlaneConfig{Width: 0.5, Height: 0.5, Subdivisions: 1},
			Cylinder: CylinderConfig{Height: 0.5, Radius: 0.25, Segments: 8},
			Sphere:   SphereConfig{Radius: 0.25, Segments: 8},
		},
		Lighting: LightingConfig{
			AmbientColor: mgl32.Vec3{0.5, 0.5, 0.5},
			AmbientK:     0.1,
			DiffuseK:     0.5,
			SpecularK:    0.5,
			Shininess:    10,
			LightCount:   4,
		},
		Assets: AssetsConfig{
			HotReload: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
