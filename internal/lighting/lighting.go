// Package lighting holds the Blinn-Phong material and point lights shared by lit scenes.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/shader"
)

// MaxLights matches the _Lights array size in lit.frag.
const MaxLights = 4

// Material holds Blinn-Phong reflection coefficients.
type Material struct {
	AmbientK  float32
	DiffuseK  float32
	SpecularK float32
	Shininess float32
}

// DefaultMaterial returns the standard demo material.
func DefaultMaterial() Material {
	return Material{AmbientK: 0.1, DiffuseK: 0.5, SpecularK: 0.5, Shininess: 10}
}

// PointLight is an omnidirectional light without attenuation.
type PointLight struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	Enabled  bool
}

// DefaultLight returns the factory setting for light slot i: four coloured lights
// around the origin at height 1.
func DefaultLight(i int) PointLight {
	defaults := [MaxLights]PointLight{
		{Position: mgl32.Vec3{-2, 1, -2}, Color: mgl32.Vec3{1, 0, 0}, Enabled: true},
		{Position: mgl32.Vec3{2, 1, -2}, Color: mgl32.Vec3{0, 1, 0}, Enabled: true},
		{Position: mgl32.Vec3{2, 1, 2}, Color: mgl32.Vec3{0, 0, 1}, Enabled: true},
		{Position: mgl32.Vec3{-2, 1, 2}, Color: mgl32.Vec3{0.5, 0.5, 0}, Enabled: true},
	}
	return defaults[i%MaxLights]
}

// Rig is the full lighting state uploaded to a lit program.
type Rig struct {
	Lights       [MaxLights]PointLight
	Count        int // lights in use, 0..MaxLights
	AmbientColor mgl32.Vec3
	Material     Material
}

// NewRig creates a rig from the lighting config.
func NewRig(cfg config.LightingConfig) *Rig {
	r := &Rig{
		AmbientColor: cfg.AmbientColor,
		Material: Material{
			AmbientK:  cfg.AmbientK,
			DiffuseK:  cfg.DiffuseK,
			SpecularK: cfg.SpecularK,
			Shininess: cfg.Shininess,
		},
	}
	r.SetCount(cfg.LightCount)
	r.ResetLights()
	return r
}

// SetCount sets the number of active light slots, clamped to [0, MaxLights].
func (r *Rig) SetCount(n int) {
	r.Count = min(max(n, 0), MaxLights)
}

// ResetLight restores slot i to its default position, colour and enabled state.
func (r *Rig) ResetLight(i int) {
	if i < 0 || i >= MaxLights {
		return
	}
	r.Lights[i] = DefaultLight(i)
}

// ResetLights restores every slot.
func (r *Rig) ResetLights() {
	for i := range r.Lights {
		r.ResetLight(i)
	}
}

// Active reports whether slot i contributes to shading.
func (r *Rig) Active(i int) bool {
	return i >= 0 && i < r.Count && r.Lights[i].Enabled
}

// Apply uploads the rig and the eye position to a lit program. Slots beyond Count
// are sent disabled so stale values never light the scene.
func (r *Rig) Apply(u shader.Uniforms, eye mgl32.Vec3) {
	for i, l := range r.Lights {
		prefix := fmt.Sprintf("_Lights[%d]", i)
		u.SetVec3(prefix+".position", l.Position)
		u.SetVec3(prefix+".color", l.Color)
		u.SetInt(prefix+".enable", boolToInt(r.Active(i)))
	}
	u.SetVec3("_ambientColor", r.AmbientColor)
	u.SetFloat("_ambientK", r.Material.AmbientK)
	u.SetFloat("_diffuseK", r.Material.DiffuseK)
	u.SetFloat("_specularK", r.Material.SpecularK)
	u.SetFloat("_shininess", r.Material.Shininess)
	u.SetVec3("_EyePos", eye)
}

func boolToInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
